package assets

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLevel_Demo(t *testing.T) {
	levels := NewLevelLoader().MustLoadLevels()
	require.Len(t, levels, 1)
	level := levels[0]

	assert.Equal(t, "levels/demo.tmx", level.Name)
	assert.Equal(t, 480, level.Width)
	assert.Equal(t, 320, level.Height)
	assert.Len(t, level.Walls, 6)
	assert.Equal(t, Rect{X: 160, Y: 96, Width: 32, Height: 96}, level.Walls[4])
	assert.Equal(t, mgl64.Vec3{64, 0, 256}, level.PlayerSpawn)

	require.Len(t, level.EnemySpawns, 4)
	assert.Equal(t, EnemySpawn{Position: mgl64.Vec3{240, 0, 48}, EnemyType: "Sentry", PatrolPath: "courtyard"}, level.EnemySpawns[0])
	assert.True(t, level.EnemySpawns[3].Paused)
	assert.Empty(t, level.EnemySpawns[3].PatrolPath)

	courtyard := level.PatrolPaths["courtyard"]
	assert.Equal(t, []mgl64.Vec3{{240, 0, 48}, {400, 0, 48}, {400, 0, 112}, {240, 0, 112}}, courtyard.Points)
	assert.Len(t, level.PatrolPaths["cellar"].Points, 2)

	require.Len(t, level.DamageZones, 2)
	assert.Equal(t, "spikes", level.DamageZones[0].Name)
	assert.Equal(t, 10.0, level.DamageZones[0].Damage)
	assert.Equal(t, 25.0, level.DamageZones[1].Damage)
}

const header = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="10" tilewidth="16" tileheight="16" infinite="0">
`

func TestLoadLevel_Errors(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/nospawn.tmx": {Data: []byte(header + `</map>`)},
		"levels/badpath.tmx": {Data: []byte(header + `
 <objectgroup id="1" name="PlayerSpawn"><object id="1" x="8" y="8"><point/></object></objectgroup>
 <objectgroup id="2" name="EnemySpawn">
  <object id="2" x="20" y="20">
   <properties><property name="pathName" value="nowhere"/></properties>
   <point/>
  </object>
 </objectgroup>
</map>`)},
	}
	loader := NewLevelLoaderFS(fsys)

	_, err := loader.LoadLevel("levels/nospawn.tmx")
	assert.ErrorContains(t, err, "no player spawn")

	_, err = loader.LoadLevel("levels/badpath.tmx")
	assert.ErrorContains(t, err, `"nowhere"`)

	_, err = loader.LoadLevel("levels/missing.tmx")
	assert.Error(t, err)

	_, err = NewLevelLoaderFS(fstest.MapFS{"levels/readme.txt": {}}).LoadLevels("levels")
	assert.ErrorContains(t, err, "no level files")
}

func TestEmbeddedAgentSpecs(t *testing.T) {
	data, err := FS().Open(AgentSpecsPath)
	require.NoError(t, err)
	require.NoError(t, data.Close())
}

func TestWatcher_ReportsSpecWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	spec := filepath.Join(dir, "agents.yaml")
	require.NoError(t, os.WriteFile(spec, []byte("agents: {}\n"), 0o644))

	select {
	case name := <-w.Events:
		assert.Equal(t, spec, name)
	case <-time.After(5 * time.Second):
		t.Fatal("no event for spec write")
	}

	cancel()
	require.NoError(t, <-done)
	for range w.Events {
	}
}
