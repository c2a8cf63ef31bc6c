package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lafriks/go-tiled"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// FS exposes the embedded level directory.
func FS() fs.FS { return assetFS }

// AgentSpecsPath is the embedded agent spec file.
const AgentSpecsPath = "levels/agents.yaml"

// Rect is an axis aligned box on the ground plane. X runs along world x and
// Y along world z.
type Rect struct {
	X, Y, Width, Height float64
}

type EnemySpawn struct {
	Position   mgl64.Vec3
	EnemyType  string
	PatrolPath string
	Paused     bool
}

type PatrolPath struct {
	Name   string
	Points []mgl64.Vec3
}

type DamageZone struct {
	Rect
	Name   string
	Damage float64
}

type Level struct {
	Walls       []Rect
	PlayerSpawn mgl64.Vec3
	EnemySpawns []EnemySpawn
	PatrolPaths map[string]PatrolPath
	DamageZones []DamageZone
	Name        string
	Width       int
	Height      int
}

// Ground maps a map position to the world ground plane.
func Ground(x, y float64) mgl64.Vec3 {
	return mgl64.Vec3{x, 0, y}
}

type LevelLoader struct {
	fsys fs.FS
}

// NewLevelLoader reads levels from the embedded assets.
func NewLevelLoader() *LevelLoader {
	return &LevelLoader{fsys: assetFS}
}

// NewLevelLoaderFS reads levels from fsys.
func NewLevelLoaderFS(fsys fs.FS) *LevelLoader {
	return &LevelLoader{fsys: fsys}
}

func (l *LevelLoader) MustLoadLevels() []Level {
	levels, err := l.LoadLevels("levels")
	if err != nil {
		panic(err)
	}
	return levels
}

// LoadLevels loads every .tmx file in dir, sorted by name.
func (l *LevelLoader) LoadLevels(dir string) ([]Level, error) {
	entries, err := fs.ReadDir(l.fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read levels directory: %w", err)
	}

	var levels []Level
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".tmx" {
			continue
		}
		level, err := l.LoadLevel(path.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		levels = append(levels, level)
	}

	if len(levels) == 0 {
		return nil, fmt.Errorf("no level files found in %s", dir)
	}
	sort.Slice(levels, func(i, j int) bool { return levels[i].Name < levels[j].Name })
	return levels, nil
}

func (l *LevelLoader) LoadLevel(levelPath string) (Level, error) {
	levelMap, err := tiled.LoadFile(levelPath, tiled.WithFileSystem(l.fsys))
	if err != nil {
		return Level{}, fmt.Errorf("load level %s: %w", levelPath, err)
	}

	level := Level{
		PatrolPaths: make(map[string]PatrolPath),
		Name:        levelPath,
		Width:       levelMap.Width * levelMap.TileWidth,
		Height:      levelMap.Height * levelMap.TileHeight,
	}
	spawnFound := false

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Walls":
			for _, o := range og.Objects {
				level.Walls = append(level.Walls, Rect{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height})
			}
		case "PlayerSpawn":
			if len(og.Objects) > 0 {
				o := og.Objects[0]
				level.PlayerSpawn = Ground(o.X, o.Y)
				spawnFound = true
			}
		case "EnemySpawn":
			for _, o := range og.Objects {
				level.EnemySpawns = append(level.EnemySpawns, EnemySpawn{
					Position:   Ground(o.X, o.Y),
					EnemyType:  o.Properties.GetString("enemyType"),
					PatrolPath: o.Properties.GetString("pathName"),
					Paused:     o.Properties.GetString("paused") == "true",
				})
			}
		case "PatrolPaths":
			for _, o := range og.Objects {
				if len(o.PolyLines) == 0 {
					continue
				}
				// Use the first polyline if multiple polylines exist
				polyline := o.PolyLines[0]
				if polyline.Points == nil || len(*polyline.Points) == 0 {
					continue
				}
				points := make([]mgl64.Vec3, len(*polyline.Points))
				for i, point := range *polyline.Points {
					points[i] = Ground(o.X+point.X, o.Y+point.Y)
				}
				level.PatrolPaths[o.Name] = PatrolPath{Name: o.Name, Points: points}
			}
		case "DamageZones":
			for _, o := range og.Objects {
				level.DamageZones = append(level.DamageZones, DamageZone{
					Rect:   Rect{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height},
					Name:   o.Name,
					Damage: o.Properties.GetFloat("damage"),
				})
			}
		}
	}

	if !spawnFound {
		return Level{}, fmt.Errorf("level %s: no player spawn point defined", levelPath)
	}
	for _, s := range level.EnemySpawns {
		if s.PatrolPath == "" {
			continue
		}
		if _, ok := level.PatrolPaths[s.PatrolPath]; !ok {
			return Level{}, fmt.Errorf("level %s: enemy references unknown patrol path %q", levelPath, s.PatrolPath)
		}
	}
	return level, nil
}
