package systems

import (
	"encoding/json"
	"log"

	cfg "github.com/automoto/isoward/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Fullscreen        bool    `json:"fullscreen"`
	MapToCircular     bool    `json:"mapToCircular"`
	ForwardFilter     float64 `json:"forwardFilter"`
	TurnFilter        float64 `json:"turnFilter"`
	ForwardSpeedLimit float64 `json:"forwardSpeedLimit"`
}

// SavedRecord is the best run so far.
type SavedRecord struct {
	BestTicks int `json:"bestTicks"`
}

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "isoward",
	})
	if err != nil {
		return err
	}
	gdataManager = m
	return nil
}

func loadItem(key string, v any) (bool, error) {
	if gdataManager == nil {
		return false, nil
	}
	data, err := gdataManager.LoadItem(key)
	if err != nil {
		log.Printf("Warning: Could not load %s: %v", key, err)
		return false, nil
	}
	if len(data) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		log.Printf("Warning: Could not parse saved %s: %v", key, err)
		return false, err
	}
	return true, nil
}

func saveItem(key string, v any) error {
	if gdataManager == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("Warning: Could not serialize %s: %v", key, err)
		return err
	}
	if err := gdataManager.SaveItem(key, data); err != nil {
		log.Printf("Warning: Could not save %s: %v", key, err)
		return err
	}
	return nil
}

// LoadSettings loads settings from disk. It returns nil when nothing has
// been saved yet.
func LoadSettings() (*SavedSettings, error) {
	var settings SavedSettings
	ok, err := loadItem("settings", &settings)
	if !ok {
		return nil, err
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	return saveItem("settings", s)
}

// CurrentSettings snapshots the live configuration.
func CurrentSettings() *SavedSettings {
	return &SavedSettings{
		Fullscreen:        ebiten.IsFullscreen(),
		MapToCircular:     cfg.Input.MapToCircular,
		ForwardFilter:     cfg.Input.ForwardFilter,
		TurnFilter:        cfg.Input.TurnFilter,
		ForwardSpeedLimit: cfg.Input.ForwardSpeedLimit,
	}
}

// ApplySavedSettingsGlobal applies settings before any scene is created.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}
	applyInputSettings(saved)
	ebiten.SetFullscreen(saved.Fullscreen)
}

// applyInputSettings copies the filter tuning into the input config.
// Non-positive rates keep the current value.
func applyInputSettings(saved *SavedSettings) {
	cfg.Input.MapToCircular = saved.MapToCircular
	if saved.ForwardFilter > 0 {
		cfg.Input.ForwardFilter = saved.ForwardFilter
	}
	if saved.TurnFilter > 0 {
		cfg.Input.TurnFilter = saved.TurnFilter
	}
	if saved.ForwardSpeedLimit > 0 {
		cfg.Input.ForwardSpeedLimit = saved.ForwardSpeedLimit
	}
}

// RecordSurvival stores ticks if it beats the saved record and returns the
// record after the update.
func RecordSurvival(ticks int) int {
	var record SavedRecord
	if _, err := loadItem("record", &record); err != nil {
		return ticks
	}
	if ticks <= record.BestTicks {
		return record.BestTicks
	}
	record.BestTicks = ticks
	_ = saveItem("record", &record)
	return ticks
}
