package components

import (
	"fmt"

	"github.com/automoto/isoward/health"
	"github.com/yohamta/donburi"
)

// HealthDisplay is the HUD side of a health pool.
type HealthDisplay struct {
	Value   float64
	Damaged bool // a decay is running
	Reports int
}

func (d *HealthDisplay) ReportHealth(v float64) {
	d.Value = v
	d.Reports++
}

func (d *HealthDisplay) DecayStarted()  { d.Damaged = true }
func (d *HealthDisplay) DecayFinished() { d.Damaged = false }

// Text is the HUD label, rounded to whole points.
func (d *HealthDisplay) Text() string {
	return fmt.Sprintf("Health: %.0f", d.Value)
}

type HealthData struct {
	*health.Entity
	Display *HealthDisplay
}

var Health = donburi.NewComponentType[HealthData]()
