package components

import (
	"github.com/automoto/isoward/behavior"
	"github.com/automoto/isoward/config"
	"github.com/automoto/isoward/nav"
	"github.com/yohamta/donburi"
)

type AgentData struct {
	ID       string // instance id used in log lines
	TypeName string
	Type     config.AgentTypeConfig

	Controller *behavior.Controller
	Nav        *nav.Agent

	// Touching is true while the agent's box overlaps the player.
	Touching bool
}

var Agent = donburi.NewComponentType[AgentData]()
