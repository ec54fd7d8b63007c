package engine

import (
	"strconv"
	"strings"

	"github.com/ericogr/robot-arena/internal/game"
)

// --- Attack context and helpers ----------------------------------------
type attackContext struct {
	attacker *game.Robot
	defender *game.Robot
	summary  []string
}

func newAttackContext(attacker, defender *game.Robot) *attackContext {
	return &attackContext{attacker: attacker, defender: defender, summary: make([]string, 0, 4)}
}

func (ac *attackContext) add(msg string) { ac.summary = append(ac.summary, msg) }

// joinSummary returns the accumulated summary as a single string.
func (ac *attackContext) joinSummary() string {
	return strings.Join(ac.summary, "\n")
}

// robotDisplayName falls back to the record ID when a robot has no name.
func robotDisplayName(r *game.Robot) string {
	if r == nil {
		return ""
	}
	if r.Name != "" {
		return r.Name
	}
	return "robot #" + strconv.FormatUint(uint64(r.ID), 10)
}
