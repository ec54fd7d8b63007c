package engine

import "github.com/ericogr/robot-arena/internal/game"

// --- Status effects ----------------------------------------------------

// Frozen reports whether r is frozen.
func Frozen(r *game.Robot) bool { return r.IsFrozen }

func freeze(r *game.Robot) { r.IsFrozen = true }

// thaw clears the freeze. It runs when a frozen robot's turn is skipped, so
// a freeze costs its victim exactly one attack attempt.
func thaw(r *game.Robot) { r.IsFrozen = false }
