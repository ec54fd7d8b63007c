package engine

import "github.com/ericogr/robot-arena/internal/game"

// --- Readiness (attack-speed cooldown) ---------------------------------

// Ready reports whether r has no cooldown left.
func Ready(r *game.Robot) bool { return r.CooldownCounter <= 0 }

// Cooling is the opposite of Ready.
func Cooling(r *game.Robot) bool { return !Ready(r) }

// tickCooldown advances a cooling robot by one tick.
func tickCooldown(r *game.Robot) {
	if r.CooldownCounter > 0 {
		r.CooldownCounter--
	}
}

// startCooldown puts r back into cooldown after a successful action. A robot
// with attack speed 0 stays ready.
func startCooldown(r *game.Robot) {
	r.SetAttackSpeed(r.AttackSpeed)
	r.CooldownCounter = r.AttackSpeed
}
