package engine

import "github.com/ericogr/robot-arena/internal/game"

// Selection is the damage a robot deals on one attack and the weapon
// instance it comes from. Weapon is nil when the robot fights with its
// intrinsic damage.
type Selection struct {
	Damage int
	Weapon *game.RobotWeapon
}

// WeaponSelector picks the damage a robot uses for one attack.
type WeaponSelector interface {
	Select(baseDamage int, weapons []game.RobotWeapon, defenderRemaining int) Selection
}

// ValidAndHeavierWeapon reports whether w can be used instead of a damage
// floor: it must not be destroyed and must hit strictly harder than floor.
func ValidAndHeavierWeapon(floor int, w *game.RobotWeapon) bool {
	if w == nil {
		return false
	}
	return w.Health.Alive() && w.Damage > floor
}

// KnapsackSelector chooses the least damaging eligible weapon that still
// brings the defender to zero; when none can, it takes the hardest hitter.
// Ties go to the earliest weapon in the list.
type KnapsackSelector struct{}

func (KnapsackSelector) Select(baseDamage int, weapons []game.RobotWeapon, defenderRemaining int) Selection {
	if baseDamage < 0 {
		baseDamage = 0
	}
	var killer, strongest *game.RobotWeapon
	for i := range weapons {
		w := &weapons[i]
		if !ValidAndHeavierWeapon(baseDamage, w) {
			continue
		}
		if strongest == nil || w.Damage > strongest.Damage {
			strongest = w
		}
		if w.Damage >= defenderRemaining && (killer == nil || w.Damage < killer.Damage) {
			killer = w
		}
	}
	switch {
	case killer != nil:
		return Selection{Damage: killer.Damage, Weapon: killer}
	case strongest != nil:
		return Selection{Damage: strongest.Damage, Weapon: strongest}
	default:
		return Selection{Damage: baseDamage}
	}
}

// CalculateDamage is a shorthand for the damage KnapsackSelector would pick
// for r against a defender with the given remaining health.
func CalculateDamage(r *game.Robot, defenderRemaining int) int {
	return KnapsackSelector{}.Select(r.Damage, r.Weapons, defenderRemaining).Damage
}
