package engine

import (
	"strconv"

	"github.com/ericogr/robot-arena/internal/game"
)

// DefaultRechargeAmount is the health an attacker regains after every
// successful attack, capped at its maximum.
const DefaultRechargeAmount = 2

// OutcomeStatus describes how an attack attempt ended.
type OutcomeStatus string

const (
	OutcomeStruck           OutcomeStatus = "struck"
	OutcomeCooling          OutcomeStatus = "cooling"
	OutcomeFrozen           OutcomeStatus = "frozen"
	OutcomeAttackerDefeated OutcomeStatus = "attacker_defeated"
)

// Outcome reports what one Attack call did. The mutated robots remain the
// source of truth; Outcome only mirrors the deltas.
type Outcome struct {
	Status OutcomeStatus `json:"status"`
	Damage int           `json:"damage"`
	// WeaponIndex points into the attacker's Weapons slice, -1 when the
	// attacker used its intrinsic damage or did not act.
	WeaponIndex       int    `json:"weapon_index"`
	WeaponName        string `json:"weapon_name,omitempty"`
	DefenderRemaining int    `json:"defender_remaining"`
	DefenderDefeated  bool   `json:"defender_defeated"`
	FrozeDefender     bool   `json:"froze_defender"`
	Recharged         int    `json:"recharged"`
	CooldownRemaining int    `json:"cooldown_remaining"`
	Summary           string `json:"summary"`
}

// Acted reports whether the attacker actually hit.
func (o Outcome) Acted() bool { return o.Status == OutcomeStruck }

// Engine resolves attacks between two robots. It holds no per-robot state
// and is safe to share as long as callers never run two attacks touching the
// same robot at once.
type Engine struct {
	selector WeaponSelector
	recharge int
}

// Option configures an Engine.
type Option func(*Engine)

// WithSelector replaces the default knapsack weapon selector.
func WithSelector(s WeaponSelector) Option {
	return func(e *Engine) {
		if s != nil {
			e.selector = s
		}
	}
}

// WithRechargeAmount sets the health regained after every successful attack.
// Negative values are treated as zero.
func WithRechargeAmount(n int) Option {
	return func(e *Engine) {
		if n < 0 {
			n = 0
		}
		e.recharge = n
	}
}

// New returns an Engine using KnapsackSelector and DefaultRechargeAmount
// unless overridden.
func New(opts ...Option) *Engine {
	e := &Engine{selector: KnapsackSelector{}, recharge: DefaultRechargeAmount}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// RechargeAmount returns the recharge applied by this engine.
func (e *Engine) RechargeAmount() int { return e.recharge }

// Attack lets attacker try to hit defender once, mutating both in place.
func (e *Engine) Attack(attacker, defender *game.Robot) Outcome {
	ac := newAttackContext(attacker, defender)
	out := Outcome{WeaponIndex: -1, DefenderRemaining: defender.Health.Remaining()}

	if !attacker.Alive() {
		out.Status = OutcomeAttackerDefeated
		ac.add(robotDisplayName(attacker) + " is destroyed and cannot act")
		return e.finish(ac, out)
	}

	if Frozen(attacker) || Cooling(attacker) {
		wasCooling := Cooling(attacker)
		if wasCooling {
			tickCooldown(attacker)
		}
		if Frozen(attacker) {
			thaw(attacker)
			out.Status = OutcomeFrozen
			ac.add(robotDisplayName(attacker) + " is frozen and skips its turn (thaws)")
		} else {
			out.Status = OutcomeCooling
		}
		if wasCooling {
			ac.add(robotDisplayName(attacker) + " is cooling down (" + strconv.Itoa(attacker.CooldownCounter) + " tick(s) left)")
		}
		return e.finish(ac, out)
	}

	sel := e.selector.Select(attacker.Damage, attacker.Weapons, defender.Health.Remaining())
	dmg := sel.Damage
	if dmg < 0 {
		dmg = 0
	}
	defender.Health.ApplyDamage(dmg)
	out.Status = OutcomeStruck
	out.Damage = dmg

	with := "bare-handed"
	if sel.Weapon != nil {
		out.WeaponIndex = weaponIndex(attacker.Weapons, sel.Weapon)
		out.WeaponName = sel.Weapon.Name
		with = "with " + sel.Weapon.Name
		if sel.Weapon.CausesFreeze {
			freeze(defender)
			out.FrozeDefender = true
		}
	}
	ac.add(robotDisplayName(attacker) + " strikes " + robotDisplayName(defender) + " " + with + " for " + strconv.Itoa(dmg) + " damage (" + strconv.Itoa(defender.Health.Remaining()) + " left)")
	if out.FrozeDefender {
		ac.add(robotDisplayName(defender) + " is frozen")
	}
	if !defender.Alive() {
		out.DefenderDefeated = true
		ac.add(robotDisplayName(defender) + " is destroyed!")
	}

	before := attacker.Health.Remaining()
	attacker.Health.Recharge(e.recharge)
	out.Recharged = attacker.Health.Remaining() - before
	if out.Recharged > 0 {
		ac.add(robotDisplayName(attacker) + " recharges " + strconv.Itoa(out.Recharged) + " health")
	}

	startCooldown(attacker)
	return e.finish(ac, out)
}

func (e *Engine) finish(ac *attackContext, out Outcome) Outcome {
	out.DefenderRemaining = ac.defender.Health.Remaining()
	out.CooldownRemaining = ac.attacker.CooldownCounter
	out.Summary = ac.joinSummary()
	return out
}

func weaponIndex(weapons []game.RobotWeapon, w *game.RobotWeapon) int {
	for i := range weapons {
		if &weapons[i] == w {
			return i
		}
	}
	return -1
}
