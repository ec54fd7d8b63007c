package engine_test

import (
	"testing"

	"github.com/ericogr/robot-arena/internal/engine"
	"github.com/ericogr/robot-arena/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func robot(name string, damage, hp int, weapons ...game.RobotWeapon) *game.Robot {
	for i := range weapons {
		weapons[i].Position = i
	}
	return &game.Robot{Name: name, Damage: damage, Health: game.NewHealth(hp), Weapons: weapons}
}

func unarmedRobot() *game.Robot { return robot("unarmed", 6, 40) }

func megaBazookaRobot() *game.Robot {
	return robot("mega bazooka", 6, 100, weapon("pistol", 8), weapon("rifle", 15), weapon("mega bazooka", 50))
}

func iceMan() *game.Robot {
	ray := game.NewRobotWeapon(game.Weapon{Name: "ice ray", Damage: 9, Durability: 5, CausesFreeze: true}, 0)
	return robot("ice man", 4, 60, ray)
}

type fakeSelector struct {
	sel   engine.Selection
	calls int
}

func (f *fakeSelector) Select(int, []game.RobotWeapon, int) engine.Selection {
	f.calls++
	return f.sel
}

func TestAttack_KillsIfPossible(t *testing.T) {
	r1, r2 := megaBazookaRobot(), unarmedRobot()
	out := engine.New().Attack(r1, r2)
	assert.Equal(t, engine.OutcomeStruck, out.Status)
	assert.Equal(t, 0, r2.RemainingHealth())
	assert.True(t, out.DefenderDefeated)
	assert.Equal(t, "mega bazooka", out.WeaponName)
	assert.Equal(t, 2, out.WeaponIndex)
}

func TestAttack_UsesLeastDeadlyWeaponThatKills(t *testing.T) {
	r1, r2 := megaBazookaRobot(), unarmedRobot()
	r2.Health.Current = 10
	out := engine.New().Attack(r1, r2)
	assert.Equal(t, 0, r2.RemainingHealth())
	assert.Equal(t, "rifle", out.WeaponName)
	assert.Equal(t, 15, out.Damage)
}

func TestAttack_IgnoresWeakerWeapon(t *testing.T) {
	r1 := robot("bad weapon", 6, 30, weapon("gun", 5))
	r2 := unarmedRobot()
	out := engine.New().Attack(r1, r2)
	assert.Equal(t, 6, out.Damage)
	assert.Equal(t, -1, out.WeaponIndex)
	assert.Equal(t, 34, r2.RemainingHealth())
}

func TestAttack_RechargesWhenDamaged(t *testing.T) {
	r1, r2 := robot("damaged t-x", 6, 50), robot("t-1000", 6, 50)
	r1.Health.Current = 20
	out := engine.New().Attack(r1, r2)
	assert.Greater(t, r1.RemainingHealth(), 20)
	assert.Equal(t, engine.DefaultRechargeAmount, out.Recharged)
}

func TestAttack_DoesNotRechargeWhenFull(t *testing.T) {
	r1, r2 := robot("t-x", 6, 50), robot("t-1000", 6, 50)
	out := engine.New(engine.WithRechargeAmount(7)).Attack(r1, r2)
	assert.Equal(t, 50, r1.RemainingHealth())
	assert.Zero(t, out.Recharged)
}

func TestAttack_RechargeCapsAtMaximum(t *testing.T) {
	r1, r2 := robot("t-x", 6, 50), robot("t-1000", 6, 50)
	r1.Health.Current = 49
	engine.New(engine.WithRechargeAmount(5)).Attack(r1, r2)
	assert.Equal(t, 50, r1.RemainingHealth())
}

func TestAttack_NegativeRechargeIsZero(t *testing.T) {
	e := engine.New(engine.WithRechargeAmount(-3))
	assert.Equal(t, 0, e.RechargeAmount())
}

func TestAttack_AttackSpeedCooldown(t *testing.T) {
	slow := robot("slow", 6, 50)
	slow.SetAttackSpeed(3)
	target := robot("target", 1, 500)
	e := engine.New()

	out := e.Attack(slow, target)
	require.True(t, out.Acted())
	assert.Equal(t, 3, slow.CooldownCounter)
	hp := target.RemainingHealth()

	for want := 2; want >= 0; want-- {
		out = e.Attack(slow, target)
		assert.Equal(t, engine.OutcomeCooling, out.Status)
		assert.Equal(t, want, slow.CooldownCounter)
		assert.Equal(t, hp, target.RemainingHealth(), "no damage while cooling")
		assert.Zero(t, out.Recharged)
	}

	out = e.Attack(slow, target)
	assert.True(t, out.Acted())
	assert.Less(t, target.RemainingHealth(), hp)
}

func TestAttack_ZeroAttackSpeedAlwaysReady(t *testing.T) {
	r1, r2 := robot("fast", 1, 10), robot("bag", 1, 100)
	e := engine.New()
	for i := 0; i < 5; i++ {
		assert.True(t, e.Attack(r1, r2).Acted())
	}
	assert.Equal(t, 95, r2.RemainingHealth())
}

func TestAttack_FreezesEnemy(t *testing.T) {
	r1, r2 := iceMan(), unarmedRobot()
	out := engine.New().Attack(r1, r2)
	assert.True(t, r2.IsFrozen)
	assert.True(t, out.FrozeDefender)
}

func TestAttack_FreezesEvenWhenLethal(t *testing.T) {
	r1, r2 := iceMan(), unarmedRobot()
	r2.Health.Current = 3
	engine.New().Attack(r1, r2)
	assert.False(t, r2.Alive())
	assert.True(t, r2.IsFrozen)
}

func TestAttack_OnlyFreezesIfWeaponFreezes(t *testing.T) {
	r1, r2 := megaBazookaRobot(), unarmedRobot()
	engine.New().Attack(r1, r2)
	assert.False(t, r2.IsFrozen)

	// bare-handed fallback never freezes even if a disabled freezing weapon exists
	r3 := iceMan()
	r3.Weapons[0].PlayDead()
	r4 := unarmedRobot()
	out := engine.New().Attack(r3, r4)
	assert.False(t, r4.IsFrozen)
	assert.Equal(t, 4, out.Damage)
}

func TestAttack_FrozenAttackerSkipsAndThaws(t *testing.T) {
	r1, r2 := robot("frozen", 6, 30), unarmedRobot()
	r1.IsFrozen = true
	e := engine.New()

	out := e.Attack(r1, r2)
	assert.Equal(t, engine.OutcomeFrozen, out.Status)
	assert.Equal(t, 40, r2.RemainingHealth())
	assert.False(t, r1.IsFrozen)

	assert.True(t, e.Attack(r1, r2).Acted())
}

func TestAttack_FrozenAndCoolingStillTicks(t *testing.T) {
	r1, r2 := robot("frozen", 6, 30), unarmedRobot()
	r1.IsFrozen = true
	r1.CooldownCounter = 2
	out := engine.New().Attack(r1, r2)
	assert.Equal(t, engine.OutcomeFrozen, out.Status)
	assert.Equal(t, 1, r1.CooldownCounter)
	assert.Equal(t, 1, out.CooldownRemaining)
}

func TestAttack_DeadAttackerDoesNothing(t *testing.T) {
	r1, r2 := robot("dead", 6, 30), unarmedRobot()
	r1.PlayDead()
	r1.CooldownCounter = 2
	r1.IsFrozen = true
	out := engine.New().Attack(r1, r2)
	assert.Equal(t, engine.OutcomeAttackerDefeated, out.Status)
	assert.Equal(t, 40, r2.RemainingHealth())
	assert.Equal(t, 2, r1.CooldownCounter)
	assert.True(t, r1.IsFrozen)
}

func TestAttack_UsesInjectedSelector(t *testing.T) {
	ray := game.NewRobotWeapon(game.Weapon{Name: "stub", Damage: 3, Durability: 1, CausesFreeze: true}, 0)
	fake := &fakeSelector{sel: engine.Selection{Damage: 3, Weapon: &ray}}
	r1, r2 := robot("a", 100, 30), unarmedRobot()

	out := engine.New(engine.WithSelector(fake)).Attack(r1, r2)
	assert.Equal(t, 1, fake.calls)
	assert.Equal(t, 37, r2.RemainingHealth())
	assert.True(t, r2.IsFrozen)
	assert.Equal(t, "stub", out.WeaponName)
	assert.Equal(t, -1, out.WeaponIndex)
}

func TestAttack_SelectorNotCalledWhenSuppressed(t *testing.T) {
	fake := &fakeSelector{sel: engine.Selection{Damage: 1}}
	r1, r2 := robot("a", 1, 30), unarmedRobot()
	r1.CooldownCounter = 1
	engine.New(engine.WithSelector(fake)).Attack(r1, r2)
	assert.Zero(t, fake.calls)
}

func TestAttack_SummaryMentionsWeapon(t *testing.T) {
	r1, r2 := megaBazookaRobot(), unarmedRobot()
	out := engine.New().Attack(r1, r2)
	assert.Contains(t, out.Summary, "with mega bazooka")
	assert.Contains(t, out.Summary, "destroyed")
}

func TestAttack_Property_CooldownGatesActions(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		speed := rapid.IntRange(0, 6).Draw(rt, "speed")
		calls := rapid.IntRange(1, 40).Draw(rt, "calls")
		r1, r2 := robot("a", 1, 10), robot("b", 1, 1000)
		r1.SetAttackSpeed(speed)
		e := engine.New()
		acted := 0
		for i := 0; i < calls; i++ {
			prev := r1.CooldownCounter
			out := e.Attack(r1, r2)
			assert.GreaterOrEqual(rt, r1.CooldownCounter, 0)
			if out.Acted() {
				acted++
				assert.Equal(rt, 0, prev)
				assert.Equal(rt, speed, r1.CooldownCounter)
			} else {
				assert.Equal(rt, prev-1, r1.CooldownCounter)
			}
		}
		// one action per (speed+1) calls, starting with the first
		assert.Equal(rt, (calls+speed)/(speed+1), acted)
		assert.Equal(rt, 1000-acted, r2.RemainingHealth())
	})
}

func TestAttack_Property_HealthNeverNegative(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		r1 := robot("a", rapid.IntRange(0, 40).Draw(rt, "base"), 20,
			weapon("w1", rapid.IntRange(0, 80).Draw(rt, "w1")),
			weapon("w2", rapid.IntRange(0, 80).Draw(rt, "w2")))
		r2 := robot("b", 1, rapid.IntRange(1, 100).Draw(rt, "hp"))
		e := engine.New()
		for i := 0; i < 5; i++ {
			out := e.Attack(r1, r2)
			assert.GreaterOrEqual(rt, out.Damage, 0)
			assert.GreaterOrEqual(rt, r2.RemainingHealth(), 0)
			assert.Equal(rt, r2.RemainingHealth() > 0, r2.Alive())
		}
	})
}
