package service

import (
	"strings"
	"testing"

	"github.com/ericogr/robot-arena/internal/engine"
	"github.com/ericogr/robot-arena/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCreateRobot_BuildsOrderedInstances(t *testing.T) {
	repo := newMockRepo()
	gun := repo.addWeapon(game.Weapon{Name: "Gun", Damage: 5, Durability: 3})
	ray := repo.addWeapon(game.Weapon{Name: "Ice Ray", Damage: 9, Durability: 2, CausesFreeze: true})

	r, err := CreateRobot(repo, CreateRobotRequest{Name: "  Twin Gun ", Damage: 2, Health: 30, AttackSpeed: -1, WeaponIDs: []uint{gun.ID, ray.ID, gun.ID}})
	require.NoError(t, err)

	assert.Equal(t, "Twin Gun", r.Name)
	assert.Equal(t, 0, r.AttackSpeed)
	assert.Equal(t, game.NewHealth(30), r.Health)
	require.Len(t, r.Weapons, 3)
	for i, want := range []string{"Gun", "Ice Ray", "Gun"} {
		assert.Equal(t, want, r.Weapons[i].Name)
		assert.Equal(t, i, r.Weapons[i].Position)
	}
	assert.True(t, r.Weapons[1].CausesFreeze)

	// duplicate templates are independent instances
	r.Weapons[0].PlayDead()
	assert.False(t, r.Weapons[2].Disabled())
}

func TestCreateRobot_Validation(t *testing.T) {
	repo := newMockRepo()
	gun := repo.addWeapon(game.Weapon{Name: "Gun", Damage: 5, Durability: 3})

	cases := []struct {
		name string
		req  CreateRobotRequest
		want error
	}{
		{"blank name", CreateRobotRequest{Name: "  ", Health: 10}, ErrInvalidRobot},
		{"negative damage", CreateRobotRequest{Name: "A", Damage: -1, Health: 10}, ErrInvalidRobot},
		{"no health", CreateRobotRequest{Name: "A", Health: 0}, ErrInvalidRobot},
		{"long name", CreateRobotRequest{Name: strings.Repeat("x", 65), Health: 10}, ErrRobotNameTooLong},
		{"unknown weapon", CreateRobotRequest{Name: "A", Health: 10, WeaponIDs: []uint{gun.ID, 9999}}, ErrUnknownWeapon},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := CreateRobot(repo, tc.req)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestCreateRobot_NameTaken(t *testing.T) {
	repo := newMockRepo()
	repo.createErr = gorm.ErrDuplicatedKey
	_, err := CreateRobot(repo, CreateRobotRequest{Name: "Dup", Health: 10})
	assert.ErrorIs(t, err, ErrRobotNameTaken)
}

func TestAttack_PersistsBothRobots(t *testing.T) {
	repo := newMockRepo()
	attacker := repo.addRobot(&game.Robot{Name: "Hitter", Damage: 4, Health: game.Health{Current: 5, Maximum: 10}, AttackSpeed: 2})
	defender := repo.addRobot(&game.Robot{Name: "Target", Damage: 1, Health: game.NewHealth(10)})

	res, err := Attack(repo, engine.New(), attacker.ID, defender.ID)
	require.NoError(t, err)
	assert.Equal(t, engine.OutcomeStruck, res.Outcome.Status)

	storedDefender := repo.stored(defender.ID)
	storedAttacker := repo.stored(attacker.ID)
	assert.Equal(t, 6, storedDefender.RemainingHealth())
	assert.Equal(t, 5+engine.DefaultRechargeAmount, storedAttacker.RemainingHealth())
	assert.Equal(t, 2, storedAttacker.CooldownCounter)

	// the next call only ticks the cooldown
	res, err = Attack(repo, engine.New(), attacker.ID, defender.ID)
	require.NoError(t, err)
	assert.Equal(t, engine.OutcomeCooling, res.Outcome.Status)
	assert.Equal(t, 6, repo.stored(defender.ID).RemainingHealth())
	assert.Equal(t, 1, repo.stored(attacker.ID).CooldownCounter)
}

func TestAttack_Errors(t *testing.T) {
	repo := newMockRepo()
	r := repo.addRobot(&game.Robot{Name: "Solo", Health: game.NewHealth(10)})

	_, err := Attack(repo, engine.New(), r.ID, r.ID)
	assert.ErrorIs(t, err, ErrSameRobot)

	_, err = Attack(repo, engine.New(), r.ID, 424242)
	assert.ErrorIs(t, err, ErrRobotNotFound)
}

func TestRepairRobot(t *testing.T) {
	repo := newMockRepo()
	r := &game.Robot{Name: "Broken", Health: game.Health{Current: 1, Maximum: 10}, CooldownCounter: 3, IsFrozen: true}
	r.Weapons = []game.RobotWeapon{game.NewRobotWeapon(game.Weapon{Name: "Gun", Damage: 5, Durability: 2}, 0)}
	r.Weapons[0].PlayDead()
	repo.addRobot(r)

	got, err := RepairRobot(repo, r.ID)
	require.NoError(t, err)
	assert.True(t, got.Health.Full())

	stored := repo.stored(r.ID)
	assert.True(t, stored.Health.Full())
	assert.Zero(t, stored.CooldownCounter)
	assert.False(t, stored.IsFrozen)
	assert.False(t, stored.Weapons[0].Disabled())

	_, err = RepairRobot(repo, 7777)
	assert.ErrorIs(t, err, ErrRobotNotFound)
}
