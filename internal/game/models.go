package game

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Weapon is a weapon template. Robots never fight with templates directly;
// each robot gets its own RobotWeapon instance built from one.
type Weapon struct {
	gorm.Model
	Name         string `json:"name" gorm:"uniqueIndex;size:64"`
	Damage       int    `json:"damage"`
	Durability   int    `json:"durability"`
	CausesFreeze bool   `json:"causes_freeze"`
}

// TableName overrides the default GORM table name so templates live in
// `weapon_templates`.
func (Weapon) TableName() string { return "weapon_templates" }

// RobotWeapon is a weapon instance owned by exactly one robot. Its damage
// and freeze flag are copied from the template when the instance is built
// and stay fixed afterwards; its Health is independent from the wielder.
type RobotWeapon struct {
	gorm.Model
	RobotID      uint   `json:"-"`
	WeaponID     uint   `json:"weapon_id"`
	Position     int    `json:"position"`
	Name         string `json:"name"`
	Damage       int    `json:"damage"`
	CausesFreeze bool   `json:"causes_freeze"`
	Health       Health `json:"health" gorm:"embedded;embeddedPrefix:health_"`
}

// NewRobotWeapon builds a fresh, undamaged instance of w at the given
// position inside a robot's weapon list.
func NewRobotWeapon(w Weapon, position int) RobotWeapon {
	dmg := w.Damage
	if dmg < 0 {
		dmg = 0
	}
	return RobotWeapon{
		WeaponID:     w.ID,
		Position:     position,
		Name:         w.Name,
		Damage:       dmg,
		CausesFreeze: w.CausesFreeze,
		Health:       NewHealth(w.Durability),
	}
}

// Disabled reports whether the instance has been destroyed.
func (rw *RobotWeapon) Disabled() bool { return !rw.Health.Alive() }

// PlayDead destroys the instance immediately.
func (rw *RobotWeapon) PlayDead() { rw.Health.Disable() }

type Robot struct {
	gorm.Model
	Name string `json:"name" gorm:"uniqueIndex;size:64"`
	// Damage is the intrinsic damage dealt when no weapon qualifies.
	Damage  int           `json:"damage"`
	Health  Health        `json:"health" gorm:"embedded;embeddedPrefix:health_"`
	Weapons []RobotWeapon `json:"weapons"`
	// AttackSpeed is the number of ticks a robot waits after acting.
	AttackSpeed     int  `json:"attack_speed"`
	CooldownCounter int  `json:"cooldown_counter"`
	IsFrozen        bool `json:"is_frozen"`

	ContestsPlayed int `json:"contests_played"`
	Wins           int `json:"wins"`
	Losses         int `json:"losses"`
}

// SetAttackSpeed stores speed, coercing negative values to zero.
func (r *Robot) SetAttackSpeed(speed int) {
	if speed < 0 {
		speed = 0
	}
	r.AttackSpeed = speed
}

// RemainingHealth is a shorthand for r.Health.Remaining().
func (r *Robot) RemainingHealth() int { return r.Health.Remaining() }

// Alive reports whether the robot still has hit points.
func (r *Robot) Alive() bool { return r.Health.Alive() }

// PlayDead destroys the robot immediately.
func (r *Robot) PlayDead() { r.Health.Disable() }

// PrepareForBattle puts the robot in its pre-battle state: full health,
// no cooldown and not frozen. Weapon instances keep their own health, so a
// weapon destroyed earlier stays destroyed.
func (r *Robot) PrepareForBattle() {
	r.Health.Restore()
	r.CooldownCounter = 0
	r.IsFrozen = false
	r.SetAttackSpeed(r.AttackSpeed)
}

// Repair restores the robot and all of its weapon instances.
func (r *Robot) Repair() {
	r.PrepareForBattle()
	for i := range r.Weapons {
		r.Weapons[i].Health.Restore()
	}
}

// Clone returns a deep copy whose weapon slice is not shared with r.
func (r *Robot) Clone() *Robot {
	cp := *r
	cp.Weapons = make([]RobotWeapon, len(r.Weapons))
	copy(cp.Weapons, r.Weapons)
	return &cp
}

// BeforeSave is a GORM hook keeping persisted readiness and health values
// inside their valid ranges no matter how the record was edited.
func (r *Robot) BeforeSave(tx *gorm.DB) error {
	r.SetAttackSpeed(r.AttackSpeed)
	if r.CooldownCounter < 0 {
		r.CooldownCounter = 0
	}
	r.Health.clamp()
	return nil
}

// Contest statuses.
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusFinished   = "finished"
)

// Contest is a one-on-one fight between two stored robots. It is created
// pending and resolved once; Turns keeps the per-attack record.
type Contest struct {
	gorm.Model
	UUID           string        `json:"uuid" gorm:"uniqueIndex;size:36"`
	ChallengerID   uint          `json:"challenger_id"`
	ChallengerName string        `json:"challenger_name"`
	DefenderID     uint          `json:"defender_id"`
	DefenderName   string        `json:"defender_name"`
	Status         string        `json:"status"`
	WinnerID       *uint         `json:"winner_id"`
	Winner         string        `json:"winner"`
	TurnCount      int           `json:"turn_count"`
	Message        string        `json:"message"`
	Summary        string        `json:"summary"`
	ResolvedAt     *time.Time    `json:"resolved_at"`
	Turns          []ContestTurn `json:"turns"`
}

// BeforeSave assigns the public identifier on first save.
func (c *Contest) BeforeSave(tx *gorm.DB) error {
	if c.UUID == "" {
		c.UUID = uuid.NewString()
	}
	return nil
}

// ContestTurn records the outcome of one attack attempt inside a contest.
type ContestTurn struct {
	gorm.Model
	ContestID         uint   `json:"-"`
	Number            int    `json:"number"`
	AttackerID        uint   `json:"attacker_id"`
	DefenderID        uint   `json:"defender_id"`
	Result            string `json:"result"`
	Damage            int    `json:"damage"`
	WeaponName        string `json:"weapon_name"`
	DefenderRemaining int    `json:"defender_remaining"`
	FrozeDefender     bool   `json:"froze_defender"`
	Recharged         int    `json:"recharged"`
}
