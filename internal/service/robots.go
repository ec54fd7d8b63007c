package service

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/ericogr/robot-arena/internal/constants"
	"github.com/ericogr/robot-arena/internal/game"
	"github.com/ericogr/robot-arena/internal/logging"

	"gorm.io/gorm"
)

// RobotRepo is the minimal repository interface required by the robot
// services. Using a small interface simplifies testing.
type RobotRepo interface {
	GetRobotByID(id uint) (*game.Robot, error)
	GetWeaponsByIDs(ids []uint) ([]game.Weapon, error)
	CreateRobot(r *game.Robot) error
	UpdateRobots(robots ...*game.Robot) error
}

const maxRobotNameLength = 64

var (
	ErrRobotNotFound    = errors.New("robot not found")
	ErrInvalidRobot     = errors.New("robot needs a name, damage >= 0 and health > 0")
	ErrRobotNameTooLong = errors.New("robot name exceeds 64 characters")
	ErrRobotNameTaken   = errors.New("robot name already taken")
	ErrUnknownWeapon    = errors.New("unknown weapon")
	ErrSameRobot        = errors.New("a robot cannot fight itself")
)

// CreateRobotRequest describes a new robot. WeaponIDs reference weapon
// templates; the same template may appear more than once and each entry
// becomes its own instance, in the given order.
type CreateRobotRequest struct {
	Name        string
	Damage      int
	Health      int
	AttackSpeed int
	WeaponIDs   []uint
}

// CreateRobot validates req, builds fresh weapon instances and stores the
// robot.
func CreateRobot(repo RobotRepo, req CreateRobotRequest) (*game.Robot, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" || req.Damage < 0 || req.Health <= 0 {
		return nil, ErrInvalidRobot
	}
	if utf8.RuneCountInString(name) > maxRobotNameLength {
		return nil, ErrRobotNameTooLong
	}

	unique := make([]uint, 0, len(req.WeaponIDs))
	seen := map[uint]bool{}
	for _, id := range req.WeaponIDs {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}
	templates, err := repo.GetWeaponsByIDs(unique)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]game.Weapon, len(templates))
	for _, w := range templates {
		byID[w.ID] = w
	}

	r := &game.Robot{Name: name, Damage: req.Damage, Health: game.NewHealth(req.Health)}
	r.SetAttackSpeed(req.AttackSpeed)
	for _, id := range req.WeaponIDs {
		w, ok := byID[id]
		if !ok {
			return nil, ErrUnknownWeapon
		}
		r.Weapons = append(r.Weapons, game.NewRobotWeapon(w, len(r.Weapons)))
	}

	if err := repo.CreateRobot(r); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrRobotNameTaken
		}
		return nil, err
	}
	logging.Info("robot created", logging.Fields{constants.LogFieldRobotID: r.ID, constants.LogFieldName: r.Name})
	return r, nil
}

// RepairRobot restores a robot and every weapon it carries to full health
// and clears its cooldown and freeze.
func RepairRobot(repo RobotRepo, id uint) (*game.Robot, error) {
	battleMu.Lock()
	defer battleMu.Unlock()

	r, err := loadRobot(repo, id)
	if err != nil {
		return nil, err
	}
	r.Repair()
	if err := repo.UpdateRobots(r); err != nil {
		return nil, err
	}
	logging.Info("robot repaired", logging.Fields{constants.LogFieldRobotID: r.ID})
	return r, nil
}

func loadRobot(repo interface {
	GetRobotByID(uint) (*game.Robot, error)
}, id uint) (*game.Robot, error) {
	r, err := repo.GetRobotByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRobotNotFound
		}
		return nil, err
	}
	if r == nil {
		return nil, ErrRobotNotFound
	}
	return r, nil
}
