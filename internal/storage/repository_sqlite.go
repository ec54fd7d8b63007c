package storage

import (
	"fmt"
	"strings"

	"github.com/ericogr/robot-arena/internal/game"

	"gorm.io/gorm"
)

type sqliteRepository struct {
	db *gorm.DB
}

func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

func orderedWeapons(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC, id ASC")
}

func orderedTurns(db *gorm.DB) *gorm.DB {
	return db.Order("number ASC")
}

func (r *sqliteRepository) GetWeapons() ([]game.Weapon, error) {
	var weapons []game.Weapon
	if err := r.db.Order("name ASC").Find(&weapons).Error; err != nil {
		return nil, err
	}
	return weapons, nil
}

func (r *sqliteRepository) GetWeaponsByIDs(ids []uint) ([]game.Weapon, error) {
	var weapons []game.Weapon
	if len(ids) == 0 {
		return weapons, nil
	}
	err := r.db.Where("id IN ?", ids).Find(&weapons).Error
	return weapons, err
}

func (r *sqliteRepository) GetRobots() ([]game.Robot, error) {
	var robots []game.Robot
	if err := r.db.Preload("Weapons", orderedWeapons).Order("name ASC").Find(&robots).Error; err != nil {
		return nil, err
	}
	return robots, nil
}

func (r *sqliteRepository) GetRobotByID(id uint) (*game.Robot, error) {
	var robot game.Robot
	if err := r.db.Preload("Weapons", orderedWeapons).First(&robot, id).Error; err != nil {
		return nil, err
	}
	return &robot, nil
}

func (r *sqliteRepository) CreateRobot(robot *game.Robot) error {
	err := r.db.Create(robot).Error
	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return fmt.Errorf("%w: %v", gorm.ErrDuplicatedKey, err)
	}
	return err
}

func (r *sqliteRepository) UpdateRobots(robots ...*game.Robot) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, robot := range robots {
			if err := tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(robot).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *sqliteRepository) CreateContest(c *game.Contest) error {
	return r.db.Create(c).Error
}

func (r *sqliteRepository) GetContestByID(id uint) (*game.Contest, error) {
	var c game.Contest
	if err := r.db.Preload("Turns", orderedTurns).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *sqliteRepository) GetContestByUUID(uuid string) (*game.Contest, error) {
	var c game.Contest
	if err := r.db.Preload("Turns", orderedTurns).Where("uuid = ?", uuid).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *sqliteRepository) UpdateContest(c *game.Contest) error {
	return r.db.Session(&gorm.Session{FullSaveAssociations: true}).Save(c).Error
}

func (r *sqliteRepository) FinishContest(c *game.Contest, winnerID *uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(c).Error; err != nil {
			return err
		}
		for _, id := range []uint{c.ChallengerID, c.DefenderID} {
			updates := map[string]interface{}{"contests_played": gorm.Expr("contests_played + 1")}
			if winnerID != nil {
				if *winnerID == id {
					updates["wins"] = gorm.Expr("wins + 1")
				} else {
					updates["losses"] = gorm.Expr("losses + 1")
				}
			}
			if err := tx.Model(&game.Robot{}).Where("id = ?", id).UpdateColumns(updates).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *sqliteRepository) FindPendingContestIDs(limit int) ([]uint, error) {
	if limit <= 0 {
		limit = 20
	}
	var ids []uint
	err := r.db.Model(&game.Contest{}).
		Where("status = ?", game.StatusPending).
		Order("created_at ASC").
		Limit(limit).
		Pluck("id", &ids).Error
	return ids, err
}

// GetTopRobots returns top N robots ordered by Wins desc, then Losses asc.
func (r *sqliteRepository) GetTopRobots(limit int) ([]game.Robot, error) {
	if limit <= 0 {
		limit = 10
	}
	var robots []game.Robot
	if err := r.db.Model(&game.Robot{}).
		Order("wins DESC").
		Order("losses ASC").
		Order("name ASC").
		Limit(limit).
		Find(&robots).Error; err != nil {
		return nil, err
	}
	return robots, nil
}
