package storage

import (
	"github.com/ericogr/robot-arena/internal/config"
	"github.com/ericogr/robot-arena/internal/constants"
	"github.com/ericogr/robot-arena/internal/game"
	"github.com/ericogr/robot-arena/internal/keys"
	"github.com/ericogr/robot-arena/internal/logging"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// OpenAndMigrate opens the SQLite database, migrates the schema and seeds
// weapons and robots from configuration when the tables are empty.
func OpenAndMigrate(dataSourceName string, weapons []game.Weapon, robots []config.RobotSeed) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent), TranslateError: true})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(&game.Weapon{}, &game.Robot{}, &game.RobotWeapon{}, &game.Contest{}, &game.ContestTurn{})
	if err != nil {
		return nil, err
	}

	if err := seedWeapons(db, weapons); err != nil {
		return nil, err
	}
	if err := seedRobots(db, robots); err != nil {
		return nil, err
	}
	return db, nil
}

// seedWeapons inserts configured weapon templates, skipping names that are
// already stored. Config is the source of truth for template stats, so
// existing rows get their stats refreshed.
func seedWeapons(db *gorm.DB, weapons []game.Weapon) error {
	if len(weapons) == 0 {
		return nil
	}
	rows := make([]game.Weapon, len(weapons))
	copy(rows, weapons)
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"damage", "durability", "causes_freeze"}),
	}).Create(&rows).Error
}

func seedRobots(db *gorm.DB, seeds []config.RobotSeed) error {
	var count int64
	if err := db.Model(&game.Robot{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 || len(seeds) == 0 {
		return nil
	}

	var weapons []game.Weapon
	if err := db.Find(&weapons).Error; err != nil {
		return err
	}
	byName := make(map[string]game.Weapon, len(weapons))
	for _, w := range weapons {
		byName[keys.NameKey(w.Name)] = w
	}

	robots := make([]game.Robot, 0, len(seeds))
	for _, s := range seeds {
		r := game.Robot{Name: s.Name, Damage: s.Damage, Health: game.NewHealth(s.Health)}
		r.SetAttackSpeed(s.AttackSpeed)
		for _, wn := range s.Weapons {
			w, ok := byName[keys.NameKey(wn)]
			if !ok {
				logging.Warn("seed robot references unknown weapon", logging.Fields{constants.LogFieldName: s.Name, constants.LogFieldWeapon: wn})
				continue
			}
			r.Weapons = append(r.Weapons, game.NewRobotWeapon(w, len(r.Weapons)))
		}
		robots = append(robots, r)
	}
	if err := db.Create(&robots).Error; err != nil {
		return err
	}
	logging.Info("robots seeded", logging.Fields{constants.LogFieldCount: len(robots)})
	return nil
}
