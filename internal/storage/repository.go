package storage

import "github.com/ericogr/robot-arena/internal/game"

type Repository interface {
	GetWeapons() ([]game.Weapon, error)
	GetWeaponsByIDs(ids []uint) ([]game.Weapon, error)

	GetRobots() ([]game.Robot, error)
	// GetRobotByID loads a robot with its weapon instances in carrying order.
	GetRobotByID(id uint) (*game.Robot, error)
	CreateRobot(r *game.Robot) error
	// UpdateRobots saves the given robots (and their weapon instances) in
	// a single transaction.
	UpdateRobots(robots ...*game.Robot) error

	CreateContest(c *game.Contest) error
	GetContestByID(id uint) (*game.Contest, error)
	GetContestByUUID(uuid string) (*game.Contest, error)
	UpdateContest(c *game.Contest) error
	// FinishContest persists a resolved contest with its turns and updates
	// both robots' records. winnerID is nil for a draw.
	FinishContest(c *game.Contest, winnerID *uint) error
	// FindPendingContestIDs returns up to limit contests waiting to be
	// resolved, oldest first.
	FindPendingContestIDs(limit int) ([]uint, error)

	// Leaderboard
	GetTopRobots(limit int) ([]game.Robot, error)
}
