package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/ericogr/robot-arena/internal/constants"
	"github.com/ericogr/robot-arena/internal/dedupe"
	"github.com/ericogr/robot-arena/internal/engine"
	"github.com/ericogr/robot-arena/internal/game"
	"github.com/ericogr/robot-arena/internal/keys"
	"github.com/ericogr/robot-arena/internal/logging"

	"gorm.io/gorm"
)

// DefaultMaxTurns bounds a contest when the caller passes no limit.
const DefaultMaxTurns = 200

var (
	ErrContestNotFound        = errors.New("contest not found")
	ErrContestAlreadyFinished = errors.New("contest already finished")
)

// ContestRepo is the repository surface needed to create and resolve
// contests.
type ContestRepo interface {
	GetRobotByID(id uint) (*game.Robot, error)
	CreateContest(c *game.Contest) error
	GetContestByID(id uint) (*game.Contest, error)
	UpdateContest(c *game.Contest) error
	FinishContest(c *game.Contest, winnerID *uint) error
}

// CreateContest registers a pending contest between two stored robots.
func CreateContest(repo ContestRepo, challengerID, defenderID uint) (*game.Contest, error) {
	if challengerID == defenderID {
		return nil, ErrSameRobot
	}
	challenger, err := loadRobot(repo, challengerID)
	if err != nil {
		return nil, err
	}
	defender, err := loadRobot(repo, defenderID)
	if err != nil {
		return nil, err
	}

	c := &game.Contest{
		ChallengerID:   challenger.ID,
		ChallengerName: challenger.Name,
		DefenderID:     defender.ID,
		DefenderName:   defender.Name,
		Status:         game.StatusPending,
		Message:        "Contest created. Waiting to be resolved.",
	}
	if err := repo.CreateContest(c); err != nil {
		return nil, err
	}
	logging.Info("contest created", logging.Fields{constants.LogFieldContestID: c.UUID, constants.LogFieldMatchup: keys.MatchupKey(challengerID, defenderID)})
	return c, nil
}

// ResolveContest fights a pending contest to the end. Concurrent calls for
// the same contest share a single resolution. When the contest is already
// finished the stored contest is returned with ErrContestAlreadyFinished.
func ResolveContest(repo ContestRepo, eng *engine.Engine, contestID uint, maxTurns int) (*game.Contest, error) {
	v, err, _ := dedupe.ContestGroup.Do(keys.ContestKey(contestID), func() (interface{}, error) {
		return resolveContest(repo, eng, contestID, maxTurns)
	})
	c, _ := v.(*game.Contest)
	return c, err
}

func resolveContest(repo ContestRepo, eng *engine.Engine, contestID uint, maxTurns int) (*game.Contest, error) {
	if maxTurns <= 0 {
		maxTurns = DefaultMaxTurns
	}

	battleMu.Lock()
	defer battleMu.Unlock()

	c, err := repo.GetContestByID(contestID)
	if err != nil || c == nil {
		if err == nil || errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContestNotFound
		}
		return nil, err
	}
	if c.Status == game.StatusFinished {
		return c, ErrContestAlreadyFinished
	}

	challenger, cerr := loadRobot(repo, c.ChallengerID)
	defender, derr := loadRobot(repo, c.DefenderID)
	if cerr != nil || derr != nil {
		err := errors.Join(cerr, derr)
		if !errors.Is(err, ErrRobotNotFound) {
			return nil, err
		}
		now := time.Now()
		c.Status = game.StatusFinished
		c.Message = "Contest cancelled: a robot no longer exists."
		c.ResolvedAt = &now
		if uerr := repo.UpdateContest(c); uerr != nil {
			return nil, uerr
		}
		return c, ErrRobotNotFound
	}

	c.Status = game.StatusInProgress
	if err := repo.UpdateContest(c); err != nil {
		return nil, err
	}

	winner, turns, summary := simulate(eng, challenger, defender, maxTurns)

	now := time.Now()
	c.ChallengerName = challenger.Name
	c.DefenderName = defender.Name
	c.Status = game.StatusFinished
	c.Turns = turns
	c.TurnCount = len(turns)
	c.Summary = summary
	c.ResolvedAt = &now
	var winnerID *uint
	if winner != nil {
		id := winner.ID
		winnerID = &id
		c.WinnerID = winnerID
		c.Winner = winner.Name
		c.Message = fmt.Sprintf("%s wins after %d attack(s).", winner.Name, len(turns))
	} else {
		c.Message = fmt.Sprintf("Draw: nobody was destroyed after %d attack(s).", len(turns))
	}

	if err := repo.FinishContest(c, winnerID); err != nil {
		return nil, err
	}
	logging.Info("contest finished", logging.Fields{
		constants.LogFieldContestID:  c.UUID,
		constants.LogFieldContestKey: keys.ContestKey(c.ID),
		constants.LogFieldWinner:     c.Winner,
		constants.LogFieldTurns:      c.TurnCount,
	})
	return c, nil
}

// simulate runs a contest on battle copies of both robots: the challenger
// and the defender take turns attacking, challenger first, until one is
// destroyed or maxTurns attempts were made. Stored robots are untouched.
func simulate(eng *engine.Engine, challenger, defender *game.Robot, maxTurns int) (*game.Robot, []game.ContestTurn, string) {
	a, d := challenger.Clone(), defender.Clone()
	a.PrepareForBattle()
	d.PrepareForBattle()

	var winner *game.Robot
	var summary string
	turns := make([]game.ContestTurn, 0, 16)
	for n := 1; n <= maxTurns; n++ {
		out := eng.Attack(a, d)
		summary = out.Summary
		turns = append(turns, game.ContestTurn{
			Number:            n,
			AttackerID:        a.ID,
			DefenderID:        d.ID,
			Result:            string(out.Status),
			Damage:            out.Damage,
			WeaponName:        out.WeaponName,
			DefenderRemaining: out.DefenderRemaining,
			FrozeDefender:     out.FrozeDefender,
			Recharged:         out.Recharged,
		})
		if !d.Alive() {
			winner = a
			break
		}
		a, d = d, a
	}
	if winner == nil {
		return nil, turns, summary
	}
	if winner.ID == challenger.ID {
		return challenger, turns, summary
	}
	return defender, turns, summary
}
