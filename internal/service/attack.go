package service

import (
	"sync"

	"github.com/ericogr/robot-arena/internal/constants"
	"github.com/ericogr/robot-arena/internal/engine"
	"github.com/ericogr/robot-arena/internal/game"
	"github.com/ericogr/robot-arena/internal/keys"
	"github.com/ericogr/robot-arena/internal/logging"
)

// battleMu serializes load-mutate-save cycles on persisted robots so two
// requests never run an attack against the same stored state.
var battleMu sync.Mutex

// AttackResult is the outcome of a direct attack plus both robots as saved.
type AttackResult struct {
	Outcome  engine.Outcome `json:"outcome"`
	Attacker *game.Robot    `json:"attacker"`
	Defender *game.Robot    `json:"defender"`
}

// Attack loads two stored robots, lets the attacker try one attack and
// persists the resulting battle state of both.
func Attack(repo RobotRepo, eng *engine.Engine, attackerID, defenderID uint) (*AttackResult, error) {
	if attackerID == defenderID {
		return nil, ErrSameRobot
	}

	battleMu.Lock()
	defer battleMu.Unlock()

	attacker, err := loadRobot(repo, attackerID)
	if err != nil {
		return nil, err
	}
	defender, err := loadRobot(repo, defenderID)
	if err != nil {
		return nil, err
	}

	out := eng.Attack(attacker, defender)
	if err := repo.UpdateRobots(attacker, defender); err != nil {
		return nil, err
	}

	logging.Info("attack resolved", logging.Fields{
		constants.LogFieldMatchup:    keys.MatchupKey(attackerID, defenderID),
		constants.LogFieldAttackerID: attackerID,
		constants.LogFieldDefenderID: defenderID,
		constants.LogFieldOutcome:    string(out.Status),
		constants.LogFieldDamage:     out.Damage,
	})
	return &AttackResult{Outcome: out, Attacker: attacker, Defender: defender}, nil
}
