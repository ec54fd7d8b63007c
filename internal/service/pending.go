package service

import (
	"errors"

	"github.com/ericogr/robot-arena/internal/constants"
	"github.com/ericogr/robot-arena/internal/engine"
	"github.com/ericogr/robot-arena/internal/logging"
)

// PendingContestRepo adds the pending-contest lookup used by the scanner.
type PendingContestRepo interface {
	ContestRepo
	FindPendingContestIDs(limit int) ([]uint, error)
}

// HandlePendingContests resolves up to limit pending contests and returns
// how many finished. A failing contest is logged and skipped so one bad
// record does not block the rest.
func HandlePendingContests(repo PendingContestRepo, eng *engine.Engine, maxTurns, limit int) (int, error) {
	ids, err := repo.FindPendingContestIDs(limit)
	if err != nil {
		return 0, err
	}
	resolved := 0
	for _, id := range ids {
		c, err := ResolveContest(repo, eng, id, maxTurns)
		switch {
		case err == nil:
			resolved++
		case errors.Is(err, ErrContestAlreadyFinished):
			// resolved concurrently by an API call
		default:
			fields := logging.Fields{constants.LogFieldContestID: id}
			if c != nil {
				fields[constants.LogFieldStatus] = c.Status
			}
			logging.Error("failed to resolve pending contest", err, fields)
		}
	}
	return resolved, nil
}
