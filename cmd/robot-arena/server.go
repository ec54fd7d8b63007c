package main

import (
	"time"

	"github.com/ericogr/robot-arena/internal/constants"
	"github.com/ericogr/robot-arena/internal/engine"
	"github.com/ericogr/robot-arena/internal/logging"
	"github.com/ericogr/robot-arena/internal/service"
)

const pendingContestBatch = 20

// startContestScanner periodically resolves pending contests.
func startContestScanner(repo service.PendingContestRepo, eng *engine.Engine, maxTurns int, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for range ticker.C {
			n, err := service.HandlePendingContests(repo, eng, maxTurns, pendingContestBatch)
			if err != nil {
				logging.Error("contest scanner failed to list pending contests", err, nil)
				continue
			}
			if n > 0 {
				logging.Debug("contest scanner resolved contests", logging.Fields{constants.LogFieldCount: n})
			}
		}
	}()
}
