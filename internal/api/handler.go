package api

import (
	"github.com/ericogr/robot-arena/internal/constants"
	"github.com/ericogr/robot-arena/internal/engine"
	"github.com/ericogr/robot-arena/internal/storage"

	"github.com/gin-gonic/gin"
)

// ArenaHandler groups all robot and contest HTTP handlers.
type ArenaHandler struct {
	repo     storage.Repository
	engine   *engine.Engine
	maxTurns int
}

// NewArenaHandler creates an ArenaHandler resolving attacks with eng and
// capping contests at maxTurns attack attempts.
func NewArenaHandler(repo storage.Repository, eng *engine.Engine, maxTurns int) *ArenaHandler {
	if eng == nil {
		eng = engine.New()
	}
	return &ArenaHandler{repo: repo, engine: eng, maxTurns: maxTurns}
}

// RegisterRoutes mounts every arena endpoint under the API prefix.
func RegisterRoutes(router gin.IRouter, h *ArenaHandler) {
	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		apiRoutes.GET(constants.RouteVersion, Version)
		apiRoutes.GET(constants.RouteWeapons, h.ListWeapons)
		apiRoutes.GET(constants.RouteRobots, h.ListRobots)
		apiRoutes.POST(constants.RouteRobots, h.CreateRobot)
		apiRoutes.GET(constants.RouteRobotByID, h.GetRobot)
		apiRoutes.POST(constants.RouteRobotAttack, h.AttackRobot)
		apiRoutes.POST(constants.RouteRobotRepair, h.RepairRobot)
		apiRoutes.POST(constants.RouteContests, h.CreateContest)
		apiRoutes.GET(constants.RouteContestByID, h.GetContest)
		apiRoutes.POST(constants.RouteContestResolve, h.ResolveContest)
		apiRoutes.GET(constants.RouteLeaderboard, h.ListLeaderboard)
	}
}
