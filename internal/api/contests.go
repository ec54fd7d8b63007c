package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ericogr/robot-arena/internal/constants"
	"github.com/ericogr/robot-arena/internal/service"

	"github.com/gin-gonic/gin"
)

type CreateContestPayload struct {
	ChallengerID uint `json:"challenger_id"`
	DefenderID   uint `json:"defender_id"`
}

// CreateContest registers a pending contest and returns its public ID.
func (h *ArenaHandler) CreateContest(c *gin.Context) {
	var req CreateContestPayload
	if err := c.ShouldBindJSON(&req); err != nil || req.ChallengerID == 0 || req.DefenderID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	contest, err := service.CreateContest(h.repo, req.ChallengerID, req.DefenderID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSameRobot):
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrSameRobot})
		case errors.Is(err, service.ErrRobotNotFound):
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrRobotNotFound})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedCreateContest})
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"contest_id":             contest.UUID,
		constants.JSONKeyStatus:  contest.Status,
		constants.JSONKeyMessage: contest.Message,
	})
}

// GetContest returns a contest with its recorded turns.
func (h *ArenaHandler) GetContest(c *gin.Context) {
	id, ok := normalizeContestID(c.Param("contestID"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidContestID})
		return
	}
	contest, err := h.repo.GetContestByUUID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrContestNotFound})
		return
	}
	h.writeJSON(c, http.StatusOK, contest, constants.ErrFailedEncodeContest)
}

// ResolveContest fights a pending contest right away instead of waiting for
// the background scanner.
func (h *ArenaHandler) ResolveContest(c *gin.Context) {
	id, ok := normalizeContestID(c.Param("contestID"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidContestID})
		return
	}
	short, err := h.repo.GetContestByUUID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrContestNotFound})
		return
	}
	contest, err := service.ResolveContest(h.repo, h.engine, short.ID, h.maxTurns)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrContestAlreadyFinished):
			c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrContestAlreadyFinished})
		case errors.Is(err, service.ErrContestNotFound):
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrContestNotFound})
		case errors.Is(err, service.ErrRobotNotFound):
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrRobotNotFound})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedResolveContest})
		}
		return
	}
	h.writeJSON(c, http.StatusOK, contest, constants.ErrFailedEncodeContest)
}

// ListLeaderboard returns the top robots by wins (desc), limited to top 10 by default.
func (h *ArenaHandler) ListLeaderboard(c *gin.Context) {
	limit := 10
	if s := c.Query("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}
	robots, err := h.repo.GetTopRobots(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchLeaderboard})
		return
	}
	out, err := MarshalIntoSnakeKeys(robots)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchLeaderboard})
		return
	}
	c.JSON(http.StatusOK, out)
}
