package api

import (
	"errors"
	"net/http"

	"github.com/ericogr/robot-arena/internal/constants"
	"github.com/ericogr/robot-arena/internal/service"

	"github.com/gin-gonic/gin"
)

type CreateRobotPayload struct {
	Name        string `json:"name"`
	Damage      int    `json:"damage"`
	Health      int    `json:"health"`
	AttackSpeed int    `json:"attack_speed"`
	WeaponIDs   []uint `json:"weapon_ids"`
}

type AttackPayload struct {
	DefenderID uint `json:"defender_id"`
}

// ListWeapons returns all weapon templates.
func (h *ArenaHandler) ListWeapons(c *gin.Context) {
	weapons, err := h.repo.GetWeapons()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchWeapons})
		return
	}
	out, err := MarshalIntoSnakeKeys(weapons)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchWeapons})
		return
	}
	c.JSON(http.StatusOK, out)
}

// ListRobots returns every robot with its weapon instances.
func (h *ArenaHandler) ListRobots(c *gin.Context) {
	robots, err := h.repo.GetRobots()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchRobots})
		return
	}
	out, err := MarshalIntoSnakeKeys(robots)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedEncodeRobot})
		return
	}
	c.JSON(http.StatusOK, out)
}

// GetRobot returns a robot by ID.
func (h *ArenaHandler) GetRobot(c *gin.Context) {
	id, ok := parseID(c.Param("robotID"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRobotID})
		return
	}
	r, err := h.repo.GetRobotByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrRobotNotFound})
		return
	}
	h.writeJSON(c, http.StatusOK, r, constants.ErrFailedEncodeRobot)
}

// CreateRobot builds a robot from weapon template IDs.
func (h *ArenaHandler) CreateRobot(c *gin.Context) {
	var req CreateRobotPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	r, err := service.CreateRobot(h.repo, service.CreateRobotRequest{
		Name:        req.Name,
		Damage:      req.Damage,
		Health:      req.Health,
		AttackSpeed: req.AttackSpeed,
		WeaponIDs:   req.WeaponIDs,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRobot):
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRobotDefinition})
		case errors.Is(err, service.ErrRobotNameTooLong):
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrRobotNameExceeds})
		case errors.Is(err, service.ErrUnknownWeapon):
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrUnknownWeapon})
		case errors.Is(err, service.ErrRobotNameTaken):
			c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrRobotNameTaken})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedCreateRobot})
		}
		return
	}
	h.writeJSON(c, http.StatusCreated, r, constants.ErrFailedEncodeRobot)
}

// AttackRobot lets the robot in the path attack the defender in the body
// once and returns the outcome with both robots as stored.
func (h *ArenaHandler) AttackRobot(c *gin.Context) {
	attackerID, ok := parseID(c.Param("robotID"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRobotID})
		return
	}
	var req AttackPayload
	if err := c.ShouldBindJSON(&req); err != nil || req.DefenderID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	res, err := service.Attack(h.repo, h.engine, attackerID, req.DefenderID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSameRobot):
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrSameRobot})
		case errors.Is(err, service.ErrRobotNotFound):
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrRobotNotFound})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedAttack})
		}
		return
	}
	h.writeJSON(c, http.StatusOK, res, constants.ErrFailedEncodeRobot)
}

// RepairRobot restores a robot and its weapons.
func (h *ArenaHandler) RepairRobot(c *gin.Context) {
	id, ok := parseID(c.Param("robotID"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRobotID})
		return
	}
	r, err := service.RepairRobot(h.repo, id)
	if err != nil {
		if errors.Is(err, service.ErrRobotNotFound) {
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrRobotNotFound})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedRepairRobot})
		return
	}
	h.writeJSON(c, http.StatusOK, r, constants.ErrFailedEncodeRobot)
}

func (h *ArenaHandler) writeJSON(c *gin.Context, status int, v interface{}, encodeErr string) {
	out, err := MarshalIntoSnakeKeys(v)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: encodeErr})
		return
	}
	c.JSON(status, out)
}
