package controllers

import (
	"net/http"
	"strconv"
	"time"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	Svc  *services.HealthService
	Game *services.GamificationService
}

func NewHealthController(svc *services.HealthService, game *services.GamificationService) *HealthController {
	return &HealthController{Svc: svc, Game: game}
}

func (h *HealthController) AddMetric(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input services.HealthMetricInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	metric, err := h.Svc.AddMetric(c.Request.Context(), userID, input)
	if err != nil {
		fail(c, err)
		return
	}

	h.Game.RecordLogged(c.Request.Context(), userID, "health", 1)
	c.JSON(http.StatusCreated, metric)
}

func (h *HealthController) UpdateMetric(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var input services.HealthMetricInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	metric, err := h.Svc.UpdateMetric(c.Request.Context(), userID, uint(id), input)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, metric)
}

func (h *HealthController) AddWater(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var body struct {
		Amount float64   `json:"amount"`
		Date   time.Time `json:"date"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.Svc.AddWater(c.Request.Context(), userID, body.Amount, body.Date)
	if err != nil {
		fail(c, err)
		return
	}

	// water challenges progress by volume, not record count
	h.Game.RecordLogged(c.Request.Context(), userID, "water", entry.Amount)
	c.JSON(http.StatusCreated, entry)
}

func (h *HealthController) UpdateWater(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var body struct {
		Amount float64   `json:"amount"`
		Date   time.Time `json:"date"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.Svc.UpdateWater(c.Request.Context(), userID, uint(id), body.Amount, body.Date)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (h *HealthController) UpdateExercise(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var input services.ExerciseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.Svc.UpdateExercise(c.Request.Context(), userID, uint(id), input)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *HealthController) AddExercise(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input services.ExerciseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.Svc.AddExercise(c.Request.Context(), userID, input)
	if err != nil {
		fail(c, err)
		return
	}

	// exercise challenges progress by minutes
	h.Game.RecordLogged(c.Request.Context(), userID, "exercise", session.Duration)
	c.JSON(http.StatusCreated, session)
}
