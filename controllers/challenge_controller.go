package controllers

import (
	"net/http"
	"strconv"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type ChallengeController struct {
	Svc *services.GamificationService
}

func NewChallengeController(svc *services.GamificationService) *ChallengeController {
	return &ChallengeController{Svc: svc}
}

func (h *ChallengeController) List(c *gin.Context) {
	if _, ok := userIDFromCtx(c); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	activeOnly := c.DefaultQuery("active", "true") == "true"
	challenges, err := h.Svc.ListChallenges(c.Request.Context(), activeOnly)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, challenges)
}

func (h *ChallengeController) Join(c *gin.Context) {
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

	uc, err := h.Svc.JoinChallenge(c.Request.Context(), userID, uint(id))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, uc)
}

func (h *ChallengeController) UpdateProgress(c *gin.Context) {
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
		Delta float64 `json:"delta"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	uc, err := h.Svc.ApplyProgress(c.Request.Context(), userID, uint(id), body.Delta)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, uc)
}

func (h *ChallengeController) Mine(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	enrollments, err := h.Svc.UserChallenges(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, enrollments)
}
