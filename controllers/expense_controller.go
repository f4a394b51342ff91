package controllers

import (
	"net/http"
	"strconv"
	"time"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type ExpenseController struct {
	Svc  *services.ExpenseService
	Game *services.GamificationService
}

func NewExpenseController(svc *services.ExpenseService, game *services.GamificationService) *ExpenseController {
	return &ExpenseController{Svc: svc, Game: game}
}

func (h *ExpenseController) Create(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input services.ExpenseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	expense, err := h.Svc.Create(c.Request.Context(), userID, input)
	if err != nil {
		fail(c, err)
		return
	}

	h.Game.RecordLogged(c.Request.Context(), userID, "expense", 1)
	c.JSON(http.StatusCreated, expense)
}

func (h *ExpenseController) Update(c *gin.Context) {
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

	var input services.ExpenseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	expense, err := h.Svc.Update(c.Request.Context(), userID, uint(id), input)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, expense)
}

func (h *ExpenseController) Delete(c *gin.Context) {
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

	if err := h.Svc.Delete(c.Request.Context(), userID, uint(id)); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

func (h *ExpenseController) List(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	rng := services.ResolveRange(c.DefaultQuery("period", "month"), false, time.Now())
	expenses, err := h.Svc.List(c.Request.Context(), userID, rng, c.Query("category"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, expenses)
}
