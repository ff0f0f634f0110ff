package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ppapp/personal_finance_app/internal/apperrors"
	"github.com/ppapp/personal_finance_app/internal/core/domain"
	portssvc "github.com/ppapp/personal_finance_app/internal/core/ports/services"
	"github.com/ppapp/personal_finance_app/internal/dto"
	"github.com/ppapp/personal_finance_app/internal/middleware"
)

// savingsHandler handles HTTP requests related to savings goals.
type savingsHandler struct {
	savingsService portssvc.SavingsSvcFacade
}

// registerSavingsRoutes registers routes related to savings goals.
// The accrual route lives beside the goals group because it operates on the
// whole ledger, not a single goal.
func registerSavingsRoutes(rg *gin.RouterGroup, savingsService portssvc.SavingsSvcFacade) {
	h := &savingsHandler{savingsService: savingsService}

	goals := rg.Group("/goals")
	{
		goals.POST("", h.createGoal)
		goals.GET("", h.listGoals)
		goals.GET("/:goalID", h.getGoal)
		goals.DELETE("/:goalID", h.deleteGoal)
		goals.POST("/:goalID/deposits", h.deposit)
		goals.PUT("/:goalID/rate", h.updateRate)
	}
	rg.POST("/interest-accruals", h.accrueInterest)
}

// createGoal godoc
// @Summary Create a savings goal
// @Description Creates a new savings goal, optionally interest-bearing
// @Tags goals
// @Accept  json
// @Produce  json
// @Param   goal body dto.CreateGoalRequest true "Goal details"
// @Success 201 {object} dto.GoalResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to create goal"
// @Router /goals [post]
func (h *savingsHandler) createGoal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createGoal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	goal, err := h.savingsService.CreateGoal(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating goal", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create goal in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create goal"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToGoalResponse(goal))
}

// listGoals godoc
// @Summary List savings goals
// @Description Retrieves all savings goals in insertion order
// @Tags goals
// @Produce  json
// @Success 200 {array} dto.GoalResponse
// @Failure 500 {object} map[string]string "Failed to list goals"
// @Router /goals [get]
func (h *savingsHandler) listGoals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	goals, err := h.savingsService.ListGoals(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list goals", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list goals"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListGoalResponse(goals))
}

// getGoal godoc
// @Summary Get a savings goal by ID
// @Description Retrieves one goal with its full transaction history
// @Tags goals
// @Produce  json
// @Param   goalID path string true "Goal ID"
// @Success 200 {object} dto.GoalResponse
// @Failure 404 {object} map[string]string "Goal not found"
// @Failure 500 {object} map[string]string "Failed to retrieve goal"
// @Router /goals/{goalID} [get]
func (h *savingsHandler) getGoal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	goalID := c.Param("goalID")

	goal, err := h.savingsService.GetGoal(c.Request.Context(), goalID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Goal not found"})
		} else {
			logger.Error("Failed to get goal from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve goal"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToGoalResponse(goal))
}

// deposit godoc
// @Summary Add money to a goal
// @Description Records a deposit transaction and updates the goal balance
// @Tags goals
// @Accept  json
// @Produce  json
// @Param   goalID path string true "Goal ID"
// @Param   deposit body dto.DepositRequest true "Deposit amount"
// @Success 200 {object} dto.GoalResponse
// @Failure 400 {object} map[string]string "Non-positive amount"
// @Failure 404 {object} map[string]string "Goal not found"
// @Failure 500 {object} map[string]string "Failed to record deposit"
// @Router /goals/{goalID}/deposits [post]
func (h *savingsHandler) deposit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	goalID := c.Param("goalID")

	var req dto.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for deposit", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	goal, err := h.savingsService.Deposit(c.Request.Context(), goalID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Goal not found"})
		default:
			logger.Error("Failed to record deposit", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record deposit"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToGoalResponse(goal))
}

// updateRate godoc
// @Summary Update a goal's monthly rate
// @Description Replaces the monthly interest rate of a goal
// @Tags goals
// @Accept  json
// @Produce  json
// @Param   goalID path string true "Goal ID"
// @Param   rate body dto.UpdateRateRequest true "New rate (0-100)"
// @Success 200 {object} dto.GoalResponse
// @Failure 400 {object} map[string]string "Rate out of range"
// @Failure 404 {object} map[string]string "Goal not found"
// @Failure 500 {object} map[string]string "Failed to update rate"
// @Router /goals/{goalID}/rate [put]
func (h *savingsHandler) updateRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	goalID := c.Param("goalID")

	var req dto.UpdateRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateRate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	goal, err := h.savingsService.UpdateGoalRate(c.Request.Context(), goalID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Goal not found"})
		default:
			logger.Error("Failed to update goal rate", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update rate"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToGoalResponse(goal))
}

// deleteGoal godoc
// @Summary Delete a savings goal
// @Description Removes a goal and its transaction history. Irreversible.
// @Tags goals
// @Produce  json
// @Param   goalID path string true "Goal ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Goal not found"
// @Failure 500 {object} map[string]string "Failed to delete goal"
// @Router /goals/{goalID} [delete]
func (h *savingsHandler) deleteGoal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	goalID := c.Param("goalID")

	if err := h.savingsService.DeleteGoal(c.Request.Context(), goalID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Goal not found"})
		} else {
			logger.Error("Failed to delete goal", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete goal"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// accrueInterest godoc
// @Summary Run monthly interest accrual
// @Description Posts one month of interest to every qualifying goal. Goals already accrued in the period are skipped.
// @Tags goals
// @Accept  json
// @Produce  json
// @Param   accrual body dto.AccrueInterestRequest false "Accrual period (defaults to current month)"
// @Success 200 {object} dto.AccrualResponse
// @Failure 400 {object} map[string]string "Malformed period"
// @Failure 500 {object} map[string]string "Failed to accrue interest"
// @Router /interest-accruals [post]
func (h *savingsHandler) accrueInterest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.AccrueInterestRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Warn("Failed to bind JSON for accrueInterest", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
			return
		}
	}

	period := domain.AccrualPeriod(req.Period)
	if period == "" {
		period = domain.PeriodOf(time.Now())
	}

	postings, err := h.savingsService.AccrueInterest(c.Request.Context(), period)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to accrue interest", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to accrue interest"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToAccrualResponse(period, postings))
}
