package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ppapp/personal_finance_app/internal/apperrors"
	portssvc "github.com/ppapp/personal_finance_app/internal/core/ports/services"
	"github.com/ppapp/personal_finance_app/internal/dto"
	"github.com/ppapp/personal_finance_app/internal/middleware"
)

// calendarHandler handles HTTP requests related to calendar day entries.
type calendarHandler struct {
	calendarService portssvc.CalendarSvcFacade
}

// registerCalendarRoutes registers routes related to the calendar module.
func registerCalendarRoutes(rg *gin.RouterGroup, calendarService portssvc.CalendarSvcFacade) {
	h := &calendarHandler{calendarService: calendarService}

	calendar := rg.Group("/calendar")
	{
		calendar.PUT("/days/:date", h.saveDayEntry)
		calendar.GET("/days/:date", h.getDayEntry)
		calendar.GET("/months/:month", h.listMonth)
		calendar.GET("/months/:month/summary", h.monthSummary)
	}
}

// saveDayEntry godoc
// @Summary Upsert a calendar day entry
// @Description Stores revenue, clients and expenses for one day; the day balance is derived server-side
// @Tags calendar
// @Accept  json
// @Produce  json
// @Param   date path string true "Date (YYYY-MM-DD)"
// @Param   entry body dto.SaveDayEntryRequest true "Day entry"
// @Success 200 {object} dto.DayEntryResponse
// @Failure 400 {object} map[string]string "Invalid date or entry"
// @Failure 500 {object} map[string]string "Failed to save entry"
// @Router /calendar/days/{date} [put]
func (h *calendarHandler) saveDayEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	date := c.Param("date")

	var req dto.SaveDayEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for saveDayEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	entry, err := h.calendarService.SaveDayEntry(c.Request.Context(), date, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to save day entry", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save entry"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToDayEntryResponse(entry))
}

// getDayEntry godoc
// @Summary Get a calendar day entry
// @Tags calendar
// @Produce  json
// @Param   date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} dto.DayEntryResponse
// @Failure 400 {object} map[string]string "Invalid date"
// @Failure 404 {object} map[string]string "No entry for date"
// @Failure 500 {object} map[string]string "Failed to retrieve entry"
// @Router /calendar/days/{date} [get]
func (h *calendarHandler) getDayEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	date := c.Param("date")

	entry, err := h.calendarService.GetDayEntry(c.Request.Context(), date)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "No entry for date"})
		default:
			logger.Error("Failed to get day entry", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve entry"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToDayEntryResponse(entry))
}

// listMonth godoc
// @Summary List the entries of one month
// @Tags calendar
// @Produce  json
// @Param   month path string true "Month (YYYY-MM)"
// @Success 200 {array} dto.DayEntryResponse
// @Failure 400 {object} map[string]string "Invalid month"
// @Failure 500 {object} map[string]string "Failed to list entries"
// @Router /calendar/months/{month} [get]
func (h *calendarHandler) listMonth(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	month := c.Param("month")

	entries, err := h.calendarService.ListMonth(c.Request.Context(), month)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to list month entries", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list entries"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToListDayEntryResponse(entries))
}

// monthSummary godoc
// @Summary Summarize one month
// @Description Aggregates revenue, clients and per-category expenses across the month
// @Tags calendar
// @Produce  json
// @Param   month path string true "Month (YYYY-MM)"
// @Success 200 {object} dto.MonthSummaryResponse
// @Failure 400 {object} map[string]string "Invalid month"
// @Failure 500 {object} map[string]string "Failed to summarize month"
// @Router /calendar/months/{month}/summary [get]
func (h *calendarHandler) monthSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	month := c.Param("month")

	summary, err := h.calendarService.MonthSummary(c.Request.Context(), month)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to summarize month", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to summarize month"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToMonthSummaryResponse(summary))
}
