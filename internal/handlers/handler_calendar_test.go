package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/ppapp/personal_finance_app/internal/apperrors"
	"github.com/ppapp/personal_finance_app/internal/core/domain"
	portssvc "github.com/ppapp/personal_finance_app/internal/core/ports/services"
	"github.com/ppapp/personal_finance_app/internal/dto"
	"github.com/ppapp/personal_finance_app/internal/handlers"
	"github.com/ppapp/personal_finance_app/internal/platform/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CalendarHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockSavings  *MockSavingsService
	mockCalendar *MockCalendarService
}

func (suite *CalendarHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockSavings = new(MockSavingsService)
	suite.mockCalendar = new(MockCalendarService)

	cfg := &config.Config{IsProduction: true}
	container := &portssvc.ServiceContainer{
		Savings:  suite.mockSavings,
		Calendar: suite.mockCalendar,
	}

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, cfg, container)
}

func (suite *CalendarHandlerTestSuite) perform(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *CalendarHandlerTestSuite) TestSaveDayEntry_Success() {
	entry := &domain.DayEntry{
		Date:     "2026-08-15",
		Revenue:  decimal.NewFromInt(300),
		Clients:  4,
		Expenses: map[string]decimal.Decimal{"supplies": decimal.NewFromInt(40)},
		Balance:  decimal.NewFromInt(260),
	}
	suite.mockCalendar.On("SaveDayEntry", mock.Anything, "2026-08-15", mock.AnythingOfType("dto.SaveDayEntryRequest")).
		Return(entry, nil).Once()

	w := suite.perform(http.MethodPut, "/api/v1/calendar/days/2026-08-15", gin.H{
		"revenue":  300,
		"clients":  4,
		"expenses": gin.H{"supplies": 40},
	})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.DayEntryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("2026-08-15", resp.Date)
	suite.True(decimal.NewFromInt(260).Equal(resp.Balance))
	suite.mockCalendar.AssertExpectations(suite.T())
}

func (suite *CalendarHandlerTestSuite) TestSaveDayEntry_BadDate() {
	suite.mockCalendar.On("SaveDayEntry", mock.Anything, "not-a-date", mock.Anything).
		Return(nil, fmt.Errorf("%w: malformed date", apperrors.ErrValidation)).Once()

	w := suite.perform(http.MethodPut, "/api/v1/calendar/days/not-a-date", gin.H{"revenue": 1})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *CalendarHandlerTestSuite) TestGetDayEntry_NotFound() {
	suite.mockCalendar.On("GetDayEntry", mock.Anything, "2026-08-16").
		Return(nil, fmt.Errorf("%w: no entry for 2026-08-16", apperrors.ErrNotFound)).Once()

	w := suite.perform(http.MethodGet, "/api/v1/calendar/days/2026-08-16", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *CalendarHandlerTestSuite) TestListMonth() {
	entries := []domain.DayEntry{
		{Date: "2026-08-01", Revenue: decimal.NewFromInt(100), Balance: decimal.NewFromInt(100)},
		{Date: "2026-08-02", Revenue: decimal.NewFromInt(200), Balance: decimal.NewFromInt(200)},
	}
	suite.mockCalendar.On("ListMonth", mock.Anything, "2026-08").Return(entries, nil).Once()

	w := suite.perform(http.MethodGet, "/api/v1/calendar/months/2026-08", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.DayEntryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 2)
	suite.Equal("2026-08-01", resp[0].Date)
}

func (suite *CalendarHandlerTestSuite) TestMonthSummary() {
	summary := &domain.MonthSummary{
		Month:        "2026-08",
		Days:         2,
		Revenue:      decimal.NewFromInt(300),
		Clients:      7,
		Expenses:     map[string]decimal.Decimal{"rent": decimal.NewFromInt(120)},
		ExpenseTotal: decimal.NewFromInt(120),
		Balance:      decimal.NewFromInt(180),
	}
	suite.mockCalendar.On("MonthSummary", mock.Anything, "2026-08").Return(summary, nil).Once()

	w := suite.perform(http.MethodGet, "/api/v1/calendar/months/2026-08/summary", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.MonthSummaryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("2026-08", resp.Month)
	suite.Equal(2, resp.Days)
	suite.True(decimal.NewFromInt(180).Equal(resp.Balance))
}

func (suite *CalendarHandlerTestSuite) TestMonthSummary_BadMonth() {
	suite.mockCalendar.On("MonthSummary", mock.Anything, "08-2026").
		Return(nil, fmt.Errorf("%w: malformed month", apperrors.ErrValidation)).Once()

	w := suite.perform(http.MethodGet, "/api/v1/calendar/months/08-2026/summary", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func TestCalendarHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CalendarHandlerTestSuite))
}
