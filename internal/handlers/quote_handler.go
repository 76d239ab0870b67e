package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"ratecurves/internal/calendar"
	"ratecurves/internal/services"
)

// QuoteHandler handles quote submission, retrieval, and curve rolls.
type QuoteHandler struct {
	quoteService services.QuoteServicer
	rollService  services.RollServicer
}

// NewQuoteHandler creates a new QuoteHandler.
func NewQuoteHandler(quoteService services.QuoteServicer, rollService services.RollServicer) *QuoteHandler {
	return &QuoteHandler{
		quoteService: quoteService,
		rollService:  rollService,
	}
}

// QuoteEntry is one submitted value. The tenor selects the instrument.
type QuoteEntry struct {
	InstrumentType string           `json:"instrument_type" binding:"omitempty,instrument_type"`
	Tenor          string           `json:"tenor" binding:"required,tenor"`
	Value          *decimal.Decimal `json:"value" binding:"required" swaggertype:"number" example:"4.31"`
}

// SaveQuotesRequest represents the full set of values for one curve version.
type SaveQuotesRequest struct {
	CurveName string       `json:"curve_name" binding:"required"`
	CurveDate string       `json:"curve_date" binding:"required,trading_date" example:"2025-06-02"`
	Quotes    []QuoteEntry `json:"quotes" binding:"required,dive"`
}

// QuoteQuery identifies the curve version whose quotes are requested.
type QuoteQuery struct {
	CurveName string `form:"curve_name" binding:"required"`
	CurveDate string `form:"curve_date" binding:"required"`
}

// RollCurveRequest represents the request payload for rolling a curve forward.
type RollCurveRequest struct {
	CurveName  string `json:"curve_name" binding:"required"`
	TargetDate string `json:"target_date" binding:"omitempty,trading_date" example:"2025-06-03"`
	Overwrite  bool   `json:"overwrite"`
}

// SaveQuotes handles submitting quotes for a curve version.
// @Summary     Save quotes
// @Description Submit a value for every instrument of a curve version. Values are rounded half away from zero to 2 decimals; existing quotes are updated in place.
// @Tags        quotes
// @Accept      json
// @Produce     json
// @Security    ApiKeyAuth
// @Param       request body SaveQuotesRequest true "Quotes"
// @Success     200 {object} services.QuoteResponse "Stored quotes"
// @Failure     400 {object} ErrorResponse "Invalid input, incomplete set, unknown or duplicate tenor, value out of range"
// @Failure     401 {object} ErrorResponse "Invalid API key"
// @Failure     404 {object} ErrorResponse "Curve not found"
// @Router      /quotes [post]
func (h *QuoteHandler) SaveQuotes(c *gin.Context) {
	var req SaveQuotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}
	date, err := parseTradingDate("curve_date", req.CurveDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	quotes := make([]services.QuoteInput, 0, len(req.Quotes))
	for _, q := range req.Quotes {
		quotes = append(quotes, services.QuoteInput{
			InstrumentType: q.InstrumentType,
			Tenor:          q.Tenor,
			Value:          *q.Value,
		})
	}

	resp, err := h.quoteService.SaveQuotes(c.Request.Context(), services.SaveQuotesInput{
		CurveName: req.CurveName,
		CurveDate: date,
		Quotes:    quotes,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetQuotes handles listing the quotes of a curve version.
// @Summary     Get quotes
// @Tags        quotes
// @Produce     json
// @Param       curve_name query string true "Curve name"
// @Param       curve_date query string true "Trading date (YYYY-MM-DD)"
// @Success     200 {object} services.QuoteResponse "Quotes in tenor order"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Curve not found"
// @Router      /quotes [get]
func (h *QuoteHandler) GetQuotes(c *gin.Context) {
	var q QuoteQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, bindError(err))
		return
	}
	date, err := parseTradingDate("curve_date", q.CurveDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	resp, err := h.quoteService.GetQuotesByCurve(c.Request.Context(), q.CurveName, date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// RollCurve handles copying the latest complete version of a curve to a new date.
// @Summary     Roll curve
// @Description Copy the most recent complete version before target_date, with its quotes, to target_date. target_date defaults to today's New York trading date.
// @Tags        quotes
// @Accept      json
// @Produce     json
// @Security    ApiKeyAuth
// @Param       request body RollCurveRequest true "Roll request"
// @Success     201 {object} services.RollResult "Curve rolled"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Invalid API key"
// @Failure     409 {object} ErrorResponse "Target version exists"
// @Failure     422 {object} ErrorResponse "No complete version before target date"
// @Failure     500 {object} ErrorResponse "Integrity violation"
// @Router      /quotes/roll [post]
func (h *QuoteHandler) RollCurve(c *gin.Context) {
	var req RollCurveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}
	date := calendar.Today()
	if req.TargetDate != "" {
		d, err := parseTradingDate("target_date", req.TargetDate)
		if err != nil {
			respondWithError(c, err)
			return
		}
		date = d
	}

	result, err := h.rollService.Roll(c.Request.Context(), services.RollRequest{
		CurveName:  req.CurveName,
		TargetDate: date,
		Overwrite:  req.Overwrite,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}
