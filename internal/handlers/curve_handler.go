package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "ratecurves/internal/errors"
	"ratecurves/internal/pagination"
	"ratecurves/internal/services"
)

// CurveHandler handles curve lifecycle requests.
type CurveHandler struct {
	curveService services.CurveServicer
}

// NewCurveHandler creates a new CurveHandler.
func NewCurveHandler(curveService services.CurveServicer) *CurveHandler {
	return &CurveHandler{curveService: curveService}
}

// InstrumentRequest is one (type, tenor) entry of a curve structure.
type InstrumentRequest struct {
	InstrumentType string `json:"instrument_type" binding:"required,instrument_type"`
	Tenor          string `json:"tenor" binding:"required,tenor"`
}

// CreateCurveRequest represents the request payload for creating a curve version.
type CreateCurveRequest struct {
	Name        string              `json:"name" binding:"required,min=1,max=100"`
	CurveDate   string              `json:"curve_date" binding:"required,trading_date" example:"2025-06-02"`
	Currency    string              `json:"currency" binding:"required,iso4217"`
	Index       string              `json:"index" binding:"required,min=1,max=50"`
	Instruments []InstrumentRequest `json:"instruments" binding:"dive"`
}

// UpdateCurveRequest represents the request payload for replacing a curve's structure.
type UpdateCurveRequest struct {
	Instruments []InstrumentRequest `json:"instruments" binding:"dive"`
}

// CurveKeyQuery identifies a curve version by name and trading date.
type CurveKeyQuery struct {
	Name string `form:"name" binding:"required"`
	Date string `form:"date" binding:"required"`
}

// ListCurvesQuery holds the optional filters of GET /curves.
type ListCurvesQuery struct {
	Name string `form:"name"`
	pagination.PageRequest
}

func toInstrumentInputs(reqs []InstrumentRequest) []services.InstrumentInput {
	out := make([]services.InstrumentInput, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, services.InstrumentInput{InstrumentType: r.InstrumentType, Tenor: r.Tenor})
	}
	return out
}

// CreateCurve handles creating a new curve version.
// @Summary     Create curve
// @Description Create a curve version for a name and trading date with its instruments
// @Tags        curves
// @Accept      json
// @Produce     json
// @Security    ApiKeyAuth
// @Param       request body CreateCurveRequest true "Curve details"
// @Success     201 {object} map[string]models.Curve "Curve created"
// @Failure     400 {object} ErrorResponse "Invalid input, empty structure or duplicate tenor"
// @Failure     401 {object} ErrorResponse "Invalid API key"
// @Failure     409 {object} ErrorResponse "Curve already exists for this date"
// @Router      /curves [post]
func (h *CurveHandler) CreateCurve(c *gin.Context) {
	var req CreateCurveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}
	date, err := parseTradingDate("curve_date", req.CurveDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	curve, err := h.curveService.CreateCurve(c.Request.Context(), services.CreateCurveInput{
		Name:        req.Name,
		Date:        date,
		Currency:    req.Currency,
		Index:       req.Index,
		Instruments: toInstrumentInputs(req.Instruments),
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"curve": curve})
}

// UpdateCurve handles replacing the instrument set of a curve.
// @Summary     Update curve structure
// @Description Replace every instrument of a curve. Existing quotes are dropped.
// @Tags        curves
// @Accept      json
// @Produce     json
// @Security    ApiKeyAuth
// @Param       id      path string             true "Curve ID"
// @Param       request body UpdateCurveRequest true "New structure"
// @Success     200 {object} map[string]models.Curve "Curve updated"
// @Failure     400 {object} ErrorResponse "Invalid input, empty structure or duplicate tenor"
// @Failure     401 {object} ErrorResponse "Invalid API key"
// @Failure     404 {object} ErrorResponse "Curve not found"
// @Router      /curves/{id} [put]
func (h *CurveHandler) UpdateCurve(c *gin.Context) {
	var req UpdateCurveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	curve, err := h.curveService.UpdateCurve(c.Request.Context(), c.Param("id"), toInstrumentInputs(req.Instruments))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"curve": curve})
}

// GetCurve handles fetching a curve by ID.
// @Summary     Get curve
// @Description Get a curve version with its instruments and quotes
// @Tags        curves
// @Produce     json
// @Param       id path string true "Curve ID"
// @Success     200 {object} map[string]models.Curve "Curve"
// @Failure     404 {object} ErrorResponse "Curve not found"
// @Router      /curves/{id} [get]
func (h *CurveHandler) GetCurve(c *gin.Context) {
	curve, err := h.curveService.GetCurveByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"curve": curve})
}

// FindCurve handles fetching a curve by name and trading date.
// @Summary     Find curve by name and date
// @Tags        curves
// @Produce     json
// @Param       name query string true "Curve name"
// @Param       date query string true "Trading date (YYYY-MM-DD)"
// @Success     200 {object} map[string]models.Curve "Curve"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Curve not found"
// @Router      /curves/query [get]
func (h *CurveHandler) FindCurve(c *gin.Context) {
	var q CurveKeyQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, bindError(err))
		return
	}
	date, err := parseTradingDate("date", q.Date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	curve, err := h.curveService.GetCurve(c.Request.Context(), q.Name, date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"curve": curve})
}

// ListCurves handles listing curve names, or the versions of one name.
// @Summary     List curves
// @Description Without name: the distinct curve names. With name: its versions, newest first, paginated when page or page_size is given.
// @Tags        curves
// @Produce     json
// @Param       name      query string false "Curve name"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} map[string][]services.CurveSummary "Curve versions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /curves [get]
func (h *CurveHandler) ListCurves(c *gin.Context) {
	var q ListCurvesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, bindError(err))
		return
	}
	ctx := c.Request.Context()

	if q.Name == "" {
		names, err := h.curveService.ListCurveNames(ctx)
		if err != nil {
			respondWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"names": names})
		return
	}

	if q.PageRequest.Requested() {
		result, err := h.curveService.PageCurveVersions(ctx, q.Name, q.PageRequest)
		if err != nil {
			respondWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
		return
	}

	versions, err := h.curveService.ListCurveVersions(ctx, q.Name)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"curves": versions})
}

// ListCurveDates handles listing the trading dates of a curve name.
// @Summary     List curve dates
// @Tags        curves
// @Produce     json
// @Param       name query string true "Curve name"
// @Success     200 {object} map[string]interface{} "Trading dates, newest first"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /curves/dates [get]
func (h *CurveHandler) ListCurveDates(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Query parameter name is required"))
		return
	}

	dates, err := h.curveService.ListCurveDates(c.Request.Context(), name)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"name": name, "dates": dates})
}

// DeleteCurve handles deleting a curve version.
// @Summary     Delete curve
// @Description Delete a curve version together with its instruments and quotes
// @Tags        curves
// @Security    ApiKeyAuth
// @Param       name query string true "Curve name"
// @Param       date query string true "Trading date (YYYY-MM-DD)"
// @Success     204 "Curve deleted"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Invalid API key"
// @Failure     404 {object} ErrorResponse "Curve not found"
// @Router      /curves [delete]
func (h *CurveHandler) DeleteCurve(c *gin.Context) {
	var q CurveKeyQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, bindError(err))
		return
	}
	date, err := parseTradingDate("date", q.Date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.curveService.DeleteCurve(c.Request.Context(), q.Name, date); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
