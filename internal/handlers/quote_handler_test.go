package handlers

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"cloud.google.com/go/civil"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"ratecurves/internal/calendar"
	apperrors "ratecurves/internal/errors"
	"ratecurves/internal/services"
)

// --- mock quote and roll services ---

type mockQuoteService struct {
	saveQuotesFn       func(ctx context.Context, in services.SaveQuotesInput) (*services.QuoteResponse, error)
	getQuotesByCurveFn func(ctx context.Context, name string, date civil.Date) (*services.QuoteResponse, error)
}

var _ services.QuoteServicer = (*mockQuoteService)(nil)

func (m *mockQuoteService) SaveQuotes(ctx context.Context, in services.SaveQuotesInput) (*services.QuoteResponse, error) {
	if m.saveQuotesFn != nil {
		return m.saveQuotesFn(ctx, in)
	}
	return &services.QuoteResponse{Quotes: []services.QuoteOutput{}}, nil
}

func (m *mockQuoteService) GetQuotesByCurve(ctx context.Context, name string, date civil.Date) (*services.QuoteResponse, error) {
	if m.getQuotesByCurveFn != nil {
		return m.getQuotesByCurveFn(ctx, name, date)
	}
	return &services.QuoteResponse{Quotes: []services.QuoteOutput{}}, nil
}

type mockRollService struct {
	rollFn func(ctx context.Context, req services.RollRequest) (*services.RollResult, error)
}

var _ services.RollServicer = (*mockRollService)(nil)

func (m *mockRollService) Roll(ctx context.Context, req services.RollRequest) (*services.RollResult, error) {
	if m.rollFn != nil {
		return m.rollFn(ctx, req)
	}
	return &services.RollResult{}, nil
}

// --- router setup ---

func setupQuoteRouter(handler *QuoteHandler) *gin.Engine {
	r := gin.New()
	r.POST("/quotes", handler.SaveQuotes)
	r.GET("/quotes", handler.GetQuotes)
	r.POST("/quotes/roll", handler.RollCurve)
	return r
}

// --- tests ---

func TestQuoteHandler_SaveQuotes(t *testing.T) {
	t.Run("returns_200_with_fixed_scale_values", func(t *testing.T) {
		var got services.SaveQuotesInput
		svc := &mockQuoteService{
			saveQuotesFn: func(_ context.Context, in services.SaveQuotesInput) (*services.QuoteResponse, error) {
				got = in
				return &services.QuoteResponse{
					CurveID:   "c-1",
					CurveName: in.CurveName,
					CurveDate: in.CurveDate,
					Quotes: []services.QuoteOutput{
						{Tenor: "1M", InstrumentType: "SWAP", Value: decimal.RequireFromString("4.1")},
					},
				}, nil
			},
		}
		r := setupQuoteRouter(NewQuoteHandler(svc, &mockRollService{}))

		rec := doRequest(r, "POST", "/quotes",
			`{"curve_name":"USD-SOFR","curve_date":"2025-06-02","quotes":[{"instrument_type":"SWAP","tenor":"1M","value":4.1}]}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if !strings.Contains(rec.Body.String(), `"value":4.10`) {
			t.Errorf("expected value rendered with two decimals, got %s", rec.Body.String())
		}
		if len(got.Quotes) != 1 || !got.Quotes[0].Value.Equal(decimal.RequireFromString("4.1")) {
			t.Errorf("unexpected quotes passed to service %+v", got.Quotes)
		}
		if got.CurveDate.String() != "2025-06-02" {
			t.Errorf("expected curve date 2025-06-02, got %s", got.CurveDate)
		}
	})

	t.Run("accepts_string_values", func(t *testing.T) {
		var got decimal.Decimal
		svc := &mockQuoteService{
			saveQuotesFn: func(_ context.Context, in services.SaveQuotesInput) (*services.QuoteResponse, error) {
				got = in.Quotes[0].Value
				return &services.QuoteResponse{Quotes: []services.QuoteOutput{}}, nil
			},
		}
		r := setupQuoteRouter(NewQuoteHandler(svc, &mockRollService{}))

		rec := doRequest(r, "POST", "/quotes",
			`{"curve_name":"USD-SOFR","curve_date":"2025-06-02","quotes":[{"tenor":"1M","value":"1.005"}]}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if !got.Equal(decimal.RequireFromString("1.005")) {
			t.Errorf("expected unrounded 1.005 passed through, got %s", got)
		}
	})

	t.Run("returns_400_missing_value", func(t *testing.T) {
		r := setupQuoteRouter(NewQuoteHandler(&mockQuoteService{}, &mockRollService{}))

		rec := doRequest(r, "POST", "/quotes",
			`{"curve_name":"USD-SOFR","curve_date":"2025-06-02","quotes":[{"tenor":"1M"}]}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns_400_missing_quotes", func(t *testing.T) {
		r := setupQuoteRouter(NewQuoteHandler(&mockQuoteService{}, &mockRollService{}))

		rec := doRequest(r, "POST", "/quotes", `{"curve_name":"USD-SOFR","curve_date":"2025-06-02"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns_400_incomplete", func(t *testing.T) {
		svc := &mockQuoteService{
			saveQuotesFn: func(context.Context, services.SaveQuotesInput) (*services.QuoteResponse, error) {
				return nil, apperrors.Newf(apperrors.ErrIncompleteQuotes, "All instruments must have quote values. Missing: %s", "SWAP/3M")
			},
		}
		r := setupQuoteRouter(NewQuoteHandler(svc, &mockRollService{}))

		rec := doRequest(r, "POST", "/quotes",
			`{"curve_name":"USD-SOFR","curve_date":"2025-06-02","quotes":[{"tenor":"1M","value":4.1}]}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		assertErrorCode(t, result, "INCOMPLETE_QUOTES")
		assertErrorMessage(t, result, "All instruments must have quote values. Missing: SWAP/3M")
	})

	t.Run("returns_404_curve_not_found", func(t *testing.T) {
		svc := &mockQuoteService{
			saveQuotesFn: func(context.Context, services.SaveQuotesInput) (*services.QuoteResponse, error) {
				return nil, apperrors.ErrCurveNotFound
			},
		}
		r := setupQuoteRouter(NewQuoteHandler(svc, &mockRollService{}))

		rec := doRequest(r, "POST", "/quotes",
			`{"curve_name":"USD-SOFR","curve_date":"2025-06-02","quotes":[{"tenor":"1M","value":4.1}]}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d: %s", rec.Code, rec.Body.String())
		}
		assertErrorCode(t, parseJSON(t, rec), "CURVE_NOT_FOUND")
	})
}

func TestQuoteHandler_GetQuotes(t *testing.T) {
	t.Run("returns_200", func(t *testing.T) {
		svc := &mockQuoteService{
			getQuotesByCurveFn: func(_ context.Context, name string, date civil.Date) (*services.QuoteResponse, error) {
				return &services.QuoteResponse{CurveName: name, CurveDate: date, Quotes: []services.QuoteOutput{}}, nil
			},
		}
		r := setupQuoteRouter(NewQuoteHandler(svc, &mockRollService{}))

		rec := doRequest(r, "GET", "/quotes?curve_name=USD-SOFR&curve_date=2025-06-02", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["curve_date"] != "2025-06-02" {
			t.Errorf("expected curve_date=2025-06-02, got %v", result["curve_date"])
		}
		if quotes, ok := result["quotes"].([]interface{}); !ok || len(quotes) != 0 {
			t.Errorf("expected empty quotes list, got %v", result["quotes"])
		}
	})

	t.Run("returns_400_missing_params", func(t *testing.T) {
		r := setupQuoteRouter(NewQuoteHandler(&mockQuoteService{}, &mockRollService{}))

		rec := doRequest(r, "GET", "/quotes?curve_name=USD-SOFR", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})
}

func TestQuoteHandler_RollCurve(t *testing.T) {
	t.Run("returns_201_on_success", func(t *testing.T) {
		var got services.RollRequest
		svc := &mockRollService{
			rollFn: func(_ context.Context, req services.RollRequest) (*services.RollResult, error) {
				got = req
				return &services.RollResult{
					SourceCurveID:     "c-1",
					TargetCurveID:     "c-2",
					TargetDate:        req.TargetDate,
					InstrumentsCopied: 3,
					Quotes:            []services.QuoteOutput{},
					Message:           "Rolled curve from 2025-06-02 to 2025-06-03",
				}, nil
			},
		}
		r := setupQuoteRouter(NewQuoteHandler(&mockQuoteService{}, svc))

		rec := doRequest(r, "POST", "/quotes/roll", `{"curve_name":"USD-SOFR","target_date":"2025-06-03","overwrite":true}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if !got.Overwrite || got.CurveName != "USD-SOFR" || got.TargetDate.String() != "2025-06-03" {
			t.Errorf("unexpected roll request %+v", got)
		}
		result := parseJSON(t, rec)
		if result["instruments_copied"] != float64(3) {
			t.Errorf("expected instruments_copied=3, got %v", result["instruments_copied"])
		}
	})

	t.Run("returns_409_target_exists", func(t *testing.T) {
		svc := &mockRollService{
			rollFn: func(context.Context, services.RollRequest) (*services.RollResult, error) {
				return nil, apperrors.ErrRollTargetExists
			},
		}
		r := setupQuoteRouter(NewQuoteHandler(&mockQuoteService{}, svc))

		rec := doRequest(r, "POST", "/quotes/roll", `{"curve_name":"USD-SOFR","target_date":"2025-06-03"}`)

		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d: %s", rec.Code, rec.Body.String())
		}
		assertErrorCode(t, parseJSON(t, rec), "ROLL_TARGET_EXISTS")
	})

	t.Run("returns_422_no_source", func(t *testing.T) {
		svc := &mockRollService{
			rollFn: func(context.Context, services.RollRequest) (*services.RollResult, error) {
				return nil, apperrors.ErrNoEligibleSource
			},
		}
		r := setupQuoteRouter(NewQuoteHandler(&mockQuoteService{}, svc))

		rec := doRequest(r, "POST", "/quotes/roll", `{"curve_name":"USD-SOFR","target_date":"2025-06-03"}`)

		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d: %s", rec.Code, rec.Body.String())
		}
		assertErrorCode(t, parseJSON(t, rec), "NO_ELIGIBLE_SOURCE")
	})

	t.Run("returns_500_integrity_violation", func(t *testing.T) {
		svc := &mockRollService{
			rollFn: func(context.Context, services.RollRequest) (*services.RollResult, error) {
				return nil, apperrors.ErrIntegrityViolation
			},
		}
		r := setupQuoteRouter(NewQuoteHandler(&mockQuoteService{}, svc))

		rec := doRequest(r, "POST", "/quotes/roll", `{"curve_name":"USD-SOFR","target_date":"2025-06-03"}`)

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d: %s", rec.Code, rec.Body.String())
		}
		assertErrorCode(t, parseJSON(t, rec), "INTEGRITY_VIOLATION")
	})

	t.Run("returns_400_bad_target_date", func(t *testing.T) {
		r := setupQuoteRouter(NewQuoteHandler(&mockQuoteService{}, &mockRollService{}))

		rec := doRequest(r, "POST", "/quotes/roll", `{"curve_name":"USD-SOFR","target_date":"20250603"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("target_date_defaults_to_today", func(t *testing.T) {
		var got services.RollRequest
		svc := &mockRollService{
			rollFn: func(_ context.Context, req services.RollRequest) (*services.RollResult, error) {
				got = req
				return &services.RollResult{TargetDate: req.TargetDate, Quotes: []services.QuoteOutput{}}, nil
			},
		}
		r := setupQuoteRouter(NewQuoteHandler(&mockQuoteService{}, svc))

		before := calendar.Today()
		rec := doRequest(r, "POST", "/quotes/roll", `{"curve_name":"USD-SOFR"}`)
		after := calendar.Today()

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if got.TargetDate != before && got.TargetDate != after {
			t.Errorf("expected target date %s, got %s", after, got.TargetDate)
		}
	})

	t.Run("returns_400_missing_curve_name", func(t *testing.T) {
		r := setupQuoteRouter(NewQuoteHandler(&mockQuoteService{}, &mockRollService{}))

		rec := doRequest(r, "POST", "/quotes/roll", `{"target_date":"2025-06-03"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})
}
