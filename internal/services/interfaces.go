package services

import (
	"context"
	"encoding/json"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"ratecurves/internal/models"
	"ratecurves/internal/pagination"
)

// Clock returns the current instant. Services stamp rows with it.
type Clock func() time.Time

func (c Clock) orDefault() Clock {
	if c == nil {
		return time.Now
	}
	return c
}

// InstrumentInput is one (type, tenor) pair of a curve structure.
type InstrumentInput struct {
	InstrumentType string `json:"instrument_type"`
	Tenor          string `json:"tenor"`
}

// CreateCurveInput holds the fields needed to create a curve version.
type CreateCurveInput struct {
	Name        string
	Date        civil.Date
	Currency    string
	Index       string
	Instruments []InstrumentInput
}

// CurveSummary is the list view of a curve version.
type CurveSummary struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	CurveDate       time.Time  `json:"curve_date"`
	TradingDate     civil.Date `json:"trading_date"`
	Currency        string     `json:"currency"`
	Index           string     `json:"index"`
	InstrumentCount int        `json:"instrument_count"`
	CreatedAt       time.Time  `json:"created_at"`
}

// CurveServicer defines the contract for curve lifecycle operations.
type CurveServicer interface {
	CreateCurve(ctx context.Context, in CreateCurveInput) (*models.Curve, error)
	UpdateCurve(ctx context.Context, id string, instruments []InstrumentInput) (*models.Curve, error)
	GetCurveByID(ctx context.Context, id string) (*models.Curve, error)
	GetCurve(ctx context.Context, name string, date civil.Date) (*models.Curve, error)
	ListCurveNames(ctx context.Context) ([]string, error)
	ListCurveVersions(ctx context.Context, name string) ([]CurveSummary, error)
	PageCurveVersions(ctx context.Context, name string, page pagination.PageRequest) (*pagination.PageResponse[CurveSummary], error)
	ListCurveDates(ctx context.Context, name string) ([]civil.Date, error)
	DeleteCurve(ctx context.Context, name string, date civil.Date) error
}

// QuoteInput is one submitted value. InstrumentType is informational; the
// tenor alone selects the instrument.
type QuoteInput struct {
	InstrumentType string
	Tenor          string
	Value          decimal.Decimal
}

// SaveQuotesInput identifies a curve version and the full set of values for it.
type SaveQuotesInput struct {
	CurveName string
	CurveDate civil.Date
	Quotes    []QuoteInput
}

// QuoteOutput is a stored quote joined with its instrument.
type QuoteOutput struct {
	ID             string          `json:"id"`
	InstrumentID   string          `json:"instrument_id"`
	InstrumentType string          `json:"instrument_type"`
	Tenor          string          `json:"tenor"`
	Value          decimal.Decimal `json:"value"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// MarshalJSON renders Value as a number with exactly two fractional digits.
func (q QuoteOutput) MarshalJSON() ([]byte, error) {
	type alias QuoteOutput
	return json.Marshal(struct {
		alias
		Value json.Number `json:"value"`
	}{
		alias: alias(q),
		Value: json.Number(q.Value.StringFixed(models.QuoteScale)),
	})
}

// QuoteResponse lists the quotes of one curve version in tenor order.
type QuoteResponse struct {
	CurveID   string        `json:"curve_id"`
	CurveName string        `json:"curve_name"`
	CurveDate civil.Date    `json:"curve_date"`
	Quotes    []QuoteOutput `json:"quotes"`
}

// QuoteServicer defines the contract for quote reconciliation.
type QuoteServicer interface {
	SaveQuotes(ctx context.Context, in SaveQuotesInput) (*QuoteResponse, error)
	GetQuotesByCurve(ctx context.Context, name string, date civil.Date) (*QuoteResponse, error)
}

// RollRequest asks for name to be advanced to TargetDate.
type RollRequest struct {
	CurveName  string
	TargetDate civil.Date
	Overwrite  bool
}

// RollResult describes a completed roll.
type RollResult struct {
	SourceCurveID     string        `json:"source_curve_id"`
	SourceDate        civil.Date    `json:"source_date"`
	TargetCurveID     string        `json:"target_curve_id"`
	TargetDate        civil.Date    `json:"target_date"`
	InstrumentsCopied int           `json:"instruments_copied"`
	Quotes            []QuoteOutput `json:"quotes"`
	Overwritten       bool          `json:"overwritten"`
	Message           string        `json:"message"`
}

// RollServicer defines the contract for the roll engine.
type RollServicer interface {
	Roll(ctx context.Context, req RollRequest) (*RollResult, error)
}
