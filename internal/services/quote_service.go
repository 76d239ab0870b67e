package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"ratecurves/internal/calendar"
	apperrors "ratecurves/internal/errors"
	"ratecurves/internal/models"
	"ratecurves/internal/store"
	"ratecurves/internal/uuid"
)

// maxQuoteMagnitude bounds normalized values to numeric(10,2).
var maxQuoteMagnitude = decimal.New(1, 8)

// quoteService reconciles submitted values against a curve's instruments.
type quoteService struct {
	store store.Store
	now   Clock
}

// NewQuoteService creates a new QuoteServicer. A nil clock means time.Now.
func NewQuoteService(s store.Store, now Clock) QuoteServicer {
	return &quoteService{store: s, now: now.orDefault()}
}

// SaveQuotes upserts one quote per instrument of the curve. The submission
// must cover every instrument; nothing is written unless it is complete and
// every tenor is known.
func (s *quoteService) SaveQuotes(ctx context.Context, in SaveQuotesInput) (*QuoteResponse, error) {
	name := curveName(in.CurveName)
	var resp *QuoteResponse
	err := s.store.Transaction(ctx, func(tx store.Store) error {
		curve, err := tx.FindCurve(ctx, name, calendar.ToVersionTimestamp(in.CurveDate))
		if err != nil {
			return curveByKeyError(name, in.CurveDate, err)
		}
		instruments, err := tx.FindInstrumentsByCurve(ctx, curve.ID)
		if err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		submitted, err := indexSubmission(in.Quotes)
		if err != nil {
			return err
		}
		if err := checkComplete(instruments, submitted); err != nil {
			return err
		}
		byTenor := make(map[string]*models.Instrument, len(instruments))
		for i := range instruments {
			byTenor[instruments[i].Tenor] = &instruments[i]
		}
		for _, q := range in.Quotes {
			if _, ok := byTenor[q.Tenor]; !ok {
				return apperrors.Newf(apperrors.ErrUnknownTenor,
					"No instrument found with tenor %s on curve %s %s", q.Tenor, curve.Name, in.CurveDate)
			}
		}

		now := s.now().UTC()
		for i := range instruments {
			inst := &instruments[i]
			quote, err := s.upsert(ctx, tx, inst, submitted[inst.Tenor], now)
			if err != nil {
				return err
			}
			inst.Quote = quote
		}

		resp = &QuoteResponse{
			CurveID:   curve.ID,
			CurveName: curve.Name,
			CurveDate: in.CurveDate,
			Quotes:    quoteOutputs(instruments),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// upsert updates the instrument's existing quote in place or creates one.
func (s *quoteService) upsert(ctx context.Context, tx store.Store, inst *models.Instrument, value decimal.Decimal, now time.Time) (*models.Quote, error) {
	quote, err := tx.FindQuoteByInstrument(ctx, inst.ID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		quote = &models.Quote{
			ID:           uuid.New(),
			InstrumentID: inst.ID,
			CreatedAt:    now,
		}
	case err != nil:
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	quote.Value = value
	quote.UpdatedAt = now
	if err := tx.SaveQuote(ctx, quote); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return quote, nil
}

// GetQuotesByCurve returns the quotes of the version of name pinned to date.
// A curve without quotes yields an empty list; a missing curve is an error.
func (s *quoteService) GetQuotesByCurve(ctx context.Context, name string, date civil.Date) (*QuoteResponse, error) {
	name = curveName(name)
	curve, err := s.store.FindCurve(ctx, name, calendar.ToVersionTimestamp(date))
	if err != nil {
		return nil, curveByKeyError(name, date, err)
	}
	quotes, err := s.store.FindQuotesByCurve(ctx, curve.ID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	byInstrument := make(map[string]*models.Quote, len(quotes))
	for i := range quotes {
		byInstrument[quotes[i].InstrumentID] = &quotes[i]
	}
	instruments := make([]models.Instrument, len(curve.Instruments))
	copy(instruments, curve.Instruments)
	for i := range instruments {
		instruments[i].Quote = byInstrument[instruments[i].ID]
	}

	return &QuoteResponse{
		CurveID:   curve.ID,
		CurveName: curve.Name,
		CurveDate: date,
		Quotes:    quoteOutputs(instruments),
	}, nil
}

// indexSubmission keys the submitted values by tenor, normalizing each one.
func indexSubmission(quotes []QuoteInput) (map[string]decimal.Decimal, error) {
	submitted := make(map[string]decimal.Decimal, len(quotes))
	for _, q := range quotes {
		if _, ok := submitted[q.Tenor]; ok {
			return nil, apperrors.Newf(apperrors.ErrDuplicateQuote, "Tenor %s quoted more than once", q.Tenor)
		}
		v, ok := boundedValue(q.Value)
		if !ok {
			return nil, apperrors.Newf(apperrors.ErrValueOutOfRange,
				"Quote value for tenor %s exceeds 8 integer digits", q.Tenor)
		}
		submitted[q.Tenor] = v
	}
	return submitted, nil
}

// boundedValue normalizes v when it fits numeric(10,2). The digit count is
// read off the coefficient and exponent so that values like 1e20000000 or
// 1e-20000000 are settled without rescaling them.
func boundedValue(v decimal.Decimal) (decimal.Decimal, bool) {
	if v.IsZero() {
		return models.NormalizeValue(decimal.Zero), true
	}
	digits := v.NumDigits() + int(v.Exponent())
	switch {
	case digits > 8:
		return decimal.Decimal{}, false
	case digits < -models.QuoteScale:
		// |v| < 0.001 rounds to zero
		return models.NormalizeValue(decimal.Zero), true
	}
	n := models.NormalizeValue(v)
	if n.Abs().GreaterThanOrEqual(maxQuoteMagnitude) {
		return decimal.Decimal{}, false
	}
	return n, true
}

// checkComplete fails with every instrument that has no submitted value.
func checkComplete(instruments []models.Instrument, submitted map[string]decimal.Decimal) error {
	var missing []string
	for i := range instruments {
		if _, ok := submitted[instruments[i].Tenor]; !ok {
			missing = append(missing, instruments[i].Key())
		}
	}
	if len(missing) > 0 {
		return apperrors.Newf(apperrors.ErrIncompleteQuotes,
			"Missing quotes for instruments: %s", strings.Join(missing, ", "))
	}
	return nil
}

// quoteOutputs flattens the quoted instruments, in instrument order.
func quoteOutputs(instruments []models.Instrument) []QuoteOutput {
	out := make([]QuoteOutput, 0, len(instruments))
	for i := range instruments {
		q := instruments[i].Quote
		if q == nil {
			continue
		}
		out = append(out, QuoteOutput{
			ID:             q.ID,
			InstrumentID:   instruments[i].ID,
			InstrumentType: instruments[i].InstrumentType,
			Tenor:          instruments[i].Tenor,
			Value:          q.Value,
			CreatedAt:      q.CreatedAt,
			UpdatedAt:      q.UpdatedAt,
		})
	}
	return out
}
