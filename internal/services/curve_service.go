package services

import (
	"context"
	"errors"
	"strings"

	"cloud.google.com/go/civil"

	"ratecurves/internal/calendar"
	apperrors "ratecurves/internal/errors"
	"ratecurves/internal/models"
	"ratecurves/internal/pagination"
	"ratecurves/internal/store"
	"ratecurves/internal/uuid"
)

// curveService handles curve lifecycle business logic.
type curveService struct {
	store store.Store
	now   Clock
}

// NewCurveService creates a new CurveServicer. A nil clock means time.Now.
func NewCurveService(s store.Store, now Clock) CurveServicer {
	return &curveService{store: s, now: now.orDefault()}
}

// CreateCurve persists a new curve version with its instruments.
func (s *curveService) CreateCurve(ctx context.Context, in CreateCurveInput) (*models.Curve, error) {
	name := curveName(in.Name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Curve name is required")
	}
	if err := validateInstruments(in.Instruments); err != nil {
		return nil, err
	}

	ts := calendar.ToVersionTimestamp(in.Date)
	curve := &models.Curve{
		ID:          uuid.New(),
		Name:        name,
		CurveDate:   ts,
		Currency:    in.Currency,
		IndexName:   in.Index,
		CreatedAt:   s.now().UTC(),
		Instruments: buildInstruments(in.Instruments),
		TradingDate: in.Date,
	}

	err := s.store.Transaction(ctx, func(tx store.Store) error {
		exists, err := tx.ExistsCurve(ctx, name, ts)
		if err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if exists {
			return duplicateCurve(name, in.Date)
		}
		if err := tx.SaveCurve(ctx, curve); err != nil {
			if errors.Is(err, store.ErrDuplicateKey) {
				return duplicateCurve(name, in.Date)
			}
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return curve, nil
}

// UpdateCurve replaces the full instrument set of a curve. Every existing
// instrument and quote is dropped.
func (s *curveService) UpdateCurve(ctx context.Context, id string, instruments []InstrumentInput) (*models.Curve, error) {
	var updated *models.Curve
	err := s.store.Transaction(ctx, func(tx store.Store) error {
		curve, err := tx.FindCurveByID(ctx, id)
		if err != nil {
			return curveByIDError(id, err)
		}
		if err := validateInstruments(instruments); err != nil {
			return err
		}
		if err := tx.ReplaceInstruments(ctx, curve.ID, buildInstruments(instruments)); err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		updated, err = tx.FindCurveByID(ctx, curve.ID)
		if err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// GetCurveByID returns a curve with its instruments and quotes.
func (s *curveService) GetCurveByID(ctx context.Context, id string) (*models.Curve, error) {
	curve, err := s.store.FindCurveByID(ctx, id)
	if err != nil {
		return nil, curveByIDError(id, err)
	}
	return curve, nil
}

// GetCurve returns the version of name pinned to date.
func (s *curveService) GetCurve(ctx context.Context, name string, date civil.Date) (*models.Curve, error) {
	name = curveName(name)
	curve, err := s.store.FindCurve(ctx, name, calendar.ToVersionTimestamp(date))
	if err != nil {
		return nil, curveByKeyError(name, date, err)
	}
	return curve, nil
}

// ListCurveNames returns the distinct curve names in alphabetical order.
func (s *curveService) ListCurveNames(ctx context.Context) ([]string, error) {
	names, err := s.store.ListDistinctNames(ctx)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}

// ListCurveVersions returns every version of name, newest first.
func (s *curveService) ListCurveVersions(ctx context.Context, name string) ([]CurveSummary, error) {
	name = curveName(name)
	curves, err := s.store.ListCurveVersions(ctx, name)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return summarize(curves), nil
}

// PageCurveVersions returns one page of versions of name, newest first.
func (s *curveService) PageCurveVersions(ctx context.Context, name string, page pagination.PageRequest) (*pagination.PageResponse[CurveSummary], error) {
	name = curveName(name)
	page.Defaults()

	curves, total, err := s.store.PageCurveVersions(ctx, name, page)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(summarize(curves), page, total)
	return &result, nil
}

// ListCurveDates returns the trading dates that have a version of name, newest first.
func (s *curveService) ListCurveDates(ctx context.Context, name string) ([]civil.Date, error) {
	name = curveName(name)
	stamps, err := s.store.ListVersionTimestamps(ctx, name)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	dates := make([]civil.Date, 0, len(stamps))
	for _, ts := range stamps {
		dates = append(dates, calendar.ToTradingDate(ts))
	}
	return dates, nil
}

// DeleteCurve removes the version of name pinned to date together with its
// instruments and quotes. A missing curve is an error.
func (s *curveService) DeleteCurve(ctx context.Context, name string, date civil.Date) error {
	name = curveName(name)
	return s.store.Transaction(ctx, func(tx store.Store) error {
		curve, err := tx.FindCurve(ctx, name, calendar.ToVersionTimestamp(date))
		if err != nil {
			return curveByKeyError(name, date, err)
		}
		if err := tx.DeleteCurve(ctx, curve); err != nil {
			return curveByKeyError(name, date, err)
		}
		return nil
	})
}

// validateInstruments rejects an empty structure or a repeated tenor. The
// first repeated tenor is reported.
func validateInstruments(instruments []InstrumentInput) error {
	if len(instruments) == 0 {
		return apperrors.ErrEmptyInstruments
	}
	seen := make(map[string]struct{}, len(instruments))
	for _, in := range instruments {
		if _, ok := seen[in.Tenor]; ok {
			return apperrors.Newf(apperrors.ErrDuplicateTenor, "Duplicate tenor found: %s", in.Tenor)
		}
		seen[in.Tenor] = struct{}{}
	}
	return nil
}

func buildInstruments(inputs []InstrumentInput) []models.Instrument {
	instruments := make([]models.Instrument, 0, len(inputs))
	for _, in := range inputs {
		instruments = append(instruments, models.Instrument{
			ID:             uuid.New(),
			InstrumentType: in.InstrumentType,
			Tenor:          in.Tenor,
		})
	}
	return instruments
}

func summarize(curves []models.Curve) []CurveSummary {
	out := make([]CurveSummary, 0, len(curves))
	for i := range curves {
		c := &curves[i]
		out = append(out, CurveSummary{
			ID:              c.ID,
			Name:            c.Name,
			CurveDate:       c.CurveDate,
			TradingDate:     c.TradingDate,
			Currency:        c.Currency,
			Index:           c.IndexName,
			InstrumentCount: len(c.Instruments),
			CreatedAt:       c.CreatedAt,
		})
	}
	return out
}

// curveName is the stored form of a curve name.
func curveName(name string) string {
	return strings.TrimSpace(name)
}

func duplicateCurve(name string, date civil.Date) *apperrors.AppError {
	return apperrors.Newf(apperrors.ErrDuplicateCurve, "Curve %s already exists for %s", name, date)
}

func curveByIDError(id string, err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return apperrors.Newf(apperrors.ErrCurveNotFound, "Curve not found: %s", id)
	}
	return apperrors.Wrap(apperrors.ErrInternalServer, err)
}

func curveByKeyError(name string, date civil.Date, err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return apperrors.Newf(apperrors.ErrCurveNotFound, "Curve not found: %s on %s", name, date)
	}
	return apperrors.Wrap(apperrors.ErrInternalServer, err)
}
