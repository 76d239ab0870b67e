package services

import (
	"context"
	"errors"
	"time"

	"ratecurves/internal/calendar"
	apperrors "ratecurves/internal/errors"
	"ratecurves/internal/logger"
	"ratecurves/internal/models"
	"ratecurves/internal/store"
	"ratecurves/internal/uuid"
)

// rollService advances a curve to a new trading date from its latest
// complete prior version.
type rollService struct {
	store store.Store
	now   Clock
}

// NewRollService creates a new RollServicer. A nil clock means time.Now.
func NewRollService(s store.Store, now Clock) RollServicer {
	return &rollService{store: s, now: now.orDefault()}
}

// Roll copies the structure and quotes of the newest complete version of
// req.CurveName dated strictly before req.TargetDate onto a fresh curve at
// req.TargetDate. An existing target is replaced only when req.Overwrite is
// set. Source lookup, the optional delete and the copy commit together.
func (s *rollService) Roll(ctx context.Context, req RollRequest) (*RollResult, error) {
	name := curveName(req.CurveName)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Curve name is required")
	}
	targetTS := calendar.ToVersionTimestamp(req.TargetDate)

	var result *RollResult
	err := s.store.Transaction(ctx, func(tx store.Store) error {
		source, err := s.findSource(ctx, tx, name, req)
		if err != nil {
			return err
		}

		overwritten := false
		existing, err := tx.FindCurve(ctx, name, targetTS)
		switch {
		case errors.Is(err, store.ErrNotFound):
		case err != nil:
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		case !req.Overwrite:
			return apperrors.Newf(apperrors.ErrRollTargetExists,
				"Curve %s already exists for %s; set overwrite to replace it", name, req.TargetDate)
		default:
			if err := tx.DeleteCurve(ctx, existing); err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			overwritten = true
		}

		now := s.now().UTC()
		target := &models.Curve{
			ID:          uuid.New(),
			Name:        name,
			CurveDate:   targetTS,
			Currency:    source.Currency,
			IndexName:   source.IndexName,
			CreatedAt:   now,
			TradingDate: req.TargetDate,
		}
		for i := range source.Instruments {
			target.Instruments = append(target.Instruments, models.Instrument{
				ID:             uuid.New(),
				InstrumentType: source.Instruments[i].InstrumentType,
				Tenor:          source.Instruments[i].Tenor,
			})
		}
		if err := tx.SaveCurve(ctx, target); err != nil {
			if errors.Is(err, store.ErrDuplicateKey) {
				return duplicateCurve(name, req.TargetDate)
			}
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		copied, err := s.copyQuotes(ctx, tx, source, target, now)
		if err != nil {
			return err
		}

		msg := "Rolled curve from " + source.TradingDate.String() + " to " + req.TargetDate.String()
		if overwritten {
			msg += " (overwrite)"
		}
		result = &RollResult{
			SourceCurveID:     source.ID,
			SourceDate:        source.TradingDate,
			TargetCurveID:     target.ID,
			TargetDate:        req.TargetDate,
			InstrumentsCopied: len(copied),
			Quotes:            quoteOutputs(copied),
			Overwritten:       overwritten,
			Message:           msg,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.For("roll").Infow("curve rolled",
		"curve", name,
		"source_date", result.SourceDate.String(),
		"target_date", result.TargetDate.String(),
		"overwrite", result.Overwritten,
		"instruments", result.InstrumentsCopied,
	)
	return result, nil
}

// findSource returns the newest complete version dated strictly before the
// target. Incomplete versions are skipped.
func (s *rollService) findSource(ctx context.Context, tx store.Store, name string, req RollRequest) (*models.Curve, error) {
	versions, err := tx.ListCurveVersions(ctx, name)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	targetTS := calendar.ToVersionTimestamp(req.TargetDate)
	for i := range versions {
		v := &versions[i]
		if !v.CurveDate.Before(targetTS) {
			continue
		}
		if !v.IsComplete() {
			logger.For("roll").Debugw("skipping incomplete version",
				"curve", name,
				"date", v.TradingDate.String(),
				"missing", v.MissingQuotes(),
			)
			continue
		}
		return v, nil
	}
	return nil, apperrors.Newf(apperrors.ErrNoEligibleSource,
		"No complete version of curve %s found before %s", name, req.TargetDate)
}

// copyQuotes gives every instrument of the stored target a fresh quote
// carrying the value of the source instrument with the same type and tenor.
// Any structural mismatch between source and target aborts the roll.
func (s *rollService) copyQuotes(ctx context.Context, tx store.Store, source, target *models.Curve, now time.Time) ([]models.Instrument, error) {
	instruments, err := tx.FindInstrumentsByCurve(ctx, target.ID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if len(instruments) != len(source.Instruments) {
		return nil, apperrors.Newf(apperrors.ErrIntegrityViolation,
			"Rolled curve %s has %d instruments, source %s has %d",
			target.ID, len(instruments), source.ID, len(source.Instruments))
	}

	byKey := make(map[string]*models.Instrument, len(instruments))
	for i := range instruments {
		byKey[instruments[i].Key()] = &instruments[i]
	}

	for i := range source.Instruments {
		src := &source.Instruments[i]
		dst, ok := byKey[src.Key()]
		if !ok {
			return nil, apperrors.Newf(apperrors.ErrIntegrityViolation,
				"No target instrument matches %s of source curve %s", src.Key(), source.ID)
		}
		if src.Quote == nil {
			return nil, apperrors.Newf(apperrors.ErrIntegrityViolation,
				"Source instrument %s has no quote", src.ID)
		}
		quote := &models.Quote{
			ID:           uuid.New(),
			InstrumentID: dst.ID,
			Value:        src.Quote.Value,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := tx.SaveQuote(ctx, quote); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		dst.Quote = quote
		delete(byKey, src.Key())
	}
	return instruments, nil
}
