// Package store is the persistence boundary of the curve engine. Services
// talk to the Store interface only; the gorm implementation lives alongside.
package store

import (
	"context"
	"errors"
	"time"

	"ratecurves/internal/models"
	"ratecurves/internal/pagination"
)

//go:generate mockgen -package=services -destination=../services/mock_store_test.go ratecurves/internal/store Store

var (
	// ErrNotFound is returned when a lookup by key or id matches no row.
	ErrNotFound = errors.New("store: record not found")
	// ErrDuplicateKey is returned when a write violates a unique constraint.
	ErrDuplicateKey = errors.New("store: duplicate key")
)

// Store is the read/write/delete contract the engine needs. Curves returned
// by the Find/List methods are full aggregates: instruments and their quotes
// are loaded with the curve.
type Store interface {
	FindCurve(ctx context.Context, name string, curveDate time.Time) (*models.Curve, error)
	FindCurveByID(ctx context.Context, id string) (*models.Curve, error)
	// ListCurveVersions returns every version of name, newest first.
	ListCurveVersions(ctx context.Context, name string) ([]models.Curve, error)
	PageCurveVersions(ctx context.Context, name string, page pagination.PageRequest) ([]models.Curve, int64, error)
	ListDistinctNames(ctx context.Context) ([]string, error)
	// ListVersionTimestamps returns the distinct version timestamps of name, newest first.
	ListVersionTimestamps(ctx context.Context, name string) ([]time.Time, error)
	ExistsCurve(ctx context.Context, name string, curveDate time.Time) (bool, error)

	// SaveCurve inserts the curve together with its instruments.
	SaveCurve(ctx context.Context, curve *models.Curve) error
	// DeleteCurve removes the curve, its instruments and their quotes.
	DeleteCurve(ctx context.Context, curve *models.Curve) error
	// ReplaceInstruments drops every instrument (and quote) of the curve and
	// inserts the given ones in its place.
	ReplaceInstruments(ctx context.Context, curveID string, instruments []models.Instrument) error

	FindInstrumentsByCurve(ctx context.Context, curveID string) ([]models.Instrument, error)

	FindQuoteByInstrument(ctx context.Context, instrumentID string) (*models.Quote, error)
	FindQuotesByCurve(ctx context.Context, curveID string) ([]models.Quote, error)
	SaveQuote(ctx context.Context, quote *models.Quote) error
	DeleteQuotes(ctx context.Context, quotes []models.Quote) error

	// Transaction runs fn against a Store bound to a single database
	// transaction. Returning an error from fn rolls everything back.
	Transaction(ctx context.Context, fn func(tx Store) error) error
}
