package store

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ratecurves/internal/models"
	"ratecurves/internal/pagination"
)

// gormStore implements Store on top of a gorm handle. The same type serves
// both the root connection and transaction-scoped handles.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a Store backed by db.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

// AutoMigrate creates or updates the curve tables. Used for SQLite; the
// PostgreSQL schema is owned by the SQL migrations.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Curve{}, &models.Instrument{}, &models.Quote{})
}

// aggregate loads instruments ordered by tenor with their quotes.
func aggregate(db *gorm.DB) *gorm.DB {
	return db.Preload("Instruments", func(db *gorm.DB) *gorm.DB {
		return db.Order("instruments.tenor ASC")
	}).Preload("Instruments.Quote")
}

func (s *gormStore) FindCurve(ctx context.Context, name string, curveDate time.Time) (*models.Curve, error) {
	var curve models.Curve
	err := aggregate(s.db.WithContext(ctx)).
		Where("name = ? AND curve_date = ?", name, curveDate.UTC()).
		First(&curve).Error
	if err != nil {
		return nil, translate(err)
	}
	return &curve, nil
}

func (s *gormStore) FindCurveByID(ctx context.Context, id string) (*models.Curve, error) {
	var curve models.Curve
	if err := aggregate(s.db.WithContext(ctx)).Where("id = ?", id).First(&curve).Error; err != nil {
		return nil, translate(err)
	}
	return &curve, nil
}

func (s *gormStore) ListCurveVersions(ctx context.Context, name string) ([]models.Curve, error) {
	var curves []models.Curve
	err := aggregate(s.db.WithContext(ctx)).
		Where("name = ?", name).
		Order("curve_date DESC").
		Find(&curves).Error
	if err != nil {
		return nil, err
	}
	return curves, nil
}

func (s *gormStore) PageCurveVersions(ctx context.Context, name string, page pagination.PageRequest) ([]models.Curve, int64, error) {
	page.Defaults()

	var total int64
	base := s.db.WithContext(ctx).Model(&models.Curve{}).Where("name = ?", name)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var curves []models.Curve
	err := aggregate(s.db.WithContext(ctx)).
		Where("name = ?", name).
		Order("curve_date DESC").
		Scopes(pagination.Paginate(page)).
		Find(&curves).Error
	if err != nil {
		return nil, 0, err
	}
	return curves, total, nil
}

func (s *gormStore) ListDistinctNames(ctx context.Context) ([]string, error) {
	var names []string
	err := s.db.WithContext(ctx).Model(&models.Curve{}).
		Distinct("name").
		Order("name ASC").
		Pluck("name", &names).Error
	if err != nil {
		return nil, err
	}
	return names, nil
}

func (s *gormStore) ListVersionTimestamps(ctx context.Context, name string) ([]time.Time, error) {
	var stamps []time.Time
	err := s.db.WithContext(ctx).Model(&models.Curve{}).
		Where("name = ?", name).
		Distinct("curve_date").
		Order("curve_date DESC").
		Pluck("curve_date", &stamps).Error
	if err != nil {
		return nil, err
	}
	for i := range stamps {
		stamps[i] = stamps[i].UTC()
	}
	return stamps, nil
}

func (s *gormStore) ExistsCurve(ctx context.Context, name string, curveDate time.Time) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Curve{}).
		Where("name = ? AND curve_date = ?", name, curveDate.UTC()).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *gormStore) SaveCurve(ctx context.Context, curve *models.Curve) error {
	db := s.db.WithContext(ctx)
	curve.CurveDate = curve.CurveDate.UTC()
	if err := db.Omit(clause.Associations).Create(curve).Error; err != nil {
		return translate(err)
	}
	return insertInstruments(db, curve.ID, curve.Instruments)
}

func (s *gormStore) DeleteCurve(ctx context.Context, curve *models.Curve) error {
	db := s.db.WithContext(ctx)
	if err := deleteInstruments(db, curve.ID); err != nil {
		return err
	}
	result := db.Where("id = ?", curve.ID).Delete(&models.Curve{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *gormStore) ReplaceInstruments(ctx context.Context, curveID string, instruments []models.Instrument) error {
	db := s.db.WithContext(ctx)
	if err := deleteInstruments(db, curveID); err != nil {
		return err
	}
	return insertInstruments(db, curveID, instruments)
}

// insertInstruments writes instruments, and any quotes they carry, under curveID.
func insertInstruments(db *gorm.DB, curveID string, instruments []models.Instrument) error {
	if len(instruments) == 0 {
		return nil
	}
	var quotes []*models.Quote
	for i := range instruments {
		instruments[i].CurveID = curveID
		if q := instruments[i].Quote; q != nil {
			q.InstrumentID = instruments[i].ID
			quotes = append(quotes, q)
		}
	}
	if err := db.Omit(clause.Associations).Create(&instruments).Error; err != nil {
		return translate(err)
	}
	if len(quotes) == 0 {
		return nil
	}
	return translate(db.Create(quotes).Error)
}

// deleteInstruments removes a curve's quotes and instruments. The cascade is
// issued explicitly so it holds on databases without enforced foreign keys.
func deleteInstruments(db *gorm.DB, curveID string) error {
	instrumentIDs := db.Model(&models.Instrument{}).Select("id").Where("curve_id = ?", curveID)
	if err := db.Where("instrument_id IN (?)", instrumentIDs).Delete(&models.Quote{}).Error; err != nil {
		return err
	}
	return db.Where("curve_id = ?", curveID).Delete(&models.Instrument{}).Error
}

func (s *gormStore) FindInstrumentsByCurve(ctx context.Context, curveID string) ([]models.Instrument, error) {
	var instruments []models.Instrument
	err := s.db.WithContext(ctx).
		Preload("Quote").
		Where("curve_id = ?", curveID).
		Order("tenor ASC").
		Find(&instruments).Error
	if err != nil {
		return nil, err
	}
	return instruments, nil
}

func (s *gormStore) FindQuoteByInstrument(ctx context.Context, instrumentID string) (*models.Quote, error) {
	var quote models.Quote
	if err := s.db.WithContext(ctx).Where("instrument_id = ?", instrumentID).First(&quote).Error; err != nil {
		return nil, translate(err)
	}
	return &quote, nil
}

func (s *gormStore) FindQuotesByCurve(ctx context.Context, curveID string) ([]models.Quote, error) {
	var quotes []models.Quote
	err := s.db.WithContext(ctx).
		Joins("JOIN instruments ON instruments.id = quotes.instrument_id").
		Where("instruments.curve_id = ?", curveID).
		Order("instruments.tenor ASC").
		Find(&quotes).Error
	if err != nil {
		return nil, err
	}
	return quotes, nil
}

// SaveQuote inserts a new quote or updates an existing one in place.
func (s *gormStore) SaveQuote(ctx context.Context, quote *models.Quote) error {
	return translate(s.db.WithContext(ctx).Save(quote).Error)
}

func (s *gormStore) DeleteQuotes(ctx context.Context, quotes []models.Quote) error {
	if len(quotes) == 0 {
		return nil
	}
	ids := make([]string, 0, len(quotes))
	for i := range quotes {
		ids = append(ids, quotes[i].ID)
	}
	return s.db.WithContext(ctx).Where("id IN ?", ids).Delete(&models.Quote{}).Error
}

func (s *gormStore) Transaction(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormStore{db: tx})
	})
}

// translate maps driver-level errors onto the store sentinels.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey), isUniqueConstraintError(err):
		return errors.Join(ErrDuplicateKey, err)
	default:
		return err
	}
}

// isUniqueConstraintError checks if a GORM error is a unique constraint violation.
func isUniqueConstraintError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || // SQLite
		strings.Contains(msg, "duplicate key value violates unique constraint") // PostgreSQL
}
