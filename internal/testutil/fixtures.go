package testutil

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ratecurves/internal/calendar"
	"ratecurves/internal/models"
	"ratecurves/internal/uuid"
)

// FixedNow is the clock value fixtures stamp on the rows they create.
var FixedNow = time.Date(2025, 1, 2, 12, 0, 0, 0, time.UTC)

// Date is shorthand for civil.Date{Year, Month, Day}.
func Date(year int, month time.Month, day int) civil.Date {
	return civil.Date{Year: year, Month: month, Day: day}
}

// CreateTestCurve inserts an unquoted USD/SOFR curve with one SWAP instrument
// per tenor and returns it with instruments loaded.
func CreateTestCurve(t *testing.T, db *gorm.DB, name string, date civil.Date, tenors ...string) *models.Curve {
	t.Helper()

	if len(tenors) == 0 {
		tenors = []string{"1M", "3M", "1Y"}
	}

	curve := &models.Curve{
		ID:          uuid.New(),
		Name:        name,
		CurveDate:   calendar.ToVersionTimestamp(date),
		Currency:    "USD",
		IndexName:   "SOFR",
		CreatedAt:   FixedNow,
		TradingDate: date,
	}
	if err := db.Omit(clause.Associations).Create(curve).Error; err != nil {
		t.Fatalf("failed to create test curve: %v", err)
	}

	for _, tenor := range tenors {
		inst := models.Instrument{
			ID:             uuid.New(),
			CurveID:        curve.ID,
			InstrumentType: "SWAP",
			Tenor:          tenor,
		}
		if err := db.Omit(clause.Associations).Create(&inst).Error; err != nil {
			t.Fatalf("failed to create test instrument %s: %v", tenor, err)
		}
		curve.Instruments = append(curve.Instruments, inst)
	}
	return curve
}

// QuoteTestCurve attaches a quote to the curve's instruments in order, one
// value per instrument. Instruments beyond len(values) stay unquoted.
func QuoteTestCurve(t *testing.T, db *gorm.DB, curve *models.Curve, values ...string) {
	t.Helper()

	for i, v := range values {
		if i >= len(curve.Instruments) {
			t.Fatalf("curve %s has %d instruments, got %d values", curve.Name, len(curve.Instruments), len(values))
		}
		quote := &models.Quote{
			ID:           uuid.New(),
			InstrumentID: curve.Instruments[i].ID,
			Value:        decimal.RequireFromString(v),
			CreatedAt:    FixedNow,
			UpdatedAt:    FixedNow,
		}
		if err := db.Create(quote).Error; err != nil {
			t.Fatalf("failed to create test quote: %v", err)
		}
		curve.Instruments[i].Quote = quote
	}
}

// CreateTestCompleteCurve creates a curve and quotes every tenor with values.
func CreateTestCompleteCurve(t *testing.T, db *gorm.DB, name string, date civil.Date, tenors []string, values []string) *models.Curve {
	t.Helper()

	if len(tenors) != len(values) {
		t.Fatalf("tenors and values differ in length: %d vs %d", len(tenors), len(values))
	}
	curve := CreateTestCurve(t, db, name, date, tenors...)
	QuoteTestCurve(t, db, curve, values...)
	return curve
}

// CountRows returns the number of rows of model.
func CountRows(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()

	var count int64
	if err := db.Model(model).Count(&count).Error; err != nil {
		t.Fatalf("failed to count rows: %v", err)
	}
	return count
}
