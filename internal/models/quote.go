package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuoteScale is the number of fractional digits every stored quote carries.
const QuoteScale = 2

// Quote is the market value attached to a single instrument.
type Quote struct {
	ID           string          `gorm:"type:uuid;primaryKey" json:"id"`
	InstrumentID string          `gorm:"type:uuid;not null;uniqueIndex" json:"instrument_id"`
	Value        decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"value"`
	CreatedAt    time.Time       `gorm:"not null;autoCreateTime:false" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"not null;autoUpdateTime:false" json:"updated_at"`
}

// NormalizeValue rounds v half-up (away from zero) to QuoteScale digits.
func NormalizeValue(v decimal.Decimal) decimal.Decimal {
	return v.Round(QuoteScale)
}
