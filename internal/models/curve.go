package models

import (
	"time"

	"cloud.google.com/go/civil"
	"gorm.io/gorm"

	"ratecurves/internal/calendar"
)

// Curve is a named term-structure snapshot pinned to one trading date.
// (Name, CurveDate) is the natural key; CurveDate is always the canonical
// version timestamp produced by the calendar package.
type Curve struct {
	ID          string       `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string       `gorm:"size:100;not null;uniqueIndex:uq_curve_name_date" json:"name"`
	CurveDate   time.Time    `gorm:"not null;uniqueIndex:uq_curve_name_date" json:"curve_date"`
	Currency    string       `gorm:"size:3;not null" json:"currency"`
	IndexName   string       `gorm:"size:50;not null" json:"index"`
	CreatedAt   time.Time    `gorm:"not null;autoCreateTime:false" json:"created_at"`
	Instruments []Instrument `gorm:"foreignKey:CurveID;constraint:OnDelete:CASCADE" json:"instruments"`

	TradingDate civil.Date `gorm:"-" json:"trading_date"`
}

// AfterFind derives the trading date from the stored version timestamp.
func (c *Curve) AfterFind(tx *gorm.DB) error {
	c.CurveDate = c.CurveDate.UTC()
	c.TradingDate = calendar.ToTradingDate(c.CurveDate)
	return nil
}

// Tenors returns the curve's tenor codes in instrument order.
func (c *Curve) Tenors() []string {
	tenors := make([]string, 0, len(c.Instruments))
	for i := range c.Instruments {
		tenors = append(tenors, c.Instruments[i].Tenor)
	}
	return tenors
}

// MissingQuotes lists "TYPE/TENOR" for every instrument without a quote.
// An empty result means the curve is complete.
func (c *Curve) MissingQuotes() []string {
	var missing []string
	for i := range c.Instruments {
		if c.Instruments[i].Quote == nil {
			missing = append(missing, c.Instruments[i].Key())
		}
	}
	return missing
}

// IsComplete reports whether every instrument carries a quote.
func (c *Curve) IsComplete() bool {
	return len(c.MissingQuotes()) == 0
}
