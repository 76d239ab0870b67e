package models

// Instrument is one tenor point on a curve. CurveID is a non-owning
// back-reference; the owning Curve holds the instrument by value.
type Instrument struct {
	ID             string `gorm:"type:uuid;primaryKey" json:"id"`
	CurveID        string `gorm:"type:uuid;not null;index;uniqueIndex:uq_instrument_curve_tenor" json:"curve_id"`
	InstrumentType string `gorm:"size:20;not null" json:"instrument_type"`
	Tenor          string `gorm:"size:10;not null;uniqueIndex:uq_instrument_curve_tenor" json:"tenor"`
	Quote          *Quote `gorm:"foreignKey:InstrumentID;constraint:OnDelete:CASCADE" json:"quote,omitempty"`
}

// Key identifies the instrument in error messages and roll matching.
func (i *Instrument) Key() string {
	return i.InstrumentType + "/" + i.Tenor
}
