package validator

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

type sample struct {
	Currency       string `validate:"iso4217"`
	Tenor          string `validate:"tenor"`
	InstrumentType string `validate:"instrument_type"`
	Date           string `validate:"trading_date"`
}

func newValidate() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("iso4217", validateISO4217)
	_ = v.RegisterValidation("tenor", validateTenor)
	_ = v.RegisterValidation("instrument_type", validateInstrumentType)
	_ = v.RegisterValidation("trading_date", validateTradingDate)
	return v
}

func valid() sample {
	return sample{Currency: "USD", Tenor: "1M", InstrumentType: "SWAP", Date: "2025-06-02"}
}

func TestCustomValidators(t *testing.T) {
	v := newValidate()

	tests := []struct {
		name    string
		mutate  func(s *sample)
		wantErr bool
	}{
		{name: "all_valid", mutate: func(*sample) {}},
		{name: "eur", mutate: func(s *sample) { s.Currency = "EUR" }},
		{name: "lowercase_currency", mutate: func(s *sample) { s.Currency = "usd" }, wantErr: true},
		{name: "unknown_currency", mutate: func(s *sample) { s.Currency = "ZZZ" }, wantErr: true},
		{name: "overnight", mutate: func(s *sample) { s.Tenor = "ON" }},
		{name: "ten_years", mutate: func(s *sample) { s.Tenor = "10Y" }},
		{name: "two_weeks", mutate: func(s *sample) { s.Tenor = "2W" }},
		{name: "zero_tenor", mutate: func(s *sample) { s.Tenor = "0M" }, wantErr: true},
		{name: "bad_unit", mutate: func(s *sample) { s.Tenor = "3Q" }, wantErr: true},
		{name: "empty_tenor", mutate: func(s *sample) { s.Tenor = "" }, wantErr: true},
		{name: "future_type", mutate: func(s *sample) { s.InstrumentType = "FUTURE" }},
		{name: "money_market_type", mutate: func(s *sample) { s.InstrumentType = "MONEY_MARKET" }},
		{name: "lowercase_type", mutate: func(s *sample) { s.InstrumentType = "swap" }, wantErr: true},
		{name: "bad_date", mutate: func(s *sample) { s.Date = "2025-13-01" }, wantErr: true},
		{name: "us_style_date", mutate: func(s *sample) { s.Date = "06/02/2025" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid()
			tt.mutate(&s)
			err := v.Struct(s)
			if tt.wantErr && err == nil {
				t.Errorf("expected validation error for %+v", s)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected validation error: %v", err)
			}
		})
	}
}
