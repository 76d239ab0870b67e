// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"golang.org/x/text/currency"

	"ratecurves/internal/calendar"
)

var (
	currencyCodeRegex   = regexp.MustCompile(`^[A-Z]{3}$`)
	tenorRegex          = regexp.MustCompile(`^(ON|TN|SN|[1-9][0-9]{0,2}[DWMY])$`)
	instrumentTypeRegex = regexp.MustCompile(`^[A-Z][A-Z0-9_]{0,19}$`)
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("iso4217", validateISO4217)
		_ = v.RegisterValidation("tenor", validateTenor)
		_ = v.RegisterValidation("instrument_type", validateInstrumentType)
		_ = v.RegisterValidation("trading_date", validateTradingDate)
	}
}

// validateISO4217 accepts upper-case ISO 4217 codes known to x/text.
func validateISO4217(fl validator.FieldLevel) bool {
	code := fl.Field().String()
	if !currencyCodeRegex.MatchString(code) {
		return false
	}
	_, err := currency.ParseISO(code)
	return err == nil
}

// validateTenor accepts ON, TN, SN and <n><D|W|M|Y> with n in 1..999.
func validateTenor(fl validator.FieldLevel) bool {
	return tenorRegex.MatchString(fl.Field().String())
}

func validateInstrumentType(fl validator.FieldLevel) bool {
	return instrumentTypeRegex.MatchString(fl.Field().String())
}

// validateTradingDate accepts YYYY-MM-DD calendar dates.
func validateTradingDate(fl validator.FieldLevel) bool {
	_, err := calendar.ParseDate(fl.Field().String())
	return err == nil
}
