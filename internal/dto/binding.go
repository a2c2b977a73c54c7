package dto

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// currencyCodePattern matches the conventional 3-5 uppercase ASCII letter
// currency codes, e.g. "AUD", "BTC", "USDT".
var currencyCodePattern = regexp.MustCompile(`^[A-Z]{3,5}$`)

// RegisterCustomValidators installs the custom binding validators on gin's
// validator engine. Call once at startup before routes are served.
func RegisterCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("currencycode", func(fl validator.FieldLevel) bool {
		return currencyCodePattern.MatchString(fl.Field().String())
	})
}
