package schedule

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/ratiba/core"
)

var (
	// custom validation tags & texts
	learnerGroupTag  = "learnergroup"
	learnerGroupText = "must be a group code A1-H2 or Ungrouped"

	gtFieldTag  = "gtfield"
	gtFieldText = "must be after start"
)

// InitValidators registers this package's custom validators.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(learnerGroupTag, learnerGroupValidation)
	core.RegisterCustomTranslation(validate, translator, learnerGroupTag, learnerGroupText)
	core.RegisterCustomTranslation(validate, translator, gtFieldTag, gtFieldText, true)
}

// Custom Validators

// learnerGroupValidation allows the 16 canonical group codes and the
// Ungrouped sentinel.
func learnerGroupValidation(fl validator.FieldLevel) bool {
	g := fl.Field().String()
	return g == Ungrouped || groupCodeRegex.MatchString(core.CleanString(g, true /* lower */))
}
