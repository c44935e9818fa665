package services

import (
	"github.com/go-playground/validator/v10"
)

// newDraftValidator registers the "score" rule, bounded by the configured range.
func newDraftValidator(minScore, maxScore int) (*validator.Validate, error) {
	validate := validator.New()
	err := validate.RegisterValidation("score", func(fl validator.FieldLevel) bool {
		score := fl.Field().Int()
		return score >= int64(minScore) && score <= int64(maxScore)
	})
	if err != nil {
		return nil, err
	}
	return validate, nil
}
