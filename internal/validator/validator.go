// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"bondbazaar/internal/catalog"
	"bondbazaar/internal/models"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("risk_tag", validateRiskTag)
		_ = v.RegisterValidation("sort_key", validateSortKey)
	}
}

func validateRiskTag(fl validator.FieldLevel) bool {
	switch models.RiskTag(fl.Field().String()) {
	case models.RiskTagSecured, models.RiskTagUnsecured,
		models.RiskTagSeniorSecured, models.RiskTagSecuredByMovableAssets:
		return true
	}
	return false
}

func validateSortKey(fl validator.FieldLevel) bool {
	_, ok := catalog.ParseSortKey(fl.Field().String())
	return ok
}
