package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"wastetrack/internal/models"
)

// validateWasteType validates that a string is a known waste type
func validateWasteType(fl validator.FieldLevel) bool {
	return models.WasteType(fl.Field().String()).Valid()
}

// validateRole validates that a string is a known user role
func validateRole(fl validator.FieldLevel) bool {
	return models.Role(fl.Field().String()).Valid()
}

// RegisterCustomValidators registers all custom validators with gin's validator
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("wastetype", validateWasteType)
		_ = v.RegisterValidation("role", validateRole)
	}
}
