// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("payment_method", validatePaymentMethod)
		_ = v.RegisterValidation("debt_status", validateDebtStatus)
		_ = v.RegisterValidation("checklist_item_type", validateChecklistItemType)
	}
}

func validatePaymentMethod(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "debit", "credit":
		return true
	}
	return false
}

func validateDebtStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "active", "settled":
		return true
	}
	return false
}

func validateChecklistItemType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "fixed", "transaction", "card", "debt":
		return true
	}
	return false
}
