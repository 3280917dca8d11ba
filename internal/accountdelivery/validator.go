package accountdelivery

import (
	"github.com/go-playground/validator/v10"

	"github.com/corebank/corebank/internal/domain"
)

// ValidAccountType is a binding validator for the account_type field.
var ValidAccountType validator.Func = func(fieldLevel validator.FieldLevel) bool {
	if accountType, ok := fieldLevel.Field().Interface().(string); ok {
		_, known := domain.MinimumDeposit(domain.AccountType(accountType))
		return known
	}

	return false
}

// ValidAccountStatus is a binding validator for the status field.
var ValidAccountStatus validator.Func = func(fieldLevel validator.FieldLevel) bool {
	if status, ok := fieldLevel.Field().Interface().(string); ok {
		return domain.ValidAccountStatus(domain.AccountStatus(status))
	}

	return false
}
