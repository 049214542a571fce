// Package validator adapts go-playground/validator to echo.
package validator

import (
	"reflect"
	"strings"

	"orderbot/internal/domain/entity"
	"orderbot/internal/errors"

	playground "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type requestValidator struct {
	validate *playground.Validate
}

// New returns an echo.Validator with the shop's custom tags registered:
// "category", "order_status", "payment_method" and "payment_status".
func New() echo.Validator {
	validate := playground.New(playground.WithRequiredStructEnabled())

	// Report JSON field names rather than Go field names.
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	_ = validate.RegisterValidation("category", func(fl playground.FieldLevel) bool {
		return entity.Category(fl.Field().String()).IsValid()
	})
	_ = validate.RegisterValidation("order_status", func(fl playground.FieldLevel) bool {
		return entity.OrderStatus(fl.Field().String()).IsValid()
	})
	_ = validate.RegisterValidation("payment_method", func(fl playground.FieldLevel) bool {
		return entity.PaymentMethod(fl.Field().String()).IsValid()
	})
	_ = validate.RegisterValidation("payment_status", func(fl playground.FieldLevel) bool {
		return entity.PaymentStatus(fl.Field().String()).IsValid()
	})

	return &requestValidator{validate: validate}
}

// Validate returns a readable error listing every failed field.
func (v *requestValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describe(fe))
	}

	return errors.New(strings.Join(msgs, "; "))
}

func describe(fe playground.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return fe.Field() + " must be a valid email"
	case "oneof":
		return fe.Field() + " must be one of [" + fe.Param() + "]"
	case "max":
		return fe.Field() + " must be at most " + fe.Param()
	case "gt", "gte":
		return fe.Field() + " must be " + fe.Tag() + " " + fe.Param()
	default:
		return fe.Field() + " is invalid (" + fe.Tag() + ")"
	}
}
