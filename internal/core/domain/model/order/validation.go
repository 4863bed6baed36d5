package order

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	entranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/shopspring/decimal"
)

// Violation is one failed field constraint reported by Order.Validate.
type Violation struct {
	// Field is the json path of the offending field, e.g. "items[1].quantity".
	Field   string
	Message string
}

// String renders "field: message", or just the message when Field is empty.
func (v Violation) String() string {
	if v.Field == "" {
		return v.Message
	}
	return v.Field + ": " + v.Message
}

// orderConstraints carries the order-level fields that have declared constraints.
type orderConstraints struct {
	Status         Status          `json:"status" validate:"enum"`
	PaymentStatus  PaymentStatus   `json:"paymentStatus" validate:"enum"`
	DiscountAmount decimal.Decimal `json:"discountAmount" validate:"nonneg"`
}

type enumValue interface {
	Validate() error
}

type fieldValidator struct {
	validate *validator.Validate
	trans    ut.Translator
}

// fields is shared by every order; validator.Validate caches struct metadata
// and is safe for concurrent use.
var fields = mustNewFieldValidator()

func mustNewFieldValidator() *fieldValidator {
	fv, err := newFieldValidator()
	if err != nil {
		panic(err)
	}
	return fv
}

func newFieldValidator() (*fieldValidator, error) {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	if err := errors.Join(
		v.RegisterValidation("notblank", validators.NotBlank),
		v.RegisterValidation("enum", isKnownEnum),
		v.RegisterValidation("nonneg", isNonNegativeDecimal),
	); err != nil {
		return nil, err
	}

	english := en.New()
	trans, _ := ut.New(english, english).GetTranslator("en")

	if err := errors.Join(
		entranslations.RegisterDefaultTranslations(v, trans),
		registerTranslation(v, trans, "notblank", "{0} is a required field"),
		registerTranslation(v, trans, "enum", "{0} must be a known value"),
		registerTranslation(v, trans, "nonneg", "{0} must be 0 or greater"),
	); err != nil {
		return nil, err
	}

	return &fieldValidator{validate: v, trans: trans}, nil
}

func registerTranslation(v *validator.Validate, trans ut.Translator, tag, text string) error {
	return v.RegisterTranslation(tag, trans,
		func(t ut.Translator) error {
			return t.Add(tag, text, true)
		},
		func(t ut.Translator, fe validator.FieldError) string {
			msg, err := t.T(tag, fe.Field())
			if err != nil {
				return fe.Error()
			}
			return msg
		},
	)
}

// isNonNegativeDecimal compares the exact decimal value; fields of any other
// type fail.
func isNonNegativeDecimal(fl validator.FieldLevel) bool {
	d, ok := fl.Field().Interface().(decimal.Decimal)
	return ok && !d.IsNegative()
}

func isKnownEnum(fl validator.FieldLevel) bool {
	e, ok := fl.Field().Interface().(enumValue)
	return ok && e.Validate() == nil
}

// check validates s and converts every failed constraint into a Violation whose
// Field is prefixed with path.
func (fv *fieldValidator) check(s any, path string) []Violation {
	err := fv.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []Violation{{Field: strings.TrimSuffix(path, "."), Message: err.Error()}}
	}

	violations := make([]Violation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, Violation{
			Field:   path + fe.Field(),
			Message: fe.Translate(fv.trans),
		})
	}
	return violations
}
