package dto

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"settlement-ledger/pkg/apperror"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// safeStringRe matches provider ids, correlation ids and ledger references.
var safeStringRe = regexp.MustCompile(`^[a-zA-Z0-9_\-\.]+$`)

// maxMoney caps single API amounts well below the NUMERIC(18,2) column limit.
var maxMoney = decimal.NewFromInt(1_000_000_000)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterValidations(v)
	}
}

// RegisterValidations installs the custom tags used by the request DTOs and
// reports fields under their wire names.
func RegisterValidations(v *validator.Validate) {
	v.RegisterTagNameFunc(wireName)
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})
	_ = v.RegisterValidation("safe_id", func(fl validator.FieldLevel) bool {
		raw := fl.Field().String()
		return raw == "" || safeStringRe.MatchString(raw)
	})
	_ = v.RegisterValidation("money", func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(fl.Field().String())
		return err == nil && d.IsPositive() && d.Equal(d.Round(2)) && d.LessThanOrEqual(maxMoney)
	})
}

// wireName is the json (or, for query structs, form) name of a field.
func wireName(f reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}

// BindError turns a gin binding failure into a VAL_001 error. Validation
// failures are itemised per field; malformed input gets a generic message.
func BindError(err error) *apperror.AppError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperror.Validation("Malformed request: " + err.Error())
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = describe(fe)
	}
	return apperror.InvalidFields(fields)
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "uuid":
		return "must be a UUID"
	case "money":
		return fmt.Sprintf("must be a positive amount with at most 2 decimal places, up to %s", maxMoney)
	case "safe_id":
		return "may only contain letters, digits, '_', '-' and '.'"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "max":
		return "must be at most " + fe.Param() + lengthUnit(fe)
	case "min":
		return "must be at least " + fe.Param() + lengthUnit(fe)
	}
	return "failed " + fe.Tag() + " validation"
}

func lengthUnit(fe validator.FieldError) string {
	if fe.Kind() == reflect.String {
		return " characters"
	}
	return ""
}

// TrimStrings trims surrounding whitespace from every exported string field
// (including *string) of a struct pointer. Values are stored as sent; any
// escaping belongs to whoever renders them.
func TrimStrings(v any) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return
	}
	rv = rv.Elem()
	for i := range rv.NumField() {
		f := rv.Field(i)
		if !f.CanSet() {
			continue
		}
		if f.Kind() == reflect.Pointer && !f.IsNil() {
			f = f.Elem()
		}
		if f.Kind() == reflect.String {
			f.SetString(strings.TrimSpace(f.String()))
		}
	}
}
