package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	validate     = newValidator()
	aliasDetails = map[string]string{}
)

// newValidator builds the validator shared by every input struct.
// - Uses JSON tag names in errors.
// - Registers alias tags for common validations.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterAlias("nonneg", "gte=0")
	return v
}

// RegisterAlias adds a tag alias to the shared validator; detail is what
// ToDetails reports when it fails. Call from package init, before any input
// is validated.
func RegisterAlias(alias, tags, detail string) {
	validate.RegisterAlias(alias, tags)
	aliasDetails[alias] = detail
}

// Struct validates s against its `validate` tags.
func Struct(s any) error {
	return validate.Struct(s)
}

// ToDetails converts validation/binding errors into a map[field]message suitable for API error.details.
func ToDetails(err error) map[string]string {
	if err == nil {
		return nil
	}

	var se *json.SyntaxError
	var ute *json.UnmarshalTypeError
	if errors.As(err, &se) || errors.As(err, &ute) {
		return map[string]string{"payload": "invalid json"}
	}
	var ne *NumberError
	if errors.As(err, &ne) {
		return map[string]string{"payload": ne.Error()}
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			out[fe.Field()] = formatFieldError(fe)
		}
		return out
	}

	return map[string]string{"payload": "invalid payload"}
}

func formatFieldError(fe validator.FieldError) string {
	tag := fe.Tag()
	param := fe.Param()
	if detail, ok := aliasDetails[tag]; ok {
		return detail
	}

	switch tag {
	case "required":
		return "is required"
	case "min":
		if isNumberKind(fe.Kind()) {
			return "must be at least " + param
		}
		return "must be at least " + param + " characters long"
	case "max":
		if isNumberKind(fe.Kind()) {
			return "must be at most " + param
		}
		return "must be at most " + param + " characters long"
	case "gte":
		return "must be greater than or equal to " + param
	case "lte":
		return "must be less than or equal to " + param
	case "nonneg":
		return "must not be negative"
	default:
		if param != "" {
			return fmt.Sprintf("validation failed for '%s' with parameter '%s'", tag, param)
		}
		return fmt.Sprintf("validation failed for '%s'", tag)
	}
}

func isNumberKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// FirstFailure returns the JSON field name and tag of the first rule that failed.
func FirstFailure(err error) (field, tag string, ok bool) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return verrs[0].Field(), verrs[0].Tag(), true
	}
	return "", "", false
}
