package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/yigit/campushub/internal/pkg/apperrors"
)

// Validation rule patterns
var (
	// Indian mobile number, ten digits without the country code
	PhonePattern = `^[6-9]\d{9}$`

	// Date of birth as entered on the sign-up form
	DatePattern = `^\d{4}-\d{2}-\d{2}$`

	// Password min length
	PasswordMinLength = 8
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	Phone *regexp.Regexp
	Date  *regexp.Regexp
}{
	Phone: regexp.MustCompile(PhonePattern),
	Date:  regexp.MustCompile(DatePattern),
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.SetTagName("binding")
	registerRules(v)
	return v
}

// registerRules installs the custom tags and json field naming on v.
func registerRules(v *validator.Validate) {
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return f.Name
	})
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return CompiledPatterns.Phone.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("date", func(fl validator.FieldLevel) bool {
		return CompiledPatterns.Date.MatchString(fl.Field().String())
	})
}

// RegisterGinRules makes gin's request binding use the same rules as Struct.
func RegisterGinRules() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		registerRules(v)
	}
}

// Struct validates obj against its binding tags. The returned error wraps
// apperrors.ErrValidationFailed and names the first offending field.
func Struct(obj interface{}) error {
	return Translate(validate.Struct(obj))
}

// Translate converts a validator error into an application error.
func Translate(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return apperrors.NewBadRequestError("Invalid request format")
	}
	fe := verrs[0]
	return apperrors.NewValidationError(FieldName(fe), FieldMessage(fe))
}

// FieldName is the client-facing name of the failing field.
func FieldName(fe validator.FieldError) string {
	name := fe.Field()
	if name == "" {
		return name
	}
	return strings.ToLower(name[:1]) + name[1:]
}

// FieldMessage renders a human-readable message for a failed rule.
func FieldMessage(fe validator.FieldError) string {
	field := FieldName(fe)
	switch fe.Tag() {
	case "required", "notblank":
		return field + " is required"
	case "oneof":
		return field + " must be one of: " + fe.Param()
	case "min":
		if fe.Kind() == reflect.String {
			return field + " must be at least " + fe.Param() + " characters"
		}
		return field + " must be at least " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String {
			return field + " must be at most " + fe.Param() + " characters"
		}
		return field + " must be at most " + fe.Param()
	case "gte":
		return field + " must be greater than or equal to " + fe.Param()
	case "len":
		return field + " must be exactly " + fe.Param() + " characters"
	case "numeric":
		return field + " must contain only digits"
	case "email":
		return field + " must be a valid email address"
	case "phone":
		return field + " must be a 10 digit mobile number"
	case "date":
		return field + " must be a date in YYYY-MM-DD format"
	default:
		return field + " is invalid"
	}
}
