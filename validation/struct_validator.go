package validation

import (
	stderrors "errors"
	"reflect"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/nestera/nestera-web/errors"
	"github.com/nestera/nestera-web/util"
)

var (
	engine     *validator.Validate
	engineOnce sync.Once
)

func structValidator() *validator.Validate {
	engineOnce.Do(func() {
		engine = validator.New(validator.WithRequiredStructEnabled())
		engine.RegisterTagNameFunc(configKey)
		_ = engine.RegisterValidation("size", func(fl validator.FieldLevel) bool {
			_, err := util.ParseSize(fl.Field().String())
			return err == nil
		})
	})
	return engine
}

// configKey names a field the way it is spelled in config: mapstructure
// tag, then json tag, then the Go name in snake_case.
func configKey(fld reflect.StructField) string {
	for _, tag := range []string{"mapstructure", "json"} {
		name, _, _ := strings.Cut(fld.Tag.Get(tag), ",")
		switch name {
		case "-":
			return ""
		case "":
			continue
		default:
			return name
		}
	}
	return toSnakeCase(fld.Name)
}

// Validate checks s against its `validate` tags.
func Validate(s any) error {
	return ValidateKeys("", s)
}

// ValidateKeys checks s and reports every failing field as a dotted key
// under prefix: prefix "server" and field Port give "server.port".
func ValidateKeys(prefix string, s any) error {
	err := structValidator().Struct(s)
	if err == nil {
		return nil
	}
	var failures validator.ValidationErrors
	if !stderrors.As(err, &failures) {
		return errors.Validation("validation failed").WithCause(err)
	}

	fields := make([]FieldError, len(failures))
	for i, fe := range failures {
		fields[i] = FieldError{Field: joinKey(prefix, fe.Namespace()), Message: describe(fe)}
	}
	return fieldsError(fields)
}

// joinKey drops the root struct name from a validator namespace.
func joinKey(prefix, namespace string) string {
	_, key, found := strings.Cut(namespace, ".")
	if !found {
		key = namespace
	}
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

var fixedMessages = map[string]string{
	"required":      "is required",
	"required_if":   "is required",
	"url":           "must be a valid URL",
	"http_url":      "must be a valid URL",
	"hostname_port": "must be a host:port address",
	"alphanum":      "must be uppercase alphanumeric",
	"uppercase":     "must be uppercase alphanumeric",
	"size":          "must be a size such as 512KB or 1MB",
}

func describe(fe validator.FieldError) string {
	if msg, ok := fixedMessages[fe.Tag()]; ok {
		return msg
	}
	unit := ""
	if fe.Kind() == reflect.String {
		unit = " characters"
	}
	switch fe.Tag() {
	case "min":
		return "must be at least " + fe.Param() + unit
	case "max":
		return "must be at most " + fe.Param() + unit
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "lte":
		return "must be less than or equal to " + fe.Param()
	case "len":
		return "must be exactly " + fe.Param() + " characters"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "startswith":
		return "must start with " + fe.Param()
	}
	return "is invalid"
}

func toSnakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
