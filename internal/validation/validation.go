// Package validation checks request payloads before they reach the services.
package validation

import (
	"errors"
	"reflect"
	"strings"

	"moodrealm/internal/models"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	_ = v.RegisterValidation("mood", func(fl validator.FieldLevel) bool {
		_, ok := models.ParseMood(fl.Field().String())
		return ok
	})
	_ = v.RegisterValidation("contenttype", func(fl validator.FieldLevel) bool {
		_, ok := models.ParseContentType(fl.Field().String())
		return ok
	})
	_ = v.RegisterValidation("privacy", func(fl validator.FieldLevel) bool {
		_, ok := models.ParsePrivacy(fl.Field().String())
		return ok
	})
	_ = v.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		_, ok := models.ParseRole(fl.Field().String())
		return ok
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	return v
}

// Struct validates s against its `validate` tags. The first failing field is
// reported as a ValidationError. A field's `msg` tag is either one message for
// every rule or a list of rule=message pairs separated by semicolons, e.g.
// `msg:"notblank=Mood is required;mood=Invalid mood"`.
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return models.NewValidationError("Invalid request body")
	}

	fe := verrs[0]
	if msg := ruleMessage(fieldTag(s, fe.StructNamespace()), fe.Tag()); msg != "" {
		return models.NewValidationError(msg)
	}
	return models.NewValidationError(defaultMessage(fe))
}

// fieldTag resolves a namespace such as "chatRequest.History[1].Role" to the
// `msg` tag of the innermost field.
func fieldTag(s any, namespace string) string {
	t := reflect.TypeOf(s)
	parts := strings.Split(namespace, ".")
	if len(parts) < 2 {
		return ""
	}

	var tag string
	for _, part := range parts[1:] {
		if i := strings.IndexByte(part, '['); i >= 0 {
			part = part[:i]
		}
		t = elemType(t)
		if t.Kind() != reflect.Struct {
			return ""
		}
		f, ok := t.FieldByName(part)
		if !ok {
			return ""
		}
		tag = f.Tag.Get("msg")
		t = f.Type
	}
	return tag
}

func elemType(t reflect.Type) reflect.Type {
	for {
		switch t.Kind() {
		case reflect.Pointer, reflect.Slice, reflect.Array:
			t = t.Elem()
		default:
			return t
		}
	}
}

func ruleMessage(tag, rule string) string {
	if tag == "" || !strings.Contains(tag, "=") {
		return tag
	}
	for _, pair := range strings.Split(tag, ";") {
		name, msg, ok := strings.Cut(pair, "=")
		if ok && strings.TrimSpace(name) == rule {
			return strings.TrimSpace(msg)
		}
	}
	return ""
}

func defaultMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return fe.Field() + " is required"
	case "max":
		return fe.Field() + " must be at most " + fe.Param() + " characters"
	case "min":
		return fe.Field() + " must be at least " + fe.Param() + " characters"
	case "mood":
		return "Invalid mood"
	case "contenttype":
		return "Invalid content type"
	case "role":
		return "Invalid role"
	default:
		return "Invalid " + fe.Field()
	}
}

// ValidateEmail checks that email is a syntactically valid address.
func ValidateEmail(email string) error {
	if err := validate.Var(email, "required,email,max=254"); err != nil {
		return models.NewValidationError("Please include a valid email")
	}
	return nil
}

// ValidatePassword enforces the minimum password length.
func ValidatePassword(password string) error {
	if len(password) < 6 {
		return models.NewValidationError("Password must be 6 or more characters")
	}
	if len(password) > 72 {
		return models.NewValidationError("Password must be at most 72 characters")
	}
	return nil
}
