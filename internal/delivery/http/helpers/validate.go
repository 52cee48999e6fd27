package helpers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"eventsapi/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report JSON property names rather than Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateStruct runs the struct tag rules on v and converts failures into field errors.
func ValidateStruct(v any) domain.FieldErrors {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	objectName := objectNameOf(v)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return domain.FieldErrors{{ObjectName: objectName, Code: domain.CodeInvalidFormat, DefaultMessage: err.Error()}}
	}
	out := make(domain.FieldErrors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, domain.FieldError{
			ObjectName:     objectName,
			Field:          fe.Field(),
			Code:           fe.Tag(),
			DefaultMessage: messageFor(fe),
			RejectedValue:  fe.Value(),
		})
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must not be empty"
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "lte":
		return "must be less than or equal to " + fe.Param()
	}
	return fmt.Sprintf("failed on the %q rule", fe.Tag())
}

// objectNameOf returns the lower camel case type name of v, e.g. "eventDto".
func objectNameOf(v any) string {
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	name := []rune(t.Name())
	if len(name) == 0 {
		return "object"
	}
	name[0] = unicode.ToLower(name[0])
	return string(name)
}

// DecodeAndValidate decodes the request body into dest (with DisallowUnknownFields)
// and runs the struct tag rules. An empty body is validated as an empty object. On
// failure it writes a 400 with the field error collection and returns false.
// Callers should return immediately when DecodeAndValidate returns false.
func DecodeAndValidate(w http.ResponseWriter, r *http.Request, dest any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dest); err != nil && !errors.Is(err, io.EOF) {
		WriteFieldErrors(w, domain.FieldErrors{{
			ObjectName:     objectNameOf(dest),
			Code:           domain.CodeInvalidFormat,
			DefaultMessage: err.Error(),
		}})
		return false
	}
	if errs := ValidateStruct(dest); errs.HasErrors() {
		WriteFieldErrors(w, errs)
		return false
	}
	return true
}
