package validators

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const (
	tagEmailShape = "emailshape"
	tagNotBlank   = "notblank"
)

var (
	engineOnce sync.Once
	engine     *validator.Validate
)

// gin binds with its own engine; it needs the custom tags before the first ShouldBind.
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := register(v); err != nil {
			panic(err)
		}
	}
}

func register(v *validator.Validate) error {
	v.RegisterTagNameFunc(jsonName)

	if err := v.RegisterValidation(tagEmailShape, func(fl validator.FieldLevel) bool {
		return IsEmail(fl.Field().String())
	}); err != nil {
		return err
	}
	return v.RegisterValidation(tagNotBlank, func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
}

func jsonName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	return name
}

func structEngine() *validator.Validate {
	engineOnce.Do(func() {
		engine = validator.New(validator.WithRequiredStructEnabled())
		engine.SetTagName("binding")
		if err := register(engine); err != nil {
			panic(err)
		}
	})
	return engine
}

// Struct runs the binding tags of s outside of a gin bind.
func Struct(s any) error {
	return structEngine().Struct(s)
}

func IsValidation(err error) bool {
	var verrs validator.ValidationErrors
	return errors.As(err, &verrs)
}

// Translate maps validator failures to per-field messages.
// Fields missing from messages get fallback. Anything that is not a validation error gives nil.
func Translate(err error, messages map[string]string, fallback string) FieldErrors {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	out := FieldErrors{}
	for _, fe := range verrs {
		if _, seen := out[fe.Field()]; seen {
			continue
		}
		if msg, ok := messages[fe.Field()]; ok {
			out[fe.Field()] = msg
			continue
		}
		out[fe.Field()] = fallback
	}
	return out
}
