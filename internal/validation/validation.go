// Package validation checks inbound request shapes before they reach the
// relationship engine.
package validation

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Rules reported in ValidationError.Rule besides validator tag names.
const (
	RuleMalformed = "malformed"
	RuleLatLon    = "latlon"
)

// ValidationError describes the first field that failed validation.
type ValidationError struct {
	Field string
	Rule  string
	Param string
}

func (e *ValidationError) Error() string {
	if e.Param != "" {
		return fmt.Sprintf("field %s failed %s=%s", e.Field, e.Rule, e.Param)
	}
	return fmt.Sprintf("field %s failed %s", e.Field, e.Rule)
}

// Missing reports whether the field was absent or empty.
func (e *ValidationError) Missing() bool {
	return e.Rule == "required"
}

var registerOnce sync.Once

// rules are the custom validator tags, keyed by tag name.
var rules = map[string]validator.Func{
	RuleLatLon: func(fl validator.FieldLevel) bool {
		return IsLatLon(fl.Field().String())
	},
}

// Register installs the custom rules on gin's validator. It is safe to call
// more than once. It panics if a rule cannot be installed, since every field
// tagged with it would then fail validation.
func Register() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			panic(fmt.Sprintf("validation: unsupported binding validator %T", binding.Validator.Engine()))
		}
		if err := registerRules(v, rules); err != nil {
			panic(fmt.Sprintf("validation: %v", err))
		}
	})
}

func registerRules(v *validator.Validate, rules map[string]validator.Func) error {
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %q: %w", tag, err)
		}
	}
	return nil
}

// IsLatLon reports whether s is a "lat,lon" pair of finite numbers.
func IsLatLon(s string) bool {
	lat, lon, ok := strings.Cut(s, ",")
	if !ok {
		return false
	}
	return isNumber(lat) && isNumber(lon)
}

// SplitLatLon returns the two halves of a location string, or "0.0" for
// both when the location is unset or malformed.
func SplitLatLon(s string) (string, string) {
	lat, lon, ok := strings.Cut(s, ",")
	if !ok {
		return "0.0", "0.0"
	}
	return strings.TrimSpace(lat), strings.TrimSpace(lon)
}

func isNumber(s string) bool {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return err == nil && !math.IsNaN(f) && !math.IsInf(f, 0)
}

// FromBinding converts an error from gin's ShouldBind into a ValidationError.
func FromBinding(err error) *ValidationError {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return &ValidationError{Field: fe.Field(), Rule: fe.Tag(), Param: fe.Param()}
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve
	}
	return &ValidationError{Field: "body", Rule: RuleMalformed}
}
