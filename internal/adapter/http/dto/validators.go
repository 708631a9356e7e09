package dto

import (
	"reflect"
	"regexp"
	"strings"

	"calfinance/internal/cardnumber"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const (
	minCardNumberLen = 12
	maxCardNumberLen = 19
)

// ownerNameRe allows letters in any script, spaces, dots, apostrophes and hyphens.
var ownerNameRe = regexp.MustCompile(`^[\p{L}][\p{L} .'\-]*$`)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterValidations(v)
	}
}

// RegisterValidations adds the card_number and owner_name rules to v.
func RegisterValidations(v *validator.Validate) {
	_ = v.RegisterValidation("card_number", validateCardNumber)
	_ = v.RegisterValidation("owner_name", validateOwnerName)
}

// validateCardNumber accepts 12 to 19 digits. Surrounding spaces are ignored.
func validateCardNumber(fl validator.FieldLevel) bool {
	s := strings.TrimSpace(fl.Field().String())
	if s == "" {
		return true // optional field; use "required" tag to enforce presence
	}
	return len(s) >= minCardNumberLen && len(s) <= maxCardNumberLen && cardnumber.IsDigits(s)
}

func validateOwnerName(fl validator.FieldLevel) bool {
	return ownerNameRe.MatchString(strings.TrimSpace(fl.Field().String()))
}

// SanitizeStruct trims and collapses whitespace in every exported string
// field (including *string) of a struct pointer.
func SanitizeStruct(v interface{}) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return
	}
	sanitizeFields(rv.Elem())
}

func sanitizeFields(rv reflect.Value) {
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if !f.CanSet() {
			continue
		}
		switch f.Kind() {
		case reflect.String:
			f.SetString(sanitize(f.String()))
		case reflect.Ptr:
			if f.IsNil() {
				continue
			}
			elem := f.Elem()
			if elem.Kind() == reflect.String {
				elem.SetString(sanitize(elem.String()))
			}
		}
	}
}

func sanitize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
