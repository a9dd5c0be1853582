package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/mail"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidProperty is returned when a property value does not fit its definition.
var ErrInvalidProperty = errors.New("invalid property")

var colorPattern = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ValidateProperties checks a (possibly sparse) property bag against the
// definitions of ct. Absent keys are fine; present keys must be declared and
// hold a value of the declared kind.
func ValidateProperties(ct *ComponentType, props map[string]any) error {
	return validateFields(ct.Properties, props, "")
}

func validateFields(defs []PropertyDefinition, props map[string]any, prefix string) error {
	byName := make(map[string]PropertyDefinition, len(defs))
	for _, def := range defs {
		byName[def.Name] = def
	}

	for name, value := range props {
		def, ok := byName[name]
		if !ok {
			return fmt.Errorf("%w: %s%s is not declared", ErrInvalidProperty, prefix, name)
		}
		if err := validateValue(def, value, prefix+name); err != nil {
			return err
		}
	}

	return nil
}

func validateValue(def PropertyDefinition, value any, path string) error {
	if value == nil {
		return fmt.Errorf("%w: %s must not be null", ErrInvalidProperty, path)
	}

	switch def.Kind {
	case KindNumber:
		if !isNumber(value) {
			return fmt.Errorf("%w: %s must be a number", ErrInvalidProperty, path)
		}
		return nil
	case KindList:
		items, ok := asList(value)
		if !ok {
			return fmt.Errorf("%w: %s must be a list", ErrInvalidProperty, path)
		}
		for i, item := range items {
			fields, ok := item.(map[string]any)
			if !ok {
				return fmt.Errorf("%w: %s[%d] must be an object", ErrInvalidProperty, path, i)
			}
			if err := validateFields(def.Fields, fields, fmt.Sprintf("%s[%d].", path, i)); err != nil {
				return err
			}
		}
		return nil
	}

	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("%w: %s must be a string", ErrInvalidProperty, path)
	}
	if s == "" {
		return nil
	}

	switch def.Kind {
	case KindEmail:
		addr, err := mail.ParseAddress(s)
		if err != nil || addr.Address != s {
			return fmt.Errorf("%w: %s must be an email address", ErrInvalidProperty, path)
		}
	case KindColor:
		if !ValidColor(s) {
			return fmt.Errorf("%w: %s must be a hex color", ErrInvalidProperty, path)
		}
	case KindSelect:
		for _, opt := range def.Options {
			if opt == s {
				return nil
			}
		}
		return fmt.Errorf("%w: %s must be one of %s", ErrInvalidProperty, path, strings.Join(def.Options, ", "))
	}

	return nil
}

func isNumber(value any) bool {
	switch v := value.(type) {
	case float64, float32, int, int32, int64, uint, uint32, uint64:
		return true
	case json.Number:
		_, err := v.Float64()
		return err == nil
	case string:
		_, err := strconv.ParseFloat(v, 64)
		return err == nil
	}
	return false
}

func asList(value any) ([]any, bool) {
	switch v := value.(type) {
	case []any:
		return v, true
	case []map[string]any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = item
		}
		return out, true
	}
	return nil, false
}

// ValidColor reports whether s is a #rgb or #rrggbb hex color.
func ValidColor(s string) bool {
	return colorPattern.MatchString(s)
}
