package device

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Validation constants.
const (
	minCustomNameLength = 5
	maxCustomNameLength = 16

	minTemperature = 1
	maxTemperature = 220

	minVolume = 0
	maxVolume = 100

	customNamePattern = `^[A-Za-z0-9_]+$`
)

var customNameRegex = regexp.MustCompile(customNamePattern)

// flagFields must parse as integer 0 or 1 when present.
var flagFields = []string{FieldOnOff, FieldBatteriesIncluded, FieldOpenClosed}

// Validate checks a sanitized mapping and returns nil to accept it or a
// wrapped sentinel error describing the first violation found.
//
// Validation is field-independent: one invalid field rejects the whole
// record, and absent optional fields always pass (they represent "not
// applicable to this device type"). A present optional value that is
// non-numeric or out of range is rejected; boundary values are accepted.
func Validate(f Fields) error {
	name, _ := f.Value(FieldDeviceTypeName)
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: device type name cannot be empty", ErrInvalidDeviceTypeName)
	}

	if err := ValidateCustomName(valueOrEmpty(f, FieldCustomName)); err != nil {
		return err
	}

	for _, field := range flagFields {
		if v, ok := f.Value(field); ok {
			if err := validateRange(field, v, 0, 1); err != nil {
				return err
			}
		}
	}

	if v, ok := f.Value(FieldVolume); ok {
		if err := validateRange(FieldVolume, v, minVolume, maxVolume); err != nil {
			return err
		}
	}

	if v, ok := f.Value(FieldTemperature); ok {
		if err := validateRange(FieldTemperature, v, minTemperature, maxTemperature); err != nil {
			return err
		}
	}

	return nil
}

// ValidateCustomName checks the custom name schema and length rules:
// one or more word characters ([A-Za-z0-9_]) and length in [5,16].
func ValidateCustomName(name string) error {
	if !customNameRegex.MatchString(name) {
		return fmt.Errorf("%w: must contain only letters, digits, and underscores", ErrInvalidCustomName)
	}
	if len(name) < minCustomNameLength || len(name) > maxCustomNameLength {
		return fmt.Errorf("%w: length must be between %d and %d characters",
			ErrInvalidCustomName, minCustomNameLength, maxCustomNameLength)
	}
	return nil
}

// validateRange checks that a present field value parses as an integer
// within [low, high] inclusive.
func validateRange(field, value string, low, high int64) error {
	n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %s must be an integer", ErrInvalidField, field)
	}
	if n < low || n > high {
		return fmt.Errorf("%w: %s must be between %d and %d", ErrInvalidField, field, low, high)
	}
	return nil
}

// ParseFields converts a sanitized, validated mapping into a typed
// DeviceType row plus the custom name for the dependent row. It validates
// first, so callers can use it as the single entry point of the pipeline.
func ParseFields(f Fields) (*DeviceType, string, error) {
	if err := Validate(f); err != nil {
		return nil, "", err
	}

	t := &DeviceType{
		Name: valueOrEmpty(f, FieldDeviceTypeName),
	}
	t.OnOff = parsedOrNil(f, FieldOnOff)
	t.Temperature = parsedOrNil(f, FieldTemperature)
	t.Volume = parsedOrNil(f, FieldVolume)
	t.BatteriesIncluded = parsedOrNil(f, FieldBatteriesIncluded)
	t.OpenClosed = parsedOrNil(f, FieldOpenClosed)

	return t, valueOrEmpty(f, FieldCustomName), nil
}

// valueOrEmpty returns the field's value, or "" when absent.
func valueOrEmpty(f Fields, name string) string {
	v, _ := f.Value(name)
	return v
}

// parsedOrNil returns the parsed integer value of a present field, or nil
// when the field is absent. Values are already validated.
func parsedOrNil(f Fields, name string) *int64 {
	v, ok := f.Value(name)
	if !ok {
		return nil
	}
	n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil {
		return nil
	}
	return &n
}
