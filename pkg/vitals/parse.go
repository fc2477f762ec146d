package vitals

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Sinon1310/CareSync-sub000/pkg/models"
)

// InvalidReadingError rejects input before anything is classified or stored.
// Reason is meant to be shown to the submitting user.
type InvalidReadingError struct {
	Type   models.VitalType
	Raw    string
	Reason string
}

func (e *InvalidReadingError) Error() string {
	if e.Type == "" {
		return "invalid reading: " + e.Reason
	}
	return fmt.Sprintf("invalid %s reading %q: %s", e.Type, e.Raw, e.Reason)
}

func invalid(t models.VitalType, raw, reason string) *InvalidReadingError {
	return &InvalidReadingError{Type: t, Raw: raw, Reason: reason}
}

func IsVitalType(t models.VitalType) bool {
	for _, known := range models.VitalTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Parse reads user input for a vital type: "120/80" for blood pressure, a whole
// number for blood sugar and heart rate, a decimal for temperature.
func Parse(t models.VitalType, raw string) (Measurement, error) {
	value := strings.TrimSpace(raw)
	if !IsVitalType(t) {
		return Measurement{}, invalid(t, raw, "unknown vital type")
	}
	if value == "" {
		return Measurement{}, invalid(t, raw, "a value is required")
	}

	m := Measurement{Type: t}

	switch t {
	case models.VitalTypeBloodPressure:
		sys, dia, found := strings.Cut(value, "/")
		if !found || strings.TrimSpace(dia) == "" {
			return Measurement{}, invalid(t, raw, "enter both systolic and diastolic, e.g. 120/80")
		}
		var err error
		if m.Systolic, err = strconv.Atoi(strings.TrimSpace(sys)); err != nil {
			return Measurement{}, invalid(t, raw, "systolic must be a whole number")
		}
		if m.Diastolic, err = strconv.Atoi(strings.TrimSpace(dia)); err != nil {
			return Measurement{}, invalid(t, raw, "diastolic must be a whole number")
		}
	case models.VitalTypeBloodSugar, models.VitalTypeHeartRate:
		n, err := strconv.Atoi(value)
		if err != nil {
			return Measurement{}, invalid(t, raw, "value must be a whole number")
		}
		m.Value = float64(n)
	case models.VitalTypeTemperature:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return Measurement{}, invalid(t, raw, "value must be a number")
		}
		m.Value = f
	}

	if err := Validate(m); err != nil {
		if ire, ok := err.(*InvalidReadingError); ok {
			ire.Raw = raw
		}
		return Measurement{}, err
	}
	return m, nil
}

// Validate checks an already typed measurement, e.g. one decoded from an RPC
// request, with the same rules Parse applies.
func Validate(m Measurement) error {
	raw := m.Display()
	if !IsVitalType(m.Type) {
		return invalid(m.Type, raw, "unknown vital type")
	}

	if m.Type == models.VitalTypeBloodPressure {
		if m.Systolic <= 0 || m.Diastolic <= 0 {
			return invalid(m.Type, raw, "systolic and diastolic must both be positive")
		}
		return nil
	}

	if math.IsNaN(m.Value) || math.IsInf(m.Value, 0) {
		return invalid(m.Type, raw, "value must be a finite number")
	}
	switch m.Type {
	case models.VitalTypeBloodSugar, models.VitalTypeHeartRate:
		if m.Value != math.Trunc(m.Value) {
			return invalid(m.Type, raw, "value must be a whole number")
		}
	case models.VitalTypeTemperature:
		// Display shows one decimal; the classified value must match it.
		if decimals(m.Value) > 1 {
			return invalid(m.Type, raw, "use at most one decimal place, e.g. 98.6")
		}
	}
	if m.Value <= 0 {
		return invalid(m.Type, raw, "value must be positive")
	}
	return nil
}

// decimals counts the digits after the point in the shortest form of v.
func decimals(v float64) int {
	_, frac, found := strings.Cut(strconv.FormatFloat(v, 'f', -1, 64), ".")
	if !found {
		return 0
	}
	return len(frac)
}
