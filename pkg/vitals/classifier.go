// Package vitals turns raw vital-sign input into typed measurements and
// classifies them against fixed clinical thresholds.
package vitals

import (
	"strconv"

	"github.com/Sinon1310/CareSync-sub000/pkg/models"
)

// Measurement is a typed vital value. Systolic and Diastolic are set for blood
// pressure only; Value holds every other type.
type Measurement struct {
	Type      models.VitalType
	Systolic  int
	Diastolic int
	Value     float64
}

// Thresholds are inclusive: a value equal to a bound falls into that band.
const (
	bpCriticalSystolic  = 180
	bpCriticalDiastolic = 120
	bpWarningSystolic   = 140
	bpWarningDiastolic  = 90

	sugarCriticalHigh = 250.0
	sugarCriticalLow  = 50.0
	sugarWarningHigh  = 180.0
	sugarWarningLow   = 70.0

	heartCriticalHigh = 120.0
	heartCriticalLow  = 50.0
	heartWarningHigh  = 100.0
	heartWarningLow   = 60.0

	tempCriticalHigh = 103.0
	tempCriticalLow  = 95.0
	tempWarningHigh  = 100.4
	tempWarningLow   = 97.0
)

// Classify is total: every measurement maps to exactly one status, critical
// checked before warning. An unknown type classifies as normal; Parse and
// Validate reject those before they get here.
func Classify(m Measurement) models.Status {
	switch m.Type {
	case models.VitalTypeBloodPressure:
		if m.Systolic >= bpCriticalSystolic || m.Diastolic >= bpCriticalDiastolic {
			return models.StatusCritical
		}
		if m.Systolic >= bpWarningSystolic || m.Diastolic >= bpWarningDiastolic {
			return models.StatusWarning
		}
	case models.VitalTypeBloodSugar:
		return band(m.Value, sugarCriticalHigh, sugarCriticalLow, sugarWarningHigh, sugarWarningLow)
	case models.VitalTypeHeartRate:
		return band(m.Value, heartCriticalHigh, heartCriticalLow, heartWarningHigh, heartWarningLow)
	case models.VitalTypeTemperature:
		return band(m.Value, tempCriticalHigh, tempCriticalLow, tempWarningHigh, tempWarningLow)
	}
	return models.StatusNormal
}

func band(v, criticalHigh, criticalLow, warningHigh, warningLow float64) models.Status {
	if v >= criticalHigh || v <= criticalLow {
		return models.StatusCritical
	}
	if v >= warningHigh || v <= warningLow {
		return models.StatusWarning
	}
	return models.StatusNormal
}

// BelowNormal reports whether a non-normal measurement is out of range on the
// low side. Blood pressure has no low band.
func BelowNormal(m Measurement) bool {
	switch m.Type {
	case models.VitalTypeBloodSugar:
		return m.Value <= sugarWarningLow
	case models.VitalTypeHeartRate:
		return m.Value <= heartWarningLow
	case models.VitalTypeTemperature:
		return m.Value <= tempWarningLow
	}
	return false
}

func FromReading(r *models.VitalReading) Measurement {
	return Measurement{
		Type:      r.Type,
		Systolic:  r.Systolic,
		Diastolic: r.Diastolic,
		Value:     r.Value,
	}
}

func ClassifyReading(r *models.VitalReading) models.Status {
	return Classify(FromReading(r))
}

// Display renders the value the way it is shown to users: "120/80" for blood
// pressure, integers for sugar and heart rate, one decimal for temperature.
func (m Measurement) Display() string {
	switch m.Type {
	case models.VitalTypeBloodPressure:
		return strconv.Itoa(m.Systolic) + "/" + strconv.Itoa(m.Diastolic)
	case models.VitalTypeTemperature:
		return strconv.FormatFloat(m.Value, 'f', 1, 64)
	default:
		return strconv.FormatFloat(m.Value, 'f', 0, 64)
	}
}

// Primary is the scalar used for trend comparison.
func (m Measurement) Primary() float64 {
	if m.Type == models.VitalTypeBloodPressure {
		return float64(m.Systolic)
	}
	return m.Value
}

func Unit(t models.VitalType) string {
	switch t {
	case models.VitalTypeBloodPressure:
		return "mmHg"
	case models.VitalTypeBloodSugar:
		return "mg/dL"
	case models.VitalTypeHeartRate:
		return "bpm"
	case models.VitalTypeTemperature:
		return "°F"
	}
	return ""
}

func Label(t models.VitalType) string {
	switch t {
	case models.VitalTypeBloodPressure:
		return "Blood pressure"
	case models.VitalTypeBloodSugar:
		return "Blood sugar"
	case models.VitalTypeHeartRate:
		return "Heart rate"
	case models.VitalTypeTemperature:
		return "Temperature"
	}
	return string(t)
}

// Severity orders statuses: normal < warning < critical.
func Severity(s models.Status) int {
	switch s {
	case models.StatusCritical:
		return 2
	case models.StatusWarning:
		return 1
	}
	return 0
}

// MaxStatus rolls several statuses up into the most severe one.
func MaxStatus(statuses ...models.Status) models.Status {
	out := models.StatusNormal
	for _, s := range statuses {
		if Severity(s) > Severity(out) {
			out = s
		}
	}
	return out
}
