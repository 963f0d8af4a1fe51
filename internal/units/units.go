// Package units converts stored Celsius temperatures into display values.
// Conversion happens only at render time; nothing upstream ever stores
// Fahrenheit.
package units

import (
	"math"

	"weather-app/internal/models"
)

// RoundCelsius rounds a Celsius value to the nearest whole degree
// (half away from zero).
func RoundCelsius(c float64) int {
	return int(math.Round(c))
}

// ToFahrenheit converts Celsius to rounded Fahrenheit.
func ToFahrenheit(c float64) int {
	return int(math.Round(c*9/5 + 32))
}

// FromFahrenheit converts Fahrenheit back to Celsius, unrounded.
func FromFahrenheit(f float64) float64 {
	return (f - 32) * 5 / 9
}

// Convert renders a stored Celsius value in the requested display unit.
func Convert(c float64, unit models.Unit) int {
	if unit == models.UnitFahrenheit {
		return ToFahrenheit(c)
	}
	return RoundCelsius(c)
}

// Label returns the degree label for a display unit.
func Label(unit models.Unit) string {
	if unit == models.UnitFahrenheit {
		return "°F"
	}
	return "°C"
}
