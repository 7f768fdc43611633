package wellness

import (
	"errors"
	"fmt"
)

// ErrImplausibleBody is returned for measurements no adult profile has.
var ErrImplausibleBody = errors.New("implausible height or weight")

// Accepted profile measurements.
const (
	MinHeightCm = 50
	MaxHeightCm = 250
	MinWeightKg = 10
	MaxWeightKg = 400
)

// bmiBands are the WHO adult ranges, each valid below its upper bound.
var bmiBands = []struct {
	below float64
	label string
}{
	{18.5, "Underweight"},
	{25, "Normal weight"},
	{30, "Overweight"},
	{35, "Obesity class I"},
	{40, "Obesity class II"},
}

// CalculateBMI returns weight / height² with height in centimeters and
// weight in kilograms.
func CalculateBMI(heightCm, weightKg float64) (float64, error) {
	if heightCm < MinHeightCm || heightCm > MaxHeightCm || weightKg < MinWeightKg || weightKg > MaxWeightKg {
		return 0, fmt.Errorf("%w: %gcm, %gkg", ErrImplausibleBody, heightCm, weightKg)
	}
	meters := heightCm / 100
	return weightKg / (meters * meters), nil
}

func BMICategory(bmi float64) string {
	for _, band := range bmiBands {
		if bmi < band.below {
			return band.label
		}
	}
	return "Obesity class III"
}
