// Package bmi provides the Body Mass Index calculator core: input
// validation, the index formula and category classification.
package bmi

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Category is one of the four BMI weight classes.
type Category string

const (
	Underweight Category = "Underweight"
	Normal      Category = "Normal"
	Overweight  Category = "Overweight"
	Obese       Category = "Obese"
)

// Category thresholds in kg/m².
const (
	NormalMin     = 18.5
	OverweightMin = 25.0
	ObeseMin      = 30.0
)

// Validation errors. The error text is shown to the user verbatim.
var (
	ErrMissingInput  = errors.New("Please enter both height and weight.")
	ErrInvalidHeight = errors.New("Height must be a positive number.")
	ErrInvalidWeight = errors.New("Weight must be a positive number.")
)

// Result is a computed BMI and its category.
type Result struct {
	Height   float64 // cm, as parsed
	Weight   float64 // kg, as parsed
	Value    float64 // Unrounded index
	BMI      string  // Value with one fractional digit, e.g. "23.1"
	Category Category
}

// Categories returns all categories in ascending order of BMI.
func Categories() []Category {
	return []Category{Underweight, Normal, Overweight, Obese}
}

// Range describes the BMI interval covered by the category.
func (c Category) Range() string {
	switch c {
	case Underweight:
		return "below 18.5"
	case Normal:
		return "18.5 – 24.9"
	case Overweight:
		return "25.0 – 29.9"
	case Obese:
		return "30.0 and above"
	default:
		return ""
	}
}

// Classify maps a BMI value to its category.
func Classify(bmi float64) Category {
	switch {
	case bmi < NormalMin:
		return Underweight
	case bmi < OverweightMin:
		return Normal
	case bmi < ObeseMin:
		return Overweight
	default:
		return Obese
	}
}

// Index computes weight / height² with height given in centimeters.
func Index(heightCm, weightKg float64) float64 {
	meters := heightCm / 100
	return weightKg / (meters * meters)
}

// FormatBMI renders a BMI with exactly one fractional digit.
// Rounding is to nearest from the exact binary value; exact ties go to even.
func FormatBMI(bmi float64) string {
	return strconv.FormatFloat(bmi, 'f', 1, 64)
}

// Compute validates the raw inputs and returns the BMI result.
func Compute(height, weight string) (Result, error) {
	if height == "" || weight == "" {
		return Result{}, ErrMissingInput
	}

	heightCm, ok := parsePositive(height)
	meters := heightCm / 100
	if !ok || meters*meters <= 0 {
		return Result{}, ErrInvalidHeight
	}

	weightKg, ok := parsePositive(weight)
	if !ok {
		return Result{}, ErrInvalidWeight
	}

	value := Index(heightCm, weightKg)
	if math.IsInf(value, 0) {
		return Result{}, ErrInvalidHeight
	}
	return Result{
		Height:   heightCm,
		Weight:   weightKg,
		Value:    value,
		BMI:      FormatBMI(value),
		Category: Classify(value),
	}, nil
}

// parsePositive parses s as a finite number greater than zero.
func parsePositive(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, v > 0
}
