// Package clipboard copies calculation results to the system clipboard.
package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/f3rmion/bmi/internal/bmi"
)

// Writer is the function used to write text. Tests replace it.
var Writer = clipboard.WriteAll

// Available reports whether a clipboard backend was found. Tests replace it.
var Available = func() bool {
	return !clipboard.Unsupported
}

// Format renders a result the way it is copied, e.g. "BMI 23.1 (Normal)".
func Format(res bmi.Result) string {
	return fmt.Sprintf("BMI %s (%s)", res.BMI, res.Category)
}

// WriteResult copies a formatted result to the clipboard.
func WriteResult(res bmi.Result) error {
	if err := Writer(Format(res)); err != nil {
		return fmt.Errorf("writing to clipboard: %w", err)
	}
	return nil
}
