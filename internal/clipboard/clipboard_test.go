package clipboard

import (
	"errors"
	"testing"

	"github.com/atotto/clipboard"
	"github.com/f3rmion/bmi/internal/bmi"
)

func TestFormat(t *testing.T) {
	res, err := bmi.Compute("180", "75")
	if err != nil {
		t.Fatal(err)
	}
	if got := Format(res); got != "BMI 23.1 (Normal)" {
		t.Errorf("Format = %q", got)
	}
}

func TestWriteResult(t *testing.T) {
	orig := Writer
	t.Cleanup(func() { Writer = orig })

	var copied string
	Writer = func(s string) error {
		copied = s
		return nil
	}

	res, _ := bmi.Compute("170", "90")
	if err := WriteResult(res); err != nil {
		t.Fatalf("WriteResult: %v", err)
	}
	if copied != "BMI 31.1 (Obese)" {
		t.Errorf("copied %q", copied)
	}

	Writer = func(string) error { return errors.New("no xclip") }
	if err := WriteResult(res); err == nil {
		t.Error("expected error from failing writer")
	}
}

func TestAvailableMatchesBackend(t *testing.T) {
	if got, want := Available(), !clipboard.Unsupported; got != want {
		t.Errorf("Available() = %v, want %v", got, want)
	}
}
