package cli

import (
	"testing"

	"github.com/matzehuels/inkblot/pkg/errors"
)

func TestValidateFormat(t *testing.T) {
	for _, format := range []string{"svg", "png", "pdf"} {
		if err := validateFormat(format); err != nil {
			t.Errorf("validateFormat(%q) = %v, want nil", format, err)
		}
	}

	err := validateFormat("gif")
	if err == nil {
		t.Fatal("validateFormat(gif) accepted")
	}
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("error code = %s, want INVALID_FORMAT", errors.GetCode(err))
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name   string
		output string
		base   string
		format string
		want   string
	}{
		{"default name", "", "blob", "svg", "blob.svg"},
		{"default name png", "", "pack", "png", "pack.png"},
		{"explicit path kept", "art/piece.svg", "blob", "svg", "art/piece.svg"},
		{"extension follows format", "piece.svg", "blob", "png", "piece.png"},
		{"unknown extension kept", "piece.out", "blob", "svg", "piece.out"},
		{"no extension kept", "piece", "blob", "pdf", "piece"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outputPath(tt.output, tt.base, tt.format); got != tt.want {
				t.Errorf("outputPath(%q, %q, %q) = %q, want %q", tt.output, tt.base, tt.format, got, tt.want)
			}
		})
	}
}
