package ui

import (
	"os"
	"strings"
	"testing"
)

func TestColorToggle(t *testing.T) {
	initial := IsColorEnabled()

	DisableColors()
	if IsColorEnabled() {
		t.Error("expected colors to be disabled")
	}

	EnableColors()
	if !IsColorEnabled() {
		t.Error("expected colors to be enabled")
	}

	if !initial {
		DisableColors()
	}
}

func TestColorFunctions_Disabled(t *testing.T) {
	DisableColors()
	defer EnableColors()

	tests := map[string]func(a ...interface{}) string{
		"Success": Success,
		"Error":   Error,
		"Warning": Warning,
		"Dim":     Dim,
	}

	for name, fn := range tests {
		t.Run(name, func(t *testing.T) {
			if got := fn("README.md updated."); got != "README.md updated." {
				t.Errorf("%s() = %q, want plain text", name, got)
			}
		})
	}
}

func TestColorFunctions_Enabled(t *testing.T) {
	if os.Getenv("NO_COLOR") != "" {
		t.Skip("NO_COLOR is set")
	}
	initial := IsColorEnabled()
	EnableColors()
	defer func() {
		if !initial {
			DisableColors()
		}
	}()

	got := Success("README.md updated.")
	if !strings.Contains(got, "\x1b[") {
		t.Errorf("Success() = %q, expected ANSI escape when colors are enabled", got)
	}
	if !strings.Contains(got, "README.md updated.") {
		t.Errorf("Success() = %q, expected message text", got)
	}
}
