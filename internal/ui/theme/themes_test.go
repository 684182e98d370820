package theme

import (
	"slices"
	"testing"
)

func TestBuiltinThemesRegistered(t *testing.T) {
	want := []string{"dracula", "gruvbox", "nord", "tokyonight"}
	if got := Available(); !slices.Equal(got, want) {
		t.Fatalf("Available() = %v, want %v", got, want)
	}
}

func TestSetTheme(t *testing.T) {
	t.Cleanup(func() { SetTheme(DefaultName) })

	for _, name := range Available() {
		if !SetTheme(name) {
			t.Errorf("SetTheme(%q) returned false", name)
			continue
		}
		if CurrentName() != name {
			t.Errorf("CurrentName() = %q, want %q", CurrentName(), name)
		}
		if Current() == nil {
			t.Errorf("Current() is nil for %q", name)
		}
	}
	if SetTheme("nonexistent-theme") {
		t.Error("SetTheme accepted an unknown theme")
	}
}

func TestCycleThemeWraps(t *testing.T) {
	t.Cleanup(func() { SetTheme(DefaultName) })

	SetTheme("tokyonight")
	if got := CycleTheme(); got != "dracula" {
		t.Fatalf("CycleTheme after last = %q, want dracula", got)
	}
	if got := CycleTheme(); got != "gruvbox" {
		t.Fatalf("CycleTheme = %q, want gruvbox", got)
	}
}

func TestPalettesDefineEveryColor(t *testing.T) {
	for _, name := range Available() {
		SetTheme(name)
		th := Current()
		colors := map[string]string{
			"Primary":             th.Primary().Dark,
			"Secondary":           th.Secondary().Dark,
			"Accent":              th.Accent().Dark,
			"Error":               th.Error().Dark,
			"Warning":             th.Warning().Dark,
			"Success":             th.Success().Dark,
			"Info":                th.Info().Dark,
			"Text":                th.Text().Dark,
			"TextMuted":           th.TextMuted().Dark,
			"TextEmphasized":      th.TextEmphasized().Dark,
			"Background":          th.Background().Dark,
			"BackgroundSecondary": th.BackgroundSecondary().Dark,
			"BackgroundDarker":    th.BackgroundDarker().Dark,
			"BorderNormal":        th.BorderNormal().Dark,
			"BorderFocused":       th.BorderFocused().Dark,
			"BorderDim":           th.BorderDim().Dark,
		}
		for role, hex := range colors {
			if hex == "" {
				t.Errorf("%s: %s has no dark color", name, role)
			}
		}
	}
	SetTheme(DefaultName)
}
