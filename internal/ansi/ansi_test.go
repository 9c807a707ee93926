package ansi

import "testing"

func TestPainter_Paint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		enabled bool
		in      string
		codes   []string
		want    string
	}{
		{"enabled", true, "Fe", []string{Bold, Cyan}, Bold + Cyan + "Fe" + Reset},
		{"disabled", false, "Fe", []string{Bold}, "Fe"},
		{"no codes", true, "Fe", nil, "Fe"},
		{"empty text", true, "", []string{Red}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Painter{Enabled: tt.enabled}.Paint(tt.in, tt.codes...)
			if got != tt.want {
				t.Errorf("Paint(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestStrip(t *testing.T) {
	t.Parallel()

	in := Bold + Red + "error: " + Reset + "missing" + Dim + "!" + Reset
	if got := Strip(in); got != "error: missing!" {
		t.Errorf("Strip() = %q", got)
	}
}
