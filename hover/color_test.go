package hover

import (
	"image/color"
	"math"
	"testing"
)

func approx(a, b Color) bool {
	for i := range a {
		if math.Abs(float64(a[i]-b[i])) > 1e-6 {
			return false
		}
	}
	return true
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#fff", Color{1, 1, 1, 1}},
		{"#000", Color{0, 0, 0, 1}},
		{"#f008", Color{1, 0, 0, float32(0x88) / 255}},
		{"#00ff00", Color{0, 1, 0, 1}},
		{"#0000FF80", Color{0, 0, 1, float32(0x80) / 255}},
		{"red", Color{1, 0, 0, 1}},
		{" White ", Color{1, 1, 1, 1}},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil {
			t.Errorf("ParseColor(%q) error = %v", tt.in, err)
			continue
		}
		if !approx(got, tt.want) {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseColorErrors(t *testing.T) {
	for _, in := range []string{"", "#", "#12", "#12345", "#ggg", "notacolor"} {
		if _, err := ParseColor(in); err == nil {
			t.Errorf("ParseColor(%q) succeeded", in)
		}
	}
}

func TestColorNRGBA(t *testing.T) {
	c := Color{1, 0.5, -1, 2}
	want := color.NRGBA{R: 255, G: 128, B: 0, A: 255}
	if got := c.NRGBA(); got != want {
		t.Errorf("NRGBA() = %v, want %v", got, want)
	}
	if got := FromColor(want); got.NRGBA() != want {
		t.Errorf("FromColor round trip = %v", got.NRGBA())
	}
}

func TestMix(t *testing.T) {
	a := Color{0, 0, 0, 1}
	b := Color{1, 0.5, 0.25, 0}
	tests := []struct {
		t    float32
		want Color
	}{
		{0, a},
		{1, b},
		{0.5, Color{0.5, 0.25, 0.125, 0.5}},
	}
	for _, tt := range tests {
		if got := Mix(a, b, tt.t); !approx(got, tt.want) {
			t.Errorf("Mix(t=%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestUniforms(t *testing.T) {
	u := Uniforms{
		ColorNormal:  Color{0, 0, 1, 1},
		ColorHovered: Color{1, 0, 0, 1},
	}
	if got := u.FragColor(); got != u.ColorNormal {
		t.Errorf("FragColor() at rest = %v, want normal color", got)
	}

	u.SetHover(2)
	if u.Hover() != 1 {
		t.Errorf("SetHover(2) stored %v, want 1", u.Hover())
	}
	if got := u.FragColor(); got != u.ColorHovered {
		t.Errorf("FragColor() hovered = %v, want hovered color", got)
	}

	u.SetHover(-3)
	if u.Hover() != 0 {
		t.Errorf("SetHover(-3) stored %v, want 0", u.Hover())
	}

	u.SetHover(0.25)
	f := u.Floats()
	if f[0] != 0.25 || f[6] != 1 || f[8] != 1 {
		t.Errorf("Floats() = %v", f)
	}
}
