package colorspace

import (
	"math"
	"testing"
)

// approx fails the test if got differs from want by more than tol.
func approx(t *testing.T, what string, got, want, tol float64) {
	t.Helper()
	if math.IsNaN(got) || math.Abs(got-want) > tol {
		t.Errorf("%s = %v, want %v (±%v)", what, got, want, tol)
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    RGB
		wantErr bool
	}{
		{"with hash", "#ff8000", RGB{1, 128.0 / 255.0, 0}, false},
		{"without hash", "ff8000", RGB{1, 128.0 / 255.0, 0}, false},
		{"black", "#000000", RGB{}, false},
		{"white", "#ffffff", RGB{1, 1, 1}, false},
		{"uppercase", "#FF0000", RGB{R: 1}, false},
		{"too short", "#fff", RGB{}, true},
		{"too long", "#aabbccdd", RGB{}, true},
		{"invalid chars", "#zzzzzz", RGB{}, true},
		{"empty", "", RGB{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseHex(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		name  string
		color RGB
		want  string
	}{
		{"orange", RGB{1, 128.0 / 255.0, 0}, "#ff8000"},
		{"black", RGB{}, "#000000"},
		{"zero padding", RGB{0, 5.0 / 255.0, 10.0 / 255.0}, "#00050a"},
		{"overshoot clamps", RGB{1.2, -0.3, 0.5}, "#ff0080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.color.Hex(); got != tt.want {
				t.Errorf("%v.Hex() = %q, want %q", tt.color, got, tt.want)
			}
		})
	}
}

func TestWhitePoint(t *testing.T) {
	xyz := White.XYZ()
	approx(t, "White.XYZ().X", xyz.X, 0.9505, 1e-4)
	approx(t, "White.XYZ().Y", xyz.Y, 1.0000, 1e-4)
	approx(t, "White.XYZ().Z", xyz.Z, 1.0888, 1e-4)

	luv := xyz.Luv()
	approx(t, "White.Luv().L", luv.L, 100, 1e-3)
	approx(t, "White.Luv().U", luv.U, 0, 1e-3)
	approx(t, "White.Luv().V", luv.V, 0, 1e-3)
}

func TestBlackPoint(t *testing.T) {
	luv := Black.Luv()
	if luv != (Luv{}) {
		t.Errorf("Black.Luv() = %v, want all zero", luv)
	}

	lch := Black.LCh()
	if lch != (LCh{}) {
		t.Errorf("Black.LCh() = %v, want all zero", lch)
	}

	back := lch.RGB()
	for _, ch := range []float64{back.R, back.G, back.B} {
		if math.IsNaN(ch) || math.IsInf(ch, 0) {
			t.Fatalf("Black.LCh().RGB() = %v", back)
		}
	}
}

// testColors is a sweep of in-gamut colors covering the primaries, grays
// and mixed channels.
var testColors = []RGB{
	{1, 0, 0}, {0, 1, 0}, {0, 0, 1},
	{1, 1, 0}, {1, 0, 1}, {0, 1, 1},
	{1, 1, 1}, {0.5, 0.5, 0.5},
	{0.1, 0.2, 0.3}, {0.9, 0.05, 0.4},
	{0.02, 0.02, 0.02}, {0.7, 0.3, 0.01},
}

func TestRoundTripXYZ(t *testing.T) {
	for _, c := range testColors {
		got := c.XYZ().RGB()
		approx(t, c.String()+" via XYZ, R", got.R, c.R, 1e-4)
		approx(t, c.String()+" via XYZ, G", got.G, c.G, 1e-4)
		approx(t, c.String()+" via XYZ, B", got.B, c.B, 1e-4)
	}
}

func TestRoundTripLuv(t *testing.T) {
	for _, c := range testColors {
		got := c.Luv().RGB()
		approx(t, c.String()+" via Luv, R", got.R, c.R, 1e-4)
		approx(t, c.String()+" via Luv, G", got.G, c.G, 1e-4)
		approx(t, c.String()+" via Luv, B", got.B, c.B, 1e-4)
	}
}

func TestRoundTripLCh(t *testing.T) {
	for _, c := range testColors {
		got := c.LCh().RGB()
		approx(t, c.String()+" via LCh, R", got.R, c.R, 1e-4)
		approx(t, c.String()+" via LCh, G", got.G, c.G, 1e-4)
		approx(t, c.String()+" via LCh, B", got.B, c.B, 1e-4)
	}
}

func TestRGBLerpEndpoints(t *testing.T) {
	a := RGB{0.1, 0.5, 0.9}
	b := RGB{0.8, 0.2, 0.4}

	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp(t=0) = %v, want %v", got, a)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp(t=1) = %v, want %v", got, b)
	}

	mid := a.Lerp(b, 0.5)
	approx(t, "mid.R", mid.R, 0.45, 1e-12)
	approx(t, "mid.G", mid.G, 0.35, 1e-12)
	approx(t, "mid.B", mid.B, 0.65, 1e-12)
}

func TestRGBLerpExtrapolates(t *testing.T) {
	a := RGB{0.2, 0.2, 0.2}
	b := RGB{0.4, 0.4, 0.4}

	over := a.Lerp(b, 2)
	approx(t, "over.R", over.R, 0.6, 1e-12)

	under := a.Lerp(b, -1)
	approx(t, "under.R", under.R, 0.0, 1e-12)
}

func TestRGBString(t *testing.T) {
	got := RGB{0.5, 0.25, 0}.String()
	want := "RGB R=0.50, G=0.25, B=0.00"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
