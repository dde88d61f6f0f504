package fourier

import (
	"math"
	"testing"
)

func TestAxis(t *testing.T) {
	axis := Axis(4, 8)
	want := []float64{-4, -2, 0, 2}
	for i, v := range want {
		if math.Abs(axis[i]-v) > 1e-12 {
			t.Errorf("axis[%d] = %v, want %v", i, axis[i], v)
		}
	}
}

func TestLowPassMask(t *testing.T) {
	f, err := NewLowPass(8, 8, 2)
	if err != nil {
		t.Fatalf("NewLowPass: %v", err)
	}

	mask := f.Response()
	want := []float64{0, 0, 1, 1, 1, 1, 1, 0}
	for i, v := range want {
		if mask[i] != v {
			t.Errorf("mask[%d] = %v, want %v", i, mask[i], v)
		}
	}
}

func TestLowPassValidation(t *testing.T) {
	cases := []struct {
		name   string
		points int
		rate   float64
		cutoff float64
	}{
		{"zero points", 0, 1000, 100},
		{"zero rate", 128, 0, 100},
		{"zero cutoff", 128, 1000, 0},
		{"beyond nyquist", 128, 1000, 501},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewLowPass(tc.points, tc.rate, tc.cutoff); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestNoiseBandMask(t *testing.T) {
	f, err := NewNoiseBand(1000, 1000, []float64{120}, []float64{10})
	if err != nil {
		t.Fatalf("NewNoiseBand: %v", err)
	}

	mask := f.Response()
	axis := Axis(1000, 1000)

	for i, freq := range axis {
		abs := math.Abs(freq)
		inBand := abs >= 115 && abs <= 125
		if inBand && mask[i] != 0 {
			t.Errorf("mask[%d] (%.1f Hz) = %v, want 0 inside band", i, freq, mask[i])
		}
		if !inBand && mask[i] != 1 {
			t.Errorf("mask[%d] (%.1f Hz) = %v, want 1 outside band", i, freq, mask[i])
		}
	}
}

func TestNoiseBandValidation(t *testing.T) {
	if _, err := NewNoiseBand(100, 1000, []float64{100, 200}, []float64{10}); err == nil {
		t.Error("length mismatch should fail")
	}
	if _, err := NewNoiseBand(100, 1000, nil, nil); err == nil {
		t.Error("empty bands should fail")
	}
	if _, err := NewNoiseBand(100, 1000, []float64{499}, []float64{10}); err == nil {
		t.Error("band crossing Nyquist should fail")
	}
}

func TestHarmonicPassMask(t *testing.T) {
	f, err := NewHarmonicPass(1000, 1000, 100, 20, 3)
	if err != nil {
		t.Fatalf("NewHarmonicPass: %v", err)
	}

	mask := f.Response()
	axis := Axis(1000, 1000)

	passed := 0
	for i, freq := range axis {
		abs := math.Abs(freq)
		inBand := false
		for k := 1; k <= 3; k++ {
			c := float64(k) * 100
			if abs >= c-10 && abs <= c+10 {
				inBand = true
				break
			}
		}
		if inBand != (mask[i] == 1) {
			t.Errorf("mask[%d] (%.1f Hz) = %v, in-band %v", i, freq, mask[i], inBand)
		}
		if mask[i] == 1 {
			passed++
		}
	}
	if passed == 0 {
		t.Fatal("harmonic mask passes nothing")
	}

	// DC must never pass.
	for i, freq := range axis {
		if freq == 0 && mask[i] != 0 {
			t.Error("harmonic mask passes DC")
		}
	}
}

func TestHarmonicPassBeyondNyquist(t *testing.T) {
	if _, err := NewHarmonicPass(1000, 1000, 100, 20, 5); err == nil {
		t.Error("5th harmonic band reaches past Nyquist, expected error")
	}
}

func TestBandPassMask(t *testing.T) {
	f, err := NewBandPass(500, 1000, 200, 40)
	if err != nil {
		t.Fatalf("NewBandPass: %v", err)
	}

	mask := f.Response()
	axis := Axis(500, 1000)
	for i, freq := range axis {
		abs := math.Abs(freq)
		want := 0.0
		if abs >= 180 && abs <= 220 {
			want = 1
		}
		if mask[i] != want {
			t.Errorf("mask[%d] (%.1f Hz) = %v, want %v", i, freq, mask[i], want)
		}
	}
}

func TestCompose(t *testing.T) {
	lp, _ := NewLowPass(1000, 1000, 250)
	hp, _ := NewHarmonicPass(1000, 1000, 100, 20, 3)

	mask, err := Compose(lp, hp)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}

	axis := Axis(1000, 1000)
	for i, freq := range axis {
		if mask[i] != 0 && mask[i] != 1 {
			t.Fatalf("composed mask[%d] = %v, want binary", i, mask[i])
		}
		// Third harmonic (300 Hz) is beyond the 250 Hz cutoff: rejected.
		if math.Abs(math.Abs(freq)-300) < 5 && mask[i] != 0 {
			t.Errorf("composed mask passes %v Hz beyond low-pass cutoff", freq)
		}
		// First harmonic (100 Hz) survives both filters.
		if math.Abs(math.Abs(freq)-100) < 5 && mask[i] != 1 {
			t.Errorf("composed mask rejects %v Hz inside both pass bands", freq)
		}
	}
}

func TestComposeErrors(t *testing.T) {
	if _, err := Compose(); err == nil {
		t.Error("empty compose should fail")
	}

	a, _ := NewLowPass(100, 1000, 100)
	b, _ := NewLowPass(200, 1000, 100)
	if _, err := Compose(a, b); err == nil {
		t.Error("length mismatch should fail")
	}
}

func TestFilterParameters(t *testing.T) {
	f, _ := NewHarmonicPass(1000, 1000, 100, 20, 3)
	p := f.Parameters()
	if p["filter"] != "harmonic_pass" {
		t.Errorf("filter = %v", p["filter"])
	}
	if p["harmonics"] != 3 {
		t.Errorf("harmonics = %v", p["harmonics"])
	}
}
