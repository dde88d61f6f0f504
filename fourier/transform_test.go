package fourier

import (
	"math"
	"strconv"
	"testing"

	"github.com/probelab/gmode/internal/testutil"
)

func TestForwardInverseRoundTrip(t *testing.T) {
	x := testutil.DeterministicSine(100, 1000, 1.0, 256)

	spec, err := Forward(x)
	if err != nil {
		t.Fatalf("Forward: %v", err)
	}
	if len(spec) != len(x) {
		t.Fatalf("spectrum length = %d, want %d", len(spec), len(x))
	}

	back, err := Inverse(spec)
	if err != nil {
		t.Fatalf("Inverse: %v", err)
	}

	for i := range x {
		if math.Abs(back[i]-x[i]) > 1e-9 {
			t.Fatalf("round trip diverged at %d: got %v, want %v", i, back[i], x[i])
		}
	}
}

func TestForwardSinePeak(t *testing.T) {
	// 128 cycles over 1024 samples put all energy in bin 128.
	rate := 1024.0
	x := testutil.DeterministicSine(128, rate, 1.0, 1024)

	spec, err := Forward(x)
	if err != nil {
		t.Fatalf("Forward: %v", err)
	}

	mags := Magnitude(spec)
	peak := 0
	for i, m := range mags {
		if m > mags[peak] {
			peak = i
		}
	}
	if peak != 128 && peak != len(mags)-128 {
		t.Errorf("peak at bin %d, want 128 or %d", peak, len(mags)-128)
	}
}

func TestForwardEmpty(t *testing.T) {
	if _, err := Forward(nil); err == nil {
		t.Error("expected error for empty input")
	}
	if _, err := Inverse(nil); err == nil {
		t.Error("expected error for empty spectrum")
	}
}

func TestShiftRoundTrip(t *testing.T) {
	for _, n := range []int{2, 3, 4, 5, 8, 9, 1000, 1001} {
		x := make([]float64, n)
		for i := range x {
			x[i] = float64(i)
		}

		back := Unshift(Shift(x))
		for i := range x {
			if back[i] != x[i] {
				t.Fatalf("n=%d: round trip diverged at %d", n, i)
			}
		}
	}
}

func TestShiftEven(t *testing.T) {
	got := Shift([]float64{0, 1, 2, 3})
	want := []float64{2, 3, 0, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Shift = %v, want %v", got, want)
		}
	}
}

func TestShiftOdd(t *testing.T) {
	got := Shift([]float64{0, 1, 2, 3, 4})
	want := []float64{3, 4, 0, 1, 2}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Shift = %v, want %v", got, want)
		}
	}
}

func TestShiftCentersDC(t *testing.T) {
	// After Shift, the DC bin must sit where Axis crosses zero.
	for _, n := range []int{8, 9, 250, 251} {
		spec := make([]float64, n)
		spec[0] = 1 // DC marker in natural order

		shifted := Shift(spec)
		axis := Axis(n, float64(n))

		for i, f := range axis {
			if f == 0 && shifted[i] != 1 {
				t.Errorf("n=%d: DC not centered, shifted[%d] = %v", n, i, shifted[i])
			}
		}
	}
}

func TestApplyMask(t *testing.T) {
	spec := []complex128{1, 2, 3, 4}
	ApplyMask(spec, []float64{1, 0, 1, 0})
	want := []complex128{1, 0, 3, 0}
	for i := range want {
		if spec[i] != want[i] {
			t.Fatalf("ApplyMask = %v, want %v", spec, want)
		}
	}
}

func BenchmarkForward(b *testing.B) {
	for _, size := range []int{1024, 8192, 65536} {
		b.Run(strconv.Itoa(size), func(b *testing.B) {
			x := testutil.DeterministicSine(100, float64(size), 1.0, size)
			b.SetBytes(int64(size * 8))
			b.ResetTimer()

			for range b.N {
				if _, err := Forward(x); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
