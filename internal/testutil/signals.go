// Package testutil provides deterministic signals and container fixtures for
// tests across the toolkit.
package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// GModeLine synthesizes one G-mode scan line: pixels repetitions of a
// harmonic response to a sinusoidal excitation, buried in seeded noise.
// The returned slice has pixels*pointsPerPixel samples.
func GModeLine(pixels, pointsPerPixel int, rate, excitation float64, harmonicAmps []float64, noise float64, seed int64) []float64 {
	out := make([]float64, pixels*pointsPerPixel)
	rng := rand.New(rand.NewSource(seed))

	for i := range out {
		t := float64(i) / rate
		v := 0.0
		for h, amp := range harmonicAmps {
			v += amp * math.Sin(2*math.Pi*float64(h+1)*excitation*t)
		}
		out[i] = v + (rng.Float64()*2-1)*noise
	}

	return out
}
