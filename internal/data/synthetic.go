package data

import (
	"fmt"
	"math/rand"

	"github.com/sprout-ml/sprout/internal/tensor"
)

// digitSegments encodes which of the seven display segments light up
// for each digit. Bit order: top, top-right, bottom-right, bottom,
// bottom-left, top-left, middle.
var digitSegments = [10]uint8{
	0b0111111, // 0
	0b0000110, // 1
	0b1011011, // 2
	0b1001111, // 3
	0b1100110, // 4
	0b1101101, // 5
	0b1111101, // 6
	0b0000111, // 7
	0b1111111, // 8
	0b1101111, // 9
}

// SyntheticDigits renders n procedurally generated 28x28 digit
// glyphs, balanced over the ten classes (sample i carries label
// i mod 10).
//
// Each sample is a seven-segment style rendering with per-sample
// position jitter and background noise drawn from rng, so the set is
// learnable without being trivially separable. It is the
// out-of-the-box fallback when no dataset directory is supplied.
func SyntheticDigits(n int, rng *rand.Rand) *Dataset {
	images := make([]*tensor.Tensor, n)
	labels := make([]int, n)

	for i := 0; i < n; i++ {
		digit := i % 10
		images[i] = renderDigit(digit, rng)
		labels[i] = digit
	}

	return &Dataset{Images: images, Labels: labels, ClassCount: 10}
}

// renderDigit paints one seven-segment glyph on a noisy background.
func renderDigit(digit int, rng *rand.Rand) *tensor.Tensor {
	img := tensor.New(tensor.Shape{DigitSide, DigitSide})
	pixels := img.Data()

	// Faint background noise
	for i := range pixels {
		pixels[i] = float64(rng.Intn(32))
	}

	// Glyph box, jittered by up to one pixel per axis
	dx := rng.Intn(3) - 1
	dy := rng.Intn(3) - 1
	left, right := 9+dx, 18+dx
	top, mid, bottom := 5+dy, 13+dy, 21+dy

	segs := digitSegments[digit]
	if segs&(1<<0) != 0 {
		drawHSegment(pixels, top, left, right, rng)
	}
	if segs&(1<<1) != 0 {
		drawVSegment(pixels, right, top, mid, rng)
	}
	if segs&(1<<2) != 0 {
		drawVSegment(pixels, right, mid, bottom, rng)
	}
	if segs&(1<<3) != 0 {
		drawHSegment(pixels, bottom, left, right, rng)
	}
	if segs&(1<<4) != 0 {
		drawVSegment(pixels, left, mid, bottom, rng)
	}
	if segs&(1<<5) != 0 {
		drawVSegment(pixels, left, top, mid, rng)
	}
	if segs&(1<<6) != 0 {
		drawHSegment(pixels, mid, left, right, rng)
	}

	return img
}

// drawHSegment paints a two-pixel-thick horizontal stroke on row y
// spanning columns [x0, x1].
func drawHSegment(pixels []float64, y, x0, x1 int, rng *rand.Rand) {
	for x := x0; x <= x1; x++ {
		setInk(pixels, y, x, rng)
		setInk(pixels, y+1, x, rng)
	}
}

// drawVSegment paints a two-pixel-thick vertical stroke on column x
// spanning rows [y0, y1].
func drawVSegment(pixels []float64, x, y0, y1 int, rng *rand.Rand) {
	for y := y0; y <= y1; y++ {
		setInk(pixels, y, x, rng)
		setInk(pixels, y, x+1, rng)
	}
}

// setInk writes one bright glyph pixel with a little intensity
// wobble.
func setInk(pixels []float64, y, x int, rng *rand.Rand) {
	if y < 0 || y >= DigitSide || x < 0 || x >= DigitSide {
		return
	}
	pixels[y*DigitSide+x] = float64(224 + rng.Intn(32))
}

// SyntheticWeather renders n procedurally generated 32x32 luminance
// images, balanced over the five weather classes (sample i carries
// label i mod 5): a bright disc for sunny, soft blobs for cloudy,
// diagonal streaks for rainy, scattered specks for snowy, and flat
// low-contrast haze for foggy.
func SyntheticWeather(n int, rng *rand.Rand) *Dataset {
	images := make([]*tensor.Tensor, n)
	labels := make([]int, n)

	for i := 0; i < n; i++ {
		class := i % NumWeatherClasses
		images[i] = renderWeather(class, rng)
		labels[i] = class
	}

	return &Dataset{Images: images, Labels: labels, ClassCount: NumWeatherClasses}
}

// renderWeather paints one class-specific luminance pattern.
func renderWeather(class int, rng *rand.Rand) *tensor.Tensor {
	img := tensor.New(tensor.Shape{ColorSide, ColorSide})
	pixels := img.Data()

	switch class {
	case 0: // sunny: bright sky with a brighter disc
		fillNoise(pixels, 170, 24, rng)
		drawDisc(pixels, 8+rng.Intn(8), 8+rng.Intn(16), 5, 255)
	case 1: // cloudy: mid gray with lighter blobs
		fillNoise(pixels, 110, 24, rng)
		for i := 0; i < 3; i++ {
			drawDisc(pixels, 4+rng.Intn(24), 4+rng.Intn(24), 3+rng.Intn(4), 170)
		}
	case 2: // rainy: dark with diagonal streaks
		fillNoise(pixels, 60, 20, rng)
		for i := 0; i < 10; i++ {
			drawStreak(pixels, rng.Intn(ColorSide), rng.Intn(ColorSide), 6, 150)
		}
	case 3: // snowy: dark with bright specks
		fillNoise(pixels, 80, 20, rng)
		for i := 0; i < 24; i++ {
			pixels[rng.Intn(ColorSide)*ColorSide+rng.Intn(ColorSide)] = 255
		}
	case 4: // foggy: flat light haze
		fillNoise(pixels, 150, 8, rng)
	default:
		panic(fmt.Sprintf("data: unknown weather class %d", class))
	}

	return img
}

// fillNoise writes base-centered noise into every pixel.
func fillNoise(pixels []float64, base, spread int, rng *rand.Rand) {
	for i := range pixels {
		pixels[i] = clampByte(float64(base + rng.Intn(spread) - spread/2))
	}
}

// drawDisc paints a filled circle of the given radius and intensity.
func drawDisc(pixels []float64, cy, cx, radius int, value float64) {
	for y := cy - radius; y <= cy+radius; y++ {
		for x := cx - radius; x <= cx+radius; x++ {
			if y < 0 || y >= ColorSide || x < 0 || x >= ColorSide {
				continue
			}
			dy, dx := y-cy, x-cx
			if dy*dy+dx*dx <= radius*radius {
				pixels[y*ColorSide+x] = value
			}
		}
	}
}

// drawStreak paints a down-right diagonal run of the given length.
func drawStreak(pixels []float64, y, x, length int, value float64) {
	for i := 0; i < length; i++ {
		yy, xx := y+i, x+i
		if yy >= ColorSide || xx >= ColorSide {
			return
		}
		pixels[yy*ColorSide+xx] = value
	}
}

func clampByte(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
