// Package gifgen turns frames captured during macro playback into an
// animated GIF.
package gifgen

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"io"
	"os"
	"sort"
	"time"

	"github.com/nfnt/resize"
)

// DefaultWidth is the output width when Options.MaxWidth is zero.
const DefaultWidth = 800

// minDelay is the shortest frame delay, in 100ths of a second, that viewers
// honour.
const minDelay = 2

// ErrNoFrames is returned when there is nothing to encode.
var ErrNoFrames = errors.New("no frames to encode")

// Frame is a captured image and how long it stays on screen.
type Frame struct {
	Image image.Image
	Delay time.Duration
}

// Options configures GIF generation
type Options struct {
	MaxWidth uint
}

// Encode writes frames to w as a looping GIF.
func Encode(w io.Writer, frames []Frame, opts Options) error {
	if len(frames) == 0 {
		return ErrNoFrames
	}

	// Determine output size
	bounds := frames[0].Image.Bounds()
	outputWidth := opts.MaxWidth
	if outputWidth == 0 {
		outputWidth = DefaultWidth
	}
	if uint(bounds.Dx()) < outputWidth {
		outputWidth = uint(bounds.Dx())
	}

	// Calculate height maintaining aspect ratio
	aspectRatio := float64(bounds.Dy()) / float64(bounds.Dx())
	outputHeight := uint(float64(outputWidth) * aspectRatio)

	g := &gif.GIF{
		Image:     make([]*image.Paletted, len(frames)),
		Delay:     make([]int, len(frames)),
		LoopCount: 0, // Infinite loop
	}

	// Generate optimized palette from the last frame, which shows everything typed
	palette := generatePalette(frames[len(frames)-1].Image)

	for i, frame := range frames {
		resized := resize.Resize(outputWidth, outputHeight, frame.Image, resize.Lanczos3)

		paletted := image.NewPaletted(resized.Bounds(), palette)
		draw.FloydSteinberg.Draw(paletted, resized.Bounds(), resized, image.Point{})

		g.Image[i] = paletted
		g.Delay[i] = hundredths(frame.Delay)
	}

	return gif.EncodeAll(w, g)
}

// Generate writes frames to outputPath and returns the file size.
func Generate(frames []Frame, outputPath string, opts Options) (size int64, err error) {
	f, err := os.Create(outputPath)
	if err != nil {
		return 0, err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if err := Encode(f, frames, opts); err != nil {
		return 0, err
	}

	info, err := f.Stat()
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

func hundredths(d time.Duration) int {
	n := int(d / (10 * time.Millisecond))
	if n < minDelay {
		return minDelay
	}
	return n
}

// generatePalette builds a 256-color palette from the most frequent colors
// of img.
func generatePalette(img image.Image) color.Palette {
	bounds := img.Bounds()
	colorMap := make(map[color.RGBA]int)

	// Sample every 4th pixel
	step := 4
	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			r, g, b, a := img.At(x, y).RGBA()
			c := color.RGBA{
				R: uint8(r >> 8),
				G: uint8(g >> 8),
				B: uint8(b >> 8),
				A: uint8(a >> 8),
			}
			colorMap[c]++
		}
	}

	type colorCount struct {
		c     color.RGBA
		count int
	}
	colors := make([]colorCount, 0, len(colorMap))
	for c, count := range colorMap {
		colors = append(colors, colorCount{c, count})
	}
	sort.Slice(colors, func(i, j int) bool {
		return colors[i].count > colors[j].count
	})

	palette := make(color.Palette, 0, 256)
	palette = append(palette, color.RGBA{0, 0, 0, 0})
	for i := 0; i < len(colors) && len(palette) < 256; i++ {
		palette = append(palette, colors[i].c)
	}

	// Pad with grayscale
	for len(palette) < 256 {
		gray := uint8(len(palette))
		palette = append(palette, color.RGBA{gray, gray, gray, 255})
	}

	return palette
}
