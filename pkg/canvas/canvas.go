// Package canvas stores rendered pixels and encodes them as PPM or PNG.
package canvas

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fogleman/gg"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

const (
	ppmMaxColorValue = 255
	ppmMaxLineLength = 70
)

// Canvas is a row-major grid of floating point colors. Writes to distinct
// pixels may happen concurrently.
type Canvas struct {
	width, height int
	pixels        []core.Color
}

// New creates a black canvas
func New(width, height int) *Canvas {
	return &Canvas{
		width:  width,
		height: height,
		pixels: make([]core.Color, width*height),
	}
}

func (c *Canvas) Width() int { return c.width }
func (c *Canvas) Height() int { return c.height }

// WritePixel sets the color at (x, y); out of range writes are ignored
func (c *Canvas) WritePixel(x, y int, col core.Color) {
	if !c.inBounds(x, y) {
		return
	}
	c.pixels[x+y*c.width] = col
}

// PixelAt returns the color at (x, y), or black outside the canvas
func (c *Canvas) PixelAt(x, y int) core.Color {
	if !c.inBounds(x, y) {
		return core.Black
	}
	return c.pixels[x+y*c.width]
}

func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// ToPPM encodes the canvas as plain (P3) PPM
func (c *Canvas) ToPPM() string {
	var sb strings.Builder
	// strings.Builder never returns write errors
	_ = c.WritePPM(&sb)
	return sb.String()
}

// WritePPM writes the canvas as plain (P3) PPM. Channels are clamped to
// [0, 255] and no line is longer than 70 characters.
func (c *Canvas) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P3\n%d %d\n%d\n", c.width, c.height, ppmMaxColorValue)

	line := make([]byte, 0, ppmMaxLineLength)
	for y := 0; y < c.height; y++ {
		line = line[:0]
		for x := 0; x < c.width; x++ {
			p := c.pixels[x+y*c.width]
			for _, channel := range [3]float64{p.R, p.G, p.B} {
				value := strconv.Itoa(int(scaleChannel(channel)))
				if len(line) > 0 && len(line)+1+len(value) > ppmMaxLineLength {
					bw.Write(line)
					bw.WriteByte('\n')
					line = line[:0]
				}
				if len(line) > 0 {
					line = append(line, ' ')
				}
				line = append(line, value...)
			}
		}
		if len(line) > 0 {
			bw.Write(line)
			bw.WriteByte('\n')
		}
	}
	return bw.Flush()
}

// SavePPM writes the canvas to a PPM file, creating parent directories
func (c *Canvas) SavePPM(path string) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := c.WritePPM(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}

// ToImage converts the canvas to an 8-bit image using the same clamping as PPM
func (c *Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			p := c.pixels[x+y*c.width]
			img.SetRGBA(x, y, color.RGBA{
				R: scaleChannel(p.R),
				G: scaleChannel(p.G),
				B: scaleChannel(p.B),
				A: 255,
			})
		}
	}
	return img
}

// SavePNG writes the canvas to a PNG file, creating parent directories
func (c *Canvas) SavePNG(path string) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	if err := gg.SavePNG(path, c.ToImage()); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

// Save picks the encoder from the file extension: .png or anything else as PPM
func (c *Canvas) Save(path string) error {
	if strings.EqualFold(filepath.Ext(path), ".png") {
		return c.SavePNG(path)
	}
	return c.SavePPM(path)
}

func scaleChannel(value float64) uint8 {
	scaled := value * ppmMaxColorValue
	return uint8(math.Round(math.Max(0, math.Min(ppmMaxColorValue, scaled))))
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}
