package output

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/shade-tree/pkg/core"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Bytes unpacks a buffer of 0xRRGGBB pixels into consecutive R, G, B bytes
func Bytes(buffer []uint32) []byte {
	out := make([]byte, 0, len(buffer)*3)
	for _, px := range buffer {
		r, g, b := core.UnpackRGB24(px)
		out = append(out, r, g, b)
	}
	return out
}

// ToImage converts a row-major, top-row-first buffer into an opaque RGBA image
func ToImage(buffer []uint32, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid image size %dx%d", width, height)
	}
	if len(buffer) != width*height {
		return nil, fmt.Errorf("buffer has %d pixels, expected %dx%d=%d", len(buffer), width, height, width*height)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b := core.UnpackRGB24(buffer[y*width+x])
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img, nil
}

// Encode writes the buffer to w in the named format (png, jpeg, bmp or tiff)
func Encode(w io.Writer, format string, buffer []uint32, width, height int) error {
	img, err := ToImage(buffer, width, height)
	if err != nil {
		return err
	}

	switch format {
	case "png":
		err = png.Encode(w, img)
	case "jpeg", "jpg":
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: 95})
	case "bmp":
		err = bmp.Encode(w, img)
	case "tiff", "tif":
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("unsupported image format %q", format)
	}
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", format, err)
	}
	return nil
}

// FormatFromPath returns the encoder name for a file extension
func FormatFromPath(path string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "png", "bmp":
		return ext, nil
	case "jpg", "jpeg":
		return "jpeg", nil
	case "tif", "tiff":
		return "tiff", nil
	}
	return "", fmt.Errorf("unsupported output extension %q (use .png, .jpg, .bmp or .tiff)", filepath.Ext(path))
}

// Save writes the buffer to path, choosing the encoder by file extension
func Save(path string, buffer []uint32, width, height int) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	// Validate before creating the file so bad input leaves nothing behind
	if _, err := ToImage(buffer, width, height); err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if err := Encode(file, format, buffer, width, height); err != nil {
		return err
	}
	return file.Close()
}

// Load decodes an image file back into a packed 0xRRGGBB buffer
func Load(path string) ([]uint32, int, int, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	// Decoders for every format Save writes are registered by the imports above
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	buffer := make([]uint32, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := color.RGBAModel.Convert(img.At(x+bounds.Min.X, y+bounds.Min.Y)).(color.RGBA)
			buffer[y*width+x] = uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
		}
	}
	return buffer, width, height, nil
}
