// Package encode serializes rendered images, picking the codec from the
// output file extension.
package encode

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
)

// Encode writes img to w in the named format: webp, tga, bmp or png.
func Encode(w io.Writer, img image.Image, format string) error {
	switch format {
	case "webp":
		return nativewebp.Encode(w, img, nil)
	case "tga":
		return tga.Encode(w, img)
	case "bmp":
		return bmp.Encode(w, img)
	case "png":
		return png.Encode(w, img)
	default:
		return fmt.Errorf("encode: unsupported format %q", format)
	}
}

// FormatFromPath maps a file extension to a format name. Paths without
// an extension default to webp.
func FormatFromPath(path string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if ext == "" {
		return "webp"
	}
	return ext
}

// WriteFile encodes img into path, choosing the format from the extension.
func WriteFile(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("encode: create %s: %w", path, err)
	}
	defer f.Close()

	if err := Encode(f, img, FormatFromPath(path)); err != nil {
		return fmt.Errorf("encode: %s: %w", path, err)
	}
	return nil
}
