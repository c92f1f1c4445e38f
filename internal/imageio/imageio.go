// Package imageio moves frames between memory and image files.
//
// Files are read as PNG, JPEG, TGA, BMP or WebP and written as WebP
// (lossless), PNG or BMP, always chosen by file extension.
package imageio

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"geomdraw/internal/geometry"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/webp"
)

// ErrFormat is returned for an extension with no decoder or encoder.
var ErrFormat = errors.New("imageio: unsupported format")

// Formats lists the output formats Save understands, without the dot.
var Formats = []string{"webp", "png", "bmp"}

// decoders maps input extensions to decoders. image.Decode is not used:
// the tga package registers an empty magic string that matches any input.
var decoders = map[string]func(io.Reader) (image.Image, error){
	".png":  png.Decode,
	".jpg":  jpeg.Decode,
	".jpeg": jpeg.Decode,
	".tga":  tga.Decode,
	".bmp":  bmp.Decode,
	".webp": webp.Decode,
}

// Load decodes the image at path, picking the decoder by extension.
func Load(path string) (image.Image, error) {
	decode, ok := decoders[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrFormat, filepath.Ext(path))
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &geometry.IOError{Op: "read", Path: path, Err: err}
	}
	img, err := decode(bytes.NewReader(raw))
	if err != nil {
		return nil, &geometry.IOError{Op: "decode", Path: path, Err: err}
	}
	return img, nil
}

// Encode writes img to w in the named format.
func Encode(w io.Writer, format string, img image.Image) error {
	switch strings.ToLower(format) {
	case "webp":
		return nativewebp.Encode(w, img, nil)
	case "png":
		return png.Encode(w, img)
	case "bmp":
		return bmp.Encode(w, img)
	default:
		return fmt.Errorf("%w: %q", ErrFormat, format)
	}
}

// Save writes img to path, creating parent directories. The format comes
// from the extension.
func Save(path string, img image.Image) error {
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	if !Supported(format) {
		return fmt.Errorf("%w: %q", ErrFormat, format)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return &geometry.IOError{Op: "mkdir", Path: filepath.Dir(path), Err: err}
	}

	f, err := os.Create(path)
	if err != nil {
		return &geometry.IOError{Op: "create", Path: path, Err: err}
	}
	if err := Encode(f, format, img); err != nil {
		f.Close()
		return &geometry.IOError{Op: "encode", Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &geometry.IOError{Op: "close", Path: path, Err: err}
	}
	return nil
}

// Supported reports whether format (no dot, any case) can be written.
func Supported(format string) bool {
	format = strings.ToLower(format)
	for _, f := range Formats {
		if f == format {
			return true
		}
	}
	return false
}
