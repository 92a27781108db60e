package imageutil

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"  // Register BMP decoder
	_ "golang.org/x/image/tiff" // Register TIFF decoder
	_ "golang.org/x/image/webp" // Register WebP decoder
)

// DecodeError reports that an image path could not be turned into pixels:
// the file is missing or unreadable, or its format is not supported.
// Retrying with the same decoder will not help.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode image %q: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// LoadOptions controls how LoadImageWithOptions interprets a file.
type LoadOptions struct {
	// AutoOrient applies the EXIF orientation tag, if present, so the
	// returned pixels are upright.
	AutoOrient bool
}

// LoadImage loads an image from the specified path.
// Supports PNG, JPEG, GIF (first frame), BMP, TIFF and WebP.
// Failures are returned as *DecodeError.
func LoadImage(path string) (*RGBAImage, error) {
	return LoadImageWithOptions(path, LoadOptions{})
}

// LoadImageWithOptions is LoadImage with explicit options.
func LoadImageWithOptions(path string, opts LoadOptions) (*RGBAImage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}

	if opts.AutoOrient {
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			return nil, &DecodeError{Path: path, Err: err}
		}
		img = Orient(img, ExifOrientation(f))
	}

	return RGBAImageFromImage(img), nil
}

// Decode decodes an image from r. The name is only used for error
// reporting.
func Decode(r io.Reader, name string) (*RGBAImage, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, &DecodeError{Path: name, Err: err}
	}
	return RGBAImageFromImage(img), nil
}

// SaveImage saves an image to the specified path.
// Format is determined by file extension (png, jpg/jpeg, gif).
func SaveImage(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".jpg", ".jpeg":
		err = jpeg.Encode(f, img, &jpeg.Options{Quality: 95})
	case ".gif":
		err = gif.Encode(f, img, nil)
	default:
		err = png.Encode(f, img)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

// SavePNG saves an image as PNG to the specified path.
func SavePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	err = png.Encode(f, img)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

// Loader decodes the image stored at path.
type Loader func(path string, opts LoadOptions) (*RGBAImage, error)

// loaders holds the decoders selectable by name. Builds with the gocv
// tag add "opencv".
var loaders = map[string]Loader{
	"go": LoadImageWithOptions,
}

// LoaderByName returns the decoder registered under name.
func LoaderByName(name string) (Loader, error) {
	l, ok := loaders[name]
	if !ok {
		return nil, fmt.Errorf("unknown decoder %q", name)
	}
	return l, nil
}
