//go:build gocv

package imageutil

import (
	"errors"

	"gocv.io/x/gocv"
)

// LoadImageOpenCV decodes path with OpenCV's imread. It covers formats
// the pure Go decoders do not (for example JPEG 2000 and PPM) and is only
// compiled with the gocv build tag.
func LoadImageOpenCV(path string, opts LoadOptions) (*RGBAImage, error) {
	flags := gocv.IMReadColor
	if !opts.AutoOrient {
		// imread honors EXIF orientation unless told otherwise
		flags |= gocv.IMReadIgnoreOrientation
	}
	mat := gocv.IMRead(path, flags)
	if mat.Empty() {
		mat.Close()
		return nil, &DecodeError{Path: path, Err: errors.New("opencv could not read image")}
	}
	defer mat.Close()

	img, err := mat.ToImage()
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	return RGBAImageFromImage(img), nil
}

func init() {
	loaders["opencv"] = LoadImageOpenCV
}
