package thumbnail

import (
	"bytes"
	"image"

	"github.com/disintegration/imaging"
	"github.com/rwcarlsen/goexif/exif"
)

// readOrientation returns the EXIF orientation tag value, or 0 when the
// image carries no readable EXIF data. Every failure mode (no EXIF
// block, corrupt block, missing tag) means "no correction needed".
func readOrientation(data []byte) int {
	x, err := exif.Decode(bytes.NewReader(data))
	if err != nil {
		return 0
	}

	tag, err := x.Get(exif.Orientation)
	if err != nil {
		return 0
	}

	orientation, err := tag.Int(0)
	if err != nil {
		return 0
	}
	return orientation
}

// orientImage applies the rotation correction for the supported EXIF
// orientation values. Each rotation expands the canvas to fit; values
// outside {3, 6, 8} leave the image untouched.
func orientImage(img image.Image, orientation int) image.Image {
	switch orientation {
	case 3:
		return imaging.Rotate180(img)
	case 6:
		return imaging.Rotate270(img)
	case 8:
		return imaging.Rotate90(img)
	default:
		return img
	}
}
