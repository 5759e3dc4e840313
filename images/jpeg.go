package images

import (
	"bytes"
	"encoding/binary"
	"errors"
	"image"
	"image/jpeg"
)

// DensityUnit is the unit code carried in a JFIF APP0 segment.
type DensityUnit uint8

const (
	DensityNone    DensityUnit = iota // densities describe aspect ratio only
	DensityPerInch                    // pixels per inch
	DensityPerCm                      // pixels per centimeter
)

// jfifApp0 builds an APP0 segment declaring pixel density, no thumbnail.
func jfifApp0(unit DensityUnit, xdensity, ydensity uint16) []byte {
	seg := make([]byte, 0, 18)
	seg = append(seg, 0xFF, 0xE0) // APP0 marker
	seg = binary.BigEndian.AppendUint16(seg, 16)
	seg = append(seg, 'J', 'F', 'I', 'F', 0x00)
	seg = append(seg, 0x01, 0x02) // version 1.02
	seg = append(seg, byte(unit))
	seg = binary.BigEndian.AppendUint16(seg, xdensity)
	seg = binary.BigEndian.AppendUint16(seg, ydensity)
	seg = append(seg, 0x00, 0x00) // no thumbnail
	return seg
}

// StampDensity inserts a JFIF APP0 segment right after SOI when the JPEG has
// none, so PDF consumers can derive the image's physical size. Data that
// already carries an APP0 segment is returned untouched.
func StampDensity(data []byte, unit DensityUnit, xdensity, ydensity uint16) ([]byte, bool, error) {
	if len(data) < 4 {
		return nil, false, errors.New("jpeg too small")
	}
	if data[0] != 0xFF || data[1] != 0xD8 {
		return nil, false, errors.New("not a jpeg")
	}
	if data[2] == 0xFF && data[3] == 0xE0 {
		return data, false, nil
	}

	seg := jfifApp0(unit, xdensity, ydensity)
	out := make([]byte, 0, len(data)+len(seg))
	out = append(out, data[:2]...)
	out = append(out, seg...)
	out = append(out, data[2:]...)
	return out, true, nil
}

// EncodeJPEG encodes img at the given quality and stamps the density into the
// JFIF header. The stdlib encoder emits no APP0 of its own.
func EncodeJPEG(img image.Image, quality int, unit DensityUnit, xdensity, ydensity uint16) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, err
	}
	out, _, err := StampDensity(buf.Bytes(), unit, xdensity, ydensity)
	return out, err
}

// IsGrayscale reports whether every pixel has equal color channels, letting
// an embedder pick the cheaper grayscale colorspace. Full scan, so it can be
// slow on large images.
func IsGrayscale(img image.Image) bool {
	switch img.(type) {
	case *image.Gray, *image.Gray16:
		return true
	}

	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			if r != g || g != bl {
				return false
			}
		}
	}
	return true
}
