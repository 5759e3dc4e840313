// Package images probes and decodes raster images fetched by the resource
// loader, and rasterizes SVG vector images so they can be placed on a page
// like any other picture.
package images

import (
	"bytes"
	"fmt"
	"image"

	// Pull in decoders for the formats documents actually reference.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/disintegration/imaging"
	"github.com/h2non/filetype"
)

// Info describes an image without decoding its pixels.
type Info struct {
	Format string // short format name ("png", "jpg", ...)
	Mime   string // media type ("image/png", ...)
	Width  int
	Height int
}

// Probe sniffs the image format from the header and reads its dimensions
// without a full decode.
func Probe(data []byte) (Info, error) {
	t, err := filetype.Match(data)
	if err != nil {
		return Info{}, fmt.Errorf("unable to recognize image format: %w", err)
	}
	if t == filetype.Unknown || t.MIME.Type != "image" {
		return Info{}, fmt.Errorf("not a supported image format")
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Info{}, fmt.Errorf("unable to read %s image header: %w", t.Extension, err)
	}
	return Info{
		Format: t.Extension,
		Mime:   t.MIME.Value,
		Width:  cfg.Width,
		Height: cfg.Height,
	}, nil
}

// Decode fully decodes an image in any of the supported formats.
func Decode(data []byte) (image.Image, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("unable to decode image: %w", err)
	}
	return img, nil
}
