package images

import (
	"bytes"
	"image"
	"image/color"
	"testing"
)

func TestStampDensityAddsSegment(t *testing.T) {
	// Minimal JPEG without APP0.
	data := []byte{0xFF, 0xD8, 0xFF, 0xDB, 0x00, 0x04}

	out, added, err := StampDensity(data, DensityPerInch, 300, 300)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !added {
		t.Fatal("expected segment to be added")
	}
	if len(out) != len(data)+18 {
		t.Fatalf("expected output to grow by 18 bytes, got %d -> %d", len(data), len(out))
	}
	if out[0] != 0xFF || out[1] != 0xD8 {
		t.Fatal("expected SOI marker preserved")
	}
	if !bytes.Equal(out[2:4], []byte{0xFF, 0xE0}) {
		t.Fatal("expected JFIF APP0 marker at position 2-3")
	}
	if !bytes.Equal(out[6:11], []byte{'J', 'F', 'I', 'F', 0x00}) {
		t.Fatal("expected JFIF identifier")
	}
	if !bytes.Equal(out[len(out)-len(data)+2:], data[2:]) {
		t.Fatal("expected original payload after the segment")
	}
}

func TestStampDensityAlreadyPresent(t *testing.T) {
	// Minimal JPEG with APP0 already present.
	data := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10}

	out, added, err := StampDensity(data, DensityPerInch, 300, 300)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if added {
		t.Fatal("expected no segment addition")
	}
	if !bytes.Equal(out, data) {
		t.Fatal("expected same bytes")
	}
}

func TestStampDensityRejectsNonJPEG(t *testing.T) {
	if _, _, err := StampDensity([]byte{0x89, 'P', 'N', 'G'}, DensityPerInch, 150, 150); err == nil {
		t.Error("expected error for non-JPEG data")
	}
	if _, _, err := StampDensity([]byte{0xFF, 0xD8}, DensityPerInch, 150, 150); err == nil {
		t.Error("expected error for truncated data")
	}
}

func TestEncodeJPEG(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))

	out, err := EncodeJPEG(img, 80, DensityPerInch, 150, 150)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out[0] != 0xFF || out[1] != 0xD8 {
		t.Fatal("expected SOI marker")
	}
	if !bytes.Equal(out[2:4], []byte{0xFF, 0xE0}) {
		t.Fatal("expected JFIF APP0 marker")
	}
	// Density unit and values land right after the version bytes.
	if out[13] != byte(DensityPerInch) {
		t.Errorf("density unit = %d, want %d", out[13], DensityPerInch)
	}
	if out[14] != 0x00 || out[15] != 150 {
		t.Errorf("xdensity bytes = %x %x, want 00 96", out[14], out[15])
	}
}

func TestIsGrayscale(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 2, 2))
	if !IsGrayscale(gray) {
		t.Error("gray image reported as color")
	}

	rgba := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for y := range 2 {
		for x := range 2 {
			rgba.Set(x, y, color.RGBA{R: 42, G: 42, B: 42, A: 255})
		}
	}
	if !IsGrayscale(rgba) {
		t.Error("gray-valued RGBA image reported as color")
	}

	rgba.Set(1, 1, color.RGBA{R: 200, G: 10, B: 10, A: 255})
	if IsGrayscale(rgba) {
		t.Error("color image reported as grayscale")
	}
}
