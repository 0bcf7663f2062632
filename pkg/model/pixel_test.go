package model

import (
	"image"
	"image/color"
	"testing"
)

func TestPixelBufferFromImageKeepsSamples(t *testing.T) {
	src := image.NewNRGBA(image.Rect(2, 3, 5, 5))
	src.Set(2, 3, color.NRGBA{R: 11, G: 21, B: 31, A: 41})
	src.Set(4, 4, color.NRGBA{R: 255, G: 1, B: 3, A: 255})

	buf := PixelBufferFromImage(src)
	if buf.Width != 3 || buf.Height != 2 {
		t.Fatalf("Expected 3x2 buffer, got %dx%d", buf.Width, buf.Height)
	}
	if len(buf.Pix) != buf.Width*buf.Height*4 {
		t.Fatalf("Unexpected pixel slice length %d", len(buf.Pix))
	}
	if got := buf.Pix[0:4]; got[0] != 11 || got[1] != 21 || got[2] != 31 || got[3] != 41 {
		t.Errorf("First pixel not preserved, got %v", got)
	}
	last := buf.Pix[len(buf.Pix)-4:]
	if last[0] != 255 || last[1] != 1 || last[2] != 3 || last[3] != 255 {
		t.Errorf("Last pixel not preserved, got %v", last)
	}
}

func TestToImageAndCloneDoNotAlias(t *testing.T) {
	buf := NewPixelBuffer(2, 2)
	for i := range buf.Pix {
		buf.Pix[i] = uint8(i)
	}

	img := buf.ToImage()
	clone := buf.Clone()
	if !clone.Equal(buf) || !PixelBufferFromImage(img).Equal(buf) {
		t.Fatalf("Copies should equal the original buffer")
	}

	img.Pix[0] = 200
	clone.Pix[1] = 200
	if buf.Pix[0] != 0 || buf.Pix[1] != 1 {
		t.Errorf("Modifying a copy changed the original buffer: %v", buf.Pix[:2])
	}
	if clone.Equal(buf) {
		t.Errorf("Modified clone should no longer equal the original")
	}
}

func TestBitstreamString(t *testing.T) {
	if got := (Bitstream{0, 1, 0, 0, 1, 0, 0, 0}).String(); got != "01001000" {
		t.Errorf("Expected 01001000, got %s", got)
	}
	if got := Bitstream(nil).String(); got != "" {
		t.Errorf("Expected empty string, got %q", got)
	}
}

func TestPixelBufferFromOpaqueRGBA(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 1))
	src.Set(0, 0, color.RGBA{R: 1, G: 2, B: 3, A: 255})
	src.Set(1, 0, color.RGBA{R: 253, G: 254, B: 255, A: 255})

	buf := PixelBufferFromImage(src)
	expected := []uint8{1, 2, 3, 255, 253, 254, 255, 255}
	for i := range expected {
		if buf.Pix[i] != expected[i] {
			t.Fatalf("Expected %v, got %v", expected, buf.Pix)
		}
	}
}
