package image

import (
	"testing"
	"tsteg/pkg/model"
)

func TestNormalizeClearsColorLSBs(t *testing.T) {
	runImageTestsWithAllOpaquenessSettings(t, func(t *testing.T, carrier model.PixelBuffer) {
		original := carrier.Clone()
		normalized := Normalize(carrier)

		if !carrier.Equal(original) {
			t.Fatalf("Normalize modified its input")
		}
		if normalized.Width != carrier.Width || normalized.Height != carrier.Height {
			t.Fatalf("Normalize changed dimensions to %dx%d", normalized.Width, normalized.Height)
		}
		for p := range normalized.Pix {
			if p%channelsPerPixel == alphaChannel {
				continue
			}
			if normalized.Pix[p]%2 != 0 {
				t.Fatalf("Channel %d still odd after normalization: %d", p, normalized.Pix[p])
			}
			if carrier.Pix[p]-normalized.Pix[p] > 1 {
				t.Fatalf("Channel %d moved from %d to %d", p, carrier.Pix[p], normalized.Pix[p])
			}
		}
		equalAlphas(t, carrier, normalized)
	})
}

func TestNormalizeIsIdempotent(t *testing.T) {
	runImageTestsWithAllOpaquenessSettings(t, func(t *testing.T, carrier model.PixelBuffer) {
		once := Normalize(carrier)
		twice := Normalize(once)
		if !once.Equal(twice) {
			t.Errorf("Normalizing twice differs from normalizing once")
		}
	})
}

func TestNormalizeNeverIncrements(t *testing.T) {
	carrier := model.PixelBuffer{Width: 1, Height: 1, Pix: []uint8{255, 1, 0, 255}}
	normalized := Normalize(carrier)
	expected := []uint8{254, 0, 0, 255}
	for i := range expected {
		if normalized.Pix[i] != expected[i] {
			t.Fatalf("Expected %v, got %v", expected, normalized.Pix)
		}
	}
}
