package image

import (
	"fmt"
	"testing"
	"tsteg/pkg/model"
	"tsteg/test"
)

const (
	testImageSize  = 64
	benchImageSize = 1000
)

type testFunc func(t *testing.T, carrier model.PixelBuffer)

func runImageTestsWithAllOpaquenessSettings(t *testing.T, testFunc testFunc) {
	for _, opaque := range []bool{true, false} {
		opaqueCopy := opaque
		t.Run(getOpaquenessLabel(opaque), func(t *testing.T) {
			t.Parallel()
			for _, size := range [][2]int{{1, 1}, {3, 5}, {testImageSize, testImageSize}} {
				sizeCopy := size
				t.Run(fmt.Sprintf("%dx%d", size[0], size[1]), func(t *testing.T) {
					testFunc(t, test.GenerateRandomPixelBuffer(sizeCopy[0], sizeCopy[1], opaqueCopy))
				})
			}
		})
	}
}

func getOpaquenessLabel(opaque bool) string {
	if opaque {
		return "opaque"
	} else {
		return "non-opaque"
	}
}

func alphaValues(buf model.PixelBuffer) []uint8 {
	alphas := make([]uint8, 0, len(buf.Pix)/channelsPerPixel)
	for p := alphaChannel; p < len(buf.Pix); p += channelsPerPixel {
		alphas = append(alphas, buf.Pix[p])
	}
	return alphas
}

func equalAlphas(t *testing.T, expected, got model.PixelBuffer) {
	t.Helper()
	expectedAlphas, gotAlphas := alphaValues(expected), alphaValues(got)
	if len(expectedAlphas) != len(gotAlphas) {
		t.Fatalf("Alpha channel count changed from %d to %d", len(expectedAlphas), len(gotAlphas))
	}
	for i := range expectedAlphas {
		if expectedAlphas[i] != gotAlphas[i] {
			t.Fatalf("Alpha of pixel %d changed from %d to %d", i, expectedAlphas[i], gotAlphas[i])
		}
	}
}
