package image

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"time"
	"tsteg/pkg/config"
	"tsteg/pkg/model"

	"golang.org/x/image/bmp"
)

// ReadPixelBuffer decodes any registered image format (png, jpeg, gif, bmp) into a pixel buffer, refusing images
// above config.DefaultMaxImagePixels. A lossy source is fine as a carrier, only the output has to be lossless.
func ReadPixelBuffer(r io.Reader) (model.PixelBuffer, string, error) {
	return ReadPixelBufferWithLimit(r, config.DefaultMaxImagePixels)
}

// ReadPixelBufferWithLimit checks the dimensions in the image header against maxPixels before the raster is
// allocated. A non-positive maxPixels falls back to config.DefaultMaxImagePixels.
func ReadPixelBufferWithLimit(r io.Reader, maxPixels int) (model.PixelBuffer, string, error) {
	if maxPixels < 1 {
		maxPixels = config.DefaultMaxImagePixels
	}

	// Everything DecodeConfig consumes is replayed for the full decode
	var header bytes.Buffer
	imageConfig, _, err := image.DecodeConfig(io.TeeReader(r, &header))
	if err != nil {
		return model.PixelBuffer{}, "", fmt.Errorf("decoding image header: %w", err)
	}
	if pixels := int64(imageConfig.Width) * int64(imageConfig.Height); pixels > int64(maxPixels) {
		return model.PixelBuffer{}, "", fmt.Errorf("%w: %dx%d is above the limit of %d pixels",
			ErrImageTooLarge, imageConfig.Width, imageConfig.Height, maxPixels)
	}

	srcImage, format, err := image.Decode(io.MultiReader(&header, r))
	if err != nil {
		return model.PixelBuffer{}, "", fmt.Errorf("decoding image: %w", err)
	}
	return model.PixelBufferFromImage(srcImage), format, nil
}

// WritePixelBuffer serializes buf in the configured lossless format and reports how long it took.
func WritePixelBuffer(output io.Writer, buf model.PixelBuffer, outputConfig config.ImageOutputConfig) (time.Duration, error) {
	imageEncodeStart := time.Now()

	outputConfig.PopulateUnsetConfigVars()
	if err := outputConfig.Validate(); err != nil {
		return 0, err
	}
	if err := checkPixelBuffer(buf); err != nil {
		return 0, err
	}

	var err error
	switch outputConfig.Format {
	case config.FormatBMP:
		err = bmp.Encode(output, buf.ToImage())
	default:
		enc := png.Encoder{CompressionLevel: outputConfig.PngCompressionLevel}
		err = enc.Encode(output, buf.ToImage())
	}
	if err != nil {
		return 0, fmt.Errorf("encoding %s image: %w", outputConfig.Format, err)
	}
	return time.Since(imageEncodeStart), nil
}
