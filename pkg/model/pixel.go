package model

import (
	"image"
	"image/draw"
)

// PixelBuffer is a raster of interleaved R,G,B,A samples, 8 bits each, row-major with no padding between rows.
// Alpha is not premultiplied, so channel values round-trip through lossless formats unchanged.
type PixelBuffer struct {
	Width  int
	Height int
	Pix    []uint8
}

func NewPixelBuffer(width, height int) PixelBuffer {
	return PixelBuffer{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*4),
	}
}

// PixelBufferFromImage copies img into a new buffer whose origin is (0, 0). NRGBA sources are copied row by row so
// that translucent pixels keep their exact channel values.
func PixelBufferFromImage(img image.Image) PixelBuffer {
	bounds := img.Bounds()
	buf := NewPixelBuffer(bounds.Dx(), bounds.Dy())
	rowLength := buf.Width * 4

	if nrgba, ok := img.(*image.NRGBA); ok {
		for y := 0; y < buf.Height; y++ {
			rowStart := nrgba.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(buf.Pix[y*rowLength:(y+1)*rowLength], nrgba.Pix[rowStart:rowStart+rowLength])
		}
		return buf
	}

	dst := &image.NRGBA{Pix: buf.Pix, Stride: rowLength, Rect: image.Rect(0, 0, buf.Width, buf.Height)}
	draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Src)
	return buf
}

// ToImage returns an image backed by a copy of the buffer's samples.
func (p PixelBuffer) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.Width, p.Height))
	copy(img.Pix, p.Pix)
	return img
}

func (p PixelBuffer) Clone() PixelBuffer {
	pix := make([]uint8, len(p.Pix))
	copy(pix, p.Pix)
	return PixelBuffer{Width: p.Width, Height: p.Height, Pix: pix}
}

func (p PixelBuffer) Equal(other PixelBuffer) bool {
	if p.Width != other.Width || p.Height != other.Height || len(p.Pix) != len(other.Pix) {
		return false
	}
	for i := range p.Pix {
		if p.Pix[i] != other.Pix[i] {
			return false
		}
	}
	return true
}
