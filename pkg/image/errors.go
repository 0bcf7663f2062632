package image

import (
	"errors"
	"fmt"
	"tsteg/pkg/model"
)

var (
	ErrInvalidPixelBuffer = errors.New("pixel buffer cannot be read")
	ErrMessageTooLong     = errors.New("supplied image not big enough to contain the message, either shorten the message or choose a larger image")
	ErrImageTooLarge      = errors.New("image declares more pixels than allowed, decoding it could lead to OOM")
)

// ContextError reports a carrier that cannot be read at all. It is never worth retrying with the same buffer.
type ContextError struct {
	Reason string
}

func (e *ContextError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidPixelBuffer, e.Reason)
}

func (e *ContextError) Is(target error) bool {
	return target == ErrInvalidPixelBuffer
}

// CapacityError reports a message whose bitstream does not fit in the carrier's R, G and B channels.
type CapacityError struct {
	RequiredBits  int
	AvailableBits int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("message requires %d bits but the image only has room for %d: %s", e.RequiredBits, e.AvailableBits, ErrMessageTooLong)
}

func (e *CapacityError) Is(target error) bool {
	return target == ErrMessageTooLong
}

func checkPixelBuffer(carrier model.PixelBuffer) error {
	switch {
	case carrier.Pix == nil:
		return &ContextError{Reason: "no pixel data"}
	case carrier.Width <= 0 || carrier.Height <= 0:
		return &ContextError{Reason: fmt.Sprintf("invalid dimensions %dx%d", carrier.Width, carrier.Height)}
	case len(carrier.Pix) != carrier.Width*carrier.Height*channelsPerPixel:
		return &ContextError{Reason: fmt.Sprintf("expected %d channel values for a %dx%d image, got %d",
			carrier.Width*carrier.Height*channelsPerPixel, carrier.Width, carrier.Height, len(carrier.Pix))}
	}
	return nil
}
