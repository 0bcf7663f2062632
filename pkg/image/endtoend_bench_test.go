package image

import (
	"fmt"
	"testing"
	"tsteg/test"
)

func BenchmarkEncodeSpeed(b *testing.B) {
	for _, opaque := range []bool{true, false} {
		b.Run(getOpaquenessLabel(opaque), func(b *testing.B) {
			carrier := test.GenerateRandomPixelBuffer(benchImageSize, benchImageSize, opaque)
			for _, fill := range []int{10, 100} {
				messageLength := MaxMessageLength(carrier) * fill / 100
				message := test.GeneratePrintableMessage(messageLength)
				b.Run(fmt.Sprintf("Fill=%d%%", fill), func(b *testing.B) {
					b.SetBytes(int64(messageLength))
					for i := 0; i < b.N; i++ {
						if _, err := Encode(carrier, message); err != nil {
							b.Fatalf("Error during encode: %s", err)
						}
					}
				})
			}
		})
	}
}

func BenchmarkDecodeSpeed(b *testing.B) {
	carrier := test.GenerateRandomPixelBuffer(benchImageSize, benchImageSize, true)
	message := test.GeneratePrintableMessage(MaxMessageLength(carrier))
	result, err := Encode(carrier, message)
	if err != nil {
		b.Fatalf("Error during encode: %s", err)
	}

	b.SetBytes(int64(len(message)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = Decode(result.Embedded); err != nil {
			b.Fatalf("Error during decode: %s", err)
		}
	}
}
