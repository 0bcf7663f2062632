package config

import (
	"image/png"
	"testing"
)

func TestImageOutputConfigDefaults(t *testing.T) {
	c := ImageOutputConfig{}
	c.PopulateUnsetConfigVars()
	if c.Format != FormatPNG {
		t.Errorf("Expected default format %s, got %s", FormatPNG, c.Format)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("Default config should be valid: %s", err)
	}

	c = ImageOutputConfig{Format: " BMP "}
	c.PopulateUnsetConfigVars()
	if c.Format != FormatBMP {
		t.Errorf("Expected format to be normalized to %s, got %q", FormatBMP, c.Format)
	}

	if err := (ImageOutputConfig{Format: "jpeg"}).Validate(); err == nil {
		t.Errorf("Lossy output formats must be rejected")
	}
}

func TestPngCompressionFromName(t *testing.T) {
	if PngCompressionFromName("best") != png.BestCompression {
		t.Errorf("Expected best compression")
	}
	if PngCompressionFromName("unknown") != png.DefaultCompression {
		t.Errorf("Expected unknown names to map to the default compression")
	}
}

func TestServerConfigDefaults(t *testing.T) {
	c := ServerConfig{}
	c.PopulateUnsetConfigVars()
	if c.Port != DefaultPort || c.MaxBodyBytes != DefaultMaxBodyBytes || c.MaxImagePixels != DefaultMaxImagePixels {
		t.Errorf("Unexpected defaults %+v", c)
	}
}
