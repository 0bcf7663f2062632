package config

const (
	DefaultPort         = "8080"
	DefaultMaxBodyBytes = 32 << 20
)

type ServerConfig struct {
	Port string
	// MaxBodyBytes bounds request bodies, which carry whole images
	MaxBodyBytes   int64
	MaxImagePixels int
	EnableSwagger  bool
}

func (c *ServerConfig) PopulateUnsetConfigVars() {
	if c.Port == "" {
		c.Port = DefaultPort
	}
	if c.MaxBodyBytes < 1 {
		c.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if c.MaxImagePixels < 1 {
		c.MaxImagePixels = DefaultMaxImagePixels
	}
}
