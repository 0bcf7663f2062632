package cli

import (
	"fmt"
	"tsteg/internal/server"
	"tsteg/pkg/config"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func ServeAppCommand() *cobra.Command {
	var (
		serverConfig config.ServerConfig
		maxBodySize  string
	)

	command := &cobra.Command{
		Use:     "serve",
		Short:   "Serve an API to perform steganography over the web",
		Example: "tsteg serve --port 8888 --max-body-size 64MiB --swagger",
		RunE: func(cmd *cobra.Command, args []string) error {
			maxBodyBytes, err := humanize.ParseBytes(maxBodySize)
			if err != nil {
				return fmt.Errorf("invalid max body size %q: %w", maxBodySize, err)
			}
			serverConfig.MaxBodyBytes = int64(maxBodyBytes)
			return server.StartServer(serverConfig)
		},
	}

	command.Flags().StringVar(&serverConfig.Port, "port", config.DefaultPort, "Port on which to start the server")
	command.Flags().StringVar(&maxBodySize, "max-body-size", humanize.IBytes(config.DefaultMaxBodyBytes), "Largest request body accepted, for example 32MiB or 50MB")
	command.Flags().IntVar(&serverConfig.MaxImagePixels, "max-image-pixels", config.DefaultMaxImagePixels, "Largest image, in pixels, accepted in a request")
	command.Flags().BoolVar(&serverConfig.EnableSwagger, "swagger", false, "Serve the API documentation under /swagger/index.html")

	return command
}
