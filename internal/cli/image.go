package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
	"tsteg/internal/logging"
	"tsteg/pkg/config"
	tstegImage "tsteg/pkg/image"
	"tsteg/pkg/model"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func ImageCommands() *cobra.Command {
	imageCmd := &cobra.Command{
		Use:     "image",
		Short:   "Performs steganography operations on images",
		Example: "tsteg image encode --image source.png --output-file output.png --message \"meet at noon\"",
	}

	imageCmd.AddCommand(encodeImageCommand(), decodeImageCommand(), capacityImageCommand())
	return imageCmd
}

type outputOpts struct {
	format         string
	pngCompression string
}

// toOutputConfig picks the format from the output file extension when none was given.
func (o outputOpts) toOutputConfig(outputPath string) config.ImageOutputConfig {
	format := o.format
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(outputPath)), ".")
		if format != config.FormatBMP {
			format = config.FormatPNG
		}
	}

	outputConfig := config.ImageOutputConfig{
		Format:              format,
		PngCompressionLevel: config.PngCompressionFromName(o.pngCompression),
	}
	outputConfig.PopulateUnsetConfigVars()
	return outputConfig
}

type encodeImageOpts struct {
	sourceImage      string
	outputImage      string
	message          string
	messageFile      string
	normalizedOutput string
	printBitstream   bool
	output           outputOpts
}

func encodeImageCommand() *cobra.Command {
	opts := encodeImageOpts{}

	encImgCmd := &cobra.Command{
		Use:     "encode",
		Example: "tsteg image encode --image source.png --output-file output.png --message-file secret.txt --format bmp",
		Short:   "Encode a text message into an image",
		RunE: func(cmd *cobra.Command, args []string) error {
			return EncodeImageWithMessage(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
		},
	}

	encImgCmd.Flags().StringVar(&opts.sourceImage, "image", "", "Image to encode the message into")
	encImgCmd.Flags().StringVar(&opts.outputImage, "output-file", "", "Name for the encoded image that will be generated")
	encImgCmd.Flags().StringVar(&opts.message, "message", "", "Message to hide in the image")
	encImgCmd.Flags().StringVar(&opts.messageFile, "message-file", "", "File whose text content is hidden in the image")
	encImgCmd.Flags().StringVar(&opts.normalizedOutput, "normalized-output", "", "Also write the carrier with every LSB cleared, before the message was embedded")
	encImgCmd.Flags().BoolVar(&opts.printBitstream, "print-bitstream", false, "Print the embedded bits as a string of 0s and 1s")

	encImgCmd.Flags().StringVar(&opts.output.format, "format", "", "Format of the output image. Options are png and bmp, inferred from the output file name when unset")
	encImgCmd.Flags().StringVar(&opts.output.pngCompression, "png-compression", "default", "Compression for output png. Options are default, none, fast, best")

	MarkFlagsRequired(encImgCmd, "image", "output-file")
	encImgCmd.MarkFlagsMutuallyExclusive("message", "message-file")
	encImgCmd.MarkFlagsOneRequired("message", "message-file")

	return encImgCmd
}

func EncodeImageWithMessage(out, progress io.Writer, opts encodeImageOpts) error {
	logger := logging.BuildLogger()

	outputConfig := opts.output.toOutputConfig(opts.outputImage)
	if err := outputConfig.Validate(); err != nil {
		return err
	}

	message := opts.message
	if opts.messageFile != "" {
		messageBytes, err := os.ReadFile(opts.messageFile)
		if err != nil {
			return err
		}
		message = string(messageBytes)
	}

	s := NewSpinner(progress)
	s.Prefix = "Reading source image from disk "
	s.Start()
	defer s.Stop()

	carrier, _, err := readImageFile(opts.sourceImage)
	if err != nil {
		return err
	}

	s.Prefix = "Encoding message "
	result, err := tstegImage.Encode(carrier, message)
	if err != nil {
		return err
	}

	s.Prefix = fmt.Sprintf("Generating output %s image ", outputConfig.Format)
	result.Stats.OutputImageEncoding, err = writeImageFile(opts.outputImage, result.Embedded, outputConfig)
	if err != nil {
		return err
	}
	if opts.normalizedOutput != "" {
		if _, err = writeImageFile(opts.normalizedOutput, result.Normalized, outputConfig); err != nil {
			return err
		}
	}
	s.Stop()

	logger.Info("Image encoding was successful",
		"output_file", opts.outputImage,
		"setup", result.Stats.Setup.String(),
		"data_encoding", result.Stats.DataEncoding.String(),
		"output_image_encoding", result.Stats.OutputImageEncoding.String(),
		"bits_embedded", result.Stats.BitsEmbedded,
		"capacity_bits", result.Stats.CapacityBits)

	if opts.printBitstream {
		if _, err = fmt.Fprintln(out, result.Bitstream.String()); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(out, "Generated %s with %s of %s capacity used\n", opts.outputImage,
		humanize.Bytes(uint64(result.Stats.BitsEmbedded/8)), humanize.Bytes(uint64(result.Stats.CapacityBits/8)))
	return err
}

func decodeImageCommand() *cobra.Command {
	var encodedImageFile, outputFile string

	decodeCommand := &cobra.Command{
		Use:     "decode",
		Example: "tsteg image decode --source encoded-image.png",
		Short:   "Decode the message hidden in an image by tsteg",
		RunE: func(cmd *cobra.Command, args []string) error {
			return DecodeMessageFromImage(cmd.OutOrStdout(), cmd.ErrOrStderr(), encodedImageFile, outputFile)
		},
	}

	decodeCommand.Flags().StringVar(&encodedImageFile, "source", "", "Image generated by tsteg to decode")
	decodeCommand.Flags().StringVar(&outputFile, "output-file", "", "Write the decoded message to this file instead of stdout")
	MarkFlagsRequired(decodeCommand, "source")
	return decodeCommand
}

func DecodeMessageFromImage(out, progress io.Writer, encodedImageFile, outputFile string) error {
	s := NewSpinner(progress)
	s.Prefix = "Reading source image from disk "
	s.Start()
	defer s.Stop()

	carrier, _, err := readImageFile(encodedImageFile)
	if err != nil {
		return err
	}

	s.Prefix = "Decoding message "
	result, err := tstegImage.DecodeMessage(carrier)
	if err != nil {
		return err
	}
	s.Stop()

	logging.BuildLogger().Info("Image decoding was successful",
		"data_decoding", result.Stats.DataDecoding.String(),
		"bits_scanned", result.Stats.BitsScanned,
		"bytes_read", result.BytesRead)

	if outputFile != "" {
		return os.WriteFile(outputFile, []byte(result.Message), 0o644)
	}
	_, err = fmt.Fprintln(out, result.Message)
	return err
}

func capacityImageCommand() *cobra.Command {
	var imageFile string

	capacityCommand := &cobra.Command{
		Use:     "capacity",
		Example: "tsteg image capacity --image source.png",
		Short:   "Report how much text an image can hold",
		RunE: func(cmd *cobra.Command, args []string) error {
			carrier, format, err := readImageFile(imageFile)
			if err != nil {
				return err
			}

			maxMessageLength := tstegImage.MaxMessageLength(carrier)
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%dx%d %s image holds %s bits, up to %s characters (%s)\n",
				carrier.Width, carrier.Height, format,
				humanize.Comma(int64(tstegImage.Capacity(carrier))),
				humanize.Comma(int64(maxMessageLength)),
				humanize.Bytes(uint64(maxMessageLength)))
			return err
		},
	}

	capacityCommand.Flags().StringVar(&imageFile, "image", "", "Candidate carrier image")
	MarkFlagsRequired(capacityCommand, "image")
	return capacityCommand
}

func readImageFile(filePath string) (model.PixelBuffer, string, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return model.PixelBuffer{}, "", err
	}
	defer f.Close()

	return tstegImage.ReadPixelBuffer(f)
}

func writeImageFile(filePath string, buf model.PixelBuffer, outputConfig config.ImageOutputConfig) (time.Duration, error) {
	outputFile, err := os.Create(filePath)
	if err != nil {
		return 0, err
	}

	elapsed, err := tstegImage.WritePixelBuffer(outputFile, buf, outputConfig)
	if closeErr := outputFile.Close(); err == nil {
		err = closeErr
	}
	return elapsed, err
}
