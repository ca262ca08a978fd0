package cli

import (
	"errors"
	"fmt"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"io"
	"os"
	"textsteg/internal/logging"
	"textsteg/pkg/config"
	stegImage "textsteg/pkg/image"
	"textsteg/pkg/message"
	"textsteg/pkg/model"
)

var (
	ErrMessageSourceConflict = errors.New("only one of --message and --message-file can be supplied")
	ErrNoMessage             = errors.New("a message must be supplied with --message or --message-file")
)

func ImageCommands() *cobra.Command {
	imageCmd := &cobra.Command{
		Use:     "image",
		Short:   "Hides text messages in images, and reads them back",
		Example: "textsteg image encode --image source.png --message \"meet at noon\"",
	}

	imageCmd.AddCommand(encodeImageCommand(), decodeImageCommand(), capacityImageCommand())
	return imageCmd
}

type encodeOpts struct {
	outputFormat   string
	pngCompression string
}

func (o encodeOpts) toEncodeConfig() (config.ImageEncodeConfig, error) {
	compression, err := config.ParsePngCompression(o.pngCompression)
	if err != nil {
		return config.ImageEncodeConfig{}, err
	}
	iConfig := config.ImageEncodeConfig{
		OutputFormat:        config.OutputFormat(o.outputFormat),
		PngCompressionLevel: compression,
	}
	return iConfig, iConfig.Validate()
}

type encodeImageOpts struct {
	sourceImage string
	outputImage string
	message     string
	messageFile string
	config      encodeOpts
}

func (o encodeImageOpts) readMessage(stdin io.Reader) (string, error) {
	switch {
	case o.message != "" && o.messageFile != "":
		return "", ErrMessageSourceConflict
	case o.message != "":
		return o.message, nil
	case o.messageFile == "-":
		content, err := io.ReadAll(stdin)
		return string(content), err
	case o.messageFile != "":
		content, err := os.ReadFile(o.messageFile)
		return string(content), err
	default:
		return "", ErrNoMessage
	}
}

func encodeImageCommand() *cobra.Command {
	opts := encodeImageOpts{}

	encImgCmd := &cobra.Command{
		Use:     "encode",
		Example: "textsteg image encode --image source.png --output-file output.png --message \"meet at noon\"",
		Short:   "Hide a message in an image",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := opts.readMessage(cmd.InOrStdin())
			if err != nil {
				return err
			}

			encodeConfig, err := opts.config.toEncodeConfig()
			if err != nil {
				return err
			}
			outputPath := opts.outputImage
			if outputPath == "" {
				outputPath = OutputPathFor(opts.sourceImage, encodeConfig)
			}

			result, err := EncodeMessageIntoImage(cmd.ErrOrStderr(), opts.sourceImage, outputPath, text, encodeConfig)
			if err != nil {
				return err
			}

			printEncodeResult(cmd.OutOrStdout(), outputPath, result)
			return nil
		},
	}

	encImgCmd.Flags().StringVar(&opts.sourceImage, "image", "", "Image to hide the message in (png, jpeg, gif or bmp)")
	encImgCmd.Flags().StringVar(&opts.outputImage, "output-file", "", "Name for the generated image. Defaults to the source name with _2 appended")
	encImgCmd.Flags().StringVar(&opts.message, "message", "", "Message to hide. Only characters with a code point below 256 are supported")
	encImgCmd.Flags().StringVar(&opts.messageFile, "message-file", "", "File to read the message to hide from, - reads standard input")

	encImgCmd.Flags().StringVar(&opts.config.outputFormat, "format", string(config.DefaultOutputFormat), "Output image format. Options are png, bmp")
	encImgCmd.Flags().StringVar(&opts.config.pngCompression, "png-compression", "default", "Compression for output png. Options are default, none, fast, best")

	MarkFlagsRequired(encImgCmd, "image")

	return encImgCmd
}

// EncodeMessageIntoImage hides text in the image at imageSourcePath and writes the result to outputPath
func EncodeMessageIntoImage(progressOutput io.Writer, imageSourcePath, outputPath, text string, iConfig config.ImageEncodeConfig) (model.EncodeResult, error) {
	logger := logging.BuildLogger().With("source", imageSourcePath, "output", outputPath)

	s := NewSpinner(progressOutput)
	s.Prefix = "Reading source image from disk "
	s.Start()
	defer s.Stop()

	srcImage, err := readImageFile(imageSourcePath)
	if err != nil {
		return model.EncodeResult{}, err
	}

	s.Prefix = "Setting up encoder "
	encoder, err := stegImage.NewImageEncoder(srcImage, iConfig)
	if err != nil {
		return model.EncodeResult{}, err
	}

	s.Prefix = "Encoding message "
	result, err := encoder.EncodeMessage(text)
	if err != nil {
		return model.EncodeResult{}, err
	}

	s.Prefix = "Generating output image "
	if err = writeImageFile(outputPath, encoder); err != nil {
		return model.EncodeResult{}, err
	}

	logger.With("stats", encoder.Stats(), "result", result).Debug("Image encoding was successful")
	return result, nil
}

func printEncodeResult(w io.Writer, outputPath string, result model.EncodeResult) {
	if result.Truncated {
		color.New(color.FgYellow).Fprintf(w, "Message was too long for the image and was cut down to %s characters\n",
			humanize.Comma(int64(result.MessageLength)))
	}
	if !result.TerminatorStored {
		color.New(color.FgYellow).Fprintln(w, "Image is too small to mark the end of the message, it will not be readable")
	}
	fmt.Fprintf(w, "Message successfully hidden in %s\n", outputPath)
}

func decodeImageCommand() *cobra.Command {
	var encodedImageFile string

	decodeCommand := &cobra.Command{
		Use:     "decode",
		Example: "textsteg image decode --source encoded-image.png",
		Short:   "Read a message hidden by textsteg from an image",
		RunE: func(cmd *cobra.Command, args []string) error {
			decoded, err := DecodeMessageFromImage(cmd.ErrOrStderr(), encodedImageFile)
			if err != nil {
				return err
			}

			printDecodedMessage(cmd.OutOrStdout(), decoded)
			return nil
		},
	}

	decodeCommand.Flags().StringVar(&encodedImageFile, "source", "", "Image to read the hidden message from")
	MarkFlagsRequired(decodeCommand, "source")
	return decodeCommand
}

func DecodeMessageFromImage(progressOutput io.Writer, encodedImageFile string) (model.DecodedMessage, error) {
	logger := logging.BuildLogger().With("source", encodedImageFile)

	s := NewSpinner(progressOutput)
	s.Prefix = "Reading source image from disk "
	s.Start()
	defer s.Stop()

	srcImage, err := readImageFile(encodedImageFile)
	if err != nil {
		return model.DecodedMessage{}, err
	}

	s.Prefix = "Setting up decoder "
	decoder, err := stegImage.NewImageDecoder(srcImage)
	if err != nil {
		return model.DecodedMessage{}, err
	}

	s.Prefix = "Decoding message "
	decoded := decoder.DecodeMessage()

	logger.With("stats", decoder.Stats(), "found", decoded.Found).Debug("Image decoding finished")
	return decoded, nil
}

func printDecodedMessage(w io.Writer, decoded model.DecodedMessage) {
	if !decoded.Found {
		color.New(color.FgYellow).Fprintln(w, "No hidden message was found in this image")
		return
	}
	fmt.Fprintln(w, "Message successfully found!")
	fmt.Fprintln(w, decoded.Text)
}

func capacityImageCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "capacity [image-path]",
		Example: "textsteg image capacity source.png",
		Short:   "Show how many characters an image can hide",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := readImageFile(args[0])
			if err != nil {
				return err
			}

			capacity := message.Capacity(img.Bounds().Dx(), img.Bounds().Dy())
			fmt.Fprintf(cmd.OutOrStdout(), "%s can hide messages of up to %s characters (%s including the terminator)\n",
				args[0], humanize.Comma(int64(max(capacity-len(message.Terminator), 0))), humanize.Comma(int64(capacity)))
			return nil
		},
	}
}
