package cli

import (
	"fmt"
	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"
	"textsteg/pkg/config"
	stegImage "textsteg/pkg/image"
	"time"
)

const outputSuffix = "_2"

func MarkFlagsRequired(cmd *cobra.Command, flags ...string) {
	for _, flag := range flags {
		if err := cmd.MarkFlagRequired(flag); err != nil {
			panic(err)
		}
	}
}

func NewSpinner(w io.Writer) *spinner.Spinner {
	return spinner.New(spinner.CharSets[4], 100*time.Millisecond, spinner.WithWriter(w))
}

// OutputPathFor derives the output image path from the source image path: everything in the file name up to the
// first dot, followed by _2 and the extension of the output format. The leading dot of a hidden file is kept, and a
// name that is only an extension, like .png, leaves nothing before the suffix
func OutputPathFor(sourcePath string, iConfig config.ImageEncodeConfig) string {
	dir, name := filepath.Split(sourcePath)
	return filepath.Join(dir, stemOf(name)+outputSuffix+iConfig.FileExtension())
}

func stemOf(name string) string {
	if !strings.HasPrefix(name, ".") {
		if dotIdx := strings.Index(name, "."); dotIdx > 0 {
			return name[:dotIdx]
		}
		return name
	}

	if dotIdx := strings.Index(name[1:], "."); dotIdx >= 0 {
		return name[:dotIdx+1]
	}
	return ""
}

func readImageFile(filePath string) (*image.NRGBA, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := stegImage.ReadImage(f)
	if err != nil {
		return nil, fmt.Errorf("reading image %s: %w", filePath, err)
	}
	return img, nil
}

func writeImageFile(filePath string, encoder *stegImage.Encoder) error {
	outputFile, err := os.Create(filePath)
	if err != nil {
		return err
	}

	if err = encoder.WriteEncodedImage(outputFile); err != nil {
		outputFile.Close()
		return fmt.Errorf("writing image %s: %w", filePath, err)
	}
	return outputFile.Close()
}
