package cli

import (
	"bufio"
	"errors"
	"fmt"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"textsteg/pkg/config"
	"textsteg/pkg/message"
	"textsteg/pkg/model"
)

var (
	carrierExtensions = []string{"png", "jpg", "jpeg", "bmp"}

	menuOptions = []string{"Hide a message in an image", "Read a hidden message from an image", "Quit"}
)

// MaxLineSize bounds a single answer. Messages are typed as one line, so this has to fit the capacity of large
// images, where a character can take two bytes of UTF-8
const MaxLineSize = 64 << 20

const (
	menuHide = iota
	menuRead
	menuQuit
)

// Prompter asks questions on out and reads the answers, one per line, from in
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), MaxLineSize)
	return &Prompter{in: scanner, out: out}
}

func (p *Prompter) readLine() (string, error) {
	fmt.Fprint(p.out, ">>> ")
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return p.in.Text(), nil
}

// Choice shows a numbered list of options until a valid one is picked, and returns its zero based index
func (p *Prompter) Choice(prompt string, options []string) (int, error) {
	for {
		fmt.Fprintf(p.out, "\n%s (1 - %d):\n", prompt, len(options))
		for i, option := range options {
			fmt.Fprintf(p.out, "%d. %s\n", i+1, option)
		}

		answer, err := p.readLine()
		if err != nil {
			return 0, err
		}

		choice, err := strconv.Atoi(strings.TrimSpace(answer))
		if err != nil {
			fmt.Fprintln(p.out, "Please enter a number.")
		} else if choice < 1 || choice > len(options) {
			fmt.Fprintln(p.out, "That's not one of the choices.")
		} else {
			return choice - 1, nil
		}
	}
}

func (p *Prompter) String(prompt string) (string, error) {
	fmt.Fprintf(p.out, "\n%s\n", prompt)
	return p.readLine()
}

func (p *Prompter) WaitForEnter(prompt string) error {
	fmt.Fprintln(p.out, prompt)
	fmt.Fprint(p.out, "Press Enter when you are ready.")
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return err
		}
		return io.EOF
	}
	fmt.Fprintln(p.out)
	return nil
}

// FileLister finds images that can be used as carriers
type FileLister interface {
	Location() string
	ListCarrierFiles() ([]model.CarrierFile, error)
}

type DirFileLister struct {
	Dir string
}

func (l DirFileLister) Location() string {
	return l.Dir
}

func (l DirFileLister) ListCarrierFiles() ([]model.CarrierFile, error) {
	entries, err := os.ReadDir(l.Dir)
	if err != nil {
		return nil, err
	}

	var files []model.CarrierFile
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(entry.Name()), "."))
		if !slices.Contains(carrierExtensions, ext) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return nil, err
		}
		files = append(files, model.CarrierFile{
			Name: entry.Name(),
			Path: filepath.Join(l.Dir, entry.Name()),
			Size: info.Size(),
		})
	}
	return files, nil
}

// Session runs the interactive menu. All console and filesystem access goes through its prompter and file lister
type Session struct {
	prompter *Prompter
	files    FileLister
	config   config.ImageEncodeConfig
	out      io.Writer
}

func NewSession(prompter *Prompter, files FileLister, iConfig config.ImageEncodeConfig) *Session {
	return &Session{prompter: prompter, files: files, config: iConfig, out: prompter.out}
}

// Run shows the menu until the user quits. Running out of input ends the session without an error
func (s *Session) Run() error {
	for {
		choice, err := s.prompter.Choice("What would you like to do?", menuOptions)
		if err == nil {
			switch choice {
			case menuHide:
				err = s.hideMessage()
			case menuRead:
				err = s.readMessage()
			case menuQuit:
				fmt.Fprintln(s.out, "Thank you for using textsteg.")
				return nil
			}
		}

		if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return err
		}
	}
}

func (s *Session) pickFile(purpose string) (model.CarrierFile, error) {
	for {
		err := s.prompter.WaitForEnter(fmt.Sprintf("Please put the image you would like to %s in this folder: %s", purpose, s.files.Location()))
		if err != nil {
			return model.CarrierFile{}, err
		}

		files, err := s.files.ListCarrierFiles()
		if err != nil {
			return model.CarrierFile{}, err
		}

		switch len(files) {
		case 0:
			color.New(color.FgRed).Fprintln(s.out, "No files of the correct type can be found.")
		case 1:
			return files[0], nil
		default:
			names := make([]string, len(files))
			for i, file := range files {
				names[i] = file.Name
			}
			choice, err := s.prompter.Choice("Please select a file.", names)
			if err != nil {
				return model.CarrierFile{}, err
			}
			return files[choice], nil
		}
	}
}

func (s *Session) hideMessage() error {
	file, err := s.pickFile("hide a message in")
	if err != nil {
		return err
	}

	img, err := readImageFile(file.Path)
	if err != nil {
		color.New(color.FgRed).Fprintf(s.out, "Could not read %s: %s\n", file.Name, err)
		return nil
	}
	limit := max(message.Capacity(img.Bounds().Dx(), img.Bounds().Dy())-len(message.Terminator), 0)

	var text string
	for {
		text, err = s.prompter.String(fmt.Sprintf("Please enter the message you would like to hide in the image. It cannot exceed %d characters.", limit))
		if err != nil {
			return err
		}

		var validationErr *message.ValidationError
		if err = message.Validate(text); errors.As(err, &validationErr) {
			color.New(color.FgRed).Fprintln(s.out, "This text contains characters that cannot be encoded.")
			continue
		}
		break
	}

	outputPath := OutputPathFor(file.Path, s.config)
	result, err := EncodeMessageIntoImage(io.Discard, file.Path, outputPath, text, s.config)
	if err != nil {
		color.New(color.FgRed).Fprintf(s.out, "Could not hide the message: %s\n", err)
		return nil
	}

	printEncodeResult(s.out, outputPath, result)
	return nil
}

func (s *Session) readMessage() error {
	file, err := s.pickFile("find a message in")
	if err != nil {
		return err
	}

	decoded, err := DecodeMessageFromImage(io.Discard, file.Path)
	if err != nil {
		color.New(color.FgRed).Fprintf(s.out, "Could not read %s: %s\n", file.Name, err)
		return nil
	}

	printDecodedMessage(s.out, decoded)
	return nil
}

func InteractiveCommand() *cobra.Command {
	var (
		dir  string
		opts encodeOpts
	)

	command := &cobra.Command{
		Use:     "interactive",
		Short:   "Hide and read messages through a text menu",
		Example: "textsteg interactive --dir ./pictures",
		RunE: func(cmd *cobra.Command, args []string) error {
			if dir == "" {
				wd, err := os.Getwd()
				if err != nil {
					return err
				}
				dir = wd
			}

			encodeConfig, err := opts.toEncodeConfig()
			if err != nil {
				return err
			}

			prompter := NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
			return NewSession(prompter, DirFileLister{Dir: dir}, encodeConfig).Run()
		},
	}

	command.Flags().StringVar(&dir, "dir", "", "Folder to look for images in. Defaults to the working directory")
	command.Flags().StringVar(&opts.outputFormat, "format", string(config.DefaultOutputFormat), "Output image format. Options are png, bmp")
	command.Flags().StringVar(&opts.pngCompression, "png-compression", "default", "Compression for output png. Options are default, none, fast, best")
	return command
}
