package cli

import (
	"bufio"
	"io"

	"github.com/fs-over-http/fsh/internal/errors"
	"github.com/manifoldco/promptui"
)

// MaxLineLength is the longest input line, in bytes, a StreamReader returns.
const MaxLineLength = 1 << 20

// ErrLineTooLong is returned for a line over MaxLineLength. The line is consumed,
// so the next read starts on the following line.
var ErrLineTooLong = errors.New("input line too long")

// StreamReader reads newline-terminated commands from a plain stream, such as a
// pipe or a script.
type StreamReader struct {
	reader *bufio.Reader
	out    io.Writer
}

func NewStreamReader(in io.Reader, out io.Writer) *StreamReader {
	return &StreamReader{reader: bufio.NewReader(in), out: out}
}

func (r *StreamReader) ReadLine(prompt string) (string, error) {
	if r.out != nil && prompt != "" {
		if _, err := io.WriteString(r.out, prompt); err != nil {
			return "", errors.Wrap(err, "unable to write prompt")
		}
	}

	var line []byte
	tooLong := false
	for {
		chunk, isPrefix, err := r.reader.ReadLine()
		if errors.Is(err, io.EOF) {
			return "", io.EOF
		}
		if err != nil {
			return "", errors.Wrap(err, "unable to read input")
		}

		if !tooLong {
			line = append(line, chunk...)
			if len(line) > MaxLineLength {
				tooLong = true
				line = nil
			}
		}

		if !isPrefix {
			break
		}
	}

	if tooLong {
		return "", ErrLineTooLong
	}

	return string(line), nil
}

// PromptReader reads commands from an interactive terminal with line editing.
type PromptReader struct {
	Stdin  io.ReadCloser
	Stdout io.WriteCloser
}

func (r *PromptReader) ReadLine(prompt string) (string, error) {
	p := newPrompt(prompt)
	p.Stdin = r.Stdin
	p.Stdout = r.Stdout

	line, err := p.Run()
	return line, promptError(err)
}

// newPrompt renders prompt through the label so template syntax in it is printed
// literally.
func newPrompt(prompt string) promptui.Prompt {
	const literal = "{{ . }}"

	return promptui.Prompt{
		Label: prompt,
		Templates: &promptui.PromptTemplates{
			Prompt:  literal,
			Valid:   literal,
			Invalid: literal,
			Success: literal,
		},
	}
}

func promptError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, promptui.ErrEOF), errors.Is(err, promptui.ErrInterrupt):
		return io.EOF
	default:
		return errors.Wrap(err, "unable to read input")
	}
}
