package mocks

import "io"

// Input replays Lines, then reports io.EOF.
type Input struct {
	Lines   []string
	Prompts []string
	Err     error
}

func (i *Input) ReadLine(prompt string) (string, error) {
	i.Prompts = append(i.Prompts, prompt)

	if len(i.Lines) == 0 {
		if i.Err != nil {
			return "", i.Err
		}
		return "", io.EOF
	}

	line := i.Lines[0]
	i.Lines = i.Lines[1:]
	return line, nil
}
