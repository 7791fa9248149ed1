package cli

import (
	"fmt"
	"strings"

	tsize "github.com/kopoli/go-terminal-size"
	"github.com/mitchellh/go-wordwrap"
)

const defaultHelpWidth = 80

var commandHelp = []struct {
	usage       string
	description string
}{
	{"connect [host]", "Use host for the following commands. Without a host, reconnects to the last host used."},
	{"pwd", "Print the working directory."},
	{"ls [pattern]", "List the working directory, directories first. A glob pattern such as '*.txt' or '**/*.md' limits the entries shown."},
	{"cd <directory>", "Change the working directory. '..' moves up a level and '/' returns to the root."},
	{"open", "Open the working directory in a browser."},
	{"help", "Show this message."},
	{"exit", "Leave the shell."},
}

func (s *Session) helpWidth() uint {
	if s.Width > 0 {
		return s.Width
	}

	if s.StdoutIsTTY {
		if size, err := tsize.GetSize(); err == nil && size.Width > 0 {
			return uint(size.Width)
		}
	}

	return defaultHelpWidth
}

func (s *Session) printHelp() {
	const indent = "    "
	width := s.helpWidth()
	if width > uint(len(indent)) {
		width -= uint(len(indent))
	}

	for _, cmd := range commandHelp {
		s.println(cmd.usage)
		for _, line := range strings.Split(wordwrap.WrapString(cmd.description, width), "\n") {
			s.println(fmt.Sprintf("%s%s", indent, line))
		}
	}
}
