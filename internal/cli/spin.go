package cli

import (
	"io"
	"time"

	"github.com/briandowns/spinner"
)

// Spin shows a spinner with message on out until the returned function is called.
// Nothing is written when out is not a terminal.
func Spin(message string, tty bool, out io.Writer) func() {
	if !tty {
		return func() {}
	}

	indicator := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(out))
	indicator.Suffix = " " + message
	indicator.Start()
	return indicator.Stop
}
