package logging_test

import (
	"strings"
	"testing"

	"github.com/fs-over-http/fsh/internal/logging"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("when verbose", func(t *testing.T) {
		out := &strings.Builder{}
		logger := logging.New(true, out)

		logger.Debugw("fetching listing", "host", "example.test")
		require.NoError(t, logger.Sync())

		require.Contains(t, out.String(), "DEBUG")
		require.Contains(t, out.String(), "fetching listing")
		require.Contains(t, out.String(), `"host": "example.test"`)
	})

	t.Run("when not verbose", func(t *testing.T) {
		out := &strings.Builder{}
		logger := logging.New(false, out)

		logger.Debugw("fetching listing", "host", "example.test")
		logger.Errorw("failed")

		require.Empty(t, out.String())
	})
}
