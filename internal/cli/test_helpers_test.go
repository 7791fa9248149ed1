package cli_test

import (
	"context"
	"strings"
	"testing"

	"github.com/fs-over-http/fsh/internal/cli"
	"github.com/fs-over-http/fsh/internal/config"
	"github.com/fs-over-http/fsh/internal/mocks"
	"github.com/stretchr/testify/require"
)

const docsListing = "docs/\n" +
	"├── guides/\n" +
	"├── api/\n" +
	"├── index.md\n" +
	"└── changelog.txt\n" +
	"\n" +
	"2 directories, 2 files\n"

// testSetup contains common test setup data
type testSetup struct {
	config     cli.Config
	session    *cli.Session
	mockAPI    *mocks.API
	hostStore  *config.MemoryBackend
	mockStdout *strings.Builder
	mockStderr *strings.Builder
	opened     []string
}

func setupTest(t *testing.T) *testSetup {
	setup := &testSetup{}

	setup.mockAPI = new(mocks.API)
	setup.hostStore = config.NewMemoryBackend()
	setup.mockStdout = &strings.Builder{}
	setup.mockStderr = &strings.Builder{}

	setup.config = cli.Config{
		APIClient: setup.mockAPI,
		HostStore: setup.hostStore,
		OpenURL: func(url string) error {
			setup.opened = append(setup.opened, url)
			return nil
		},
		Stdout: setup.mockStdout,
		Stderr: setup.mockStderr,
		Width:  40,
	}

	var err error
	setup.session, err = cli.NewSession(setup.config)
	require.NoError(t, err)

	return setup
}

func (s *testSetup) run(lines ...string) {
	for _, line := range lines {
		s.session.Execute(context.Background(), line)
	}
}

func (s *testSetup) output() []string {
	out := strings.TrimSuffix(s.mockStdout.String(), "\n")
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}
