package integration_test

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type input struct {
	args  []string
	stdin string
}

type result struct {
	stdout   string
	stderr   string
	exitCode int
}

const fshPath = "../fsh"

func fshCmd(t *testing.T, input input) *exec.Cmd {
	if _, err := os.Stat(fshPath); err != nil {
		t.Skipf("integration tests depend on a built fsh binary at %s", fshPath)
	}

	args := append([]string{"--config-dir", t.TempDir()}, input.args...)
	cmd := exec.Command(fshPath, args...)
	cmd.Env = append(os.Environ(), "FSH_HOST=", "FSH_SCHEME=")
	cmd.Stdin = strings.NewReader(input.stdin)

	t.Logf("Executing command: %s\n", cmd.String())

	return cmd
}

func runFsh(t *testing.T, input input) result {
	cmd := fshCmd(t, input)
	var stdoutBuffer, stderrBuffer bytes.Buffer
	cmd.Stdout = &stdoutBuffer
	cmd.Stderr = &stderrBuffer

	err := cmd.Run()

	exitCode := 0

	if err != nil {
		exitErr, ok := err.(*exec.ExitError)
		require.True(t, ok, "fsh exited with an error that wasn't an ExitError")
		exitCode = exitErr.ExitCode()
	}

	return result{
		stdout:   strings.TrimSuffix(stdoutBuffer.String(), "\n"),
		stderr:   strings.TrimSuffix(stderrBuffer.String(), "\n"),
		exitCode: exitCode,
	}
}

func listingServer(t *testing.T) string {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/":
			_, _ = io.WriteString(w, "public/\n├── docs/\n└── readme.md\n\n1 directory, 1 file\n")
		case "/docs":
			_, _ = io.WriteString(w, "public/docs/\n└── guide.md\n\n0 directories, 1 file\n")
		default:
			w.WriteHeader(http.StatusForbidden)
			_, _ = io.WriteString(w, "403 Forbidden")
		}
	}))
	t.Cleanup(server.Close)

	return strings.TrimPrefix(server.URL, "http://")
}

func TestShell(t *testing.T) {
	host := listingServer(t)

	t.Run("runs commands read from stdin", func(t *testing.T) {
		result := runFsh(t, input{
			args:  []string{"--scheme", "http"},
			stdin: "ls\nconnect " + host + "\npwd\nls\ncd docs\nls\ncd ..\ncd private\nls\nfrobnicate\n",
		})

		require.Equal(t, 0, result.exitCode)
		require.Equal(t, strings.Join([]string{
			`Not connected. Use "connect <host>" first.`,
			"Connected",
			"/",
			"docs/",
			"readme.md",
			"guide.md",
			"Access denied: /private",
			"Invalid command: frobnicate",
		}, "\n"), result.stdout)
	})

	t.Run("connects on start with --host", func(t *testing.T) {
		result := runFsh(t, input{
			args:  []string{"--scheme", "http", "--host", host},
			stdin: "pwd\n",
		})

		require.Equal(t, 0, result.exitCode)
		require.Equal(t, "Connected\n/", result.stdout)
	})
}

func TestLs(t *testing.T) {
	host := listingServer(t)

	t.Run("prints a single listing", func(t *testing.T) {
		result := runFsh(t, input{args: []string{"ls", "--scheme", "http", host, "docs"}})

		require.Equal(t, 0, result.exitCode)
		require.Equal(t, "guide.md", result.stdout)
	})

	t.Run("exits non-zero when access is denied", func(t *testing.T) {
		result := runFsh(t, input{args: []string{"ls", "--scheme", "http", host, "private"}})

		require.Equal(t, 1, result.exitCode)
		require.Contains(t, result.stderr, "Access denied: /private")
		require.NotContains(t, result.stderr, "Error:")
	})
}
