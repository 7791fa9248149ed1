package cli_test

import (
	"context"
	"strings"
	"testing"

	"github.com/fs-over-http/fsh/internal/cli"
	"github.com/fs-over-http/fsh/internal/mocks"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestSessionScenarios(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Session Scenarios Suite")
}

var _ = Describe("an interactive session", func() {
	var (
		session *cli.Session
		mockAPI *mocks.API
		stdout  *strings.Builder
		fetches []string
	)

	output := func() []string {
		return strings.Split(strings.TrimSuffix(stdout.String(), "\n"), "\n")
	}

	BeforeEach(func() {
		stdout = &strings.Builder{}
		fetches = nil
		mockAPI = &mocks.API{
			MockFetchListing: func(ctx context.Context, host, path string) (string, error) {
				fetches = append(fetches, host+path)
				return docsListing, nil
			},
		}

		var err error
		session, err = cli.NewSession(cli.Config{
			APIClient: mockAPI,
			Stdout:    stdout,
			Stderr:    &strings.Builder{},
		})
		Expect(err).NotTo(HaveOccurred())
	})

	When("connecting and moving around", func() {
		It("prints the working path after each move", func() {
			input := &mocks.Input{Lines: []string{"connect example.test", "pwd", "cd docs", "pwd"}}

			Expect(session.Run(context.Background(), input)).To(Succeed())
			Expect(output()).To(Equal([]string{"Connected", "/", "/docs"}))
			Expect(output()[2]).To(HaveSuffix("/docs"))
		})
	})

	When("listing before connecting", func() {
		It("refuses without fetching", func() {
			session.Execute(context.Background(), "ls")

			Expect(output()).To(Equal([]string{cli.NotConnectedMessage}))
			Expect(fetches).To(BeEmpty())
		})
	})

	When("listing after connecting", func() {
		It("fetches the working path exactly once per command", func() {
			input := &mocks.Input{Lines: []string{"connect example.test", "cd docs", "ls", "cd ..", "ls"}}

			Expect(session.Run(context.Background(), input)).To(Succeed())
			Expect(fetches).To(Equal([]string{"example.test/docs", "example.test/"}))
			Expect(output()).To(HaveLen(1 + 4 + 4))
		})
	})

	When("the server forbids the path", func() {
		BeforeEach(func() {
			mockAPI.MockFetchListing = func(ctx context.Context, host, path string) (string, error) {
				return "403 Forbidden\n" + docsListing, nil
			}
		})

		It("prints only the denial and keeps the session usable", func() {
			input := &mocks.Input{Lines: []string{"connect example.test", "ls", "pwd"}}

			Expect(session.Run(context.Background(), input)).To(Succeed())
			Expect(output()).To(Equal([]string{"Connected", "Access denied: /", "/"}))
		})
	})
})
