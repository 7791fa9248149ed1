//go:build mage
// +build mage

package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default is the default build target.
var Default = Build

// All cleans output, builds, tests, and lints.
func All(ctx context.Context) error {
	for _, target := range []func(context.Context) error{Clean, Build, Test, Lint} {
		if err := target(ctx); err != nil {
			return err
		}
	}

	return nil
}

// Build builds the fsh binary.
func Build(ctx context.Context) error {
	ldflags, err := getLdflags()
	if err != nil {
		return err
	}

	args := []string{"build", "-ldflags", ldflags, "-o", "fsh"}
	if os.Getenv("CGO_ENABLED") == "0" {
		args = append(args, "-a")
	}

	return sh.RunV("go", append(args, "./cmd/fsh")...)
}

// Clean removes any generated artifacts from the repository.
func Clean(ctx context.Context) error {
	return sh.Rm("./fsh")
}

// Lint runs the linter & performs static-analysis checks.
func Lint(ctx context.Context) error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// Fuzz runs the listing parser fuzz target for a short while.
func Fuzz(ctx context.Context) error {
	return sh.RunV("go", "test", "-run", "^$", "-fuzz", "FuzzParse", "-fuzztime", "30s", "./internal/filelist")
}

func UnitTest(ctx context.Context) error {
	return sh.RunV("go", "test", "-parallel", "4", "./internal/...", "./cmd/...")
}

func IntegrationTest(ctx context.Context) error {
	mg.Deps(Build)
	return sh.RunV("go", "test", "./test/...")
}

func Test(ctx context.Context) error {
	mg.SerialDeps(UnitTest, IntegrationTest)
	return nil
}

func getLdflags() (string, error) {
	if ldflags := os.Getenv("LDFLAGS"); ldflags != "" {
		return ldflags, nil
	}

	sha, err := exec.Command("git", "rev-parse", "HEAD").Output()
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("-X github.com/fs-over-http/fsh/cmd/fsh/config.Version=git-%v", strings.TrimSpace(string(sha))), nil
}
