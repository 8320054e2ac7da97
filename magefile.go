//go:build mage

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target - build the binary.
var Default = Build

// Build builds the chartstyle binary with version metadata.
func Build() error {
	commit, _ := sh.Output("git", "rev-parse", "--short", "HEAD")
	if commit == "" {
		commit = "unknown"
	}
	ldflags := fmt.Sprintf(
		"-X github.com/viznest/chartstyle/internal/version.CommitHash=%s "+
			"-X github.com/viznest/chartstyle/internal/version.BuildDate=%s",
		commit, time.Now().UTC().Format("2006-01-02"))
	return sh.RunV("go", "build", "-ldflags", ldflags, "-o", "bin/chartstyle", "./cmd/chartstyle")
}

// Test runs the full test suite.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Lint runs vet plus staticcheck when available.
func Lint() error {
	mg.Deps(Vet)
	if _, err := sh.Output("staticcheck", "-version"); err != nil {
		fmt.Fprintln(os.Stderr, "staticcheck not found, skipping (install: go install honnef.co/go/tools/cmd/staticcheck@latest)")
		return nil
	}
	return sh.RunV("staticcheck", "./...")
}

// Vet runs go vet.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Clean removes build artifacts.
func Clean() error {
	return os.RemoveAll("bin")
}
