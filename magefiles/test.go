//go:build mage

// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Test groups test targets (all, race, cover, store).
type Test mg.Namespace

// All runs every package's tests.
func (Test) All() error {
	return sh.RunV(binGo, "test", "-v", "./...")
}

// Race runs every package's tests with the race detector.
func (Test) Race() error {
	return sh.RunV(binGo, "test", "-race", "./...")
}

// Cover writes a coverage profile to bin/coverage.out and prints the total.
func (Test) Cover() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	profile := filepath.Join(binaryDir, "coverage.out")
	if err := sh.RunV(binGo, "test", "-coverprofile", profile, "./..."); err != nil {
		return err
	}
	out, err := sh.Output(binGo, "tool", "cover", "-func", profile)
	if err != nil {
		return err
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	fmt.Println(lines[len(lines)-1])
	return nil
}

// Store runs only the store packages (both backends and the shared contract).
func (Test) Store() error {
	pkgs, err := sh.Output(binGo, "list", "./...")
	if err != nil {
		return err
	}
	var storePkgs []string
	for pkg := range strings.SplitSeq(pkgs, "\n") {
		switch {
		case strings.HasSuffix(pkg, "/internal/memory"),
			strings.HasSuffix(pkg, "/internal/sqlite"),
			strings.HasSuffix(pkg, "/pkg/store"):
			storePkgs = append(storePkgs, pkg)
		}
	}
	if len(storePkgs) == 0 {
		fmt.Println("No store packages found.")
		return nil
	}
	args := append([]string{"test", "-v"}, storePkgs...)
	return sh.RunV(binGo, args...)
}
