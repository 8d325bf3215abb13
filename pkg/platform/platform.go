// Copyright (c) 2019-2026 JetKit Contributors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package platform

import (
	"fmt"
	"os"
	"runtime"
	"strings"
)

// Platform is an explicit {operating system, machine architecture} value.
// Everything that varies by host (archive naming, executable layout) takes a
// Platform argument instead of inspecting the environment, so every
// combination is exercisable from a single test process.
type Platform struct {
	// OS is a GOOS-style identifier, for example `linux` or `windows`.
	OS string

	// Arch is a machine architecture string as reported by the host,
	// for example `amd64`, `x86_64` or `aarch64`.
	Arch string
}

func Current() Platform {
	return Platform{OS: runtime.GOOS, Arch: runtime.GOARCH}
}

func Parse(platformStr string) (Platform, error) {
	parts := strings.Split(platformStr, "/")
	if len(parts) != 2 {
		return Platform{}, fmt.Errorf("failed to parse platform %q: expected format os/arch", platformStr)
	}
	return Platform{OS: parts[0], Arch: parts[1]}, nil
}

func (p Platform) String() string {
	return fmt.Sprintf("%s/%s", p.OS, p.Arch)
}

func (p Platform) IsWindows() bool {
	return p.OS == "windows"
}

func (p Platform) IsMac() bool {
	return p.OS == "darwin"
}

// ExecutableName appends the windows suffix where needed.
func (p Platform) ExecutableName(name string) string {
	if p.IsWindows() {
		return name + ".exe"
	}
	return name
}

// Is64Bit reports whether the platform is known to be 64-bit. On windows the
// architecture string is not always conclusive, so the program-files
// environment marker set by 64-bit installations is consulted as well.
func (p Platform) Is64Bit() bool {
	switch strings.ToLower(p.Arch) {
	case "aarch64", "arm64", "x86_64", "amd64":
		return true
	}
	if p.IsWindows() {
		_, ok := os.LookupEnv("ProgramFiles(x86)")
		return ok
	}
	return false
}
