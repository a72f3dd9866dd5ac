package model

import (
	"runtime"

	"github.com/m-mizutani/goerr/v2"
)

// CurrentPlatform returns the platform string used in pixi artifact names
// (e.g. "linux-x86_64", "macos-aarch64").
func CurrentPlatform() (string, error) {
	return platformFor(runtime.GOOS, runtime.GOARCH)
}

func platformFor(goos, goarch string) (string, error) {
	var system string
	switch goos {
	case "linux":
		system = "linux"
	case "darwin":
		system = "macos"
	case "windows":
		system = "windows"
	default:
		return "", goerr.New("unsupported platform", goerr.V("os", goos), goerr.V("arch", goarch))
	}

	var machine string
	switch goarch {
	case "amd64":
		machine = "x86_64"
	case "arm64":
		machine = "aarch64"
	default:
		return "", goerr.New("unsupported platform", goerr.V("os", goos), goerr.V("arch", goarch))
	}

	if system == "windows" && machine != "x86_64" {
		return "", goerr.New("unsupported platform", goerr.V("os", goos), goerr.V("arch", goarch))
	}

	return system + "-" + machine, nil
}

// ExecName appends the executable suffix for the current OS.
func ExecName(name string) string {
	return execNameFor(name, runtime.GOOS)
}

func execNameFor(name, goos string) string {
	if goos == "windows" {
		return name + ".exe"
	}
	return name
}
