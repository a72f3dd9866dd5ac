package model

import (
	"testing"

	"github.com/m-mizutani/gt"
)

func TestPlatformFor(t *testing.T) {
	tests := []struct {
		name    string
		goos    string
		goarch  string
		want    string
		wantErr bool
	}{
		{name: "linux amd64", goos: "linux", goarch: "amd64", want: "linux-x86_64"},
		{name: "linux arm64", goos: "linux", goarch: "arm64", want: "linux-aarch64"},
		{name: "macos amd64", goos: "darwin", goarch: "amd64", want: "macos-x86_64"},
		{name: "macos arm64", goos: "darwin", goarch: "arm64", want: "macos-aarch64"},
		{name: "windows amd64", goos: "windows", goarch: "amd64", want: "windows-x86_64"},
		{name: "windows arm64 is unsupported", goos: "windows", goarch: "arm64", wantErr: true},
		{name: "unsupported os", goos: "plan9", goarch: "amd64", wantErr: true},
		{name: "unsupported arch", goos: "linux", goarch: "riscv64", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := platformFor(tt.goos, tt.goarch)
			if tt.wantErr {
				gt.Error(t, err)
				return
			}
			gt.NoError(t, err)
			gt.Value(t, got).Equal(tt.want)
		})
	}
}

func TestExecNameFor(t *testing.T) {
	gt.Value(t, execNameFor("pixi", "windows")).Equal("pixi.exe")
	gt.Value(t, execNameFor("pixi", "linux")).Equal("pixi")
	gt.Value(t, execNameFor("pixi", "darwin")).Equal("pixi")
}
