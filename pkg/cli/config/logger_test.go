package config_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/prefix-dev/pixi-testsuite/pkg/cli/config"
)

func TestLoggerConfigure(t *testing.T) {
	testCases := map[string]struct {
		level   string
		json    bool
		wantErr bool
	}{
		"debug level":      {level: "debug"},
		"info level":       {level: "info"},
		"warn level":       {level: "warn"},
		"error level":      {level: "error"},
		"case insensitive": {level: "INFO"},
		"json handler":     {level: "info", json: true},
		"invalid level":    {level: "verbose", wantErr: true},
		"empty level":      {level: "", wantErr: true},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			cfg := &config.Logger{Level: tc.level, JSON: tc.json}
			logger, err := cfg.Configure()
			if tc.wantErr {
				gt.Error(t, err)
				return
			}
			gt.NoError(t, err)
			gt.Value(t, logger != nil).Equal(true)
		})
	}
}
