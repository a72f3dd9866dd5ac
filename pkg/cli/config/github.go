package config

import (
	"context"
	"os/exec"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// GitHub holds GitHub authentication configuration
type GitHub struct {
	Token string `masq:"secret"`
}

// Flags returns CLI flags for GitHub configuration
func (c *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "token",
			Usage:       "GitHub token for authentication (can also use GITHUB_TOKEN env var or .env file)",
			Destination: &c.Token,
			Sources:     cli.EnvVars("GITHUB_TOKEN"),
		},
	}
}

// ResolveToken returns the GitHub token from the flag or environment,
// falling back to a `gh auth token` lookup via the GitHub CLI.
func (c *GitHub) ResolveToken(ctx context.Context) (string, error) {
	if c.Token != "" {
		return c.Token, nil
	}

	logger := ctxlog.From(ctx)

	ghPath, err := exec.LookPath("gh")
	if err != nil {
		logger.Debug("GitHub CLI not found, skipping gh auth token lookup")
	} else {
		out, err := exec.CommandContext(ctx, ghPath, "auth", "token").Output()
		if err != nil {
			logger.Warn("Failed to obtain token via GitHub CLI", "error", err)
		} else if token := strings.TrimSpace(string(out)); token != "" {
			logger.Info("Using token from GitHub CLI authentication")
			return token, nil
		} else {
			logger.Warn("GitHub CLI returned an empty token")
		}
	}

	return "", goerr.New("no GitHub token provided; set GITHUB_TOKEN, " +
		"use --token, or create a .env file")
}
