package config

import "github.com/urfave/cli/v3"

// Server holds channel server configuration
type Server struct {
	Addr string
	Dir  string
}

// Flags returns CLI flags for server configuration
func (c *Server) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Channel server address",
			Value:       "localhost:8000",
			Destination: &c.Addr,
			Sources:     cli.EnvVars("PIXI_TESTSUITE_ADDR"),
		},
		&cli.StringFlag{
			Name:        "dir",
			Usage:       "Directory served as the artifact channel",
			Value:       "artifacts",
			Destination: &c.Dir,
			Sources:     cli.EnvVars("PIXI_TESTSUITE_CHANNEL_DIR"),
		},
	}
}
