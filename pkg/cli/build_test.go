package cli

import (
	"runtime"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/urfave/cli/v3"
)

func TestBuildDepsJobsDefault(t *testing.T) {
	cmd := cmdBuildDeps()

	var jobs *cli.IntFlag
	for _, flag := range cmd.Flags {
		if f, ok := flag.(*cli.IntFlag); ok && f.Name == "jobs" {
			jobs = f
		}
	}

	gt.Value(t, jobs != nil).Equal(true)
	gt.Value(t, jobs.Value).Equal(runtime.GOMAXPROCS(0))
}
