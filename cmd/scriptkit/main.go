package main

import (
	"os"

	"github.com/computerscienceiscool/scriptkit/pkg/cli"
	"github.com/computerscienceiscool/scriptkit/pkg/logging"
)

func main() {
	if err := cli.Execute(); err != nil {
		logger := logging.Get("scriptkit")
		logger.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
