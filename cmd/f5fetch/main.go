package main

import (
	"github.com/bigip-labs/f5fetch/internal/runner"
	"github.com/projectdiscovery/gologger"
)

func main() {
	options := runner.ParseOptions()

	fetchRunner, err := runner.NewRunner(options)
	if err != nil {
		gologger.Fatal().Msgf("Could not create runner: %s\n", err)
	}
	defer fetchRunner.Close()

	if err := fetchRunner.Run(); err != nil {
		gologger.Fatal().Msgf("Could not run fetch: %s\n", err)
	}
}
