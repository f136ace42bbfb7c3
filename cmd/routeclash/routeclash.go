package main

import (
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/routeclash/internal/runner"
)

func main() {
	options := runner.ParseOptions()

	routeclashRunner, err := runner.NewRunner(options)
	if err != nil {
		gologger.Fatal().Msgf("Could not create runner: %s\n", err)
	}

	if err := routeclashRunner.Run(); err != nil {
		routeclashRunner.Close()
		gologger.Fatal().Msgf("Could not run routeclash: %s\n", err)
	}
	routeclashRunner.Close()
}
