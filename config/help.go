package config

import (
	"flag"
	"fmt"
)

const HelpMessage = `
Delivery pricing service

Usage:
  pricing [--config-path <file>] [--mode pricing-service]
  pricing --help

Options:
  --help          Show this screen.
  --config-path   Path to the YAML config file (default: config.yaml).
  --mode          Application mode (default: pricing-service).

Configuration is read from environment variables, an optional .env file
and the YAML file, in that order of precedence.
`

func PrintHelp() {
	if HelpMessage != "" {
		fmt.Printf("%s", HelpMessage)
	} else {
		flag.Usage()
	}
}
