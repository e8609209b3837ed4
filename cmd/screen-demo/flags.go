package main

import "flag"

type cliArgs struct {
	config  string
	env     string
	width   int
	style   bool
	verbose bool
}

func parseFlags() cliArgs {
	var args cliArgs

	flag.StringVar(&args.config, "config", "screen.yaml", "YAML settings file (optional)")
	flag.StringVar(&args.env, "env", ".env", "dotenv file loaded before reading the environment (optional)")
	flag.IntVar(&args.width, "width", 0, "Maximum width in columns (0: terminal width)")
	flag.BoolVar(&args.style, "style", false, "Color the output when the config sets no styles")
	flag.BoolVar(&args.verbose, "v", false, "Log layout diagnostics to stderr")

	flag.Parse()
	return args
}
