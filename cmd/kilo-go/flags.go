// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Supports --config, --log-file, --verbose, --quit-key, --sync-output, --no-welcome, --version

package main

import (
	"flag"
	"fmt"
	"io"
)

type cliArgs struct {
	configPath string
	logFile    string
	quitKey    string
	verbose    bool
	syncOutput bool
	noWelcome  bool
	version    bool
}

// parseFlags parses argv (without the program name). Usage goes to errOut.
func parseFlags(argv []string, errOut io.Writer) (cliArgs, error) {
	var args cliArgs

	fs := flag.NewFlagSet("kilo-go", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.StringVar(&args.configPath, "config", "", "Config file to use instead of the global and project files")
	fs.StringVar(&args.logFile, "log-file", "", "Append logs to this file while the editor runs")
	fs.StringVar(&args.quitKey, "quit-key", "", "Chord that quits the editor (e.g., ctrl+q)")
	fs.BoolVar(&args.verbose, "verbose", false, "Log at debug level")
	fs.BoolVar(&args.syncOutput, "sync-output", false, "Wrap screen updates in synchronized output markers")
	fs.BoolVar(&args.noWelcome, "no-welcome", false, "Hide the welcome line")
	fs.BoolVar(&args.version, "version", false, "Show version and exit")

	if err := fs.Parse(argv); err != nil {
		return cliArgs{}, err
	}
	if fs.NArg() > 0 {
		return cliArgs{}, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}
	return args, nil
}
