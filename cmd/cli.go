package cmd

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/viant/grocery/config"
)

// Run is the entry point for the CLI.  The function is separated from the
// main package to keep the command usable from tests as well.
func Run(args []string) {
	if err := run(args); err != nil {
		log.Fatalf("%v", err)
	}
}

func run(args []string) error {
	// Make config path discoverable by sub-commands via the session singleton.
	setConfigPath(extractConfigPath(args))

	opts := &Options{}
	opts.Init(commandName(args))

	parser := flags.NewParser(opts, flags.HelpFlag|flags.PassDoubleDash)
	if _, err := parser.ParseArgs(args); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			fmt.Fprintf(stdout, "%s\n\n%s", flagsErr.Message, config.Usage())
			return nil
		}
		return err
	}
	return nil
}

// extractConfigPath searches the raw argument list for the -f/--config option
// before the full flags parsing is performed so that sub-commands can load the
// config early from a deterministic location.
func extractConfigPath(args []string) string {
	for i, a := range args {
		switch a {
		case "-f", "--config":
			if i+1 < len(args) {
				return args[i+1]
			}
		default:
			if strings.HasPrefix(a, "--config=") {
				return strings.TrimPrefix(a, "--config=")
			}
		}
	}
	return ""
}

// commandName returns the first positional argument, skipping the global
// config option and its value.
func commandName(args []string) string {
	for i := 0; i < len(args); i++ {
		switch a := args[i]; {
		case a == "-f" || a == "--config":
			i++
		case strings.HasPrefix(a, "-"):
		default:
			return a
		}
	}
	return ""
}
