package cli

import (
	"flag"
	"fmt"
	"io"
)

// runValidate builds the handler for the validate command.
func runValidate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		bankPath := flags.String("bank", "", "Path to a question bank (default: configured or built-in bank)")
		configPath := flags.String("config", "", "Path to config file (default: search for .studyquiz/config.yml)")
		if code, done := parseFlags(cmd, flags, args, stdout, stderr); done {
			return code
		}

		b, _, err := loadBankForCommand(*bankPath, *configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%s\n", err.Error())
			return ExitError
		}

		fmt.Fprintf(stdout, "Bank OK (%d questions)\n", b.Len())
		if dups := b.DuplicateIDs(); len(dups) > 0 {
			fmt.Fprintf(stdout, "Warning: duplicate question ids: %s\n", formatIDs(dups))
		}
		return ExitOK
	}
}
