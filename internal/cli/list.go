package cli

import (
	"flag"
	"fmt"
	"io"

	"studyquiz/internal/question"
)

// runList builds the handler for the list command.
func runList(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
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
			fmt.Fprintf(stderr, "Failed to load bank: %v\n", err)
			return ExitError
		}

		title := b.Title()
		if title == "" {
			title = "Question bank"
		}
		fmt.Fprintf(stdout, "%s (%d questions)\n", title, b.Len())
		questions := b.All()
		for _, group := range b.Categories() {
			fmt.Fprintf(stdout, "\n%s (%d)\n", group.Category, group.Count)
			for _, q := range questions {
				if q.Category != group.Category {
					continue
				}
				fmt.Fprintf(stdout, "  #%-3d %-8s %s\n", q.ID, kindLabel(q.Kind), listLabel(q))
			}
		}
		return ExitOK
	}
}

func kindLabel(kind question.Kind) string {
	if kind == question.KindReorderLines {
		return "reorder"
	}
	return "choice"
}

func listLabel(q question.Question) string {
	if q.Title != "" {
		return q.Title
	}
	return q.Prompt
}
