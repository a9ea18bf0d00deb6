package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"studyquiz/internal/logging"
	"studyquiz/internal/report"
	"studyquiz/internal/session"
	"studyquiz/internal/shuffle"
	"studyquiz/internal/ui/plain"
	"studyquiz/internal/ui/quiz"
)

var (
	stdin    io.Reader = os.Stdin
	runLive            = quiz.Run
	runPlain           = plain.Run
)

// runPlay builds the handler for the play command.
func runPlay(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		bankPath := flags.String("bank", "", "Path to a question bank (default: built-in bank)")
		uiMode := flags.String("ui", "", "UI mode: auto|live|plain")
		seed := flags.Int64("seed", 0, "Shuffle seed (0 picks a random seed)")
		noColor := flags.Bool("no-color", false, "Disable colors")
		reportPath := flags.String("report", "", "Write an HTML results page here when a session finishes")
		configPath := flags.String("config", "", "Path to config file (default: search for .studyquiz/config.yml)")
		if code, done := parseFlags(cmd, flags, args, stdout, stderr); done {
			return code
		}

		b, cfg, err := loadBankForCommand(*bankPath, *configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load bank: %v\n", err)
			return ExitError
		}
		flags.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "ui":
				cfg.UI = *uiMode
			case "seed":
				cfg.Seed = *seed
			case "no-color":
				cfg.NoColor = *noColor
			case "report":
				cfg.Report = *reportPath
			}
		})

		decision, err := resolveUIMode(cfg.UI, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "Invalid ui mode: %v\n", err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}

		logger, err := logging.New(cfg.LoggingOptions())
		if err != nil {
			fmt.Fprintf(stderr, "Failed to set up logging: %v\n", err)
			return ExitError
		}
		defer func() { _ = logger.Sync() }()
		if dups := b.DuplicateIDs(); len(dups) > 0 {
			logger.Warn("duplicate question ids", zap.Ints("ids", dups))
		}

		observers := []session.Observer{logging.NewSessionObserver(logger)}
		if cfg.Report != "" {
			observers = append(observers, report.NewObserver(cfg.Report, b.Title(), logger))
		}
		engine := session.NewEngine(b,
			session.WithSource(shuffle.NewSource(cfg.Seed)),
			session.WithObserver(session.Observers(observers...)),
		)
		if decision.useLive {
			err = runLive(engine, stdin, stdout, quiz.Options{Title: b.Title(), NoColor: cfg.NoColor})
		} else {
			err = runPlain(engine, stdin, stdout, plain.Options{Title: b.Title()})
		}
		if err != nil {
			logger.Error("quiz failed", zap.Error(err))
			fmt.Fprintf(stderr, "Quiz failed: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}
