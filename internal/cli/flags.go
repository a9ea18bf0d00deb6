package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"studyquiz/internal/bank"
	"studyquiz/internal/config"
)

// parseFlags parses command flags. When done is true the command should
// return code immediately.
func parseFlags(cmd *Command, flags *flag.FlagSet, args []string, stdout, stderr io.Writer) (code int, done bool) {
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printCommandUsage(cmd, stdout)
			return ExitOK, true
		}
		fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
		printCommandUsage(cmd, stderr)
		return ExitUsage, true
	}
	if flags.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
		printCommandUsage(cmd, stderr)
		return ExitUsage, true
	}
	return ExitOK, false
}

// loadBankForCommand resolves the bank path from the flag or config and loads it.
func loadBankForCommand(bankFlag, configPath string) (*bank.Bank, config.Config, error) {
	cfg, err := config.Load(configPath, "")
	if err != nil {
		return nil, config.Config{}, fmt.Errorf("load config: %w", err)
	}
	if strings.TrimSpace(bankFlag) != "" {
		cfg.Bank = strings.TrimSpace(bankFlag)
	}
	b, err := bank.Load(cfg.Bank)
	if err != nil {
		return nil, cfg, err
	}
	return b, cfg, nil
}

func formatIDs(ids []int) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, fmt.Sprint(id))
	}
	return strings.Join(parts, ", ")
}
