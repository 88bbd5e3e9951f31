package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"mediasort/internal/classify"
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
)

func newClassifyCommand(ctx *commandContext) *cobra.Command {
	var cleanFlag bool

	cmd := &cobra.Command{
		Use:   "classify [directory]",
		Short: "Classify media files beneath a directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("clean") {
				cfg.Global.CleanEmptyDirs = cleanFlag
			}

			logger, err := ctx.runLogger()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)

			engine, err := classify.New(cfg, logger, classify.WithOutcomeFunc(func(index, total int, outcome classify.Outcome) {
				fmt.Fprintln(out, renderProgressLine(index, total, outcome, colorize))
			}))
			if err != nil {
				return err
			}

			runCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			stats, err := engine.Process(runCtx, root)
			if stats != nil {
				fmt.Fprintln(out)
				fmt.Fprintln(out, renderSummaryTable(stats))
			}
			return err
		},
	}

	cmd.Flags().BoolVar(&cleanFlag, "clean", false, "Remove directories emptied by the run")
	return cmd
}

func renderProgressLine(index, total int, outcome classify.Outcome, colorize bool) string {
	label, color := outcomeBadge(outcome.Kind)
	name := filepath.Base(outcome.Path)

	detail := ""
	switch outcome.Kind {
	case classify.OutcomeMoved, classify.OutcomeRenamed:
		detail = " -> " + outcome.Target
	case classify.OutcomeSkipped:
		detail = " (" + outcome.Reason + ")"
	case classify.OutcomeFailed:
		if outcome.Err != nil {
			detail = ": " + outcome.Err.Error()
		}
	}

	line := fmt.Sprintf("[%*d/%d] %-7s %s%s", len(strconv.Itoa(total)), index+1, total, label, name, detail)
	if colorize && color != "" {
		return color + line + ansiReset
	}
	return line
}

func outcomeBadge(kind classify.OutcomeKind) (string, string) {
	switch kind {
	case classify.OutcomeMoved:
		return "MOVED", ansiGreen
	case classify.OutcomeRenamed:
		return "RENAMED", ansiYellow
	case classify.OutcomeSkipped:
		return "SKIPPED", ansiBlue
	case classify.OutcomeFailed:
		return "FAILED", ansiRed
	default:
		return "UNKNOWN", ""
	}
}

func renderSummaryTable(stats *classify.Statistics) string {
	rows := [][]string{
		{"Moved", strconv.Itoa(stats.Moved)},
		{"Renamed", strconv.Itoa(stats.Renamed)},
		{"Skipped", strconv.Itoa(stats.Skipped)},
		{"Failed", strconv.Itoa(stats.Failed)},
		{"Total", strconv.Itoa(stats.Total())},
	}
	return renderTable([]string{"Outcome", "Files"}, rows, []columnAlignment{alignLeft, alignRight})
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
