package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"mediasort/internal/config"
	"mediasort/internal/rules"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}

	configCmd.AddCommand(newConfigInitCommand())
	configCmd.AddCommand(newConfigValidateCommand(ctx))
	configCmd.AddCommand(newConfigShowCommand(ctx))

	return configCmd
}

func newConfigInitCommand() *cobra.Command {
	var targetPath string
	var overwrite bool

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Create a sample configuration file",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(targetPath)
			if target == "" {
				defaultPath, err := config.DefaultConfigPath()
				if err != nil {
					return fmt.Errorf("determine default config path: %w", err)
				}
				target = defaultPath
			} else {
				expanded, err := config.ExpandPath(target)
				if err != nil {
					return fmt.Errorf("resolve config path: %w", err)
				}
				target = expanded
			}

			dir := filepath.Dir(target)
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create config directory %q: %w", dir, err)
			}

			if !overwrite {
				if _, err := os.Stat(target); err == nil {
					return fmt.Errorf("config file already exists at %s (use --overwrite to replace it)", target)
				} else if err != nil && !os.IsNotExist(err) {
					return fmt.Errorf("check config path: %w", err)
				}
			}

			if err := config.CreateSample(target); err != nil {
				return fmt.Errorf("create sample config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote sample configuration to %s\n", target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the configuration file")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing configuration if present")
	return cmd
}

func newConfigValidateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if _, err := cfg.CompiledRules(); err != nil {
				return fmt.Errorf("compile rules: %w", err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Config path: %s\n", ctx.configPath)
			if !ctx.configExists {
				fmt.Fprintln(out, "Config file did not exist; defaults were used")
			}
			fmt.Fprintln(out, "Configuration valid")
			return nil
		},
	}
}

func newConfigShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			compiled, err := cfg.CompiledRules()
			if err != nil {
				return fmt.Errorf("compile rules: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Config path:        %s\n", ctx.configPath)
			fmt.Fprintf(out, "Date format:        %s\n", cfg.Global.DateFormat)
			fmt.Fprintf(out, "Fallback template:  %s\n", cfg.Global.DirectoryTemplate)
			fmt.Fprintf(out, "Clean empty dirs:   %s\n", yesNo(cfg.Global.CleanEmptyDirs))
			fmt.Fprintln(out)
			fmt.Fprintln(out, renderRulesTable(compiled))
			return nil
		},
	}
}

func renderRulesTable(compiled []rules.Rule) string {
	rows := make([][]string, 0, len(compiled))
	for i, rule := range compiled {
		minSize := "0 B"
		if rule.MinSize > 0 {
			minSize = rules.FormatSize(rule.MinSize)
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			rule.Name,
			strings.Join(rule.Extensions, ", "),
			minSize,
			rules.FormatSize(rule.MaxSize),
			rule.DirectoryTemplate,
			yesNo(rule.Enabled),
		})
	}
	return renderTable(
		[]string{"#", "Rule", "Extensions", "Min", "Max", "Template", "Enabled"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignRight, alignLeft, alignLeft},
	)
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
