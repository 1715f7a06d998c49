// Package main provides the CLI entrypoint for goldbach.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/goldbach/internal/analysis"
	"github.com/verte-zerg/goldbach/internal/config"
	"github.com/verte-zerg/goldbach/internal/goldbach"
	"github.com/verte-zerg/goldbach/internal/model"
	"github.com/verte-zerg/goldbach/internal/prompt"
	"github.com/verte-zerg/goldbach/internal/sieve"
)

var (
	analysisMode       string
	analysisPopulation string
	verbose            bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "goldbach",
		Short:         "Constrained Goldbach representation statistics for odd numbers",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE:          runAnalysisCmd,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log progress to stderr")
	rootCmd.Flags().StringVar(&analysisMode, "mode", "", "1|single: one population, 2|all: every population")
	rootCmd.Flags().StringVar(&analysisPopulation, "population", "", "1|primes, 2|composites or 3|odds (single mode)")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newRepsCmd())

	return rootCmd
}

func runAnalysisCmd(cmd *cobra.Command, _ []string) error {
	log := newLogger(cmd.ErrOrStderr(), verbose)

	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "mode", &analysisMode, fileCfg.Analysis.Mode)
	applyStringConfig(cmd, "population", &analysisPopulation, fileCfg.Analysis.Population)

	cfg, err := resolveConfig(analysisMode, analysisPopulation, newSelector(cmd))
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"mode":       cfg.Mode.String(),
		"population": cfg.Population.String(),
	}).Debug("starting analysis")

	out := bufio.NewWriter(cmd.OutOrStdout())
	if err := analysis.Run(out, cfg, log); err != nil {
		return err
	}
	if err := out.Flush(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// resolveConfig turns flag/config values into a run config, asking sel for anything missing.
func resolveConfig(modeValue, populationValue string, sel prompt.Selector) (model.Config, error) {
	cfg := model.Config{Limit: model.UpperBound}

	var err error
	if strings.TrimSpace(modeValue) == "" {
		cfg.Mode, err = sel.Mode()
	} else {
		cfg.Mode, err = model.ParseMode(modeValue)
	}
	if err != nil {
		return model.Config{}, err
	}
	if cfg.Mode != model.ModeSingle {
		return cfg, nil
	}

	if strings.TrimSpace(populationValue) == "" {
		cfg.Population, err = sel.Population()
	} else {
		cfg.Population, err = model.ParsePopulation(populationValue)
	}
	if err != nil {
		return model.Config{}, err
	}
	return cfg, nil
}

func newSelector(cmd *cobra.Command) prompt.Selector {
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return prompt.NewPicker(f, cmd.ErrOrStderr())
	}
	return prompt.NewLines(in, cmd.ErrOrStderr())
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newRepsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reps <n>",
		Short: "Print the representation counts of one number",
		Args:  cobra.ExactArgs(1),
		RunE:  runRepsCmd,
	}
}

func runRepsCmd(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil {
		return fmt.Errorf("invalid number %q: %w", args[0], err)
	}
	if n < model.Start || n > model.UpperBound {
		return fmt.Errorf("number must be between %d and %d", model.Start, model.UpperBound)
	}
	set, err := sieve.NewSet(model.UpperBound)
	if err != nil {
		return fmt.Errorf("failed to build prime set: %w", err)
	}
	return writeReps(cmd.OutOrStdout(), n, goldbach.NewScanner(set))
}

func writeReps(w io.Writer, n int, scanner *goldbach.Scanner) error {
	if _, err := fmt.Fprintf(w, "n = %d\n", n); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	for _, c := range model.Constants {
		if _, err := fmt.Fprintf(w, "c = %-2d  target = %-7d  r_c = %d\n", c, n-c, scanner.Count(n, c)); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newLogger(w io.Writer, debug bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	log.SetLevel(logrus.WarnLevel)
	if debug {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return `# goldbach configuration
# Uncomment a value to skip its prompt. CLI flags override config values.

[analysis]
# mode = "all"              # 1|single: one population, 2|all: every population
# population = "primes"     # 1|primes, 2|composites or 3|odds (single mode only)
`
}
