// Package main provides the CLI entrypoint for starletters.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/verte-zerg/starletters/internal/catalog"
	"github.com/verte-zerg/starletters/internal/config"
	"github.com/verte-zerg/starletters/internal/effects"
	"github.com/verte-zerg/starletters/internal/flow"
	"github.com/verte-zerg/starletters/internal/historyui"
	"github.com/verte-zerg/starletters/internal/logging"
	"github.com/verte-zerg/starletters/internal/model"
	"github.com/verte-zerg/starletters/internal/report"
	"github.com/verte-zerg/starletters/internal/store"
	"github.com/verte-zerg/starletters/internal/tracker"
	"github.com/verte-zerg/starletters/internal/tui"
)

const (
	defaultRecipient    = "Rohaniya"
	defaultStars        = 30
	defaultTypewriterMs = 35
	maxStars            = 500
)

var (
	greetRecipient    string
	greetCatalog      string
	greetStars        int
	greetTypewriterMs int
	greetReduceMotion bool
	greetHistory      bool

	logFile  string
	logDebug bool

	catalogFile string
	catalogDump string

	historySince       string
	historyLast        int
	historyInteractive bool
	historyColor       bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "starletters",
		Short:         "An anniversary greeting written in the stars",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runGreetingCmd,
	}

	rootCmd.Flags().StringVar(&greetRecipient, "recipient", defaultRecipient, "name shown in the greeting")
	rootCmd.Flags().StringVar(&greetCatalog, "catalog", "", "path to a catalog TOML file")
	rootCmd.Flags().IntVar(&greetStars, "stars", defaultStars, "number of background stars")
	rootCmd.Flags().IntVar(&greetTypewriterMs, "typewriter-ms", defaultTypewriterMs, "delay between revealed characters (0 shows letters at once)")
	rootCmd.Flags().BoolVar(&greetReduceMotion, "reduce-motion", false, "disable twinkling and typewriter effects")
	rootCmd.Flags().BoolVar(&greetHistory, "history", true, "record finished journeys")

	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", config.DefaultLogPath(), "log file path (empty disables logging)")
	rootCmd.PersistentFlags().BoolVar(&logDebug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newCatalogCmd())
	rootCmd.AddCommand(newHistoryCmd())

	return rootCmd
}

func runGreetingCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "recipient", &greetRecipient, fileCfg.Greeting.Recipient)
	applyStringConfig(cmd, "catalog", &greetCatalog, fileCfg.Greeting.Catalog)
	applyIntConfig(cmd, "stars", &greetStars, fileCfg.Effects.Stars)
	applyIntConfig(cmd, "typewriter-ms", &greetTypewriterMs, fileCfg.Effects.TypewriterMs)
	applyBoolConfig(cmd, "reduce-motion", &greetReduceMotion, fileCfg.Effects.ReduceMotion)
	applyBoolConfig(cmd, "history", &greetHistory, fileCfg.History.Enabled)

	cfg := model.Config{
		Recipient:      strings.TrimSpace(greetRecipient),
		CatalogPath:    resolveCatalogPath(greetCatalog),
		Stars:          greetStars,
		TypewriterMs:   greetTypewriterMs,
		ReduceMotion:   greetReduceMotion,
		HistoryEnabled: greetHistory,
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}

	logger, err := logging.New(logFile, logDebug)
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return catalogLoadError(cfg.CatalogPath, err)
	}
	tr, err := tracker.New(cat)
	if err != nil {
		return fmt.Errorf("failed to start tracker: %w", err)
	}

	var recorder tui.JourneyRecorder
	if cfg.HistoryEnabled {
		st, err := store.Open(config.DefaultDBPath())
		if err != nil {
			logErrf("history disabled: failed to open db: %v\n", err)
			logger.Warn("history disabled", zap.Error(err))
		} else {
			recorder = st
			defer func() {
				if cerr := st.Close(); cerr != nil {
					logErrf("failed to close db: %v\n", cerr)
				}
			}()
		}
	}

	logger.Info("greeting started",
		zap.String("catalog", catalogLabel(cfg.CatalogPath)),
		zap.Int("letters", cat.Len()),
		zap.Bool("history", recorder != nil),
		zap.Bool("reduce_motion", cfg.ReduceMotion),
	)

	ui := tui.NewModel(cfg, flow.New(tr), recorder, logger, effects.New())
	program := tea.NewProgram(ui, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		logger.Error("tui failed", zap.Error(err))
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	logger.Info("greeting closed", zap.Int("letters_read", tr.LettersRead()))
	return nil
}

// resolveCatalogPath falls back to a dumped catalog in the config directory.
func resolveCatalogPath(path string) string {
	if path != "" {
		return path
	}
	if _, err := os.Stat(config.DefaultCatalogPath()); err == nil {
		return config.DefaultCatalogPath()
	}
	return ""
}

func catalogLabel(path string) string {
	if path == "" {
		return "builtin"
	}
	return path
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
	return openEditor(path)
}

func openEditor(path string) error {
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

func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Validate and list a letters catalog",
		Args:  cobra.NoArgs,
		RunE:  runCatalogCmd,
	}
	cmd.Flags().StringVar(&catalogFile, "file", "", "catalog TOML file to check (default: built-in)")
	cmd.Flags().StringVar(&catalogDump, "dump", "", "write the catalog as TOML (--dump=- for stdout)")
	cmd.Flags().Lookup("dump").NoOptDefVal = config.DefaultCatalogPath()
	return cmd
}

func runCatalogCmd(cmd *cobra.Command, _ []string) error {
	cat, err := catalog.Load(catalogFile)
	if err != nil {
		return catalogLoadError(catalogFile, err)
	}
	if catalogDump != "" {
		return dumpCatalog(cmd, cat, catalogDump)
	}
	return listCatalog(cmd, cat)
}

func listCatalog(cmd *cobra.Command, cat *catalog.Catalog) error {
	out := cmd.OutOrStdout()
	for _, c := range cat.Categories() {
		if _, err := fmt.Fprintf(out, "%s %s (%d)\n", c.Symbol, c.Name, c.Total); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		for _, item := range cat.ItemsIn(c.Name) {
			if _, err := fmt.Fprintf(out, "  %3d  %s\n", item.ID, truncate(item.Text, 60)); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
		}
	}
	final := cat.Final()
	if _, err := fmt.Fprintf(out, "%s %s (id %d)\n%d letters ok\n", final.CategorySymbol, final.Title, final.ID, cat.Len()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func dumpCatalog(cmd *cobra.Command, cat *catalog.Catalog, path string) error {
	if path == "-" {
		return catalog.Write(cmd.OutOrStdout(), cat)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create catalog directory: %w", err)
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("catalog already exists: %s", path)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat catalog: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create catalog: %w", err)
	}
	if err := catalog.Write(f, cat); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write catalog: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close catalog: %w", err)
	}
	logErrf("Wrote %s\n", path)
	return nil
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-1]) + "…"
}

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show past journeys",
		Args:  cobra.NoArgs,
		RunE:  runHistoryCmd,
	}
	cmd.Flags().StringVar(&historySince, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&historyLast, "last", 0, "limit to last N journeys")
	cmd.Flags().BoolVarP(&historyInteractive, "interactive", "i", false, "browse journeys in a table")
	cmd.Flags().BoolVar(&historyColor, "color", false, "force colored output")
	return cmd
}

func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	var sinceTime *time.Time
	if historySince != "" {
		parsed, err := time.ParseInLocation("2006-01-02", historySince, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --since value: %w", err)
		}
		sinceTime = &parsed
	}
	if historyLast < 0 {
		return fmt.Errorf("--last must be >= 0")
	}

	logger, err := logging.New(logFile, logDebug)
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	journeys, err := st.ListJourneys(context.Background(), model.HistoryConfig{Since: sinceTime, Last: historyLast})
	if err != nil {
		logger.Error("failed to list journeys", zap.Error(err))
		return fmt.Errorf("failed to list journeys: %w", err)
	}
	logger.Debug("history loaded", zap.Int("journeys", len(journeys)), zap.Bool("interactive", historyInteractive))

	if historyInteractive {
		if !report.IsTerminal(os.Stdout) {
			return fmt.Errorf("--interactive requires a terminal")
		}
		program := tea.NewProgram(historyui.NewModel(journeys), tea.WithAltScreen())
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("failed to run history TUI: %w", err)
		}
		return nil
	}
	return report.WriteHistory(cmd.OutOrStdout(), journeys, historyColor)
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

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# starletters configuration
# Uncomment a value to enable it. CLI flags override config values.

[greeting]
# recipient = %q     # Name shown in the greeting
# catalog = ""             # Path to a catalog TOML file (see: starletters catalog --dump)

[effects]
# stars = %d               # Number of background stars
# typewriter-ms = %d       # Delay between revealed characters, 0 shows letters at once
# reduce-motion = false    # Disable twinkling and typewriter effects

[history]
# enabled = true           # Record finished journeys
`,
		defaultRecipient,
		defaultStars,
		defaultTypewriterMs,
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.Recipient == "" {
		return fmt.Errorf("--recipient must not be empty")
	}
	if cfg.Stars < 0 || cfg.Stars > maxStars {
		return fmt.Errorf("--stars must be between 0 and %d", maxStars)
	}
	if cfg.TypewriterMs < 0 {
		return fmt.Errorf("--typewriter-ms must be >= 0")
	}
	return nil
}

func catalogLoadError(path string, err error) error {
	hints := []string{
		fmt.Sprintf("catalog path: %s", catalogLabel(path)),
		"Check it with: starletters catalog --file <path>",
		"Start from the built-in letters: starletters catalog --dump",
	}
	return fmt.Errorf("failed to load catalog: %w\n%s", err, strings.Join(hints, "\n"))
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
