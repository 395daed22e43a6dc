// Package main provides the CLI entrypoint for examboard.
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
	"golang.org/x/term"

	"github.com/verte-zerg/examboard/internal/config"
	"github.com/verte-zerg/examboard/internal/dashboard"
	"github.com/verte-zerg/examboard/internal/model"
	"github.com/verte-zerg/examboard/internal/questionnav"
	"github.com/verte-zerg/examboard/internal/report"
	"github.com/verte-zerg/examboard/internal/store"
	"github.com/verte-zerg/examboard/internal/table"
)

const (
	defaultPageSize = 2
	defaultSortKey  = string(model.SortByUpdated)
	defaultSortDir  = string(model.Desc)
	defaultTopics   = 1
	defaultPerTopic = 20
)

var (
	dashPageSize  int
	dashSortKey   string
	dashSortDir   string
	dashCollapsed bool

	listPage int
	listAll  bool
	listIDs  bool

	seedForce bool

	questionsTopics   int
	questionsPerTopic int
	questionsCurrent  string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "examboard",
		Short:         "Exam results dashboard",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if err := config.LoadEnv(".env"); err != nil {
				return fmt.Errorf("failed to load .env: %w", err)
			}
			return nil
		},
		RunE: runDashboardCmd,
	}

	addTableFlags(rootCmd)
	rootCmd.Flags().BoolVar(&dashCollapsed, "collapsed", false, "start with provider groups collapsed")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newSeedCmd())
	rootCmd.AddCommand(newQuestionsCmd())

	return rootCmd
}

func addTableFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&dashPageSize, "page-size", defaultPageSize, "provider groups per page")
	cmd.Flags().StringVar(&dashSortKey, "sort", defaultSortKey, "sort key ("+sortKeyNames()+")")
	cmd.Flags().StringVar(&dashSortDir, "dir", defaultSortDir, "sort direction (asc|desc)")
}

func runDashboardCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadDashboardConfig(cmd)
	if err != nil {
		return err
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	records, err := loadRecords(cmd.Context(), st)
	if err != nil {
		return err
	}
	engine := table.New(records, cfg.PageSize, cfg.Sort)

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return report.Render(cmd.OutOrStdout(), engine.View(), report.Options{Now: time.Now()})
	}

	m := dashboard.NewModel(engine, dashboard.Options{
		Deleter:        st,
		GroupCollapsed: cfg.GroupCollapsed,
	})
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run dashboard: %w", err)
	}
	return nil
}

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the dashboard as plain tables",
		Args:  cobra.NoArgs,
		RunE:  runListCmd,
	}
	addTableFlags(cmd)
	cmd.Flags().IntVar(&listPage, "page", 1, "page to print (clamped to range)")
	cmd.Flags().BoolVar(&listAll, "all", false, "print every page")
	cmd.Flags().BoolVar(&listIDs, "ids", false, "include record ids")
	return cmd
}

func runListCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadDashboardConfig(cmd)
	if err != nil {
		return err
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	records, err := loadRecords(cmd.Context(), st)
	if err != nil {
		return err
	}
	engine := table.New(records, cfg.PageSize, cfg.Sort)
	opts := report.Options{Now: time.Now(), IDs: listIDs}
	out := cmd.OutOrStdout()
	if listAll {
		return report.Render(out, allPagesView(engine), opts)
	}
	engine.SetPage(listPage)
	return report.Render(out, engine.View(), opts)
}

func newSeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the sample exam records",
		Args:  cobra.NoArgs,
		RunE:  runSeedCmd,
	}
	cmd.Flags().BoolVar(&seedForce, "force", false, "replace existing records")
	return cmd
}

func runSeedCmd(cmd *cobra.Command, _ []string) error {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	ctx := cmd.Context()
	records := store.SampleRecords(time.Now())
	if seedForce {
		if err := st.ReplaceAll(ctx, records); err != nil {
			return fmt.Errorf("failed to seed records: %w", err)
		}
		logErrf("Replaced records with %d samples\n", len(records))
		return nil
	}
	seeded, err := st.SeedIfEmpty(ctx, records)
	if err != nil {
		return fmt.Errorf("failed to seed records: %w", err)
	}
	if !seeded {
		logErrln("Records already present; use --force to replace them")
		return nil
	}
	logErrf("Seeded %d sample records\n", len(records))
	return nil
}

func newQuestionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "questions",
		Short: "Pick a question from the navigator",
		Args:  cobra.NoArgs,
		RunE:  runQuestionsCmd,
	}
	cmd.Flags().IntVar(&questionsTopics, "topics", defaultTopics, "number of topics")
	cmd.Flags().IntVar(&questionsPerTopic, "per-topic", defaultPerTopic, "questions per topic")
	cmd.Flags().StringVar(&questionsCurrent, "current", "", "label to highlight, e.g. \"T1 Q3\"")
	return cmd
}

func runQuestionsCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "topics", &questionsTopics, fileCfg.Questions.Topics)
	applyIntConfig(cmd, "per-topic", &questionsPerTopic, fileCfg.Questions.PerTopic)

	qcfg := model.QuestionsConfig{
		Topics:   questionsTopics,
		PerTopic: questionsPerTopic,
		Current:  strings.TrimSpace(questionsCurrent),
	}
	if err := validateQuestionsConfig(qcfg); err != nil {
		return err
	}

	labels := questionnav.UniformLabels(qcfg.Topics, qcfg.PerTopic)
	current, err := currentLabel(labels, qcfg.Current)
	if err != nil {
		return err
	}
	app := questionnav.NewApp(questionnav.New(labels, current))
	program := tea.NewProgram(app)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run question navigator: %w", err)
	}
	if app.Chosen() == "" {
		return nil
	}
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), app.Chosen()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
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

// loadRecords seeds an empty store with the sample dataset and returns every
// record.
func loadRecords(ctx context.Context, st *store.Store) ([]model.ExamRecord, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	seeded, err := st.SeedIfEmpty(ctx, store.SampleRecords(time.Now()))
	if err != nil {
		return nil, fmt.Errorf("failed to seed records: %w", err)
	}
	if seeded {
		logErrln("No records found; loaded sample data")
	}
	records, err := st.ListRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load records: %w", err)
	}
	return records, nil
}

func loadDashboardConfig(cmd *cobra.Command) (model.DashboardConfig, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.DashboardConfig{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "page-size", &dashPageSize, fileCfg.Dashboard.PageSize)
	applyStringConfig(cmd, "sort", &dashSortKey, fileCfg.Dashboard.SortKey)
	applyStringConfig(cmd, "dir", &dashSortDir, fileCfg.Dashboard.SortDir)
	applyBoolConfig(cmd, "collapsed", &dashCollapsed, fileCfg.Dashboard.GroupCollapsed)
	return buildDashboardConfig(dashPageSize, dashSortKey, dashSortDir, dashCollapsed)
}

func buildDashboardConfig(pageSize int, sortKey, sortDir string, collapsed bool) (model.DashboardConfig, error) {
	if pageSize <= 0 {
		return model.DashboardConfig{}, fmt.Errorf("--page-size must be > 0")
	}
	key, ok := model.ParseSortKey(strings.TrimSpace(sortKey))
	if !ok {
		return model.DashboardConfig{}, fmt.Errorf("--sort must be one of %s", sortKeyNames())
	}
	dir, ok := model.ParseSortDirection(strings.TrimSpace(sortDir))
	if !ok {
		return model.DashboardConfig{}, fmt.Errorf("--dir must be asc or desc")
	}
	return model.DashboardConfig{
		PageSize:       pageSize,
		Sort:           model.SortConfig{Key: key, Direction: dir},
		GroupCollapsed: collapsed,
	}, nil
}

func validateQuestionsConfig(cfg model.QuestionsConfig) error {
	if cfg.Topics <= 0 {
		return fmt.Errorf("--topics must be > 0")
	}
	if cfg.PerTopic <= 0 {
		return fmt.Errorf("--per-topic must be > 0")
	}
	return nil
}

// allPagesView folds every provider group into a single page.
func allPagesView(engine *table.Engine) table.View {
	v := engine.View()
	v.Groups = engine.Groups()
	v.Page = 1
	v.TotalPages = 1
	return v
}

// currentLabel resolves --current against the generated labels. Empty picks
// the first label.
func currentLabel(labels []string, current string) (string, error) {
	if current == "" {
		return labels[0], nil
	}
	for _, l := range labels {
		if strings.EqualFold(l, current) {
			return l, nil
		}
	}
	return "", fmt.Errorf("--current must be one of the generated labels")
}

func sortKeyNames() string {
	names := make([]string, len(model.SortKeys))
	for i, k := range model.SortKeys {
		names[i] = string(k)
	}
	return strings.Join(names, "|")
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if f := cmd.Flags().Lookup(name); f == nil || f.Changed {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if f := cmd.Flags().Lookup(name); f == nil || f.Changed {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if f := cmd.Flags().Lookup(name); f == nil || f.Changed {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# examboard configuration
# Uncomment a value to enable it. CLI flags override config values.

[dashboard]
# page-size = %d             # Provider groups per page
# sort-key = %q        # One of: %s
# sort-dir = %q           # asc or desc
# group-collapsed = false   # Start with provider groups collapsed

[questions]
# topics = %d                 # Number of topics in the navigator
# per-topic = %d             # Questions per topic
`,
		defaultPageSize,
		defaultSortKey,
		sortKeyNames(),
		defaultSortDir,
		defaultTopics,
		defaultPerTopic,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
