package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/hrcore/competency/internal/app"
	"github.com/hrcore/competency/internal/config"
	"github.com/hrcore/competency/internal/schedule"
	"github.com/hrcore/competency/internal/store"
)

// annotationTUI marks commands that own the terminal; their logs never go
// to stderr.
const annotationTUI = "tui"

const annotationSkipEnv = "skip-env"

var rootCmd = &cobra.Command{
	Use:   "competency",
	Short: "HR competency client",
	Long: "competency browses and edits an HR competency service: competencies, question banks,\n" +
		"assessments, reviews and development paths. Fetched collections are cached locally.",
	SilenceUsage:      true,
	Annotations:       map[string]string{annotationTUI: "true"},
	PersistentPreRunE: openEnv,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBrowse(cmd)
	},
}

// Execute runs the root command. The application environment opened for the
// command is closed afterwards, and metrics are written when requested.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	h := &envHolder{}
	err := rootCmd.ExecuteContext(withHolder(ctx, h))
	if h.env != nil {
		if h.metricsFile != "" {
			if mErr := h.env.WriteMetrics(h.metricsFile); mErr != nil && err == nil {
				err = mErr
			}
		}
		h.env.Close()
	}
	return err
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Path to config file (overrides COMPETENCY_CONFIG env var)")
	pf.String("db", "", "Path to SQLite database file (overrides COMPETENCY_DB env var)")
	pf.String("api-url", "", "Base URL of the competency API")
	pf.String("log-level", "", "Log level: debug, info, warn, error")
	pf.String("user", "", "Acting user ID")
	pf.String("role", "", "Acting user role: employee, manager, admin")
	pf.String("metrics-file", "", "Write cache metrics to this file on exit")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(competenciesCmd)
	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(assessmentsCmd)
	rootCmd.AddCommand(assessorsCmd)
	rootCmd.AddCommand(employeesCmd)
	rootCmd.AddCommand(jobsCmd)
	rootCmd.AddCommand(reviewsCmd)
	rootCmd.AddCommand(pathsCmd)
	rootCmd.AddCommand(interventionsCmd)
	rootCmd.AddCommand(requestsCmd)
	rootCmd.AddCommand(cacheCmd)
}

// loadConfig resolves configuration: defaults, config file, .env and
// COMPETENCY_* variables, then flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	required := path != ""
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path, required)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if v, _ := flags.GetString("api-url"); v != "" {
		cfg.API.BaseURL = v
	}
	if v, _ := flags.GetString("log-level"); v != "" {
		cfg.LogLevel = v
	}
	if v, _ := flags.GetString("user"); v != "" {
		cfg.User.ID = v
	}
	if v, _ := flags.GetString("role"); v != "" {
		cfg.User.Role = config.Role(v)
	}
	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return config.Config{}, fmt.Errorf("resolve DB path: %w", err)
	}
	cfg.DBPath = dbPath
	return cfg, nil
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then the config file and COMPETENCY_DB, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

func openEnv(cmd *cobra.Command, args []string) error {
	if !needsEnv(cmd) {
		return nil
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	// Payload timestamps decode in the configured timezone.
	schedule.SetDefaultLocation(loc)

	var logOut io.Writer = os.Stderr
	if cmd.Annotations[annotationTUI] == "true" {
		logOut = io.Discard
	}

	env, err := app.Open(cmd.Context(), cfg, logOut)
	if err != nil {
		return err
	}
	h := holderFrom(cmd.Context())
	h.env = env
	h.metricsFile, _ = cmd.Flags().GetString("metrics-file")
	return nil
}

// needsEnv reports whether cmd talks to the API or the store. Help,
// completion and version do not.
func needsEnv(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations[annotationSkipEnv] == "true" {
			return false
		}
		switch c.Name() {
		case "help", "completion":
			return false
		}
	}
	return true
}

type envHolder struct {
	env         *app.Env
	metricsFile string
}

type holderKey struct{}

func withHolder(ctx context.Context, h *envHolder) context.Context {
	return context.WithValue(ctx, holderKey{}, h)
}

func holderFrom(ctx context.Context) *envHolder {
	if h, ok := ctx.Value(holderKey{}).(*envHolder); ok {
		return h
	}
	return &envHolder{}
}

// envFrom returns the environment opened for cmd.
func envFrom(cmd *cobra.Command) *app.Env {
	return holderFrom(cmd.Context()).env
}
