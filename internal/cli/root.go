// Package cli implements the healthpredict CLI commands.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/rcliao/healthpredict/internal/config"
	"github.com/rcliao/healthpredict/internal/kb"
	"github.com/rcliao/healthpredict/internal/model"
	"github.com/rcliao/healthpredict/internal/store"
)

var (
	dbPath      string
	kbPath      string
	configPath  string
	sessionName string
	formatFlag  string
	verbose     bool

	settings config.Settings
	logger   = slog.New(slog.NewTextHandler(io.Discard, nil))
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "healthpredict",
	Short: "Rule-based symptom assessment",
	Long:  "Collect symptoms, vitals and history, score them against a weighted condition catalog and print a report. SQLite-backed, single binary.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

		path := configPath
		if path == "" {
			path = config.DefaultConfigPath()
		}
		fc, err := config.LoadConfig(path)
		if err != nil {
			exitErr("load config", err)
		}
		settings = config.Resolve(config.Overrides{DBPath: dbPath, KBPath: kbPath, Session: sessionName}, fc)
		logger.Debug("settings", "config", path, "db", settings.DBPath, "kb", settings.KBPath, "session", settings.Session)
	},
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Database path (default: $HEALTHPREDICT_DB or $XDG_DATA_HOME/healthpredict/healthpredict.db)")
	RootCmd.PersistentFlags().StringVar(&kbPath, "kb", "", "Knowledge base TOML file (default: built-in catalog)")
	RootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: $XDG_CONFIG_HOME/healthpredict/config.toml)")
	RootCmd.PersistentFlags().StringVarP(&sessionName, "session", "s", "", "Session name (default: $HEALTHPREDICT_SESSION or \"default\")")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "json", "Output format: json or text")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging on stderr")
}

func openStore() (*store.SQLiteStore, error) {
	return store.NewSQLiteStore(settings.DBPath)
}

// loadKB returns the configured knowledge base, the built-in one when no path is set.
func loadKB() (*kb.KnowledgeBase, error) {
	if settings.KBPath == "" {
		return kb.Default(), nil
	}
	logger.Debug("loading knowledge base", "path", settings.KBPath)
	return kb.Load(settings.KBPath)
}

func session() model.Session {
	return model.Session{Name: settings.Session}
}

func textOutput() bool {
	return formatFlag == "text"
}

func printJSON(v any) {
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(b))
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
