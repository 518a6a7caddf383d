package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	moodlog "github.com/unowned-ai/moodlog/pkg"
	"github.com/unowned-ai/moodlog/pkg/config"
	pkgdb "github.com/unowned-ai/moodlog/pkg/db"
	"github.com/unowned-ai/moodlog/pkg/logger"
	"github.com/unowned-ai/moodlog/pkg/utils"
)

var (
	configPath string
	dbPath     string
	walMode    bool
	syncMode   string
	userFlag   string
	tzFlag     string
	logMode    string

	cfg config.Config
	log = logger.Nop()
)

var rootCmd = &cobra.Command{
	Use:     "moodlog",
	Short:   "Log moods and weekly reflections, and see how your weeks balance out.",
	Version: fmt.Sprintf("v%s", moodlog.Version),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadRuntime(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		log.Sync()
	},
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var completionShells = []string{"bash", "zsh", "fish", "powershell"}

var completionCmd = &cobra.Command{
	Use:   fmt.Sprintf("completion %s", strings.Join(completionShells, "|")),
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for moodlog.

The command prints a completion script to stdout. You can source it in your shell
or install it to the appropriate location for your shell to enable completions permanently.

Examples:

  Bash (current shell):
    $ source <(moodlog completion bash)

  Zsh:
    $ moodlog completion zsh > "${fpath[1]}/_moodlog"

  Fish:
    $ moodlog completion fish > ~/.config/fish/completions/moodlog.fish

  PowerShell:
    PS> moodlog completion powershell | Out-String | Invoke-Expression`,
	DisableFlagsInUseLine: true,
	ValidArgs:             completionShells,
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	PersistentPreRunE:     func(cmd *cobra.Command, args []string) error { return nil },
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(cmd.OutOrStdout())
		case "zsh":
			return rootCmd.GenZshCompletion(cmd.OutOrStdout())
		case "fish":
			return rootCmd.GenFishCompletion(cmd.OutOrStdout(), true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(cmd.OutOrStdout())
		default:
			return fmt.Errorf("unsupported shell: %s", args[0])
		}
	},
}

var versionCmd = &cobra.Command{
	Use:               "version",
	Short:             "Print the version number of moodlog",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), moodlog.Version)
	},
}

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Manage the moodlog database",
	Long:  `Provides commands for managing the moodlog SQLite database, including schema upgrades.`,
}

var dbUpgradeCmd = &cobra.Command{
	Use:   "upgrade",
	Short: "Upgrade the moodlog database schema to the latest version for the wellnessdb component",
	Long: `Connects to the SQLite database and applies any necessary schema migrations to bring
the wellnessdb component up to the current application schema version. If the database does
not exist or is uninitialized for this component, it will be created and initialized with
the latest schema.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := utils.ResolveAndEnsureDBPath(cfg.DBPath)
		if err != nil {
			return err
		}
		log.Info("Upgrading database", "path", path, "wal", cfg.WAL, "sync", cfg.Sync)

		dbConn, err := pkgdb.OpenDBConnection(path, cfg.WAL, cfg.Sync)
		if err != nil {
			return err
		}
		defer pkgdb.CloseDBConnection(dbConn, log)

		return pkgdb.UpgradeDB(dbConn, log, path, pkgdb.TargetSchemaVersion)
	},
}

func initCmd() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Path to the YAML config file (default: $"+config.EnvConfig+" or the user config directory)")
	flags.StringVar(&dbPath, "db", "", "Path to the database file (uses a system-specific default if not provided)")
	flags.BoolVar(&walMode, "wal", true, "Enable SQLite WAL (Write-Ahead Logging) mode")
	flags.StringVar(&syncMode, "sync", "FULL", "SQLite synchronous pragma (OFF, NORMAL, FULL, EXTRA)")
	flags.StringVar(&userFlag, "user", "", "User whose records are read and written")
	flags.StringVar(&tzFlag, "tz", "", "IANA time zone used to place moods on calendar days")
	flags.StringVar(&logMode, "log-mode", "", "Log format: dev or prod")

	dbCmd.AddCommand(dbUpgradeCmd)

	initMoodsCmd()
	initInsightsCmd()
	initEntriesCmd()
	initBreathingCmd()
	initViewsCmd()
	initServeCmd()
	rootCmd.AddCommand(completionCmd, versionCmd, dbCmd, moodsCmd, insightsCmd, entriesCmd, breathingCmd, quoteCmd, viewsCmd, serveCmd, mcpCmd)
}

func main() {
	initCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
