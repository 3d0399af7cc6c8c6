package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gitmaj/config"
	"gitmaj/log"
)

// Global flags used across multiple commands
var (
	configFile string
)

// Flags for the default update run
var (
	flagRepo      string
	flagRemote    string
	flagBranch    string
	flagPrefix    string
	flagNoPause   bool
	flagNoJournal bool
	flagDebug     bool
	flagLogFile   string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gitmaj",
	Short: "Stage, commit and push the working tree in one shot",
	Long: `A CLI tool that stages every pending change in a repository, commits it
with a timestamped message and pushes the result to the configured remote
branch, then waits for a keypress so the window stays readable.

Running gitmaj without a subcommand performs the update immediately.`,
	Run: runMajCmd,
}

// SetVersionInfo records build information injected by the linker
func SetVersionInfo(version string, commit string, date string) {
	rootCmd.Version = fmt.Sprintf("%s (commit %s, built %s)", version, commit, date)
}

// Initialize adds all child commands to the root command
func Initialize() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", config.DefaultConfigFile, "Path to configuration file")

	// Flags for the default update run
	rootCmd.Flags().StringVar(&flagRepo, "repo", "", "Repository to update (defaults to the working directory)")
	rootCmd.Flags().StringVar(&flagRemote, "remote", "", "Remote to push to (defaults to origin)")
	rootCmd.Flags().StringVar(&flagBranch, "branch", "", "Branch to push (defaults to main)")
	rootCmd.Flags().StringVar(&flagPrefix, "prefix", "", "Commit message prefix (defaults to MAJ)")
	rootCmd.Flags().BoolVar(&flagNoPause, "no-pause", false, "Exit without waiting for a keypress")
	rootCmd.Flags().BoolVar(&flagNoJournal, "no-journal", false, "Skip recording the run in the journal")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Write a debug log of executed git commands")
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Debug log destination (defaults to the data directory)")

	// Add all subcommands
	initStatutCmd()
	initJournalCmd()

	// Add commands to root command
	rootCmd.AddCommand(statutCmd)
	rootCmd.AddCommand(journalCmd)
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// loadConfiguration assembles the effective configuration from the file,
// the environment and the command line flags, in that order
func loadConfiguration() *config.Configuration {
	configObj, err := config.ReadConfig(configFile)
	if err != nil {
		log.PrintError(log.ErrConfigReadFailed, "Erreur de lecture de la configuration", err)
	}

	configObj.LoadFromEnvironment()

	if flagRepo != "" {
		configObj.Repo = flagRepo
	}
	if flagRemote != "" {
		configObj.Remote = flagRemote
	}
	if flagBranch != "" {
		configObj.Branch = flagBranch
	}
	if flagPrefix != "" {
		configObj.Prefix = flagPrefix
	}
	if flagNoPause {
		configObj.Pause = false
	}
	if flagNoJournal {
		configObj.Journal = false
	}
	if flagDebug {
		configObj.Debug = true
	}
	if flagLogFile != "" {
		configObj.LogFile = flagLogFile
	}

	if err := configObj.Finalize(); err != nil {
		log.PrintError(log.ErrConfigInvalidRepo, "Impossible de résoudre la configuration", err)
	}

	return configObj
}
