package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"gitmaj/journal"
	"gitmaj/log"
)

// journalCmd represents the journal command
var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "List past update runs",
	Long: `List the most recent update runs recorded in the local journal,
newest first.

Example:
  gitmaj journal
  gitmaj journal --limit 5`,
	Run: runJournalCmd,
}

var journalLimit int

// initJournalCmd initializes the journal command with its flags
func initJournalCmd() {
	journalCmd.Flags().IntVar(&journalLimit, "limit", 10, "Maximum number of runs to show")
}

// runJournalCmd is the main function for the journal command
func runJournalCmd(cmd *cobra.Command, args []string) {
	configObj := loadConfiguration()

	if journalLimit <= 0 {
		log.PrintError(log.ErrInvalidArgument, "La limite doit être supérieure à zéro", nil)
		os.Exit(1)
	}

	journalDB, err := journal.Open(configObj.JournalPath)
	if err != nil {
		log.PrintError(log.ErrJournalOpenFailed, "Impossible d'ouvrir le journal", err)
		os.Exit(1)
	}
	defer journalDB.Close()

	entries, err := journalDB.Recent(journalLimit)
	if err != nil {
		log.PrintError(log.ErrJournalReadFailed, "Impossible de lire le journal", err)
		os.Exit(1)
	}

	if len(entries) == 0 {
		log.PrintInfo("Le journal est vide")
		return
	}

	log.PrintBanner("Journal des mises à jour")
	for _, entry := range entries {
		printJournalEntry(entry)
	}
}

func printJournalEntry(entry journal.Entry) {
	line := fmt.Sprintf("%s  %-30s %s/%s  %s",
		entry.StartedAt.Format(timestampFormat),
		filepath.Base(entry.RepoPath),
		entry.Remote,
		entry.Branch,
		entry.Message,
	)

	if entry.Pushed {
		log.PrintSuccess(line)
	} else {
		log.PrintWarning(line)
	}
}
