package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"gitmaj/config"
	"gitmaj/git"
	"gitmaj/journal"
	"gitmaj/log"
)

// timestampFormat lays out dates the way commit messages and the journal
// listing present them
const timestampFormat = "02/01/2006 15:04:05"

// updateSteps is the number of steps in the update pipeline
const updateSteps = 3

// MajResult holds the result of one update run
type MajResult struct {
	RepoPath  string
	Remote    string
	Branch    string
	Message   string
	StartedAt time.Time
	Duration  time.Duration
	Staged    bool
	Committed bool
	Pushed    bool
	Output    string
}

// runMajCmd is the main function for the default update command
func runMajCmd(cmd *cobra.Command, args []string) {
	configObj := loadConfiguration()

	if configObj.Debug {
		if err := log.InitDebug(configObj.LogFile); err != nil {
			log.PrintWarning(fmt.Sprintf("Impossible d'ouvrir le fichier de débogage : %v", err))
		}
		defer log.CloseDebug()
	}

	performRun(configObj, git.New(), os.Stdin)
}

// performRun executes the update, records it in the journal and waits for
// the final keypress, in that order. Each part runs exactly once.
func performRun(configObj *config.Configuration, client *git.Client, stdin io.Reader) MajResult {
	result := runUpdate(configObj, client, time.Now())

	if configObj.Journal {
		recordRun(configObj.JournalPath, result)
	}

	if configObj.Pause {
		waitForEnter(stdin)
	}

	return result
}

// runUpdate performs the three update steps in order, echoing the output of
// each git command. A failed step leaves git's own message on screen and the
// run carries on to the next step; nothing is retried or rolled back.
func runUpdate(configObj *config.Configuration, client *git.Client, startedAt time.Time) MajResult {
	message := fmt.Sprintf("%s %s", configObj.Prefix, startedAt.Format(timestampFormat))

	result := MajResult{
		RepoPath:  configObj.Repo,
		Remote:    configObj.Remote,
		Branch:    configObj.Branch,
		Message:   message,
		StartedAt: startedAt,
	}

	var transcript strings.Builder

	log.PrintBanner("Mise à jour du dépôt")
	log.PrintInfo(fmt.Sprintf("Dépôt : %s", configObj.Repo))

	log.PrintStep(1, updateSteps, "Indexation des modifications")
	output, err := client.StageAll(configObj.Repo)
	log.PrintCommandOutput(output)
	transcript.WriteString(output)
	result.Staged = err == nil

	log.PrintStep(2, updateSteps, fmt.Sprintf("Création du commit « %s »", message))
	output, err = client.Commit(configObj.Repo, message)
	log.PrintCommandOutput(output)
	transcript.WriteString(output)
	result.Committed = err == nil

	log.PrintStep(3, updateSteps, fmt.Sprintf("Envoi vers %s/%s", configObj.Remote, configObj.Branch))
	output, err = client.Push(configObj.Repo, configObj.Remote, configObj.Branch)
	log.PrintCommandOutput(output)
	transcript.WriteString(output)
	result.Pushed = err == nil

	log.PrintBanner("Mise à jour terminée")

	result.Duration = time.Since(startedAt)
	result.Output = transcript.String()

	log.Debug().
		Str("repo", result.RepoPath).
		Str("message", result.Message).
		Bool("staged", result.Staged).
		Bool("committed", result.Committed).
		Bool("pushed", result.Pushed).
		Dur("took", result.Duration).
		Msg("update run finished")

	return result
}

// recordRun stores the run in the journal. Journal problems are reported as
// warnings and never change the outcome of the update itself.
func recordRun(path string, result MajResult) {
	journalDB, err := journal.Open(path)
	if err != nil {
		log.PrintWarning(fmt.Sprintf("Impossible d'ouvrir le journal : %v", err))
		return
	}
	defer journalDB.Close()

	entry := journal.Entry{
		StartedAt:  result.StartedAt,
		RepoPath:   result.RepoPath,
		Remote:     result.Remote,
		Branch:     result.Branch,
		Message:    result.Message,
		Staged:     result.Staged,
		Committed:  result.Committed,
		Pushed:     result.Pushed,
		DurationMS: result.Duration.Milliseconds(),
		Output:     result.Output,
	}

	if err := journalDB.Record(entry); err != nil {
		log.PrintWarning(fmt.Sprintf("Impossible d'enregistrer l'exécution dans le journal : %v", err))
	}
}
