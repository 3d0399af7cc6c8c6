package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"gitmaj/git"
	"gitmaj/log"
)

// statutCmd represents the statut command
var statutCmd = &cobra.Command{
	Use:   "statut",
	Short: "Show the working tree state of the repository",
	Long: `Show the current branch, the pending changes and the position relative
to the upstream tracking branch, without modifying anything.

Example:
  gitmaj statut
  gitmaj statut --repo ../autre-depot`,
	Run: runStatutCmd,
}

// initStatutCmd initializes the statut command with its flags
func initStatutCmd() {
	statutCmd.Flags().StringVar(&flagRepo, "repo", "", "Repository to inspect (defaults to the working directory)")
}

// runStatutCmd is the main function for the statut command
func runStatutCmd(cmd *cobra.Command, args []string) {
	configObj := loadConfiguration()

	if err := git.ValidateRepository(configObj.Repo); err != nil {
		log.PrintError(log.ErrRepoNotGit, fmt.Sprintf("%s n'est pas un dépôt git", configObj.Repo), err)
		os.Exit(1)
	}

	client := git.New()
	status, err := client.Status(configObj.Repo)
	if err != nil {
		log.PrintError(log.ErrGitStatusFailed, "Impossible de lire l'état du dépôt", err)
		os.Exit(1)
	}

	printStatus(configObj.Repo, status)
}

func printStatus(repoPath string, status git.Status) {
	log.PrintBanner("État du dépôt")
	log.PrintInfo(fmt.Sprintf("Dépôt   : %s", repoPath))
	log.PrintInfo(fmt.Sprintf("Branche : %s", status.Branch))

	if !status.HasChanges {
		log.PrintSuccess("Aucune modification en attente")
	} else {
		var parts []string
		if status.StagedChanges > 0 {
			parts = append(parts, fmt.Sprintf("%d indexée(s)", status.StagedChanges))
		}
		if status.UnstagedChanges > 0 {
			parts = append(parts, fmt.Sprintf("%d non indexée(s)", status.UnstagedChanges))
		}
		if status.UntrackedFiles > 0 {
			parts = append(parts, fmt.Sprintf("%d non suivie(s)", status.UntrackedFiles))
		}
		log.PrintWarning(fmt.Sprintf("Modifications en attente : %s", strings.Join(parts, ", ")))
	}

	if status.Ahead > 0 {
		log.PrintInfo(fmt.Sprintf("%d commit(s) d'avance sur la branche distante", status.Ahead))
	}
	if status.Behind > 0 {
		log.PrintWarning(fmt.Sprintf("%d commit(s) de retard sur la branche distante", status.Behind))
	}
}
