package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitmaj/config"
	"gitmaj/git"
	"gitmaj/journal"
	"gitmaj/log"
)

// fakeRunner records every git invocation and replays canned results keyed
// by the git subcommand
type fakeRunner struct {
	calls   [][]string
	outputs map[string]string
	errs    map[string]error
}

func (r *fakeRunner) Run(repoPath string, args ...string) (string, error) {
	r.calls = append(r.calls, append([]string{repoPath}, args...))
	return r.outputs[args[0]], r.errs[args[0]]
}

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buffer bytes.Buffer
	color.NoColor = true
	log.SetOutput(&buffer)
	log.SetErrorOutput(&buffer)
	t.Cleanup(func() {
		log.SetOutput(os.Stdout)
		log.SetErrorOutput(os.Stderr)
	})

	return &buffer
}

func testConfiguration() *config.Configuration {
	configObj := config.New()
	configObj.Repo = "/home/lea/notes"
	configObj.Pause = false
	configObj.Journal = false
	return configObj
}

func TestRunUpdateInvokesStepsInOrder(t *testing.T) {
	captureOutput(t)
	runner := &fakeRunner{outputs: map[string]string{
		"add":    "",
		"commit": "[main 1a2b3c4] MAJ 14/03/2026 15:09:26\n",
		"push":   "To github.com:lea/notes.git\n",
	}}
	configObj := testConfiguration()
	startedAt := time.Date(2026, 3, 14, 15, 9, 26, 0, time.Local)

	result := runUpdate(configObj, git.NewWithRunner(runner), startedAt)

	require.Len(t, runner.calls, 3)
	assert.Equal(t, []string{"/home/lea/notes", "add", "-A"}, runner.calls[0])
	assert.Equal(t, []string{"/home/lea/notes", "commit", "-m", "MAJ 14/03/2026 15:09:26"}, runner.calls[1])
	assert.Equal(t, []string{"/home/lea/notes", "push", "origin", "main"}, runner.calls[2])

	assert.Equal(t, "MAJ 14/03/2026 15:09:26", result.Message)
	assert.True(t, result.Staged)
	assert.True(t, result.Committed)
	assert.True(t, result.Pushed)
}

func TestRunUpdateMessageEmbedsInvocationTime(t *testing.T) {
	captureOutput(t)
	runner := &fakeRunner{}
	configObj := testConfiguration()

	result := runUpdate(configObj, git.NewWithRunner(runner), time.Now())

	assert.Regexp(t, `^MAJ \d{2}/\d{2}/\d{4} \d{2}:\d{2}:\d{2}$`, result.Message)
}

func TestRunUpdateHonorsCustomPrefix(t *testing.T) {
	captureOutput(t)
	runner := &fakeRunner{}
	configObj := testConfiguration()
	configObj.Prefix = "SAUVEGARDE"
	startedAt := time.Date(2026, 3, 14, 15, 9, 26, 0, time.Local)

	result := runUpdate(configObj, git.NewWithRunner(runner), startedAt)

	assert.Equal(t, "SAUVEGARDE 14/03/2026 15:09:26", result.Message)
}

func TestRunUpdatePrintsBannersAroundSteps(t *testing.T) {
	buffer := captureOutput(t)
	runner := &fakeRunner{outputs: map[string]string{"push": "Everything up-to-date\n"}}
	configObj := testConfiguration()

	runUpdate(configObj, git.NewWithRunner(runner), time.Now())

	printed := buffer.String()
	opening := strings.Index(printed, "=== Mise à jour du dépôt ===")
	firstStep := strings.Index(printed, "[1/3]")
	lastStep := strings.Index(printed, "[3/3]")
	closing := strings.Index(printed, "=== Mise à jour terminée ===")

	require.GreaterOrEqual(t, opening, 0)
	require.GreaterOrEqual(t, closing, 0)
	assert.Less(t, opening, firstStep)
	assert.Less(t, firstStep, lastStep)
	assert.Less(t, lastStep, closing)
	assert.Contains(t, printed, "Everything up-to-date")
}

func TestRunUpdateContinuesAfterFailedStep(t *testing.T) {
	buffer := captureOutput(t)
	runner := &fakeRunner{
		outputs: map[string]string{"commit": "rien à valider, la copie de travail est propre\n"},
		errs:    map[string]error{"commit": errors.New("exit status 1")},
	}
	configObj := testConfiguration()

	result := runUpdate(configObj, git.NewWithRunner(runner), time.Now())

	require.Len(t, runner.calls, 3)
	assert.Equal(t, "push", runner.calls[2][1])
	assert.True(t, result.Staged)
	assert.False(t, result.Committed)
	assert.True(t, result.Pushed)

	printed := buffer.String()
	assert.Contains(t, printed, "rien à valider")
	assert.Contains(t, printed, "=== Mise à jour terminée ===")
}

func TestBackToBackRunsAttemptCommitEachTime(t *testing.T) {
	captureOutput(t)
	runner := &fakeRunner{errs: map[string]error{"commit": errors.New("exit status 1")}}
	configObj := testConfiguration()
	client := git.NewWithRunner(runner)

	runUpdate(configObj, client, time.Now())
	runUpdate(configObj, client, time.Now())

	require.Len(t, runner.calls, 6)
	commits := 0
	for _, call := range runner.calls {
		if call[1] == "commit" {
			commits++
		}
	}
	assert.Equal(t, 2, commits)
}

func TestPerformRunPausesAfterClosingBanner(t *testing.T) {
	buffer := captureOutput(t)
	runner := &fakeRunner{errs: map[string]error{"push": errors.New("exit status 1")}}
	configObj := testConfiguration()
	configObj.Pause = true

	performRun(configObj, git.NewWithRunner(runner), strings.NewReader("\n"))

	printed := buffer.String()
	closing := strings.Index(printed, "=== Mise à jour terminée ===")
	prompt := strings.Index(printed, "Appuyez sur Entrée pour continuer...")

	require.GreaterOrEqual(t, closing, 0)
	require.GreaterOrEqual(t, prompt, 0)
	assert.Less(t, closing, prompt)
}

func TestPerformRunSkipsPauseWhenDisabled(t *testing.T) {
	buffer := captureOutput(t)
	runner := &fakeRunner{}
	configObj := testConfiguration()

	performRun(configObj, git.NewWithRunner(runner), strings.NewReader(""))

	assert.NotContains(t, buffer.String(), "Appuyez sur Entrée")
}

func TestPerformRunRecordsJournalEntry(t *testing.T) {
	captureOutput(t)
	runner := &fakeRunner{}
	configObj := testConfiguration()
	configObj.Journal = true
	configObj.JournalPath = filepath.Join(t.TempDir(), "journal.db")

	result := performRun(configObj, git.NewWithRunner(runner), strings.NewReader(""))

	journalDB, err := journal.Open(configObj.JournalPath)
	require.NoError(t, err)
	defer journalDB.Close()

	entries, err := journalDB.Recent(1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, result.Message, entries[0].Message)
	assert.Equal(t, "/home/lea/notes", entries[0].RepoPath)
	assert.True(t, entries[0].Pushed)
}

func TestPerformRunWarnsWhenJournalUnavailable(t *testing.T) {
	buffer := captureOutput(t)
	runner := &fakeRunner{}
	configObj := testConfiguration()
	configObj.Journal = true
	// A directory cannot be opened as a database file
	configObj.JournalPath = t.TempDir()

	performRun(configObj, git.NewWithRunner(runner), strings.NewReader(""))

	printed := buffer.String()
	assert.Contains(t, printed, "[ATTENTION]")
	assert.Contains(t, printed, "=== Mise à jour terminée ===")
}

func TestWaitForEnterToleratesClosedInput(t *testing.T) {
	buffer := captureOutput(t)

	waitForEnter(strings.NewReader(""))

	assert.Contains(t, buffer.String(), "Appuyez sur Entrée pour continuer...")
}
