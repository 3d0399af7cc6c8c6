package log

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buffer bytes.Buffer
	color.NoColor = true
	SetOutput(&buffer)
	SetErrorOutput(&buffer)
	t.Cleanup(func() {
		SetOutput(os.Stdout)
		SetErrorOutput(os.Stderr)
	})

	return &buffer
}

func TestFormatBanner(t *testing.T) {
	assert.Equal(t, "=== Mise à jour du dépôt ===", FormatBanner("Mise à jour du dépôt"))
}

func TestFormatStep(t *testing.T) {
	assert.Equal(t, "[2/3] Création du commit...", FormatStep(2, 3, "Création du commit"))
}

func TestFormatWarning(t *testing.T) {
	assert.Equal(t, "[ATTENTION] fichier manquant", FormatWarning("fichier manquant"))
}

func TestFormatSuccess(t *testing.T) {
	assert.Equal(t, "[OK] envoi effectué", FormatSuccess("envoi effectué"))
}

func TestFormatError(t *testing.T) {
	withCause := FormatError(ErrGitStatusFailed, "lecture impossible", errors.New("exit status 128"))
	assert.Equal(t, "[E201] lecture impossible: exit status 128", withCause)

	withoutCause := FormatError(ErrInvalidArgument, "argument invalide", nil)
	assert.Equal(t, "[E901] argument invalide", withoutCause)
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, "E201", GetErrorCode("[E201] lecture impossible"))
	assert.Equal(t, "", GetErrorCode("pas de code ici"))
}

func TestPrintBannerAndStep(t *testing.T) {
	buffer := captureOutput(t)

	PrintBanner("Début")
	PrintStep(1, 3, "Indexation des modifications")

	assert.Equal(t, "=== Début ===\n[1/3] Indexation des modifications...\n", buffer.String())
}

func TestPrintCommandOutputAddsMissingNewline(t *testing.T) {
	buffer := captureOutput(t)

	PrintCommandOutput("sans saut de ligne")

	assert.Equal(t, "sans saut de ligne\n", buffer.String())
}

func TestPrintCommandOutputKeepsFinalNewline(t *testing.T) {
	buffer := captureOutput(t)

	PrintCommandOutput("déjà terminé\n")

	assert.Equal(t, "déjà terminé\n", buffer.String())
}

func TestPrintCommandOutputSkipsEmptyOutput(t *testing.T) {
	buffer := captureOutput(t)

	PrintCommandOutput("")

	assert.Empty(t, buffer.String())
}

func TestPrintPromptHasNoTrailingNewline(t *testing.T) {
	buffer := captureOutput(t)

	PrintPrompt("Appuyez sur Entrée pour continuer... ")

	assert.Equal(t, "Appuyez sur Entrée pour continuer... ", buffer.String())
}

func TestPrintErrorNoExitWritesToErrorOutput(t *testing.T) {
	var standard, errput bytes.Buffer
	color.NoColor = true
	SetOutput(&standard)
	SetErrorOutput(&errput)
	t.Cleanup(func() {
		SetOutput(os.Stdout)
		SetErrorOutput(os.Stderr)
	})

	PrintErrorNoExit(ErrJournalOpenFailed, "Impossible d'ouvrir le journal", errors.New("disque plein"))

	assert.Empty(t, standard.String())
	assert.Equal(t, "[E401] Impossible d'ouvrir le journal: disque plein\n", errput.String())
}
