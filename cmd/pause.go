package cmd

import (
	"bufio"
	"io"

	"gitmaj/log"
)

// waitForEnter blocks until the user presses Enter, mirroring the final
// pause of interactive console scripts so the window stays readable.
// A closed stdin just means there is nobody to wait for.
func waitForEnter(stdin io.Reader) {
	log.PrintPrompt("Appuyez sur Entrée pour continuer... ")

	reader := bufio.NewReader(stdin)
	reader.ReadString('\n')
}
