package main

import "gitmaj/cmd"

// Build information injected by the linker
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cmd.SetVersionInfo(version, commit, date)
	cmd.Initialize()
	cmd.Execute()
}
