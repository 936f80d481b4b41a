package main

import (
	"github.com/haytac/pidgin-slack-theme/internal/cli"
	"github.com/haytac/pidgin-slack-theme/internal/logging"
)

func main() {
	// Basic logger until PersistentPreRunE applies the loaded config.
	logging.Setup(logging.Config{Level: "info", Console: true, TimeFormat: "15:04:05"})

	cli.Execute()
}
