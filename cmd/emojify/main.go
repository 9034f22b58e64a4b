package main

import (
	"github.com/haytac/emojify/internal/cli"
	"github.com/haytac/emojify/internal/logging"
)

func main() {
	// Basic logger for anything that runs before the CLI loads the real
	// logging configuration.
	logging.Setup(logging.Config{Level: "info", Console: true, TimeFormat: "15:04:05"})

	cli.Execute()
}
