// cmd/visualizer/main.go
package main

import (
	"os"

	"go-astar-visualizer/internal/logging"
)

// exitCode is the status a command asks for after finishing without an
// error. Errors always exit 1.
var exitCode int

func main() {
	rootCmd.SilenceErrors = true
	if err := rootCmd.Execute(); err != nil {
		// The configured logger may not exist yet if setup failed.
		log := logger
		if log == nil {
			log = logging.Default()
		}
		log.Error("command failed", "error", err)
		os.Exit(1)
	}
	os.Exit(exitCode)
}
