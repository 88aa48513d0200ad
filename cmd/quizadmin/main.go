package main

import (
	"os"

	"quizadmin/cmd/quizadmin/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
