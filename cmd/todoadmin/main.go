package main

import (
	"os"

	"github.com/adnan116/todo-list-app-client/internal/cli"
)

func main() {
	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
