package main

import (
	"os"

	"github.com/yochanchan/yorizo-back/cmd/yorizo-migrate/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
