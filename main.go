package main

import (
	"os"

	"github.com/meera/quizbank/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
