package main

import (
	"os"

	"github.com/bhavyasrideva22/career-fit-quiz/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
