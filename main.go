package main

import (
	"os"

	"github.com/scamfield/delete-default-vpc/cmd"
)

func main() {
	if err := cmd.GetRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
