package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the current release of delete-default-vpc
const Version = "0.1.0"

// VersionCommand provides version command
func VersionCommand() *cobra.Command {
	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Version",
		Run:   printVersion,
	}
	return cmdVersion
}

func printVersion(cmd *cobra.Command, args []string) {
	fmt.Printf("delete-default-vpc version: %s\n", Version)
}
