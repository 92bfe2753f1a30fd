package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/scamfield/delete-default-vpc/aws"
	"github.com/scamfield/delete-default-vpc/log"
	"github.com/scamfield/delete-default-vpc/types"
	"github.com/spf13/cobra"
)

// bootstrapRegion is only used to resolve the account's region list when
// --regions is not given; it is never swept on its own.
const bootstrapRegion = "us-east-1"

// ListCommand reports default VPCs and their dependents without deleting
func ListCommand() *cobra.Command {
	var cmdList = &cobra.Command{
		Use:   "list",
		Short: "list default VPCs and their dependent resources",
		Run:   listCommandHandler,
	}

	cmdList.Flags().StringSlice("regions", nil, "restrict the sweep to the given regions")

	return cmdList
}

func listCommandHandler(cmd *cobra.Command, args []string) {
	regions, _ := cmd.Flags().GetStringSlice("regions")

	cleaner := newCleaner()
	cleaner.DryRun = true

	sweep(cleaner, regions)
}

func deleteCommandHandler(cmd *cobra.Command, args []string) {
	flags := NewCleanupCommandFlags(cmd.Flags())

	config := &types.Config{}
	if err := flags.MergeToConfig(config); err != nil {
		exitWithError(err.Error())
	}

	cleaner := newCleaner()
	cleaner.DryRun = config.CloudConfig.DryRun

	if config.CloudConfig.NoConfirm {
		fmt.Println("Warning: Skipping confirmation due to the --no-confirm flag.")
	} else {
		cleaner.Confirm = askForConfirmation
	}

	sweep(cleaner, config.CloudConfig.Regions)
}

func newCleaner() *aws.Cleaner {
	return &aws.Cleaner{
		NewClient: func(region string) (aws.Client, error) {
			return aws.NewClient(region)
		},
		Logger: log.Default(),
		Output: os.Stdout,
	}
}

// sweep runs the cleaner over the given regions, defaulting to every region
// enabled for the account. The process exits non-zero when a region fails.
func sweep(cleaner *aws.Cleaner, regions []string) {
	if len(regions) == 0 {
		client, err := aws.NewClient(bootstrapRegion)
		if err != nil {
			exitWithError(err.Error())
		}

		regions, err = client.GetRegions()
		if err != nil {
			exitWithError(err.Error())
		}
	}

	if failed := cleaner.Run(regions); failed != 0 {
		log.Errorf("%d of %d regions failed", failed, len(regions))
		os.Exit(1)
	}
}

// askForConfirmation prompts for y/n on stdin, re-asking on invalid input.
// The resource table has already been printed at this point.
func askForConfirmation(dv *aws.DefaultVpc) bool {
	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Print("Delete these resources? [y/n]: ")

		answer, err := reader.ReadString('\n')
		if err != nil {
			return false
		}

		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "y":
			return true
		case "n":
			return false
		}

		fmt.Println("Invalid input. Please enter 'y' or 'n'.")
	}
}
