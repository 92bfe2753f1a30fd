package cmd

import (
	"os"

	"github.com/scamfield/delete-default-vpc/log"
	"github.com/scamfield/delete-default-vpc/types"
	"github.com/spf13/cobra"
)

// GetRootCommand provides all commands for delete-default-vpc
func GetRootCommand() *cobra.Command {
	var rootCmd = &cobra.Command{
		Use:   "delete-default-vpc",
		Short: "Delete the default VPC and its dependent resources in each region",
		Long: `Sweeps AWS regions for the default VPC and deletes it together with its
dependent resources: internet gateways, subnets, route tables, non-default
network ACLs and non-default security groups.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := &types.Config{}

			globalFlags := NewGlobalCommandFlags(cmd.Flags())
			if err := globalFlags.MergeToConfig(config); err != nil {
				return err
			}

			log.InitDefault(os.Stdout, config)
			return nil
		},
		Run: deleteCommandHandler,
	}

	// persist flags transversal to every command
	PersistGlobalCommandFlags(rootCmd.PersistentFlags())
	PersistCleanupCommandFlags(rootCmd.Flags())

	rootCmd.AddCommand(ListCommand())
	rootCmd.AddCommand(VersionCommand())

	return rootCmd
}
