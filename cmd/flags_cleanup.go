package cmd

import (
	"github.com/scamfield/delete-default-vpc/types"

	"github.com/spf13/pflag"
)

// CleanupCommandFlags consolidates the flags that select regions and gate deletion
type CleanupCommandFlags struct {
	Regions   []string
	NoConfirm bool
	DryRun    bool
}

// MergeToConfig append command flags to configuration
func (flags *CleanupCommandFlags) MergeToConfig(config *types.Config) (err error) {
	config.CloudConfig.Regions = flags.Regions
	config.CloudConfig.NoConfirm = flags.NoConfirm
	config.CloudConfig.DryRun = flags.DryRun

	return
}

// NewCleanupCommandFlags returns an instance of CleanupCommandFlags
func NewCleanupCommandFlags(cmdFlags *pflag.FlagSet) (flags *CleanupCommandFlags) {
	flags = &CleanupCommandFlags{}

	flags.Regions, _ = cmdFlags.GetStringSlice("regions")
	flags.NoConfirm, _ = cmdFlags.GetBool("no-confirm")
	flags.DryRun, _ = cmdFlags.GetBool("dry-run")

	return flags
}

// PersistCleanupCommandFlags append the cleanup flags to a command
func PersistCleanupCommandFlags(cmdFlags *pflag.FlagSet) {
	cmdFlags.StringSlice("regions", nil, "restrict the sweep to the given regions")
	cmdFlags.Bool("no-confirm", false, "skip confirmation before deleting resources")
	cmdFlags.Bool("dry-run", false, "list the resources that would be deleted without deleting them")
}
