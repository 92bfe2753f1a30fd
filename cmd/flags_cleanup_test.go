package cmd_test

import (
	"testing"

	"github.com/scamfield/delete-default-vpc/types"

	"github.com/scamfield/delete-default-vpc/cmd"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
)

func TestCreateCleanupFlags(t *testing.T) {

	flagSet := pflag.NewFlagSet("test", 0)

	cmd.PersistCleanupCommandFlags(flagSet)

	flagSet.Set("regions", "us-east-1,eu-west-1")
	flagSet.Set("no-confirm", "true")
	flagSet.Set("dry-run", "true")

	cleanupFlags := cmd.NewCleanupCommandFlags(flagSet)

	assert.Equal(t, cleanupFlags.Regions, []string{"us-east-1", "eu-west-1"})
	assert.Equal(t, cleanupFlags.NoConfirm, true)
	assert.Equal(t, cleanupFlags.DryRun, true)
}

func TestCleanupFlagsMergeToConfig(t *testing.T) {
	flagSet := pflag.NewFlagSet("test", 0)

	cmd.PersistCleanupCommandFlags(flagSet)

	flagSet.Set("regions", "us-east-1")
	flagSet.Set("no-confirm", "true")

	cleanupFlags := cmd.NewCleanupCommandFlags(flagSet)

	c := &types.Config{}

	err := cleanupFlags.MergeToConfig(c)

	assert.Nil(t, err)

	assert.Equal(t, c, &types.Config{
		CloudConfig: types.ProviderConfig{
			Regions:   []string{"us-east-1"},
			NoConfirm: true,
		},
	})
}
