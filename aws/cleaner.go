package aws

import (
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/go-errors/errors"
	"github.com/scamfield/delete-default-vpc/log"
)

const indent = "    "

// Client is the subset of AWS operations the cleaner drives per region
type Client interface {
	GetDefaultVpc() (*ec2.Vpc, error)
	GetDefaultVpcResources(vpc *ec2.Vpc) (*DefaultVpc, error)
	DeleteDefaultVpc(dv *DefaultVpc) error
}

// Cleaner sweeps regions for default VPCs and deletes them together with
// their dependent resources.
type Cleaner struct {
	// NewClient builds a client scoped to a region
	NewClient func(region string) (Client, error)

	// Confirm is asked before deleting a region's resources; nil means no
	// confirmation is required
	Confirm func(dv *DefaultVpc) bool

	// DryRun reports the resources without deleting them
	DryRun bool

	Logger *log.Logger
	Output io.Writer
}

// Run sweeps the given regions and returns the number of regions that
// failed. A failure in one region does not stop processing of the others.
func (c *Cleaner) Run(regions []string) int {
	failed := 0

	for _, region := range regions {
		if err := c.cleanRegion(region); err != nil {
			c.Logger.Error(err)
			c.Logger.Debugf("%s", errors.Wrap(err, 0).ErrorStack())
			failed++
		}
	}

	return failed
}

func (c *Cleaner) cleanRegion(region string) error {
	c.Logger.Logf("* Region %s", region)

	client, err := c.NewClient(region)
	if err != nil {
		return err
	}

	vpc, err := client.GetDefaultVpc()
	if err != nil {
		return err
	}

	if vpc == nil {
		c.Logger.Logf("%sNo default vpc found", indent)
		return nil
	}

	c.Logger.Logf("%sFound default vpc %s", indent, aws.StringValue(vpc.VpcId))

	dv, err := client.GetDefaultVpcResources(vpc)
	if err != nil {
		return err
	}

	dv.Render(c.Output)

	if c.DryRun {
		c.Logger.Logf("%sDry run, not deleting", indent)
		return nil
	}

	if c.Confirm != nil && !c.Confirm(dv) {
		c.Logger.Logf("%sSkipping region %s", indent, region)
		return nil
	}

	if err := client.DeleteDefaultVpc(dv); err != nil {
		return err
	}

	c.Logger.Logf("%sDeleted default vpc %s", indent, dv.VpcID)

	return nil
}
