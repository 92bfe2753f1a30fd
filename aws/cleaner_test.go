package aws

import (
	"bytes"
	"errors"
	"testing"

	awssdk "github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/scamfield/delete-default-vpc/log"
	"github.com/stretchr/testify/assert"
)

type fakeClient struct {
	vpc         *ec2.Vpc
	describeErr error
	deleteErr   error

	deleted bool
}

func (c *fakeClient) GetDefaultVpc() (*ec2.Vpc, error) {
	return c.vpc, c.describeErr
}

func (c *fakeClient) GetDefaultVpcResources(vpc *ec2.Vpc) (*DefaultVpc, error) {
	return &DefaultVpc{
		Region:  "us-east-1",
		VpcID:   awssdk.StringValue(vpc.VpcId),
		Subnets: []string{"subnet-1"},
	}, nil
}

func (c *fakeClient) DeleteDefaultVpc(dv *DefaultVpc) error {
	if c.deleteErr != nil {
		return c.deleteErr
	}
	c.deleted = true
	return nil
}

func newTestCleaner(clients map[string]*fakeClient) (*Cleaner, *bytes.Buffer) {
	var b bytes.Buffer

	cleaner := &Cleaner{
		NewClient: func(region string) (Client, error) {
			client, ok := clients[region]
			if !ok {
				return nil, errors.New("no client for region " + region)
			}
			return client, nil
		},
		Logger: log.New(&b),
		Output: &b,
	}

	return cleaner, &b
}

func TestCleanerRun(t *testing.T) {

	t.Run("should not delete anything in a region without a default vpc", func(t *testing.T) {
		client := &fakeClient{}
		cleaner, b := newTestCleaner(map[string]*fakeClient{"us-east-1": client})

		failed := cleaner.Run([]string{"us-east-1"})

		assert.Equal(t, 0, failed)
		assert.False(t, client.deleted)
		assert.Contains(t, b.String(), "No default vpc found")
	})

	t.Run("should delete the default vpc when confirmation is not required", func(t *testing.T) {
		client := &fakeClient{vpc: defaultVpc()}
		cleaner, b := newTestCleaner(map[string]*fakeClient{"us-east-1": client})

		failed := cleaner.Run([]string{"us-east-1"})

		assert.Equal(t, 0, failed)
		assert.True(t, client.deleted)
		assert.Contains(t, b.String(), "Deleted default vpc vpc-123")
	})

	t.Run("should skip the region when confirmation is denied", func(t *testing.T) {
		client := &fakeClient{vpc: defaultVpc()}
		cleaner, b := newTestCleaner(map[string]*fakeClient{"us-east-1": client})
		cleaner.Confirm = func(dv *DefaultVpc) bool { return false }

		failed := cleaner.Run([]string{"us-east-1"})

		assert.Equal(t, 0, failed)
		assert.False(t, client.deleted)
		assert.Contains(t, b.String(), "Skipping region us-east-1")
	})

	t.Run("should not delete anything on a dry run", func(t *testing.T) {
		client := &fakeClient{vpc: defaultVpc()}
		cleaner, b := newTestCleaner(map[string]*fakeClient{"us-east-1": client})
		cleaner.DryRun = true

		failed := cleaner.Run([]string{"us-east-1"})

		assert.Equal(t, 0, failed)
		assert.False(t, client.deleted)
		assert.Contains(t, b.String(), "vpc-123")
	})

	t.Run("should continue with the next region after a failure", func(t *testing.T) {
		broken := &fakeClient{vpc: defaultVpc(), describeErr: errors.New("throttled")}
		healthy := &fakeClient{vpc: defaultVpc()}
		cleaner, _ := newTestCleaner(map[string]*fakeClient{
			"us-east-1": broken,
			"us-west-1": healthy,
		})

		failed := cleaner.Run([]string{"us-east-1", "us-west-1"})

		assert.Equal(t, 1, failed)
		assert.False(t, broken.deleted)
		assert.True(t, healthy.deleted)
	})

	t.Run("should count a region whose delete fails and keep sweeping", func(t *testing.T) {
		broken := &fakeClient{vpc: defaultVpc(), deleteErr: errors.New("DependencyViolation")}
		healthy := &fakeClient{vpc: defaultVpc()}
		cleaner, _ := newTestCleaner(map[string]*fakeClient{
			"us-east-1": broken,
			"us-west-1": healthy,
		})

		failed := cleaner.Run([]string{"us-east-1", "us-west-1"})

		assert.Equal(t, 1, failed)
		assert.True(t, healthy.deleted)
	})
}
