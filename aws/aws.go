package aws

import (
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/aws/aws-sdk-go/service/ec2/ec2iface"
)

// AWS contains all operations for AWS
type AWS struct {
	ec2    ec2iface.EC2API
	region string
}

func loadAWSCreds() (err error) {
	foundValidCredentials := false

	fileCreds := credentials.NewSharedCredentials("", "")

	_, err = fileCreds.Get()
	if err == nil {
		foundValidCredentials = true
	}

	envCreds := credentials.NewEnvCredentials()

	_, err = envCreds.Get()
	if err == nil {
		foundValidCredentials = true
	}

	if foundValidCredentials {
		err = nil
	}

	return
}

// NewClient returns an AWS client scoped to the given region
func NewClient(region string) (*AWS, error) {
	if region == "" {
		return nil, fmt.Errorf("region missing")
	}

	err := loadAWSCreds()
	if err != nil {
		return nil, err
	}

	sess, err := session.NewSession(
		&aws.Config{
			Region: aws.String(region),
		},
	)
	if err != nil {
		return nil, err
	}

	return &AWS{
		ec2:    ec2.New(sess),
		region: region,
	}, nil
}

// Region returns the region the client is scoped to
func (p *AWS) Region() string {
	return p.region
}

// GetRegions returns the names of the regions enabled for the account
func (p *AWS) GetRegions() ([]string, error) {
	result, err := p.ec2.DescribeRegions(&ec2.DescribeRegionsInput{})
	if err != nil {
		return nil, fmt.Errorf("unable to describe regions, %v", err)
	}

	regions := []string{}
	for _, region := range result.Regions {
		regions = append(regions, aws.StringValue(region.RegionName))
	}

	sort.Strings(regions)

	return regions, nil
}
