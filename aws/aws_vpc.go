package aws

import (
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/ec2"
)

// DefaultVpc holds a region's default VPC and the dependent resources that
// have to be removed before the VPC itself can be deleted.
type DefaultVpc struct {
	Region    string
	VpcID     string
	CidrBlock string

	InternetGateways []string
	Subnets          []string
	RouteTables      []*ec2.RouteTable

	// non-default only; default ACLs and the "default" security group are
	// removed by the provider together with the VPC
	NetworkAcls    []string
	SecurityGroups []string
}

func vpcFilter(name, vpcID string) []*ec2.Filter {
	return []*ec2.Filter{
		{
			Name:   aws.String(name),
			Values: aws.StringSlice([]string{vpcID}),
		},
	}
}

// GetDefaultVpc returns the region's default vpc, or nil if the account has
// none in this region
func (p *AWS) GetDefaultVpc() (*ec2.Vpc, error) {
	result, err := p.ec2.DescribeVpcs(&ec2.DescribeVpcsInput{
		Filters: vpcFilter("isDefault", "true"),
	})
	if err != nil {
		return nil, fmt.Errorf("unable to describe VPCs, %v", err)
	}

	if len(result.Vpcs) == 0 {
		return nil, nil
	}

	return result.Vpcs[0], nil
}

// GetDefaultVpcResources describes the resources attached to the default vpc
func (p *AWS) GetDefaultVpcResources(vpc *ec2.Vpc) (*DefaultVpc, error) {
	dv := &DefaultVpc{
		Region:    p.region,
		VpcID:     aws.StringValue(vpc.VpcId),
		CidrBlock: aws.StringValue(vpc.CidrBlock),
	}

	igws, err := p.ec2.DescribeInternetGateways(&ec2.DescribeInternetGatewaysInput{
		Filters: vpcFilter("attachment.vpc-id", dv.VpcID),
	})
	if err != nil {
		return nil, fmt.Errorf("unable to describe internet gateways, %v", err)
	}
	for _, igw := range igws.InternetGateways {
		dv.InternetGateways = append(dv.InternetGateways, aws.StringValue(igw.InternetGatewayId))
	}

	subnets, err := p.ec2.DescribeSubnets(&ec2.DescribeSubnetsInput{
		Filters: vpcFilter("vpc-id", dv.VpcID),
	})
	if err != nil {
		return nil, fmt.Errorf("unable to describe subnets, %v", err)
	}
	for _, subnet := range subnets.Subnets {
		dv.Subnets = append(dv.Subnets, aws.StringValue(subnet.SubnetId))
	}

	routeTables, err := p.ec2.DescribeRouteTables(&ec2.DescribeRouteTablesInput{
		Filters: vpcFilter("vpc-id", dv.VpcID),
	})
	if err != nil {
		return nil, fmt.Errorf("unable to describe route tables, %v", err)
	}
	dv.RouteTables = routeTables.RouteTables

	acls, err := p.ec2.DescribeNetworkAcls(&ec2.DescribeNetworkAclsInput{
		Filters: vpcFilter("vpc-id", dv.VpcID),
	})
	if err != nil {
		return nil, fmt.Errorf("unable to describe network ACLs, %v", err)
	}
	for _, acl := range acls.NetworkAcls {
		if aws.BoolValue(acl.IsDefault) {
			continue
		}
		dv.NetworkAcls = append(dv.NetworkAcls, aws.StringValue(acl.NetworkAclId))
	}

	sgs, err := p.ec2.DescribeSecurityGroups(&ec2.DescribeSecurityGroupsInput{
		Filters: vpcFilter("vpc-id", dv.VpcID),
	})
	if err != nil {
		return nil, fmt.Errorf("unable to describe security groups, %v", err)
	}
	for _, sg := range sgs.SecurityGroups {
		if aws.StringValue(sg.GroupName) == "default" {
			continue
		}
		dv.SecurityGroups = append(dv.SecurityGroups, aws.StringValue(sg.GroupId))
	}

	return dv, nil
}

// hasMainAssociation reports whether a route table is the vpc's main route
// table. The main table cannot be deleted separately from the vpc.
func hasMainAssociation(rt *ec2.RouteTable) bool {
	for _, assoc := range rt.Associations {
		if aws.BoolValue(assoc.Main) {
			return true
		}
	}
	return false
}

// DeleteDefaultVpc deletes the default vpc and its dependent resources in
// dependency order: internet gateways, subnets, route tables, network ACLs,
// security groups, then the vpc itself.
func (p *AWS) DeleteDefaultVpc(dv *DefaultVpc) error {
	for _, igwID := range dv.InternetGateways {
		_, err := p.ec2.DetachInternetGateway(&ec2.DetachInternetGatewayInput{
			InternetGatewayId: aws.String(igwID),
			VpcId:             aws.String(dv.VpcID),
		})
		if err != nil {
			return fmt.Errorf("unable to detach internet gateway %s, %v", igwID, err)
		}

		_, err = p.ec2.DeleteInternetGateway(&ec2.DeleteInternetGatewayInput{
			InternetGatewayId: aws.String(igwID),
		})
		if err != nil {
			return fmt.Errorf("unable to delete internet gateway %s, %v", igwID, err)
		}
	}

	for _, subnetID := range dv.Subnets {
		_, err := p.ec2.DeleteSubnet(&ec2.DeleteSubnetInput{
			SubnetId: aws.String(subnetID),
		})
		if err != nil {
			return fmt.Errorf("unable to delete subnet %s, %v", subnetID, err)
		}
	}

	for _, rt := range dv.RouteTables {
		rtID := aws.StringValue(rt.RouteTableId)

		for _, assoc := range rt.Associations {
			if aws.BoolValue(assoc.Main) {
				continue
			}

			_, err := p.ec2.DisassociateRouteTable(&ec2.DisassociateRouteTableInput{
				AssociationId: assoc.RouteTableAssociationId,
			})
			if err != nil {
				return fmt.Errorf("unable to disassociate route table %s, %v", rtID, err)
			}
		}

		if hasMainAssociation(rt) {
			continue
		}

		_, err := p.ec2.DeleteRouteTable(&ec2.DeleteRouteTableInput{
			RouteTableId: rt.RouteTableId,
		})
		if err != nil {
			return fmt.Errorf("unable to delete route table %s, %v", rtID, err)
		}
	}

	for _, aclID := range dv.NetworkAcls {
		_, err := p.ec2.DeleteNetworkAcl(&ec2.DeleteNetworkAclInput{
			NetworkAclId: aws.String(aclID),
		})
		if err != nil {
			return fmt.Errorf("unable to delete network ACL %s, %v", aclID, err)
		}
	}

	for _, sgID := range dv.SecurityGroups {
		_, err := p.ec2.DeleteSecurityGroup(&ec2.DeleteSecurityGroupInput{
			GroupId: aws.String(sgID),
		})
		if err != nil {
			return fmt.Errorf("unable to delete security group %s, %v", sgID, err)
		}
	}

	_, err := p.ec2.DeleteVpc(&ec2.DeleteVpcInput{
		VpcId: aws.String(dv.VpcID),
	})
	if err != nil {
		if aerr, ok := err.(awserr.Error); ok && aerr.Code() == "DependencyViolation" {
			return fmt.Errorf("vpc %s still has dependencies and cannot be deleted: %v", dv.VpcID, err)
		}
		return fmt.Errorf("unable to delete vpc %s, %v", dv.VpcID, err)
	}

	return nil
}
