package aws

import (
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/olekukonko/tablewriter"
)

// resourceRows lists the resources that get an explicit delete call, in the
// order they are deleted.
func (dv *DefaultVpc) resourceRows() [][]string {
	var rows [][]string

	for _, igwID := range dv.InternetGateways {
		rows = append(rows, []string{"internet gateway", igwID})
	}

	for _, subnetID := range dv.Subnets {
		rows = append(rows, []string{"subnet", subnetID})
	}

	for _, rt := range dv.RouteTables {
		if hasMainAssociation(rt) {
			continue
		}
		rows = append(rows, []string{"route table", aws.StringValue(rt.RouteTableId)})
	}

	for _, aclID := range dv.NetworkAcls {
		rows = append(rows, []string{"network ACL", aclID})
	}

	for _, sgID := range dv.SecurityGroups {
		rows = append(rows, []string{"security group", sgID})
	}

	rows = append(rows, []string{"vpc", dv.VpcID})

	return rows
}

// Render writes the resources that would be deleted as a table
func (dv *DefaultVpc) Render(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Region", "Type", "Id"})
	table.SetHeaderColor(
		tablewriter.Colors{tablewriter.Bold, tablewriter.FgCyanColor},
		tablewriter.Colors{tablewriter.Bold, tablewriter.FgCyanColor},
		tablewriter.Colors{tablewriter.Bold, tablewriter.FgCyanColor})
	table.SetRowLine(true)

	for _, row := range dv.resourceRows() {
		table.Append(append([]string{dv.Region}, row...))
	}

	table.Render()
}
