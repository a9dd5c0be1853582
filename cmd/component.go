package cmd

import (
	"os"
	"strconv"

	v1 "github.com/emrgen/pagebuilder/apis/v1"
	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var componentCmd = &cobra.Command{
	Use:   "component",
	Short: "component catalog commands",
}

func init() {
	componentCmd.SetHelpCommand(&cobra.Command{Use: "no-help", Hidden: true})
	componentCmd.AddCommand(listComponentTypesCmd())
	componentCmd.AddCommand(getComponentTypeCmd())
}

func listComponentTypesCmd() *cobra.Command {
	var category string

	command := &cobra.Command{
		Use:     "list",
		Short:   "list component types",
		Example: "pagebuilder component list -c layout",
		Run: func(cmd *cobra.Command, args []string) {
			client, ok := newClient()
			if !ok {
				return
			}
			defer client.Close()

			ctx, cancel := requestContext()
			defer cancel()

			res, err := client.ListComponentTypes(ctx, &v1.ListComponentTypesRequest{Category: category})
			if err != nil {
				logrus.Error(err)
				return
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"Type", "Name", "Category", "Properties"})
			for _, ct := range res.ComponentTypes {
				table.Append([]string{ct.TypeId, ct.DisplayName, ct.Category, strconv.Itoa(len(ct.PropertyDefinitions))})
			}
			table.Render()
		},
	}

	command.Flags().StringVarP(&category, "category", "c", "", "layout, content or page-specific")

	return command
}

func getComponentTypeCmd() *cobra.Command {
	var typeID string

	var required = []string{"type"}

	command := &cobra.Command{
		Use:   "get",
		Short: "show a component type",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			client, ok := newClient()
			if !ok {
				return
			}
			defer client.Close()

			ctx, cancel := requestContext()
			defer cancel()

			res, err := client.GetComponentType(ctx, &v1.GetComponentTypeRequest{TypeId: typeID})
			if err != nil {
				logrus.Error(err)
				return
			}

			ct := res.ComponentType
			printField("Type", ct.TypeId)
			printField("Name", ct.DisplayName)
			printField("Category", ct.Category)
			printField("Description", ct.Description)

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"Property", "Kind", "Label"})
			for _, def := range ct.PropertyDefinitions {
				table.Append([]string{def.Name, def.Kind, def.Label})
			}
			table.Render()
			printJSON("Defaults", ct.DefaultProperties)
		},
	}

	command.Flags().StringVarP(&typeID, "type", "T", "", "component type (required)")

	return command
}
