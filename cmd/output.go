package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	v1 "github.com/emrgen/pagebuilder/apis/v1"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func printField(label, value string) {
	color.Set(color.FgCyan)
	fmt.Print(label)
	color.Unset()
	fmt.Printf(": %s\n", value)
}

func printJSON(label string, v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		logrus.Error(err)
		return
	}
	printField(label, string(data))
}

func printPages(pages ...*v1.Page) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Title", "Slug", "Version", "Components", "Home"})
	for _, p := range pages {
		home := ""
		if p.IsHomePage {
			home = "yes"
		}
		table.Append([]string{p.Id, p.Title, p.Slug, strconv.FormatInt(p.Version, 10), strconv.Itoa(len(p.Components)), home})
	}
	table.Render()
}

func printComponents(page *v1.Page) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"#", "Instance", "Type", "Properties"})
	for i, c := range page.Components {
		props, err := json.Marshal(c.Properties)
		if err != nil {
			logrus.Error(err)
			return
		}
		table.Append([]string{strconv.Itoa(i + 1), c.InstanceId, c.TypeId, string(props)})
	}
	table.Render()
}

// versionFlag turns the -1 flag default into an overwrite and warns about it.
func versionFlag(version int64, pageID string) *int64 {
	if version == v1.OverwriteVersion {
		color.Magenta("overwriting page: %s\n", pageID)
	}
	return &version
}

// checkMissingFlags checks if the required flags are set and returns ok if they are set
func checkMissingFlags(cmd *cobra.Command, flags []string) bool {
	var missingFlags []string
	var providedFlags []string
	for _, required := range flags {
		if !cmd.Flag(required).Changed {
			missingFlags = append(missingFlags, required)
		} else {
			value := cmd.Flag(required).Value.String()
			providedFlags = append(providedFlags, fmt.Sprintf("--%s=%s", required, value))
		}
	}

	if len(missingFlags) > 0 {
		var msg string
		for _, f := range missingFlags {
			msg += fmt.Sprintf("--%s ", f)
		}

		color.Red("missing: %s\n", msg)
		if len(providedFlags) > 0 {
			provided := strings.Join(providedFlags, " ")
			color.Green("provide: %s\n", provided)
		}

		cmd.Println("")

		_ = cmd.Usage()

		return true
	}

	return false
}
