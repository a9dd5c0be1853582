package cmd

import (
	v1 "github.com/emrgen/pagebuilder/apis/v1"
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var siteCmd = &cobra.Command{
	Use:   "site",
	Short: "site theme commands",
}

func init() {
	siteCmd.SetHelpCommand(&cobra.Command{Use: "no-help", Hidden: true})
	siteCmd.AddCommand(getSiteThemeCmd())
	siteCmd.AddCommand(setSiteThemeCmd())
}

func printTheme(theme *v1.SiteTheme) {
	printField("Home page", theme.SelectedHomePage)
	printField("Site name", theme.SiteName)
	printField("Locale", theme.Locale)
	printField("Base url", theme.BaseUrl)
	printField("Primary color", theme.PrimaryColor)
	printField("Logo", theme.Logo)
}

func getSiteThemeCmd() *cobra.Command {
	command := &cobra.Command{
		Use:   "get",
		Short: "show the site theme",
		Run: func(cmd *cobra.Command, args []string) {
			client, ok := newClient()
			if !ok {
				return
			}
			defer client.Close()

			ctx, cancel := requestContext()
			defer cancel()

			res, err := client.GetSiteTheme(ctx, &v1.GetSiteThemeRequest{})
			if err != nil {
				logrus.Error(err)
				return
			}

			printTheme(res.Theme)
		},
	}

	return command
}

func setSiteThemeCmd() *cobra.Command {
	var theme v1.SiteTheme

	command := &cobra.Command{
		Use:     "set",
		Short:   "change the site theme",
		Long:    `Change the site theme. Only the given flags change, the rest is kept.`,
		Example: `pagebuilder site set --home <page-id> --name "City Cabs" --color "#ffc107"`,
		Run: func(cmd *cobra.Command, args []string) {
			client, ok := newClient()
			if !ok {
				return
			}
			defer client.Close()

			ctx, cancel := requestContext()
			defer cancel()

			current, err := client.GetSiteTheme(ctx, &v1.GetSiteThemeRequest{})
			if err != nil {
				logrus.Error(err)
				return
			}

			next := *current.Theme
			flags := cmd.Flags()
			if flags.Changed("home") {
				next.SelectedHomePage = theme.SelectedHomePage
			}
			if flags.Changed("name") {
				next.SiteName = theme.SiteName
			}
			if flags.Changed("locale") {
				next.Locale = theme.Locale
			}
			if flags.Changed("base-url") {
				next.BaseUrl = theme.BaseUrl
			}
			if flags.Changed("color") {
				next.PrimaryColor = theme.PrimaryColor
			}
			if flags.Changed("logo") {
				next.Logo = theme.Logo
			}

			res, err := client.UpdateSiteTheme(ctx, &v1.UpdateSiteThemeRequest{Theme: &next})
			if err != nil {
				logrus.Error(err)
				return
			}

			color.Green("site theme updated")
			printTheme(res.Theme)
		},
	}

	command.Flags().StringVar(&theme.SelectedHomePage, "home", "", "home page id")
	command.Flags().StringVar(&theme.SiteName, "name", "", "site name")
	command.Flags().StringVar(&theme.Locale, "locale", "", "site locale, e.g. en_GB")
	command.Flags().StringVar(&theme.BaseUrl, "base-url", "", "public base url")
	command.Flags().StringVar(&theme.PrimaryColor, "color", "", "primary color, #rgb or #rrggbb")
	command.Flags().StringVar(&theme.Logo, "logo", "", "logo url")
	command.Flags().SortFlags = false

	return command
}
