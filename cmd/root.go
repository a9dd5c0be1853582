package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pagebuilder",
	Short: "page builder management tool",
	Example: `pagebuilder serve
pagebuilder page create -t "Airport Transfers"
pagebuilder page add-component -i <page-id> -T heroBanner
pagebuilder page set-props -i <page-id> -c <instance-id> -p '{"title":"Book a ride"}'
pagebuilder page render -s airport-transfers
pagebuilder site set --home <page-id> --name "City Cabs"
pagebuilder component list -c content`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(dbCmd)
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(contextCommand)
	rootCmd.AddCommand(pageCmd)
	rootCmd.AddCommand(componentCmd)
	rootCmd.AddCommand(siteCmd)
	rootCmd.SetHelpCommand(&cobra.Command{Use: "no-help", Hidden: true})

	rootCmd.PersistentFlags().StringVar(&Server, "server", "", "grpc server address, overrides the saved context")

	rootCmd.CompletionOptions.HiddenDefaultCmd = true
	cobra.EnableCommandSorting = false
}
