package cmd

import (
	"github.com/emrgen/pagebuilder/internal/config"
	"github.com/emrgen/pagebuilder/internal/server"
	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	var grpcPort string
	var httpPort string

	command := &cobra.Command{
		Use:   "serve",
		Short: "start the grpc server, the rest gateway and the public site",
		Run: func(cmd *cobra.Command, args []string) {
			cfg := config.LoadConfig()
			cfg.ConfigureLogging()
			if grpcPort != "" {
				cfg.GrpcPort = grpcPort
			}
			if httpPort != "" {
				cfg.HttpPort = httpPort
			}

			server.NewServer(cfg).Start()
		},
	}

	command.Flags().StringVarP(&grpcPort, "grpc-port", "g", "", "grpc port, defaults to GRPC_PORT")
	command.Flags().StringVarP(&httpPort, "http-port", "w", "", "http port, defaults to HTTP_PORT")

	return command
}
