package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/de-tools/rightsize/pkg/server"
	"github.com/de-tools/rightsize/pkg/services/advisor"
	"github.com/de-tools/rightsize/pkg/services/pricing"
)

var (
	addr        string
	catalogPath string
	workers     int
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for the rightsizing advisor",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVar(&addr, "addr", ":8080", "Address to listen on")
	rootCmd.Flags().StringVar(&catalogPath, "catalog", "", "Path to a pricing catalog profile")
	rootCmd.Flags().IntVar(&workers, "workers", advisor.DefaultWorkers, "Number of concurrent analysis workers")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(_ *cobra.Command, _ []string) error {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	catalog := pricing.DefaultCatalog()
	if catalogPath != "" {
		loaded, err := pricing.LoadCatalog(catalogPath)
		if err != nil {
			return fmt.Errorf("failed to load pricing catalog: %w", err)
		}
		catalog = *loaded
	}

	adv := advisor.New(pricing.NewModel(catalog), advisor.Config{Workers: workers})

	api := server.NewWebAPI(logger, server.Config{
		Addr:            addr,
		ShutdownTimeout: 10 * time.Second,
		Dependencies:    server.Dependencies{Advisor: adv},
	})
	return api.Start()
}
