package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nurpe/leasing-service/internal/config"
	"github.com/nurpe/leasing-service/internal/db"
	"github.com/nurpe/leasing-service/internal/excel"
	httphandler "github.com/nurpe/leasing-service/internal/http"
	"github.com/nurpe/leasing-service/internal/logger"
	"github.com/nurpe/leasing-service/internal/pdf"
	"github.com/nurpe/leasing-service/internal/repository"
	"github.com/nurpe/leasing-service/internal/service"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			log := logger.New(cfg.Environment, cfg.LogLevel)

			database, err := db.New(cfg, log)
			if err != nil {
				return fmt.Errorf("failed to connect database: %w", err)
			}

			store := repository.NewStore(database)
			catalog := service.NewCatalog(store)
			services := httphandler.Services{
				Owners:     service.NewOwnerService(store),
				Customers:  service.NewCustomerService(store),
				Properties: service.NewPropertyService(store, catalog),
				Leases:     service.NewLeaseService(store, log),
				Rents:      service.NewRentService(store, log),
				Utilities:  service.NewUtilityService(store),
			}

			handler := httphandler.NewHandler(
				services,
				excel.NewGenerator(cfg.Billing.Currency),
				pdf.NewGenerator(cfg.Billing.Issuer, cfg.Billing.Currency),
				log,
			)
			router := httphandler.NewRouter(handler, cfg.HTTP.AllowedOrigins, cfg.Environment, log)

			addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
			log.Info().Str("addr", addr).Msg("starting leasing service")

			if err := router.Run(addr); err != nil {
				log.Error().Err(err).Msg("server stopped")
				return err
			}
			return nil
		},
	}
}
