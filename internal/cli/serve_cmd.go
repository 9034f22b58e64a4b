package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/haytac/emojify/internal/app"
)

// NewServeCmd creates the serve command.
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the HTTP rendering and lookup service",
		Long:  `Serves POST /v1/render and GET /v1/emoji/{name} over the configured dataset, plus an optional Prometheus metrics endpoint.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if AppCfg == nil {
				return fmt.Errorf("configuration not loaded")
			}

			application, err := app.NewApplication(cmd.Context(), AppCfg)
			if err != nil {
				log.Error().Err(err).Msg("Failed to initialize application")
				return fmt.Errorf("failed to initialize application: %w", err)
			}

			return application.Run(cmd.Context())
		},
	}
	return cmd
}
