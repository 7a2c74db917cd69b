package main

import (
	"github.com/spf13/cobra"

	"github.com/tsawler/labscan/server"
)

func newServeCmd(a *app) *cobra.Command {
	var (
		addr      string
		maxUpload int64
		origins   []string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP upload API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := &a.cfg
			flags := cmd.Flags()
			if flags.Changed("addr") {
				cfg.Server.Addr = addr
			}
			if flags.Changed("max-upload") {
				cfg.Server.MaxUploadBytes = maxUpload
			}
			if flags.Changed("cors-origin") {
				cfg.Server.CORSOrigins = origins
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			s := server.New(
				server.WithCatalog(a.catalog),
				server.WithPipeline(a.pipeline),
				server.WithMaxUploadBytes(cfg.Server.MaxUploadBytes),
				server.WithAllowedOrigins(cfg.Server.CORSOrigins...),
			)
			return s.ListenAndServe(cmd.Context(), cfg.Server.Addr)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&addr, "addr", ":8000", "listen address")
	flags.Int64Var(&maxUpload, "max-upload", server.DefaultMaxUploadBytes, "maximum upload size in bytes")
	flags.StringSliceVar(&origins, "cors-origin", nil, "allowed CORS origins")
	return cmd
}
