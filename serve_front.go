package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/campushire/platform/apiclient"
	"github.com/campushire/platform/web"
)

func newServeFrontCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve-front",
		Short: "Run the server-rendered web front end",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := serveFront(); err != nil {
				reportError(err)
				return err
			}
			return nil
		},
	}
}

func serveFront() error {
	if err := cfg.ValidateFront(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	backend := apiclient.NewBackend(cfg.BackendURL, time.Duration(cfg.HTTPTimeoutSeconds)*time.Second)
	cvService := apiclient.NewCVService(cfg.CVURL, time.Duration(cfg.CVTimeoutSeconds)*time.Second)

	server, err := web.NewServer(cfg, backend, cvService)
	if err != nil {
		return err
	}

	return runServer("front", cfg.FrontPort, server.Router())
}
