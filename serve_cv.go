package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/campushire/platform/cv"
	"github.com/campushire/platform/events"
	"github.com/campushire/platform/handlers"
	"github.com/campushire/platform/llm"
	"github.com/campushire/platform/mcp"
	"github.com/campushire/platform/storage"
	"github.com/campushire/platform/tools"
	"github.com/campushire/platform/utils"
)

func newServeCVCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve-cv",
		Short: "Run the CV generation service",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := serveCV(cmd.Context()); err != nil {
				reportError(err)
				return err
			}
			return nil
		},
	}
}

func serveCV(ctx context.Context) error {
	log := utils.GetLogger().WithField("component", "serve-cv")

	if err := cfg.ValidateCV(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	log.WithField("provider", cfg.LLMProvider).Info("Initializing text generation client...")
	client, err := llm.NewClient(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize %s client: %w", cfg.LLMProvider, err)
	}
	defer client.Close()

	log.WithField("backend", cfg.StorageBackend).Info("Initializing CV storage...")
	store, err := storage.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer store.Close()

	service := cv.NewService(client, cv.NewRenderer(cfg.IconsPath), store)
	service.SetLinkTTL(time.Duration(cfg.CVLinkMinutes) * time.Minute)

	var records handlers.RecordLister
	if cfg.CVRecordsEnabled {
		log.Info("Initializing Firestore client...")
		firestoreClient, err := storage.NewFirestoreClient(ctx, cfg)
		if err != nil {
			return fmt.Errorf("failed to initialize Firestore client: %w", err)
		}
		defer firestoreClient.Close()

		service.SetRecorder(firestoreClient)
		records = firestoreClient
	}

	publisher, err := events.New(cfg.RabbitMQURL)
	if err != nil {
		return fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	defer publisher.Close()
	service.SetPublisher(publisher)

	// Create MCP server with tool registry
	toolRegistry := tools.NewToolRegistry()
	toolRegistry.Register(tools.NewGenerateCVTool(service))
	toolRegistry.Register(tools.NewReadCVTool(service))
	toolRegistry.Register(tools.NewSplitSectionsTool())

	router := handlers.NewCVRouter(
		handlers.NewCVHandler(service, records),
		mcp.NewServer(toolRegistry),
		cfg.LLMProvider,
	)

	return runServer("cv", cfg.Port, router)
}
