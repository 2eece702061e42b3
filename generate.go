package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/campushire/platform/cv"
	"github.com/campushire/platform/llm"
	"github.com/campushire/platform/models"
	"github.com/campushire/platform/storage"
	"github.com/campushire/platform/utils"
)

func newGenerateCmd() *cobra.Command {
	var input, userID, out string

	cmd := &cobra.Command{
		Use:     "generate",
		Short:   "Generate a CV from a user details JSON file",
		Example: "  campus generate --input details.json --user-id 7 --out cv.pdf",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := generateCV(cmd.Context(), input, userID, out); err != nil {
				reportError(err)
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "user details JSON file")
	cmd.Flags().StringVarP(&userID, "user-id", "u", "", "id used to name the stored CV")
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the PDF here as well")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("user-id")

	return cmd
}

func generateCV(ctx context.Context, input, userID, out string) error {
	if userID == "" {
		return cv.ErrMissingUserID
	}

	if err := cfg.ValidateCV(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	details, err := readDetails(input)
	if err != nil {
		return err
	}

	client, err := llm.NewClient(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize %s client: %w", cfg.LLMProvider, err)
	}
	defer client.Close()

	store, err := storage.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer store.Close()

	result, err := cv.NewService(client, cv.NewRenderer(cfg.IconsPath), store).Generate(ctx, userID, details)
	if err != nil {
		return err
	}

	if out != "" {
		if err := os.WriteFile(out, result.PDF, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", out, err)
		}
	}

	utils.GetLogger().WithFields(logrus.Fields{
		"location": result.Location,
		"pages":    result.Pages,
		"sections": result.Sections,
		"out":      out,
	}).Info("CV generated")
	return nil
}

// readDetails accepts either bare user details or a full generate-cv request body
func readDetails(path string) (*models.UserDetails, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var req models.GenerateCVRequest
	if err := json.Unmarshal(data, &req); err == nil && req.UserDetails.FName != "" {
		return &req.UserDetails, nil
	}

	var details models.UserDetails
	if err := json.Unmarshal(data, &details); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if details.FName == "" && details.Email == "" {
		return nil, errors.New("user details have neither fname nor email")
	}
	return &details, nil
}
