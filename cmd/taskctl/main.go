package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/onboardhq/task-extractor/internal/domain/entities"
	extractionuse "github.com/onboardhq/task-extractor/internal/usecase/extraction"
	pkgai "github.com/onboardhq/task-extractor/pkg/ai"
	"github.com/onboardhq/task-extractor/pkg/config"
	"github.com/onboardhq/task-extractor/pkg/retry"
)

var (
	notesFile    string
	meetingID    string
	meetingTitle string
	meetingDate  string
	attendees    []string
	withRetry    bool
)

var rootCmd = &cobra.Command{
	Use:   "taskctl",
	Short: "Task extraction utilities",
}

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract action items from a meeting notes file",
	Long: `Reads a plain-text notes file, sends it through the extraction
pipeline against the configured AI gateway, and prints the resulting tasks as
JSON. Transient gateway failures can be retried with --retry.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load configuration: %w", err)
		}

		notes, err := os.ReadFile(notesFile)
		if err != nil {
			return fmt.Errorf("read notes file: %w", err)
		}

		logger, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}
		defer logger.Sync()

		if meetingID == "" {
			meetingID = uuid.NewString()
		}

		gateway := pkgai.NewGatewayClient(&cfg.AI)
		svc := extractionuse.NewService(gateway, cfg.AI.Timeout, logger)

		req := &entities.ExtractionRequest{
			MeetingID:    meetingID,
			MeetingTitle: meetingTitle,
			MeetingDate:  meetingDate,
			Attendees:    attendees,
			NotesContent: string(notes),
		}

		var result *entities.ExtractionResult
		if withRetry {
			result, err = retry.Extraction(cmd.Context(), retry.DefaultPolicy(), func(ctx context.Context) (*entities.ExtractionResult, error) {
				return svc.Extract(ctx, req)
			})
		} else {
			result, err = svc.Extract(cmd.Context(), req)
		}
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}

func init() {
	extractCmd.Flags().StringVarP(&notesFile, "file", "f", "", "path to the notes file (required)")
	extractCmd.Flags().StringVar(&meetingID, "meeting-id", "", "meeting identifier used to namespace task IDs (random if omitted)")
	extractCmd.Flags().StringVar(&meetingTitle, "title", "", "meeting title for prompt context")
	extractCmd.Flags().StringVar(&meetingDate, "date", "", "meeting date for prompt context")
	extractCmd.Flags().StringSliceVar(&attendees, "attendee", nil, "attendee name, repeatable")
	extractCmd.Flags().BoolVar(&withRetry, "retry", false, "retry transient gateway failures with backoff")
	extractCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(extractCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
