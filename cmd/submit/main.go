package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"contact-relay-backend/config"
	"contact-relay-backend/internal/contactform"
	"contact-relay-backend/internal/domain"
	"contact-relay-backend/internal/usecase"
	"contact-relay-backend/pkg/logger"
	"contact-relay-backend/pkg/sheets"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

type submitOptions struct {
	values   domain.SubmissionPayload
	endpoint string
	relayURL string
	timeout  time.Duration
	logLevel string
}

func main() {
	// Same .env as the relay, so the endpoint default matches
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newSubmitCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// newSubmitCmd builds the submit command. It fills a contact form from flags
// and delivers it exactly as the website does: direct first, relay second.
func newSubmitCmd() *cobra.Command {
	opts := &submitOptions{}

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit a contact form to the spreadsheet",
		Long: `Submit one contact form entry to the spreadsheet web app.

The entry is posted to --endpoint first. When that attempt fails and
--relay-url is set, the same body is posted once to the relay.

Business types: ` + strings.Join(domain.BusinessTypes, ", ") + `
Project types:  ` + strings.Join(domain.ProjectTypes, ", "),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSubmit(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.values.Name, "name", "", "full name")
	f.StringVar(&opts.values.Email, "email", "", "email address")
	f.StringVar(&opts.values.Phone, "phone", "", "phone number")
	f.StringVar(&opts.values.BusinessType, "business-type", "", "business type")
	f.StringVar(&opts.values.ProjectType, "project-type", "", "project type")
	f.StringVar(&opts.values.Message, "message", "", "message")
	f.BoolVar(&opts.values.ConsultationRequested, "consultation", false, "request a free consultation")
	f.StringVar(&opts.endpoint, "endpoint", config.SheetsAPIURLFromEnv(), "spreadsheet web app URL (GOOGLE_SHEETS_API_URL)")
	f.StringVar(&opts.relayURL, "relay-url", "", "relay URL tried after the direct attempt fails, e.g. http://localhost:3000"+config.RelayPath)
	f.DurationVar(&opts.timeout, "timeout", 0, "timeout for each attempt (0 keeps the transport default)")
	f.StringVar(&opts.logLevel, "log-level", "warn", "log level written to stderr")

	return cmd
}

func runSubmit(ctx context.Context, stdout, stderr io.Writer, opts *submitOptions) error {
	logger.InitWithWriter(stderr, opts.logLevel)

	form := contactform.New()
	form.Values = opts.values

	uc := usecase.NewSubmissionUsecase(usecase.SubmissionConfig{
		DirectURL: strings.TrimSpace(opts.endpoint),
		RelayURL:  strings.TrimSpace(opts.relayURL),
	}, sheets.NewClient(opts.timeout))

	err := form.Submit(ctx, uc)
	switch {
	case errors.Is(err, contactform.ErrInvalid):
		for _, msg := range form.FieldErrors {
			fmt.Fprintln(stderr, msg)
		}
		return err
	case err != nil:
		fmt.Fprintln(stderr, form.Status.Message)
		return err
	}

	fmt.Fprintln(stdout, form.Status.Message)
	return nil
}
