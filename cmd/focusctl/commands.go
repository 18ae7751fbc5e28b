package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"focusflow/config"
	"focusflow/internal/app"
	"focusflow/internal/focus"
	"focusflow/internal/model"
	"focusflow/internal/task"
	"focusflow/pkg/gcalendar"
	"focusflow/pkg/log"
)

var (
	ownerFlag    string
	limitFlag    int
	calendarFlag bool
	scoreFlag    float64
	taskIDFlag   string
	statusFlag   string
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "focusctl",
		Short:         "Inspect and drive the FocusFlow scheduling engine",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.PersistentFlags().StringVar(&ownerFlag, "user", os.Getenv("USER"), "owner id the command acts for")

	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newAddCmd())
	rootCmd.AddCommand(newScheduleCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newSessionCmd())
	rootCmd.AddCommand(newAnalyticsCmd())
	rootCmd.AddCommand(newPatternsCmd())
	rootCmd.AddCommand(newCalendarAuthCmd())

	return rootCmd
}

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <text>",
		Short: "Show how a task description would be parsed",
		Args:  cobra.MinimumNArgs(1),
		RunE: withApp(func(ctx context.Context, a *app.App, sc model.Scope, out io.Writer, args []string) error {
			res, err := a.Task.ParsePreview(ctx, sc, task.ParseInput{RawText: strings.Join(args, " ")})
			if err != nil {
				return err
			}
			return writeJSON(out, res)
		}),
	}
}

func newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <text>",
		Short: "Create a task from natural language",
		Args:  cobra.MinimumNArgs(1),
		RunE: withApp(func(ctx context.Context, a *app.App, sc model.Scope, out io.Writer, args []string) error {
			res, err := a.Task.Create(ctx, sc, task.CreateInput{RawText: strings.Join(args, " ")})
			if err != nil {
				return err
			}
			return writeJSON(out, res.Task)
		}),
	}
	cmd.Flags().BoolVar(&calendarFlag, "calendar", false, "block time in Google Calendar when configured")
	return cmd
}

func newScheduleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Print the ranked schedule",
		Args:  cobra.NoArgs,
		RunE: withApp(func(ctx context.Context, a *app.App, sc model.Scope, out io.Writer, _ []string) error {
			res, err := a.Task.OptimizeSchedule(ctx, sc, task.OptimizeInput{Limit: limitFlag})
			if err != nil {
				return err
			}
			return writeJSON(out, res)
		}),
	}
	cmd.Flags().IntVar(&limitFlag, "limit", 0, "max tasks to print (default: scheduler.optimize_limit)")
	return cmd
}

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List pending and completed tasks",
		Args:  cobra.NoArgs,
		RunE: withApp(func(ctx context.Context, a *app.App, sc model.Scope, out io.Writer, _ []string) error {
			tasks, err := a.Task.List(ctx, sc, task.ListInput{Status: statusFlag})
			if err != nil {
				return err
			}
			return writeJSON(out, tasks)
		}),
	}
	cmd.Flags().StringVar(&statusFlag, "status", "", "pending or completed (default: both)")
	return cmd
}

func newSessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Start, complete or cancel focus sessions",
	}

	start := &cobra.Command{
		Use:   "start",
		Short: "Start a focus session",
		Args:  cobra.NoArgs,
		RunE: withApp(func(ctx context.Context, a *app.App, sc model.Scope, out io.Writer, _ []string) error {
			fs, err := a.Focus.StartSession(ctx, sc, focus.StartInput{TaskID: taskIDFlag})
			if err != nil {
				return err
			}
			return writeJSON(out, fs)
		}),
	}
	start.Flags().StringVar(&taskIDFlag, "task", "", "task id to link")

	complete := &cobra.Command{
		Use:   "complete <session-id>",
		Short: "Complete a focus session with a productivity score",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(ctx context.Context, a *app.App, sc model.Scope, out io.Writer, args []string) error {
			res, err := a.Focus.CompleteSession(ctx, sc, focus.CompleteInput{ID: args[0], ProductivityScore: scoreFlag})
			if err != nil {
				return err
			}
			return writeJSON(out, res)
		}),
	}
	complete.Flags().Float64Var(&scoreFlag, "score", 0, "productivity score in [0,1]")
	_ = complete.MarkFlagRequired("score")

	cancel := &cobra.Command{
		Use:   "cancel <session-id>",
		Short: "Cancel a focus session",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(ctx context.Context, a *app.App, sc model.Scope, out io.Writer, args []string) error {
			fs, err := a.Focus.CancelSession(ctx, sc, args[0])
			if err != nil {
				return err
			}
			return writeJSON(out, fs)
		}),
	}

	cmd.AddCommand(start, complete, cancel)
	return cmd
}

func newAnalyticsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analytics",
		Short: "Print the seven-day productivity summary",
		Args:  cobra.NoArgs,
		RunE: withApp(func(ctx context.Context, a *app.App, sc model.Scope, out io.Writer, _ []string) error {
			snap, err := a.Focus.GetAnalytics(ctx, sc)
			if err != nil {
				return err
			}
			return writeJSON(out, snap)
		}),
	}
}

func newPatternsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "patterns",
		Short: "Print focus patterns and recommendations",
		Args:  cobra.NoArgs,
		RunE: withApp(func(ctx context.Context, a *app.App, sc model.Scope, out io.Writer, _ []string) error {
			res, err := a.Focus.GetFocusPatterns(ctx, sc)
			if err != nil {
				return err
			}
			return writeJSON(out, res)
		}),
	}
}

// newCalendarAuthCmd stores the OAuth token read by the calendar client
// when google_calendar.credentials_path is a desktop app file.
func newCalendarAuthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "calendar-auth",
		Short: "Authorize Google Calendar access and save the token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if !cfg.GoogleCalendar.Enabled() {
				return errors.New("google_calendar.credentials_path is not set")
			}

			data, err := os.ReadFile(cfg.GoogleCalendar.CredentialsPath)
			if err != nil {
				return fmt.Errorf("failed to read credentials: %w", err)
			}
			auth, err := gcalendar.NewAuthorizer(data)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Open this URL in a browser and grant access:")
			fmt.Fprintln(out)
			fmt.Fprintln(out, auth.AuthCodeURL("focusctl"))
			fmt.Fprintln(out)
			fmt.Fprint(out, "Authorization code: ")

			var code string
			if _, err := fmt.Fscan(cmd.InOrStdin(), &code); err != nil {
				return fmt.Errorf("failed to read authorization code: %w", err)
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			if err := auth.Exchange(ctx, code, cfg.GoogleCalendar.TokenPath); err != nil {
				return err
			}
			fmt.Fprintf(out, "\ntoken saved to %s\n", cfg.GoogleCalendar.TokenPath)
			return nil
		},
	}
}

type appFunc func(ctx context.Context, a *app.App, sc model.Scope, out io.Writer, args []string) error

// withApp loads config, builds the engine and closes it after fn returns.
// Logs go to stderr at warn level so stdout stays machine readable.
func withApp(fn appFunc) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		owner := strings.TrimSpace(ownerFlag)
		if owner == "" {
			return errors.New("--user is required")
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		logger := log.Init(log.ZapConfig{
			Level:    "warn",
			Mode:     cfg.Logger.Mode,
			Encoding: "console",
			Output:   cmd.ErrOrStderr(),
		})

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		a, err := app.New(ctx, cfg, logger, app.Options{SkipCalendar: !calendarFlag})
		if err != nil {
			return err
		}
		defer func() {
			if cerr := a.Close(); cerr != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "failed to close db: %v\n", cerr)
			}
		}()

		return fn(ctx, a, model.Scope{UserID: owner}, cmd.OutOrStdout(), args)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
