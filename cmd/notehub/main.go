package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"notehub/internal/bootstrap"
	notesdto "notehub/internal/modules/notes/dto"
	"notehub/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dataDir, remoteURL string

	root := &cobra.Command{
		Use:           "notehub",
		Short:         "Terminal notebook with tabbed editing and background write-back",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dataDir, "data", defaultDataDir(), "data directory")
	root.PersistentFlags().StringVar(&remoteURL, "remote", "", "remote notehub server URL (default: local store)")

	root.AddCommand(newTUICmd(&dataDir, &remoteURL))
	root.AddCommand(newLoginCmd(&dataDir, &remoteURL))
	root.AddCommand(newLogoutCmd(&dataDir, &remoteURL))
	root.AddCommand(newWhoamiCmd(&dataDir, &remoteURL))
	root.AddCommand(newNoteCmd(&dataDir, &remoteURL))
	root.AddCommand(newSearchCmd(&dataDir, &remoteURL))
	root.AddCommand(newServeCmd(&dataDir, &remoteURL))
	return root
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".notehub"
	}
	return filepath.Join(home, ".notehub")
}

func loadApp(dataDir, remoteURL string) (*bootstrap.App, error) {
	cfg, err := config.New(dataDir, remoteURL)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg)
}

// currentUserID resolves the signed-in user for one-shot note commands.
func currentUserID(ctx context.Context, app *bootstrap.App) (string, error) {
	user, err := app.IdentityCLI.Current(ctx)
	if err != nil {
		return "", fmt.Errorf("not signed in: run `notehub login <email>` first")
	}
	return user.ID, nil
}

func newTUICmd(dataDir, remoteURL *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the notehub terminal editor",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir, *remoteURL)
			if err != nil {
				return err
			}
			return bootstrap.RunTUI(app)
		},
	}
}

func newLoginCmd(dataDir, remoteURL *string) *cobra.Command {
	return &cobra.Command{
		Use:   "login <email>",
		Short: "Sign in",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataDir, *remoteURL)
			if err != nil {
				return err
			}
			user, err := app.IdentityCLI.SignIn(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "signed in as %s (%s)\n", user.Email, user.ID)
			return nil
		},
	}
}

func newLogoutCmd(dataDir, remoteURL *string) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir, *remoteURL)
			if err != nil {
				return err
			}
			if err := app.IdentityCLI.SignOut(cmd.Context()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "signed out")
			return nil
		},
	}
}

func newWhoamiCmd(dataDir, remoteURL *string) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir, *remoteURL)
			if err != nil {
				return err
			}
			user, err := app.IdentityCLI.Current(cmd.Context())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", user.Email, user.ID)
			return nil
		},
	}
}

func newNoteCmd(dataDir, remoteURL *string) *cobra.Command {
	note := &cobra.Command{Use: "note", Short: "Manage notes"}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List notes, most recently edited first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir, *remoteURL)
			if err != nil {
				return err
			}
			userID, err := currentUserID(cmd.Context(), app)
			if err != nil {
				return err
			}
			notes, err := app.NotesCLI.List(cmd.Context(), userID)
			if err != nil {
				return err
			}
			printNoteTable(cmd, notes)
			return nil
		},
	}

	var content string
	newCmd := &cobra.Command{
		Use:   "new <title>",
		Short: "Create a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataDir, *remoteURL)
			if err != nil {
				return err
			}
			userID, err := currentUserID(cmd.Context(), app)
			if err != nil {
				return err
			}
			out, err := app.NotesCLI.Create(cmd.Context(), userID, args[0], content)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "created %s (%s)\n", out.Title, out.ID)
			return nil
		},
	}
	newCmd.Flags().StringVar(&content, "content", "", "initial content")

	showCmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Print a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataDir, *remoteURL)
			if err != nil {
				return err
			}
			userID, err := currentUserID(cmd.Context(), app)
			if err != nil {
				return err
			}
			out, err := app.NotesCLI.Get(cmd.Context(), userID, args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "# %s\n\n%s\n", out.Title, out.Content)
			return nil
		},
	}

	renameCmd := &cobra.Command{
		Use:   "rename <id> <title>",
		Short: "Rename a note",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataDir, *remoteURL)
			if err != nil {
				return err
			}
			userID, err := currentUserID(cmd.Context(), app)
			if err != nil {
				return err
			}
			out, err := app.NotesCLI.Rename(cmd.Context(), userID, args[0], args[1])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "renamed to %s\n", out.Title)
			return nil
		},
	}

	rmCmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataDir, *remoteURL)
			if err != nil {
				return err
			}
			if _, err := currentUserID(cmd.Context(), app); err != nil {
				return err
			}
			if err := app.NotesCLI.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "deleted")
			return nil
		},
	}

	note.AddCommand(listCmd, newCmd, showCmd, renameCmd, rmCmd)
	return note
}

func newSearchCmd(dataDir, remoteURL *string) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search note titles and content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataDir, *remoteURL)
			if err != nil {
				return err
			}
			results, err := app.WorkspaceCLI.Search(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if len(results) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no matches")
				return nil
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, n := range results {
				_, _ = fmt.Fprintf(w, "%s\t%s\n", n.ID, n.Title)
			}
			return w.Flush()
		},
	}
}

func newServeCmd(dataDir, remoteURL *string) *cobra.Command {
	var addr string
	serve := &cobra.Command{
		Use:   "serve",
		Short: "Serve the note store over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir, *remoteURL)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "serving notes on %s\n", addr)
			return bootstrap.RunServe(addr, app)
		},
	}
	serve.Flags().StringVar(&addr, "addr", ":8787", "listen address")
	return serve
}

func printNoteTable(cmd *cobra.Command, notes []notesdto.NoteOutput) {
	if len(notes) == 0 {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no notes")
		return
	}
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tTITLE\tUPDATED")
	for _, n := range notes {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", n.ID, n.Title, n.UpdatedAt.Format("2006-01-02 15:04"))
	}
	_ = w.Flush()
}
