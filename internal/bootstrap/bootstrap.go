package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	identityinadapter "notehub/internal/modules/identity/adapter/in"
	identityoutadapter "notehub/internal/modules/identity/adapter/out"
	identityin "notehub/internal/modules/identity/port/in"
	identityusecase "notehub/internal/modules/identity/usecase"
	notesinadapter "notehub/internal/modules/notes/adapter/in"
	notesoutadapter "notehub/internal/modules/notes/adapter/out"
	notesout "notehub/internal/modules/notes/port/out"
	notesservice "notehub/internal/modules/notes/service"
	notesusecase "notehub/internal/modules/notes/usecase"
	prefsoutadapter "notehub/internal/modules/prefs/adapter/out"
	prefsin "notehub/internal/modules/prefs/port/in"
	prefsusecase "notehub/internal/modules/prefs/usecase"
	workspaceinadapter "notehub/internal/modules/workspace/adapter/in"
	workspaceoutadapter "notehub/internal/modules/workspace/adapter/out"
	workspacein "notehub/internal/modules/workspace/port/in"
	workspaceservice "notehub/internal/modules/workspace/service"
	workspaceusecase "notehub/internal/modules/workspace/usecase"
	"notehub/internal/platform/clock"
	"notehub/internal/platform/config"
	apperrors "notehub/internal/platform/errors"
	"notehub/internal/platform/id"
	uiapp "notehub/internal/ui/app"
)

type App struct {
	Identity     identityin.Usecase
	Workspace    workspacein.Usecase
	Prefs        prefsin.Usecase
	IdentityCLI  identityinadapter.CLIHandler
	NotesCLI     notesinadapter.CLIHandler
	WorkspaceCLI workspaceinadapter.CLIHandler
	NotesHTTP    *notesinadapter.HTTPHandler
}

// New wires the modules together. An empty RemoteURL backs the note
// repository with the local sqlite store; otherwise every repository call
// goes to a remote `notehub serve` instance.
func New(cfg config.Config) (*App, error) {
	clk := clock.SystemClock{}
	ids := id.UUID{}

	var repo notesout.Repository
	if cfg.RemoteURL != "" {
		repo = notesoutadapter.NewHTTPRepository(cfg.RemoteURL)
	} else {
		var err error
		repo, err = notesoutadapter.NewSQLiteRepository(cfg.DBPath, clk, ids)
		if err != nil {
			return nil, fmt.Errorf("open note store: %w", err)
		}
	}
	notesUC := notesusecase.NewInteractor(notesservice.NewNoteService(clk, repo))

	identityUC := identityusecase.NewInteractor(
		identityoutadapter.NewFileCredentialStore(cfg.DataDir))

	workspaceSvc := workspaceservice.NewWorkspaceService(
		clk, ids,
		workspaceoutadapter.NewNotesGateway(notesUC),
		workspaceservice.DefaultQuietPeriod)
	workspaceUC := workspaceusecase.NewInteractor(workspaceSvc, identityUC)

	prefsUC := prefsusecase.NewInteractor(prefsoutadapter.NewYAMLSettingsStore(cfg.DataDir))

	return &App{
		Identity:     identityUC,
		Workspace:    workspaceUC,
		Prefs:        prefsUC,
		IdentityCLI:  identityinadapter.NewCLIHandler(identityUC),
		NotesCLI:     notesinadapter.NewCLIHandler(notesUC),
		WorkspaceCLI: workspaceinadapter.NewCLIHandler(workspaceUC),
		NotesHTTP:    notesinadapter.NewHTTPHandler(notesUC),
	}, nil
}

// RunTUI loads the signed-in user's workspace and runs the editor.
func RunTUI(app *App) error {
	ctx := context.Background()
	user, err := app.Identity.Current(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrAuthRequired) {
			return fmt.Errorf("not signed in: run `notehub login <email>` first")
		}
		return err
	}
	if err := app.Workspace.Refresh(ctx); err != nil {
		return fmt.Errorf("load workspace: %w", err)
	}
	settings, err := app.Prefs.Get(ctx)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	model := uiapp.NewModel(app.Workspace, app.Identity, app.Prefs, settings, user)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	return err
}

// RunServe exposes the note repository over HTTP so other notehub clients
// can use this process as their durable store.
func RunServe(addr string, app *App) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           app.NotesHTTP.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return server.ListenAndServe()
}
