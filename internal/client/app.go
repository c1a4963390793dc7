package client

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/appybrain-client/internal/adapter"
	"github.com/MKhiriev/appybrain-client/internal/config"
	"github.com/MKhiriev/appybrain-client/internal/logger"
	"github.com/MKhiriev/appybrain-client/internal/service"
	"github.com/MKhiriev/appybrain-client/internal/store"
	"github.com/MKhiriev/appybrain-client/models"
)

const role = "appybrain-client"

// App is the command-line client. Dependencies are built in the root
// command's pre-run hook, so every command works against freshly loaded
// configuration and the persisted session.
type App struct {
	buildInfo models.AppBuildInfo
	root      *cobra.Command
	flags     *config.StructuredConfig

	rt *runtime
}

// runtime holds the dependencies of a single command run.
type runtime struct {
	cfg      *config.StructuredConfig
	log      *logger.Logger
	kv       store.KeyValueStore
	client   *adapter.Client
	services *service.Services

	invalidated     chan struct{}
	invalidatedOnce sync.Once
}

// NewApp builds the command tree.
func NewApp(buildInfo models.AppBuildInfo) *App {
	a := &App{buildInfo: buildInfo}

	a.root = &cobra.Command{
		Use:           "appybrain",
		Short:         "Command line client for the appybrain API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if !needsRuntime(cmd) {
				return nil
			}
			return a.setup(cmd.Context())
		},
	}
	a.flags = config.BindFlags(a.root.PersistentFlags())

	a.root.AddCommand(
		a.newLoginCommand(),
		a.newLogoutCommand(),
		a.newStatusCommand(),
		a.newValidateCommand(),
		a.newGetCommand(),
		a.newPostCommand(),
		a.newWatchCommand(),
		a.newResetCommand(),
		a.newVersionCommand(),
	)

	return a
}

// Run executes the command named by os.Args.
func (a *App) Run() error {
	return a.RunContext(context.Background(), os.Args[1:], os.Stdin, os.Stdout)
}

// RunContext executes the command named by args with the given streams.
func (a *App) RunContext(ctx context.Context, args []string, in io.Reader, out io.Writer) error {
	a.root.SetArgs(args)
	a.root.SetIn(in)
	a.root.SetOut(out)
	a.root.SetErr(out)

	err := a.root.ExecuteContext(ctx)
	a.teardown()

	return err
}

func (a *App) setup(ctx context.Context) error {
	cfg, err := config.GetStructuredConfig(a.flags)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.NewClientLogger(role, cfg.Log.File)
	if err = logger.SetLevel(cfg.Log.Level); err != nil {
		return err
	}
	log.Debug().Str("func", "App.setup").Any("config", cfg.Redacted()).Msg("received configs")

	kv, err := store.NewKeyValueStore(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("open session store: %w", err)
	}

	client := adapter.NewClient(kv, log)
	if err = client.Init(ctx, adapter.Options{BaseURL: cfg.Adapter.BaseURL, Timeout: cfg.Adapter.RequestTimeout}); err != nil {
		_ = client.Close()
		return fmt.Errorf("init api client: %w", err)
	}

	rt := &runtime{
		cfg:         cfg,
		log:         log,
		kv:          kv,
		client:      client,
		invalidated: make(chan struct{}),
	}
	rt.services = service.NewServices(client, cfg.Workers, rt.onInvalidated, log)
	a.rt = rt

	return nil
}

func (a *App) teardown() {
	if a.rt == nil {
		return
	}
	if err := a.rt.client.Close(); err != nil {
		a.rt.log.Error().Err(err).Str("func", "App.teardown").Msg("error closing api client")
	}
	a.rt = nil
}

func needsRuntime(cmd *cobra.Command) bool {
	if cmd.Annotations[annotationNoRuntime] != "" {
		return false
	}
	return cmd.Name() != "help" && cmd.Name() != "completion"
}

func (rt *runtime) onInvalidated() {
	rt.invalidatedOnce.Do(func() { close(rt.invalidated) })
}
