// Package cli is the takeoffctl command tree. Every command drives a
// TakeoffSession against the takeoff service over HTTP.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"etc_takeoffs/internal/domain/catalog"
	"etc_takeoffs/internal/domain/entities"
	"etc_takeoffs/internal/infrastructure/config"
	"etc_takeoffs/internal/infrastructure/gateway"
	"etc_takeoffs/internal/infrastructure/logger"
	"etc_takeoffs/internal/usecase"
	"etc_takeoffs/internal/usecase/interfaces"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// GatewayFactory builds the gateway the commands talk to.
type GatewayFactory func(baseURL string, timeout time.Duration) interfaces.ITakeoffGateway

type app struct {
	newGateway GatewayFactory

	cfgFile     string
	apiURL      string
	timeout     time.Duration
	catalogPath string
	noColor     bool
	verbose     bool

	gateway      interfaces.ITakeoffGateway
	catalog      *catalog.Catalog
	restoreLog   func()
	selectReason func() (entities.CancellationReason, error)
	promptNotes  func() (string, error)
}

// NewRootCommand returns takeoffctl wired to the HTTP gateway.
func NewRootCommand() *cobra.Command {
	return newRootCommand(func(baseURL string, timeout time.Duration) interfaces.ITakeoffGateway {
		return gateway.NewHTTPTakeoffGateway(baseURL, timeout)
	})
}

func newRootCommand(factory GatewayFactory) *cobra.Command {
	return newApp(factory).rootCommand()
}

func newApp(factory GatewayFactory) *app {
	return &app{
		newGateway:   factory,
		selectReason: selectReasonPrompt,
		promptNotes:  notesPrompt,
	}
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:               "takeoffctl",
		Short:             "takeoffctl drives takeoffs through their shop submission lifecycle",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.restoreLog != nil {
				a.restoreLog()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "path to config file (config.yaml)")
	root.PersistentFlags().StringVar(&a.apiURL, "api", "", "takeoff service base URL (overrides gateway.base_url)")
	root.PersistentFlags().DurationVar(&a.timeout, "timeout", 0, "request timeout (overrides gateway.timeout)")
	root.PersistentFlags().StringVar(&a.catalogPath, "catalog", "", "catalog YAML file (overrides catalog.path)")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable ANSI color output")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log gateway calls")

	root.AddCommand(
		a.showCmd(),
		a.createCmd(),
		a.previewCmd(),
		a.submitCmd(),
		a.cancelCmd(),
		a.reopenCmd(),
		a.reviseCmd(),
		a.workOrderCmd(),
		a.catalogCmd(),
	)
	return root
}

// Execute runs takeoffctl and exits non-zero on failure.
func Execute() {
	root := NewRootCommand()
	if err := root.ExecuteContext(context.Background()); err != nil {
		printFailure(root.ErrOrStderr(), err)
		os.Exit(1)
	}
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if a.noColor {
		color.NoColor = true
	}

	var (
		cfg *config.Config
		err error
	)
	if a.cfgFile != "" {
		cfg, err = config.LoadFile(a.cfgFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("unable to load config: %w", err)
	}

	if a.verbose {
		cfg.Log.Level = "debug"
		l, err := logger.New(cfg.Log)
		if err != nil {
			return err
		}
		a.restoreLog = logger.Install(l)
	}

	baseURL := cfg.Gateway.BaseURL
	if a.apiURL != "" {
		baseURL = a.apiURL
	}
	timeout := cfg.Gateway.Timeout
	if a.timeout > 0 {
		timeout = a.timeout
	}
	a.gateway = a.newGateway(baseURL, timeout)

	path := cfg.Catalog.Path
	if a.catalogPath != "" {
		path = a.catalogPath
	}
	a.catalog = catalog.Default()
	if path != "" {
		if a.catalog, err = catalog.Load(path); err != nil {
			return fmt.Errorf("failed to load catalog from %s: %w", path, err)
		}
	}
	return nil
}

func (a *app) open(ctx context.Context, id string) (*usecase.TakeoffSession, error) {
	return usecase.OpenTakeoffSession(ctx, a.gateway, a.catalog, id)
}

func printFailure(w io.Writer, err error) {
	msg := usecase.UserFacingMessage(err)
	if msg == entities.GenericFailureMessage {
		msg = fmt.Sprintf("%s (%v)", msg, err)
	}
	fmt.Fprintln(w, color.RedString(msg))
}

func statusString(s entities.TakeoffStatus) string {
	switch {
	case s == entities.TakeoffStatusCanceled:
		return color.RedString(string(s))
	case s.IsSubmitted():
		return color.GreenString(string(s))
	default:
		return color.YellowString(string(s))
	}
}
