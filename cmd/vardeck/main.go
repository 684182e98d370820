package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"vardeck/internal/config"
	"vardeck/internal/debug"
	appErrors "vardeck/internal/errors"
	"vardeck/internal/ui"
	"vardeck/internal/variables"
)

// errReported is returned by commands that already wrote their own
// diagnostics; main exits non-zero without printing it again.
var errReported = errors.New("reported")

func main() {
	root := newRootCmd(defaultDeps())
	if err := root.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "Error: %s\n", appErrors.MessageOf(err))
		}
		os.Exit(1)
	}
}

type programRunner interface {
	Run() (tea.Model, error)
}

type programFactory func(*ui.App) programRunner

// deps are the seams the commands reach the outside world through.
type deps struct {
	newClient     func(variables.Options) (variables.Client, error)
	isTerminal    func() bool
	newProgram    programFactory
	chooseBackend func() (string, error)
	saveBackend   func(string) error
}

func defaultDeps() deps {
	return deps{
		newClient: variables.NewClient,
		isTerminal: func() bool {
			return term.IsTerminal(int(os.Stdout.Fd()))
		},
		newProgram: func(app *ui.App) programRunner {
			return tea.NewProgram(app, tea.WithAltScreen())
		},
		chooseBackend: variables.ChooseBackend,
		saveBackend:   config.SaveBackend,
	}
}

type globalFlags struct {
	backend string
	apiURL  string
	dbPath  string
	debug   bool
}

func newRootCmd(d deps) *cobra.Command {
	var flags globalFlags
	cmd := &cobra.Command{
		Use:   "vardeck",
		Short: "Create and browse variables",
		Long: strings.TrimSpace(`
vardeck manages named, tagged, JSON-valued variables kept by a Prefect API
server or a local SQLite file.

Run without arguments to open the interactive browser. Use "create" and
"list" for scripting.`),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(cmd, flags)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			debug.Close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(d)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.backend, "backend", "", "Variables backend: api|sqlite")
	pf.StringVar(&flags.apiURL, "api-url", "", "Base URL of the Prefect API")
	pf.StringVar(&flags.dbPath, "db-path", "", "Path to the SQLite database (sqlite backend)")
	pf.BoolVar(&flags.debug, "debug", false, "Write a debug log to ~/.vardeck/debug.log")

	cmd.AddCommand(
		newCreateCmd(d),
		newListCmd(d),
		newBackendCmd(d),
		newVersionCmd(),
	)
	return cmd
}

// setup loads configuration, applies explicitly set flags on top and starts
// the debug log.
func setup(cmd *cobra.Command, flags globalFlags) error {
	if err := config.Initialize(); err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	overrides := map[string]any{}
	changed := cmd.Flags().Changed
	if changed("backend") {
		overrides[config.KeyBackend] = strings.TrimSpace(flags.backend)
	}
	if changed("api-url") {
		overrides[config.KeyAPIURL] = strings.TrimSpace(flags.apiURL)
	}
	if changed("db-path") {
		overrides[config.KeyDatabasePath] = strings.TrimSpace(flags.dbPath)
	}
	if changed("debug") {
		overrides[config.KeyDebug] = flags.debug
	}
	if err := config.ApplyOverrides(overrides); err != nil {
		return fmt.Errorf("apply flags: %w", err)
	}
	if err := debug.Init(config.GetBool(config.KeyDebug)); err != nil {
		return fmt.Errorf("start debug log: %w", err)
	}
	debug.L().Info("starting", zap.String("command", cmd.CommandPath()))
	return nil
}

// openClient builds the configured backend client.
func openClient(d deps) (variables.Client, variables.Options, error) {
	opts, err := variables.OptionsFromConfig()
	if err != nil {
		return nil, opts, err
	}
	client, err := d.newClient(opts)
	if err != nil {
		return nil, opts, err
	}
	return client, opts, nil
}

// backendLabel describes where variables live, for the footer.
func backendLabel(opts variables.Options) string {
	switch strings.ToLower(strings.TrimSpace(opts.Backend)) {
	case config.BackendSQLite:
		return "sqlite " + opts.DBPath
	default:
		url := opts.APIURL
		if url == "" {
			url = config.DefaultAPIURL
		}
		return "api " + url
	}
}

func runTUI(d deps) error {
	if !d.isTerminal() {
		return appErrors.New(appErrors.CodeConfigurationError,
			`vardeck needs an interactive terminal; use "vardeck create" or "vardeck list" instead`, nil)
	}
	client, opts, err := openClient(d)
	if err != nil {
		return err
	}
	cfg := ui.Config{
		Client:        client,
		BackendLabel:  backendLabel(opts),
		Version:       Version,
		Theme:         config.GetString(config.KeyTheme),
		CreateTimeout: opts.Timeout,
	}
	return runProgram(cfg, ui.NewApp, d.newProgram)
}

func runProgram(cfg ui.Config, builder func(ui.Config) (*ui.App, error), factory programFactory) error {
	app, err := builder(cfg)
	if err != nil {
		return fmt.Errorf("initialize UI: %w", err)
	}
	if factory == nil {
		return fmt.Errorf("program factory is nil")
	}
	prog := factory(app)
	if prog == nil {
		return fmt.Errorf("program is nil")
	}
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("run UI: %w", err)
	}
	return nil
}
