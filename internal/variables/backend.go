package variables

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"vardeck/internal/config"
	appErrors "vardeck/internal/errors"
)

// Options selects and configures a backend.
type Options struct {
	Backend   string
	APIURL    string
	APIKey    string
	Timeout   time.Duration
	DBPath    string
	ListLimit int
}

// OptionsFromConfig reads backend settings from the loaded configuration.
func OptionsFromConfig() (Options, error) {
	opts := Options{
		Backend:   config.GetString(config.KeyBackend),
		APIURL:    config.GetString(config.KeyAPIURL),
		APIKey:    config.GetString(config.KeyAPIKey),
		Timeout:   config.GetDuration(config.KeyAPITimeout),
		ListLimit: config.GetInt(config.KeyListLimit),
	}
	if normalizeBackend(opts.Backend) == config.BackendSQLite {
		path, err := config.DatabasePath()
		if err != nil {
			return Options{}, appErrors.New(appErrors.CodeConfigurationError, err.Error(), err)
		}
		opts.DBPath = path
	}
	return opts, nil
}

// NewClient creates the Client for opts.Backend ("api" or "sqlite").
func NewClient(opts Options) (Client, error) {
	switch normalizeBackend(opts.Backend) {
	case config.BackendAPI, "":
		httpOpts := []HTTPOption{WithAPIKey(opts.APIKey), WithTimeout(opts.Timeout), WithListLimit(opts.ListLimit)}
		url := opts.APIURL
		if strings.TrimSpace(url) == "" {
			url = config.DefaultAPIURL
		}
		return NewHTTPClient(url, httpOpts...), nil
	case config.BackendSQLite:
		return NewSQLiteClient(opts.DBPath, WithSQLiteListLimit(opts.ListLimit))
	default:
		return nil, appErrors.New(appErrors.CodeConfigurationError,
			fmt.Sprintf("Unknown backend %q (expected %q or %q)", opts.Backend, config.BackendAPI, config.BackendSQLite), nil)
	}
}

func normalizeBackend(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Test hooks.
var (
	isInteractiveTTYFunc     = isInteractiveTTY
	promptUserForBackendFunc = promptUserForBackend
	configSaveBackendFunc    = config.SaveBackend
)

// ChooseBackend asks the user which backend to use and stores the answer in
// the nearest config file. It refuses to prompt without a terminal.
func ChooseBackend() (string, error) {
	if !isInteractiveTTYFunc() {
		return "", appErrors.New(appErrors.CodeConfigurationError,
			"Choosing a backend needs a terminal; set backend in .vardeck/config.yaml instead", nil)
	}
	choice := promptUserForBackendFunc(config.GetString(config.KeyBackend))
	if choice == "" {
		return "", appErrors.New(appErrors.CodeConfigurationError, "No backend selected", nil)
	}
	if err := configSaveBackendFunc(choice); err != nil {
		return "", appErrors.New(appErrors.CodeConfigurationError, fmt.Sprintf("Could not save backend: %v", err), err)
	}
	return choice, nil
}

func promptUserForBackend(current string) string {
	choice := normalizeBackend(current)
	form := huh.NewSelect[string]().
		Title("Where should vardeck keep variables?").
		Options(
			huh.NewOption("Prefect API (api)", config.BackendAPI),
			huh.NewOption("Local SQLite file (sqlite)", config.BackendSQLite),
		).
		Value(&choice)

	if err := form.Run(); err != nil {
		return ""
	}
	return choice
}

func isInteractiveTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
