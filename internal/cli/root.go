// Package cli implements the contacts command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/contacts/internal/logger"
	"github.com/mesh-intelligence/contacts/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

const serviceName = "contacts"

// rootOptions holds global flag values and the state PersistentPreRunE
// builds from them for the subcommands.
type rootOptions struct {
	configDir string
	backend   string
	logLevel  string
	logFormat string
	jsonMode  bool

	settings settings
	log      *zap.Logger
}

// sysError marks a failure of the machine rather than of the input.
type sysError struct{ err error }

func (e *sysError) Error() string { return e.err.Error() }
func (e *sysError) Unwrap() error { return e.err }

func systemError(format string, args ...any) error {
	return &sysError{err: fmt.Errorf(format, args...)}
}

// NewRootCmd creates the top-level "contacts" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "contacts",
		Short: "A registry of mobile contacts",
		Long: "Contacts keeps mobile contact records unique by id and phone number.\n" +
			"Records live in memory for the lifetime of one command.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			return opts.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.log != nil {
				_ = opts.log.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/contacts)")
	pf.StringVar(&opts.backend, flagBackend, "", "store backend: memory or sqlite (default: memory)")
	pf.StringVar(&opts.logLevel, flagLogLevel, "", "log level: debug, info, warn or error (default: info)")
	pf.StringVar(&opts.logFormat, flagLogFormat, "", "log format: json or console (default: json)")
	pf.BoolVar(&opts.jsonMode, "json", false, "output as JSON")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(opts))
	root.AddCommand(newDemoCmd(opts))
	root.AddCommand(newApplyCmd(opts))

	return root
}

// setup loads the configuration and builds the logger.
func (o *rootOptions) setup(cmd *cobra.Command) error {
	s, err := loadSettings(o.configDir, cmd.Root().PersistentFlags())
	if err != nil {
		return err
	}
	if err := (types.Config{Backend: s.Backend}).Validate(); err != nil {
		return fmt.Errorf("backend %q: %w", s.Backend, err)
	}

	log, err := logger.New(s.LogLevel, s.LogFormat, serviceName)
	if err != nil {
		return err
	}
	o.settings = s
	o.log = log

	log.Debug("configuration loaded",
		zap.String("event", logger.EventStartup),
		zap.String("config_dir", s.ConfigDir),
		zap.String("config_file", s.ConfigFile),
		zap.String("backend", s.Backend))
	return nil
}

// Run executes the CLI with args and returns the process exit code.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if err != nil {
		fmt.Fprintln(stderr, "contacts:", err)
	}
	return exitCodeOf(err)
}

func exitCodeOf(err error) int {
	if err == nil {
		return exitSuccess
	}
	var se *sysError
	if errors.As(err, &se) {
		return exitSysError
	}
	return exitUserError
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	os.Exit(Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
