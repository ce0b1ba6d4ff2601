package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/oba-ldap/lber/internal/config"
	"github.com/oba-ldap/lber/internal/logging"
)

var (
	cfgPath   string
	logLevel  = levelFlag("info")
	logFormat string
	logOutput string

	logger logging.Logger
	runCfg *config.Config
)

// levelFlag is a pflag.Value that rejects anything but a known logging
// level at flag-parse time, instead of silently falling back to info.
type levelFlag string

func (l *levelFlag) String() string { return string(*l) }
func (l *levelFlag) Type() string   { return "level" }
func (l *levelFlag) Set(s string) error {
	switch s {
	case "debug", "info", "warn", "error":
		*l = levelFlag(s)
		return nil
	default:
		return fmt.Errorf("must be one of debug, info, warn, error, got %q", s)
	}
}

var _ pflag.Value = (*levelFlag)(nil)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "oba-codec",
		Short:         "Decode and encode LDAP wire messages",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogger(cmd.Flags())
		},
	}

	cmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to a run config YAML file")
	cmd.PersistentFlags().Var(&logLevel, "log-level", "debug, info, warn, or error")
	cmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "text or json")
	cmd.PersistentFlags().StringVar(&logOutput, "log-output", "stderr", "stdout, stderr, or a file path")

	cmd.AddCommand(newDecodeCmd())
	cmd.AddCommand(newRoundtripCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// setupLogger builds the package logger from --config (if given) and
// the --log-* flags, flags taking precedence over the config file. With
// a config file, only the flags actually given override its logging
// section; without one, the flags' defaults apply.
func setupLogger(flags *pflag.FlagSet) error {
	cfg := config.Default()
	if cfgPath != "" {
		loaded, err := config.Load(cfgPath)
		if err != nil {
			return errors.Wrap(err, "loading config")
		}
		cfg = loaded
	}

	useFlag := func(name string) bool {
		return cfgPath == "" || flags.Changed(name)
	}
	if logLevel != "" && useFlag("log-level") {
		cfg.Logging.Level = logLevel.String()
	}
	if logFormat != "" && useFlag("log-format") {
		cfg.Logging.Format = logFormat
	}
	if logOutput != "" && useFlag("log-output") {
		cfg.Logging.Output = logOutput
	}

	logger = logging.New(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	runCfg = cfg
	return nil
}

// fixturePath resolves the fixture to operate on: the positional
// argument if given, otherwise the config file's run.fixture.
func fixturePath(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if runCfg != nil && runCfg.Run.Fixture != "" {
		return runCfg.Run.Fixture, nil
	}
	return "", errors.New("a fixture path is required, either as an argument or via --config's run.fixture")
}
