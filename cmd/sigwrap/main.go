// Command sigwrap writes the byte conversions of a fixed-size signature type.
//
// It is meant to run under go generate, next to the type it wraps:
//
//	//go:generate go run github.com/vaultsandbox/cryptocap/cmd/sigwrap --type Signature --size 64
//	type Signature [SignatureSize]byte
//
// Flags can also come from SIGWRAP_TYPE, SIGWRAP_SIZE, SIGWRAP_PACKAGE,
// SIGWRAP_OUTPUT and SIGWRAP_VERBOSE. The package name falls back to
// GOPACKAGE, which go generate sets.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vaultsandbox/cryptocap/internal/sigwrap"
)

// stdoutOutput as --output writes the generated code to standard output.
const stdoutOutput = "-"

// Config holds the streams and directory the command works with.
type Config struct {
	Stdout io.Writer
	Stderr io.Writer
	// Dir resolves relative output paths. Empty means the working directory.
	Dir string
}

// DefaultConfig returns a Config using the process streams.
func DefaultConfig() Config {
	return Config{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

func run(args []string, cfg Config) error {
	cmd := newRootCmd(cfg)
	if len(args) > 0 {
		args = args[1:]
	}
	cmd.SetArgs(args)
	cmd.SetOut(cfg.Stdout)
	cmd.SetErr(cfg.Stderr)
	return cmd.Execute()
}

func newRootCmd(cfg Config) *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "sigwrap",
		Short: "Generate byte conversions for a fixed-size signature type",
		Long: `sigwrap emits the size constant, FromBytes constructor, constant-time Equal,
base64url String and the encoding.Binary/Text marshalers for an array-backed
signature type. Run it from a go:generate directive in the type's package.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := bindFlags(v, cmd); err != nil {
				return fmt.Errorf("bind flags: %w", err)
			}

			logger := initLogger(v.GetBool("verbose"), cfg.Stderr)

			gc := sigwrap.Config{
				Package: v.GetString("package"),
				Type:    v.GetString("type"),
				Size:    v.GetInt("size"),
				Output:  v.GetString("output"),
			}
			return generate(gc, cfg, logger)
		},
	}

	cmd.Flags().StringP("type", "t", "Signature", "name of the array type")
	cmd.Flags().IntP("size", "s", 0, "encoded size in bytes")
	cmd.Flags().StringP("package", "p", "", "package name (defaults to $GOPACKAGE)")
	cmd.Flags().StringP("output", "o", "", `output file, or "-" for stdout (defaults to <type>_gen.go)`)
	cmd.Flags().BoolP("verbose", "v", false, "enable debug logging")

	return cmd
}

// bindFlags binds the command flags to v. Environment variables use the
// SIGWRAP_ prefix; package also reads GOPACKAGE.
func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	for _, name := range []string{"type", "size", "package", "output", "verbose"} {
		if err := v.BindPFlag(name, cmd.Flags().Lookup(name)); err != nil {
			return err
		}
	}

	v.SetEnvPrefix("SIGWRAP")
	v.AutomaticEnv()

	return v.BindEnv("package", "SIGWRAP_PACKAGE", "GOPACKAGE")
}

func initLogger(verbose bool, w io.Writer) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	console := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: time.Kitchen,
	}
	return zerolog.New(console).Level(level).With().Timestamp().Logger()
}

func generate(gc sigwrap.Config, cfg Config, logger zerolog.Logger) error {
	logger.Debug().
		Str("package", gc.Package).
		Str("type", gc.Type).
		Int("size", gc.Size).
		Msg("generating signature glue")

	src, err := sigwrap.Generate(gc)
	if err != nil {
		return err
	}

	out := gc.OutputFile()
	if out == stdoutOutput {
		_, err := cfg.Stdout.Write(src)
		return err
	}

	if !filepath.IsAbs(out) && cfg.Dir != "" {
		out = filepath.Join(cfg.Dir, out)
	}
	if err := os.WriteFile(out, src, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}

	logger.Info().Str("file", out).Int("bytes", len(src)).Msg("wrote signature glue")
	return nil
}

// exitCode maps a run error to a process exit status. Invalid input is 2.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, sigwrap.ErrInvalidPackage),
		errors.Is(err, sigwrap.ErrInvalidType),
		errors.Is(err, sigwrap.ErrInvalidSize):
		return 2
	default:
		return 1
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "sigwrap: %v\n", err)
	os.Exit(exitCode(err))
}
