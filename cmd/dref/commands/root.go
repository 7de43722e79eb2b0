// Package commands implements the dref command line.
package commands

import (
	"context"
	"errors"
	"io"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/erraggy/dref/codec"
	"github.com/erraggy/dref/internal/cliutil"
	"github.com/erraggy/dref/internal/config"
	"github.com/erraggy/dref/internal/fileutil"
	"github.com/erraggy/dref/resolver"
)

// userError is printed to the user verbatim.
type userError string

func (e userError) Error() string { return string(e) }

func inputNotFound(path string) error {
	return userError("Input file '" + path + "' was not found.")
}

func outputNotWritable(path string) error {
	return userError("Could not write to output file '" + path + "'.")
}

type rootOptions struct {
	verbose  int
	internal bool
	noColor  bool
	config   string
}

// app carries the state shared by all commands of one invocation.
type app struct {
	stdout io.Writer
	stderr io.Writer
	opts   rootOptions

	cfg    *config.Config
	rep    *cliutil.Reporter
	logger resolver.Logger
}

// Execute runs the command line with args and returns the process exit code.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr}
	cmd := a.rootCommand()
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		a.reporter().Errorf("%s", err)
		return 1
	}
	return 0
}

func (a *app) rootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dref [flags] <input> <output>",
		Short: "Resolve $ref references in JSON and YAML documents",
		Long: `dref reads a JSON or YAML document, replaces its $ref references with the
values they point to, and writes the result to <output>.

By default only references into other files ("other.yaml#/key") are
resolved; pass --internal to also replace references within a document
("#/key"). The output format follows the <output> extension: YAML for .yml
and .yaml, JSON otherwise.

Settings are read from .dref.yaml (or --config) and DREF_* environment
variables, e.g. DREF_RESOLVER_MAX_DEPTH=50.`,
		Example: `  dref api.yaml resolved.json
  dref -i -v api.json resolved.yaml
  dref batch out/ specs/*.yaml`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.setup()
		},
		RunE: func(_ *cobra.Command, args []string) error {
			return a.resolve(args[0], args[1])
		},
	}
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)

	flags := cmd.PersistentFlags()
	flags.CountVarP(&a.opts.verbose, "verbose", "v", "log resolution steps (-v)")
	flags.BoolVarP(&a.opts.internal, "internal", "i", false, "also resolve internal #/ references")
	flags.BoolVar(&a.opts.noColor, "no-color", false, "disable colored output")
	flags.StringVar(&a.opts.config, "config", "", "config file (default "+config.DefaultFile+" if present)")

	cmd.AddCommand(a.versionCommand(), a.batchCommand(), a.mcpCommand())
	return cmd
}

// setup loads configuration and builds the reporter and logger once flags
// are parsed.
func (a *app) setup() error {
	cfg, err := config.Load(a.opts.config)
	if err != nil {
		return err
	}
	a.cfg = cfg

	mode := cliutil.ColorMode(cfg.Output.Color)
	if a.opts.noColor {
		mode = cliutil.ColorNever
	}
	a.rep = cliutil.NewReporter(a.stdout, a.stderr, mode, a.opts.verbose > 0)
	a.logger = newLogger(a.stdout, a.opts.verbose, cliutil.UseColor(mode, a.stdout))
	return nil
}

// reporter returns the configured reporter, or a plain one when setup never
// ran or failed.
func (a *app) reporter() *cliutil.Reporter {
	if a.rep != nil {
		return a.rep
	}
	mode := cliutil.ColorAuto
	if a.opts.noColor {
		mode = cliutil.ColorNever
	}
	return cliutil.NewReporter(a.stdout, a.stderr, mode, false)
}

func (a *app) externalOnly() bool {
	return !a.opts.internal && !a.cfg.Resolver.Internal
}

func (a *app) newResolver() (*resolver.Resolver, error) {
	opts := append(a.cfg.ResolverOptions(), resolver.WithLogger(a.logger))
	return resolver.New(opts...)
}

func (a *app) resolve(in, out string) error {
	r, err := a.newResolver()
	if err != nil {
		return err
	}

	a.rep.Debugf("Resolving '%s' (external only: %t)", in, a.externalOnly())
	doc, err := r.Load(in)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return inputNotFound(in)
		}
		return err
	}
	resolved, err := r.Resolve(doc, resolver.FileContext(in, doc, a.externalOnly()))
	if err != nil {
		return err
	}

	data, err := codec.EncodeForPath(resolved, out)
	if err != nil {
		return err
	}
	if err := fileutil.WriteOutput(out, data); err != nil {
		a.rep.Debugf("write failed: %v", err)
		return outputNotWritable(out)
	}

	a.rep.Infof("Successfully resolved '%s' into '%s'.", in, out)
	return nil
}
