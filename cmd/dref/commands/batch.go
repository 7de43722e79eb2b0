package commands

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/erraggy/dref/codec"
	"github.com/erraggy/dref/internal/fileutil"
)

func (a *app) batchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "batch <out-dir> <input>...",
		Short: "Resolve several documents concurrently",
		Long: `Resolve each input concurrently and write the result into <out-dir> under
the input's own file name. Nothing is written unless every input resolves.
The number of workers is set by batch.workers (default: one per CPU).`,
		Example: `  dref batch resolved/ api.yaml events.yaml`,
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.batch(cmd.Context(), args[0], args[1:])
		},
	}
}

func (a *app) batch(ctx context.Context, outDir string, inputs []string) error {
	outputs, err := fileutil.OutputPaths(outDir, inputs)
	if err != nil {
		return err
	}
	r, err := a.newResolver()
	if err != nil {
		return err
	}

	a.rep.Debugf("Resolving %d documents into '%s'", len(inputs), outDir)
	docs, err := r.ResolveFiles(ctx, inputs, a.externalOnly())
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outDir, fileutil.OwnerDir); err != nil {
		return outputNotWritable(outDir)
	}
	for i, doc := range docs {
		data, err := codec.EncodeForPath(doc, outputs[i])
		if err != nil {
			return err
		}
		if err := fileutil.WriteOutput(outputs[i], data); err != nil {
			return outputNotWritable(outputs[i])
		}
		a.rep.Infof("Successfully resolved '%s' into '%s'.", inputs[i], outputs[i])
	}
	return nil
}
