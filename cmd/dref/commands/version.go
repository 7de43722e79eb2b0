package commands

import (
	"github.com/spf13/cobra"

	"github.com/erraggy/dref"
)

func (a *app) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			a.rep.Infof("dref %s", dref.Version())
			a.rep.Debugf("%s", dref.BuildInfo())
			return nil
		},
	}
}
