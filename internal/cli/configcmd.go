package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"linguaspark/pkg/bergamot"
)

func newConfigCmd(a *app) *cobra.Command {
	var skipValidate bool
	cmd := &cobra.Command{
		Use:     "config <model-dir>",
		Short:   "Print the native engine config synthesized for a model directory",
		Example: "  linguaspark config ~/models/bergamot/ende",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := bergamot.ResolveDir(args[0])
			if err != nil {
				return err
			}
			if !skipValidate {
				if err := files.Validate(); err != nil {
					return err
				}
			}
			a.log.Debug().Str("model", files.Model).Str("shortlist", files.Shortlist).Msg("resolved model dir")
			_, err = fmt.Fprint(cmd.OutOrStdout(), files.Config())
			return err
		},
	}
	cmd.Flags().BoolVar(&skipValidate, "no-validate", false, "Print even when some model files are missing")
	return cmd
}
