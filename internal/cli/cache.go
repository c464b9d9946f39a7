package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

func newCacheCmd(a *app) *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect or purge the translation cache",
		RunE: func(cmd *cobra.Command, args []string) error {
			return fmt.Errorf("cache requires a subcommand: list|purge")
		},
	}

	var from, to string
	var limit uint64
	list := &cobra.Command{
		Use:     "list",
		Short:   "List cached translations, most used first",
		Example: "  linguaspark cache list --cache ~/.cache/linguaspark.db --from en --to de",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.openCache()
			if err != nil {
				return err
			}
			defer c.Close()
			entries, err := c.List(cmd.Context(), from, to, limit)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "FROM\tTO\tHITS\tLAST USED\tSOURCE\tTRANSLATION")
			for _, e := range entries {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%q\t%q\n", e.SrcLang, e.TgtLang, e.Hits, e.LastUsed.Format(time.RFC3339), e.SourceText, e.Translation)
			}
			return tw.Flush()
		},
	}
	list.Flags().StringVar(&from, "from", "", "Only this source language")
	list.Flags().StringVar(&to, "to", "", "Only this target language")
	list.Flags().Uint64Var(&limit, "limit", 50, "Maximum entries (0 for all)")

	var pFrom, pTo string
	purge := &cobra.Command{
		Use:   "purge",
		Short: "Delete cached translations (all, or one direction)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.openCache()
			if err != nil {
				return err
			}
			defer c.Close()
			n, err := c.Purge(cmd.Context(), pFrom, pTo)
			if err != nil {
				return err
			}
			a.log.Info().Int64("deleted", n).Msg("cache purged")
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "deleted %d entries\n", n)
			return err
		},
	}
	purge.Flags().StringVar(&pFrom, "from", "", "Only this source language")
	purge.Flags().StringVar(&pTo, "to", "", "Only this target language")

	cacheCmd.AddCommand(list, purge)
	return cacheCmd
}
