package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"linguaspark/internal/manager"
	"linguaspark/pkg/types"
)

func newTranslateCmd(a *app) *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:     "translate [text...]",
		Short:   "Translate text given as arguments or on stdin",
		Example: "  linguaspark translate --from en --to de \"Hello world\"\n  echo 'Hallo Welt' | linguaspark translate --to en",
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if len(args) == 0 {
				b, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				text = strings.TrimRight(string(b), "\r\n")
			}
			if strings.TrimSpace(text) == "" {
				return errors.New("nothing to translate")
			}
			if from == "" || from == manager.AutoDetect {
				a.opts.DetectLanguages = true
			}

			st, err := a.buildStack(nil)
			if err != nil {
				return err
			}
			defer st.Close()

			resp, err := st.mgr.Translate(cmd.Context(), types.TranslateRequest{From: from, To: to, Text: text})
			if err != nil {
				return err
			}
			ev := a.log.Debug().Str("from", resp.From).Str("to", resp.To).Bool("cached", resp.Cached)
			if resp.From != from {
				ev = a.log.Info().Str("detected", resp.From)
			}
			ev.Msg("translated")
			_, err = fmt.Fprintln(cmd.OutOrStdout(), resp.Text)
			return err
		},
	}
	cmd.Flags().StringVar(&from, "from", manager.AutoDetect, "Source language code, or auto")
	cmd.Flags().StringVar(&to, "to", "", "Target language code")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}
