package cli

import (
	"fmt"

	"github.com/haytac/pidgin-slack-theme/internal/catalog"
	"github.com/haytac/pidgin-slack-theme/internal/shortcode"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewCheckCmd creates the 'check' command.
func NewCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Compare catalog glyphs with the emoji shortcode table",
		Long: `check decodes every catalog record and compares the result with the glyph the
kyokomi/emoji shortcode table lists for the record's short_name. Mismatches are
reported but do not fail the command; load and decode errors do.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if AppCfg == nil {
				return fmt.Errorf("configuration not loaded")
			}
			records, err := catalog.NewLoader(Fs).LoadRecords(AppCfg.InputPath)
			if err != nil {
				return err
			}

			rep, err := shortcode.Check(records, shortcode.NewTable())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, m := range rep.Mismatches {
				fmt.Fprintf(out, "MISMATCH :%s: %s catalog=%q table=%q\n", m.ShortName, m.Unified, m.Catalog, m.Known)
			}
			fmt.Fprintf(out, "Checked %d records: %d matched, %d mismatched, %d not in table.\n",
				rep.Checked, rep.Matched, len(rep.Mismatches), rep.Unknown)
			log.Debug().Int("checked", rep.Checked).Int("mismatched", len(rep.Mismatches)).Msg("Catalog check finished")
			return nil
		},
	}
}
