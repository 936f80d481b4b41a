package cli

import (
	"fmt"

	"github.com/haytac/pidgin-slack-theme/internal/catalog"
	"github.com/haytac/pidgin-slack-theme/internal/theme"
	"github.com/spf13/cobra"
)

// NewDecodeCmd creates the 'decode' command, which prints theme lines for
// unified codepoint strings given on the command line.
func NewDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "decode <unified>...",
		Short:   "Print the theme line for one or more unified codepoint strings",
		Example: "  pidgin-slack-theme decode 1F600 1F468-1F3FB-200D-2695-FE0F",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, unified := range args {
				line, err := theme.BuildLine(catalog.EmojiRecord{Unified: unified})
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), line.String())
			}
			return nil
		},
	}
}
