package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/haytac/emojify/internal/app"
)

// NewRenderCmd creates the render command.
func NewRenderCmd() *cobra.Command {
	var (
		byChar  bool
		classes []string
	)

	cmd := &cobra.Command{
		Use:   "render [text...]",
		Short: "Replace :name: tokens in text with CDN image tags",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if AppCfg == nil {
				return fmt.Errorf("configuration not loaded")
			}

			resolver, err := app.NewResolver(cmd.Context(), AppCfg)
			if err != nil {
				return err
			}

			text := strings.Join(args, " ")
			fmt.Fprintln(cmd.OutOrStdout(), resolver.Replace(text, !byChar, classes...))
			return nil
		},
	}

	cmd.Flags().BoolVar(&byChar, "by-char", false, "treat matched tokens as raw emoji characters instead of names")
	cmd.Flags().StringArrayVar(&classes, "class", nil, "CSS class for generated <img> tags (repeatable)")
	return cmd
}
