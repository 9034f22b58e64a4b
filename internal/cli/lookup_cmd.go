package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/haytac/emojify/internal/app"
	"github.com/haytac/emojify/internal/emoji"
	"github.com/haytac/emojify/internal/metrics"
)

// NewLookupCmd creates the lookup command.
func NewLookupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup <token|character>",
		Short: "Show unicode, description, and CDN URL for one emoji",
		Long: `Looks up a single emoji. Arguments wrapped in colons (or bare names) go
through the name index; anything else is treated as a raw emoji character.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if AppCfg == nil {
				return fmt.Errorf("configuration not loaded")
			}

			resolver, err := app.NewResolver(cmd.Context(), AppCfg)
			if err != nil {
				return err
			}

			arg := args[0]
			byName := isNameArg(arg)
			if byName && !strings.HasPrefix(arg, ":") {
				arg = ":" + arg + ":"
			}

			var unicode, description string
			if byName {
				unicode, err = resolver.UnicodeForName(arg)
				if err == nil {
					description, err = resolver.DescriptionForName(arg)
				}
			} else {
				unicode = emoji.UnicodeForChar(arg)
				description, err = resolver.DescriptionForChar(arg)
			}
			if err != nil {
				metrics.Lookups.WithLabelValues("miss").Inc()
				return err
			}
			metrics.Lookups.WithLabelValues("hit").Inc()

			url, err := resolver.URL(arg, byName)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "unicode:     %s\n", unicode)
			fmt.Fprintf(out, "description: %s\n", description)
			fmt.Fprintf(out, "url:         %s\n", url)
			return nil
		},
	}
	return cmd
}

// isNameArg reports whether the argument should go through the name index:
// a :name: token or a bare shortcode spelled with the token charset.
func isNameArg(arg string) bool {
	trimmed := strings.Trim(arg, ":")
	if trimmed == "" {
		return false
	}
	for _, r := range trimmed {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
		default:
			return false
		}
	}
	return true
}
