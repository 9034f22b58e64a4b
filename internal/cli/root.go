package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/haytac/emojify/internal/config"
	"github.com/haytac/emojify/internal/logging"
)

var (
	cfgFile string
	AppCfg  *config.AppConfig // populated in PersistentPreRunE
)

var RootCmd = &cobra.Command{
	Use:   "emojify",
	Short: "Resolve emoji shortcodes and render twemoji image markup.",
	Long: `emojify maps :name: shortcodes and raw emoji characters to unicode
codepoints, descriptions, and <img> tags pointing at the twemoji CDN. It can
render text one-shot from the command line or serve lookups over HTTP.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loadedCfg, err := config.LoadConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}
		AppCfg = loadedCfg

		logging.Setup(AppCfg.Log)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml, $HOME/.emojify/config.yaml)")

	RootCmd.AddCommand(NewServeCmd())
	RootCmd.AddCommand(NewRenderCmd())
	RootCmd.AddCommand(NewLookupCmd())
	RootCmd.AddCommand(NewDatasetCmd())
}
