package main

import (
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nicholasgasior/utf8converter/internal/config"
	"github.com/nicholasgasior/utf8converter/internal/logging"
)

// cli carries state shared by the subcommands once the root pre-run has loaded
// configuration.
type cli struct {
	v   *viper.Viper
	cfg *config.Config
	log *logrus.Logger
}

func newRootCmd() *cobra.Command {
	app := &cli{v: viper.New()}
	var cfgFile string

	root := &cobra.Command{
		Use:   "utf8convert",
		Short: "Convert legacy-encoded text files to UTF-8",
		Long: `utf8convert detects the character encoding of a .txt file and rewrites
its contents as UTF-8 (without a byte order mark).

Detection is statistical. Guesses below 75% confidence are rejected rather
than risk silently corrupting the output.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			used, err := config.Init(app.v, cfgFile)
			if err != nil {
				return err
			}
			app.cfg = config.FromViper(app.v)
			app.log = logging.New(app.cfg.LogLevel, app.cfg.LogFormat, cmd.ErrOrStderr())
			if used != "" {
				app.log.WithField("file", used).Debug("using config file")
			}
			if app.cfg.NoColor {
				color.NoColor = true
			}
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: ./utf8convert.yaml or ~/.config/utf8convert/utf8convert.yaml)")
	flags.String("log-level", "warn", "log level: debug, info, warn, error")
	flags.String("log-format", "text", "log format: text or json")
	flags.Bool("no-color", false, "disable colored output")

	_ = app.v.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))
	_ = app.v.BindPFlag(config.KeyLogFormat, flags.Lookup("log-format"))
	_ = app.v.BindPFlag(config.KeyNoColor, flags.Lookup("no-color"))

	root.AddCommand(newConvertCmd(app), newProbeCmd(app), newVersionCmd())
	return root
}
