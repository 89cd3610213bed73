package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"gitlab.com/evalops/scrub/clean"
	"gitlab.com/evalops/scrub/config"
)

func NewCmd(app App) *cobra.Command {
	cmd := CmdRoot(app)

	cmd.AddCommand(CmdCompletion(app, cmd))
	cmd.AddCommand(CmdVersion(app))

	return cmd
}

func CmdRoot(app App) *cobra.Command {
	cl := app.GetConfigLoader()

	cmd := &cobra.Command{
		Use:           "scrub",
		Short:         "Wipe experiment scratch data from the working directory 🧹",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRun: func(cmd *cobra.Command, args []string) {
			app.OnPreRun(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return err
			}

			confirm := clean.NewConfirm()
			ok, err := confirm.Ask(cwd)
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}

			return clean.Run(app, cwd)
		},
	}

	configFile := app.GetConfigFile()

	pFlags := cmd.PersistentFlags()

	pFlags.StringVarP(configFile, "config", "", os.Getenv(cl.PrefixEnv("CONFIG")), config.FlagConfigDesc)
	pFlags.StringP("log-level", "l", config.FlagLogLevelDefault, config.FlagLogLevelDesc)
	pFlags.StringP("log-type", "", config.FlagLogTypeDefault, config.FlagLogTypeDesc)
	pFlags.BoolP("log-force-colors", "", config.FlagLogForceColorsDefault, config.FlagLogForceColorsDesc)
	pFlags.StringP("cwd", "", "", config.FlagCWDDesc)

	v := app.GetViper()

	v.BindPFlag("CONFIG", pFlags.Lookup("config"))
	v.BindPFlag("LOG_LEVEL", pFlags.Lookup("log-level"))
	v.BindPFlag("LOG_TYPE", pFlags.Lookup("log-type"))
	v.BindPFlag("LOG_FORCE_COLORS", pFlags.Lookup("log-force-colors"))

	v.BindEnv("CONFIG")
	v.BindEnv("LOG_LEVEL")
	v.BindEnv("LOG_TYPE")
	v.BindEnv("LOG_FORCE_COLORS")

	return cmd
}
