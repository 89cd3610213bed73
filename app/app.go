package app

import (
	"os"

	auroraPackage "github.com/logrusorgru/aurora"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gitlab.com/evalops/scrub/cmd"
	"gitlab.com/evalops/scrub/config"
)

type App struct {
	Config          *config.Config
	ConfigFile      *string
	ConfigEnvPrefix string
	ConfigLoader    *config.ConfigLoader
	Viper           *viper.Viper
	RootCmd         *cobra.Command

	Aurora auroraPackage.Aurora

	Version string
}

func New(version string) *App {
	app := NewApp(version)
	app.RunCmd()
	return app
}

func NewApp(version string) *App {
	app := &App{
		Version: version,
	}

	app.ConfigEnvPrefix = "SCRUB"

	var configFile string
	app.ConfigFile = &configFile

	app.ConfigLoader = config.NewConfigLoader()
	app.ConfigLoader.SetEnvPrefix(app.ConfigEnvPrefix)
	app.ConfigLoader.SetFile(app.ConfigFile)
	app.Config = app.ConfigLoader.Config
	app.Viper = app.ConfigLoader.Viper

	return app
}

func (app *App) GetViper() *viper.Viper {
	return app.ConfigLoader.GetViper()
}

func (app *App) GetConfig() *config.Config {
	return app.ConfigLoader.GetConfig()
}

func (app *App) GetVersion() string {
	return app.Version
}

func (app *App) GetConfigLoader() *config.ConfigLoader {
	return app.ConfigLoader
}

func (app *App) GetConfigFile() *string {
	return app.ConfigFile
}

func (app *App) OnInitialize() {
	app.ConfigLoader.OnInitialize()
	app.InitAurora()
}

func (app *App) InitAurora() {
	var enableColors bool
	if app.Config.LogForceColors {
		enableColors = true
	} else {
		enableColors = isatty.IsTerminal(os.Stdout.Fd())
	}
	app.Aurora = auroraPackage.NewAurora(enableColors)
}

func (app *App) GetAurora() auroraPackage.Aurora {
	return app.Aurora
}

func (app *App) OnPreRun(cmd *cobra.Command) {
	app.ConfigLoader.OnPreRun(cmd)
}

func (app *App) RunCmd() {
	cobra.OnInitialize(app.OnInitialize)

	RootCmd := cmd.NewCmd(app)
	app.RootCmd = RootCmd
	app.ConfigLoader.RootCmd = RootCmd

	if err := RootCmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}
