package cmd

import (
	"github.com/logrusorgru/aurora"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gitlab.com/evalops/scrub/config"
)

type App interface {
	GetConfig() *config.Config
	GetViper() *viper.Viper
	GetConfigLoader() *config.ConfigLoader
	GetConfigFile() *string
	GetAurora() aurora.Aurora
	GetVersion() string
	OnPreRun(*cobra.Command)
}
