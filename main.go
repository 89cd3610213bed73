package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	scrubApp "gitlab.com/evalops/scrub/app"
	"gitlab.com/evalops/scrub/cmd"
)

var Version string

func main() {
	app := scrubApp.NewApp(Version)
	cobra.OnInitialize(app.OnInitialize)

	RootCmd := cmd.NewCmd(app)
	app.RootCmd = RootCmd
	app.ConfigLoader.RootCmd = RootCmd

	if err := RootCmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}
