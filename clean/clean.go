package clean

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

// Group is an independent set of removal targets. A failure inside one
// group never prevents the other groups from being attempted.
type Group struct {
	Name     string
	Patterns []string
}

// Groups holds the scratch artifacts an experiment run leaves behind in
// its working directory.
var Groups = []Group{
	{
		Name:     "runs",
		Patterns: []string{"input", "output", "plots", "log*"},
	},
	{
		Name:     "pickles",
		Patterns: []string{"*.pickle"},
	},
}

func Run(app App, dir string) error {
	var errSlice []error
	for _, g := range Groups {
		if err := g.Clean(app, dir); err != nil {
			errSlice = append(errSlice, err)
		}
	}
	return multierr.Combine(errSlice...)
}

// Clean removes every glob match of the group, directories and files
// alike. A pattern with no match is not an error.
func (g Group) Clean(app App, dir string) error {
	au := app.GetAurora()
	var errSlice []error
	for _, pattern := range g.Patterns {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			errSlice = append(errSlice, fmt.Errorf("invalid pattern %s in group %s %v", pattern, g.Name, err))
			continue
		}
		for _, match := range matches {
			if err := os.RemoveAll(match); err != nil {
				errSlice = append(errSlice, fmt.Errorf("unable to clean %s %v", match, err))
				continue
			}
			logrus.Debugf("%s %s", au.BrightRed("✘"), match)
		}
	}
	return multierr.Combine(errSlice...)
}
