package config

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

type LogFormatter struct {
	NativeTextFormatter *logrus.TextFormatter
}

func (f *LogFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	// dealing with ansi color codes directly is required to keep the colored
	// output on the log level icons
	var levelColor int
	var icon string
	switch entry.Level {
	case logrus.DebugLevel, logrus.TraceLevel:
		levelColor = 31 // gray
		icon = "🐝"
	case logrus.WarnLevel:
		levelColor = 33 // yellow
		icon = "🛆"
	case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
		levelColor = 31 // red
		icon = "⮾"
	default:
		levelColor = 36 // blue
		icon = "🛈"
	}
	return []byte(fmt.Sprintf("\x1b[%dm%s \x1b[0m %s\n", levelColor, icon, entry.Message)), nil
}
