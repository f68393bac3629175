package log

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

func InitLogger(verbose bool) {
	InitLoggerWithOutput(verbose, os.Stderr)
}

// InitLoggerWithOutput configures Log to write to out
func InitLoggerWithOutput(verbose bool, out io.Writer) {
	Log.SetOutput(out)
	Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if verbose {
		Log.SetLevel(logrus.DebugLevel)
		Log.Debugln("Verbose (debug) logging enabled")
	} else {
		Log.SetLevel(logrus.WarnLevel)
	}
}

var (
	FgGreen = color.New(color.FgGreen).SprintfFunc()
	FgRed   = color.New(color.FgRed).SprintfFunc()
	FgCyan  = color.New(color.FgCyan).SprintfFunc()
)
