package plotter

import (
	"os"

	"github.com/hashicorp/go-hclog"
)

var logger hclog.Logger = hclog.New(&hclog.LoggerOptions{
	Name:   "plotter",
	Output: os.Stderr,
	Level:  hclog.Info,
})

// SetLogger replaces the package logger. A nil logger silences output.
func SetLogger(l hclog.Logger) {
	if l == nil {
		l = hclog.NewNullLogger()
	}
	logger = l
}

// Logger returns the package logger.
func Logger() hclog.Logger { return logger }
