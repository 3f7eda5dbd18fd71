// Package logging builds the zap loggers used by the commands.
package logging

import (
	"go.uber.org/zap"
)

// New returns a development logger when debug is set and a production
// logger otherwise. A non-empty path sends all output to that file, which
// keeps interactive frontends from drawing over their own screen.
func New(debug bool, path string) (*zap.Logger, error) {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}
	if path != "" {
		cfg.OutputPaths = []string{path}
		cfg.ErrorOutputPaths = []string{path}
	}
	return cfg.Build()
}
