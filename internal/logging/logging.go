package logging

import (
	"go.uber.org/zap"
)

// New builds the application logger. Debug mode switches to the development
// encoder with DEBUG-level output.
func New(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
