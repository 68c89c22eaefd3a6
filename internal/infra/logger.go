package infra

import "go.uber.org/zap"

// NewLogger builds a console logger for development and JSON otherwise.
func NewLogger(development bool) (*zap.Logger, error) {
	if development {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
