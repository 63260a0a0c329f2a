package logging

import (
	"go.uber.org/zap"

	"github.com/PavaniTiago/socioteam-api/internal/config"
)

// NewLogger returns a production logger in production and a development logger otherwise.
func NewLogger(cfg config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
