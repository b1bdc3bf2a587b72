package types

import (
	"go.uber.org/zap"
)

// Logger represents a logger
type Logger struct {
	*zap.SugaredLogger
	LogsPath string
	Name     string
}
