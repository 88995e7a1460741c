package db_config

import (
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var logLevels = map[string]logger.LogLevel{
	"silent": logger.Silent,
	"error":  logger.Error,
	"warn":   logger.Warn,
	"info":   logger.Info,
}

// GetGormConfig returns a gorm config logging at the named level, warn when unknown.
func GetGormConfig(level string) *gorm.Config {
	logLevel, ok := logLevels[strings.ToLower(level)]
	if !ok {
		logLevel = logger.Warn
	}

	return &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	}
}
