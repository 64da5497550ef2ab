package config

import (
	log "github.com/sirupsen/logrus"
)

// ConfigureLogging applies the configured level and formatter to the
// global logrus logger. Unknown levels keep the logrus default.
func ConfigureLogging(cfg LogConfig) {
	if level, err := log.ParseLevel(cfg.Level); err == nil {
		log.SetLevel(level)
	}

	switch cfg.Format {
	case "json":
		log.SetFormatter(&log.JSONFormatter{})
	default:
		log.SetFormatter(&log.TextFormatter{
			TimestampFormat: "02-01-2006 15:04:05",
			FullTimestamp:   true,
		})
	}
}
