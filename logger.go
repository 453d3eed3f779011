package main

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

func initLogger(level, format string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return err
	}
	log.SetLevel(lvl)
	log.SetOutput(os.Stdout)

	switch format {
	case "json":
		log.SetFormatter(&log.JSONFormatter{})
	case "text", "":
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	default:
		return fmt.Errorf("unknown log format %q", format)
	}
	return nil
}

// accessLog returns the writer the combined access log goes to. Lines are
// logged at info so they show with the default -log-level.
func accessLog(logger *log.Logger) io.Writer {
	return logger.WriterLevel(log.InfoLevel)
}
