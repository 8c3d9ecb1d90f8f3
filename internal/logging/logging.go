package logging

import (
	"io"
	"log"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Setup routes the tool's own diagnostics to stderr, and additionally to a
// size-rotated file when logFilePath is non-empty.
func Setup(logFilePath string) {
	log.SetFlags(log.LstdFlags)

	if logFilePath == "" {
		log.SetOutput(os.Stderr)
		return
	}

	fileLogger := &lumberjack.Logger{
		Filename:   logFilePath,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     0, // don't delete by age
		Compress:   false,
	}

	log.SetOutput(io.MultiWriter(os.Stderr, fileLogger))
}
