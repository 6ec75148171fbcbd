// Package log holds the application's file loggers.
package log

import (
	"fmt"
	"io"
	stdlog "log"
	"os"
	"path/filepath"

	charmlog "github.com/charmbracelet/log"
)

var (
	WarningLog = stdlog.New(io.Discard, "", 0)
	InfoLog    = stdlog.New(io.Discard, "", 0)
	ErrorLog   = stdlog.New(io.Discard, "", 0)
)

var logFileName = filepath.Join(os.TempDir(), "switcherpanel.log")

var (
	globalLogFile *os.File
	logger        = charmlog.New(io.Discard)
)

// Initialize opens the log file and wires the package loggers to it. Call
// Close when the program exits.
func Initialize() {
	f, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		panic(fmt.Sprintf("could not open log file: %s", err))
	}

	logger = charmlog.NewWithOptions(f, charmlog.Options{
		ReportTimestamp: true,
		Level:           charmlog.DebugLevel,
		Prefix:          "switcherpanel",
	})

	InfoLog = logger.StandardLog(charmlog.StandardLogOptions{ForceLevel: charmlog.InfoLevel})
	WarningLog = logger.StandardLog(charmlog.StandardLogOptions{ForceLevel: charmlog.WarnLevel})
	ErrorLog = logger.StandardLog(charmlog.StandardLogOptions{ForceLevel: charmlog.ErrorLevel})

	globalLogFile = f
	InitDebug()
}

// Close flushes and closes the log file.
func Close() {
	CloseDebug()
	if globalLogFile == nil {
		return
	}
	_ = globalLogFile.Close()
	globalLogFile = nil
	fmt.Println("wrote logs to " + logFileName)
}

// Logger returns the structured logger behind the package loggers.
func Logger() *charmlog.Logger {
	return logger
}

// FileName returns the path of the log file.
func FileName() string {
	return logFileName
}
