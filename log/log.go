package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

var (
	InfoLog    = log.New(io.Discard, "", 0)
	WarningLog = log.New(io.Discard, "", 0)
	ErrorLog   = log.New(io.Discard, "", 0)
)

var logFileName = filepath.Join(os.TempDir(), "holdmenu.log")

var globalLogFile *os.File

// Initialize should be called once at the beginning of the program to set up
// logging. Defer Close() after calling this function. The terminal belongs to
// the UI, so everything goes to a file in the temp dir.
func Initialize() {
	f, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		panic(fmt.Sprintf("could not open log file: %s", err))
	}

	fmtS := "%s"
	InfoLog = log.New(f, fmt.Sprintf(fmtS, "INFO:"), log.Ldate|log.Ltime|log.Lshortfile)
	WarningLog = log.New(f, fmt.Sprintf(fmtS, "WARNING:"), log.Ldate|log.Ltime|log.Lshortfile)
	ErrorLog = log.New(f, fmt.Sprintf(fmtS, "ERROR:"), log.Ldate|log.Ltime|log.Lshortfile)

	globalLogFile = f

	InitDebug()
}

// Close flushes the log files. Call it with defer after Initialize.
func Close() {
	CloseDebug()
	if globalLogFile == nil {
		return
	}
	_ = globalLogFile.Close()
	globalLogFile = nil
	fmt.Println("wrote logs to " + logFileName)
}
