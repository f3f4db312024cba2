// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/decred/slog"
	"github.com/decred/weierstrass/ecdsa"
	"github.com/jrick/logrotate/rotator"
)

// logWriter implements an io.Writer that outputs to standard error and the
// log rotator when it has been initialized.  Standard output is reserved for
// command results.
type logWriter struct{}

func (logWriter) Write(p []byte) (n int, err error) {
	os.Stderr.Write(p)
	if logRotator != nil {
		logRotator.Write(p)
	}
	return len(p), nil
}

var (
	// backendLog is the logging backend used to create all subsystem
	// loggers.
	backendLog = slog.NewBackend(logWriter{})

	// logRotator is one of the logging outputs.  It should be closed on
	// application shutdown.
	logRotator *rotator.Rotator

	log      = backendLog.Logger("ECCT")
	ecdsaLog = backendLog.Logger("ECDS")
)

// Initialize package-global logger variables.
func init() {
	ecdsa.UseLogger(ecdsaLog)
}

// subsystemLoggers maps each subsystem identifier to its associated logger.
var subsystemLoggers = map[string]slog.Logger{
	"ECCT": log,
	"ECDS": ecdsaLog,
}

// logFilename is the name of the log file written to the log directory.
const logFilename = "ecctool.log"

// initLogRotator initializes the logging rotator to write logs to logFile and
// create roll files in the same directory.  It must be called before the
// package-global log rotator variables are used.
func initLogRotator(logFile string) error {
	logDir, _ := filepath.Split(logFile)
	err := os.MkdirAll(logDir, 0700)
	if err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	r, err := rotator.New(logFile, 10*1024, false, 3)
	if err != nil {
		return fmt.Errorf("failed to create file rotator: %w", err)
	}

	logRotator = r
	return nil
}

// setLogLevels sets the logging level of all subsystem loggers to the passed
// level.
func setLogLevels(logLevel string) error {
	level, ok := slog.LevelFromString(logLevel)
	if !ok {
		return fmt.Errorf("invalid debug level %q", logLevel)
	}
	for _, logger := range subsystemLoggers {
		logger.SetLevel(level)
	}
	return nil
}

// supportedSubsystems returns a sorted slice of the supported subsystems for
// logging purposes.
func supportedSubsystems() []string {
	subsystems := make([]string, 0, len(subsystemLoggers))
	for subsysID := range subsystemLoggers {
		subsystems = append(subsystems, subsysID)
	}
	sort.Strings(subsystems)
	return subsystems
}

// setupLogging applies the logging options of the passed config.
func setupLogging(cfg *config) error {
	if cfg.LogDir != "" {
		if err := initLogRotator(filepath.Join(cfg.LogDir, logFilename)); err != nil {
			return err
		}
	}
	if err := setLogLevels(cfg.DebugLevel); err != nil {
		return fmt.Errorf("%w (subsystems: %s)", err,
			strings.Join(supportedSubsystems(), ", "))
	}
	return nil
}
