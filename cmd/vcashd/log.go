// Copyright (c) 2018 The ExchangeCoin team
// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/EXCCoin/exccd/addrmgr/v2"
	"github.com/EXCCoin/exccd/connmgr/v3"
	"github.com/EXCCoin/exccd/peer/v3"
	"github.com/VcashCommunity/vcashd/internal/incentive"
	"github.com/VcashCommunity/vcashd/mempool"
	"github.com/VcashCommunity/vcashd/wallet"
	"github.com/decred/slog"
	"github.com/jrick/logrotate/rotator"
)

// logWriter implements an io.Writer that outputs to both standard
// output and the write-end pipe of an initialized log rotator.
type logWriter struct{}

func (logWriter) Write(p []byte) (n int, err error) {
	os.Stdout.Write(p)
	logRotator.Write(p)
	return len(p), nil
}

// logRotator is the log rotator used by all subsystem loggers. It is
// initialized by initLogRotator.
var logRotator *rotator.Rotator

// backendLog is the logging backend used to create all subsystem
// loggers.
var backendLog = slog.NewBackend(logWriter{})

// subsystemLoggers maps each subsystem identifier to its logger, so
// setLogLevels and setLogLevel can look subsystems up by name.
var subsystemLoggers = map[string]slog.Logger{
	"VCSD": backendLog.Logger("VCSD"), // daemon wiring
	"INCT": backendLog.Logger("INCT"), // incentive coordination core
	"MEMP": backendLog.Logger("MEMP"), // mempool
	"WLLT": backendLog.Logger("WLLT"), // wallet
	"ADXR": backendLog.Logger("ADXR"), // address manager
	"PEER": backendLog.Logger("PEER"), // peer connections
	"CMGR": backendLog.Logger("CMGR"), // connection manager
}

func init() {
	incentive.UseLogger(subsystemLoggers["INCT"])
	mempool.UseLogger(subsystemLoggers["MEMP"])
	wallet.UseLogger(subsystemLoggers["WLLT"])
	addrmgr.UseLogger(subsystemLoggers["ADXR"])
	peer.UseLogger(subsystemLoggers["PEER"])
	connmgr.UseLogger(subsystemLoggers["CMGR"])
}

// log is this package's own logger, used by main.go and config.go.
var log = subsystemLoggers["VCSD"]

// initLogRotator initializes the logging rotator to write logs to
// logFile and create roll files in the same directory.
func initLogRotator(logFile string) {
	logDir, _ := filepath.Split(logFile)
	err := os.MkdirAll(logDir, 0700)
	if err != nil {
		os.Stderr.WriteString("failed to create log directory: " + err.Error() + "\n")
		os.Exit(1)
	}
	r, err := rotator.New(logFile, 10*1024, false, 3)
	if err != nil {
		os.Stderr.WriteString("failed to create file rotator: " + err.Error() + "\n")
		os.Exit(1)
	}
	logRotator = r
}

// setLogLevel sets the logging level for provided subsystem. Invalid
// subsystems are ignored.
func setLogLevel(subsystemID string, logLevel string) {
	logger, ok := subsystemLoggers[subsystemID]
	if !ok {
		return
	}
	level, _ := slog.LevelFromString(logLevel)
	logger.SetLevel(level)
}

// setLogLevels sets the log level for every subsystem, used for a
// --debuglevel value applying to all subsystems at once.
func setLogLevels(logLevel string) {
	for subsystemID := range subsystemLoggers {
		setLogLevel(subsystemID, logLevel)
	}
}

var _ io.Writer = logWriter{}
