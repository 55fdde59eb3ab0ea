// Copyright (c) 2018 The ExchangeCoin team
// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/EXCCoin/exccd/dcrutil/v4"
	"github.com/jessevdk/go-flags"
)

const (
	defaultConfigFilename = "vcashd.conf"
	defaultLogFilename    = "vcashd.log"
	defaultDataDirname    = "data"
	defaultLogDirname     = "logs"
	defaultDebugLevel     = "info"

	// defaultCollateralCoins is the self-collateral requirement in
	// whole coins; 0 disables the collateral prover entirely.
	defaultCollateralCoins = 5000.0

	// defaultElectionK is the number of nearest endpoints the election
	// loop ranks before applying the parity rule, matching spec.md
	// §4.1/§4.6 step 4's stated K=2.
	defaultElectionK = 2
)

var (
	defaultHomeDir   = dcrutil.AppDataDir("vcashd", false)
	defaultConfigFile = filepath.Join(defaultHomeDir, defaultConfigFilename)
	defaultDataDir    = filepath.Join(defaultHomeDir, defaultDataDirname)
	defaultLogDir     = filepath.Join(defaultHomeDir, defaultLogDirname)
)

// config defines the configuration options for vcashd.
//
// See loadConfig for details on the configuration load process.
type config struct {
	ConfigFile string `short:"C" long:"configfile" description:"Path to configuration file"`
	HomeDir    string `short:"A" long:"appdata" description:"Path to application home directory"`
	DataDir    string `short:"b" long:"datadir" description:"Directory to store data"`
	LogDir     string `long:"logdir" description:"Directory to log output"`
	DebugLevel string `short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical}"`

	// Incentive coordination core options.
	IncentiveEnabled bool    `long:"incentive" description:"Enable incentive coordination (leader election, vote tally, collateral proof)"`
	Collateral       float64 `long:"collateral" description:"Required self-collateral, in coins, to participate in leader election"`
	ElectionK        int     `long:"electionk" description:"Number of nearest peers considered by the election loop"`

	Listeners []string `long:"listen" description:"Add an interface/port to listen for connections"`
}

// cleanAndExpandPath expands environment variables and leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	if path == "" {
		return path
	}
	if path[0] == '~' {
		homeDir := filepath.Dir(defaultHomeDir)
		path = filepath.Join(homeDir, path[1:])
	}
	return filepath.Clean(os.ExpandEnv(path))
}

// loadConfig initializes and parses the config using a config file and
// command line options, in the conventional precedence order (flags
// override config file values, both override the compiled-in
// defaults).
func loadConfig() (*config, []string, error) {
	cfg := config{
		HomeDir:          defaultHomeDir,
		ConfigFile:       defaultConfigFile,
		DataDir:          defaultDataDir,
		LogDir:           defaultLogDir,
		DebugLevel:       defaultDebugLevel,
		Collateral:       defaultCollateralCoins,
		ElectionK:        defaultElectionK,
		IncentiveEnabled: true,
	}

	preCfg := cfg
	preParser := flags.NewParser(&preCfg, flags.Default)
	_, err := preParser.Parse()
	if err != nil {
		var flagsErr *flags.Error
		if ok := asFlagsError(err, &flagsErr); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		return nil, nil, err
	}

	if preCfg.HomeDir != "" {
		cfg.HomeDir = cleanAndExpandPath(preCfg.HomeDir)
		if preCfg.ConfigFile == defaultConfigFile {
			cfg.ConfigFile = filepath.Join(cfg.HomeDir, defaultConfigFilename)
		}
	}

	parser := flags.NewParser(&cfg, flags.Default)
	if _, err := os.Stat(preCfg.ConfigFile); err == nil {
		err = flags.NewIniParser(parser).ParseFile(preCfg.ConfigFile)
		if err != nil {
			var iniErr *os.PathError
			if ok := asPathError(err, &iniErr); !ok {
				return nil, nil, err
			}
		}
	}

	remainingArgs, err := parser.Parse()
	if err != nil {
		var flagsErr *flags.Error
		if ok := asFlagsError(err, &flagsErr); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		return nil, nil, err
	}

	cfg.DataDir = cleanAndExpandPath(cfg.DataDir)
	cfg.LogDir = cleanAndExpandPath(cfg.LogDir)

	if cfg.Collateral < 0 {
		return nil, nil, fmt.Errorf("collateral must not be negative")
	}
	if cfg.ElectionK < 2 {
		return nil, nil, fmt.Errorf("electionk must be at least 2")
	}

	return &cfg, remainingArgs, nil
}

func asFlagsError(err error, target **flags.Error) bool {
	fe, ok := err.(*flags.Error)
	if ok {
		*target = fe
	}
	return ok
}

func asPathError(err error, target **os.PathError) bool {
	pe, ok := err.(*os.PathError)
	if ok {
		*target = pe
	}
	return ok
}
