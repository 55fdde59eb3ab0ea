// Copyright (c) 2018 The ExchangeCoin team
// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command vcashd runs the incentive coordination core as a standalone
// daemon process: the leader-election and collateral-proof loops, and
// the TCP/UDP relay paths that feed and broadcast incentive votes.
package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"

	"github.com/EXCCoin/exccd/addrmgr/v2"
	"github.com/EXCCoin/exccd/connmgr/v3"
	"github.com/EXCCoin/exccd/dcrec/secp256k1/v4"
	"github.com/EXCCoin/exccd/dcrutil/v4"
	"github.com/VcashCommunity/vcashd/internal/incentive"
	"github.com/VcashCommunity/vcashd/mempool"
	"github.com/VcashCommunity/vcashd/wallet"
)

// zeroUTXOSource is a UTXOSource with no confirmed outputs; it exists
// so the mempool's probe path has something concrete to query until
// this daemon is wired to an actual chain-indexing component, which is
// outside the incentive coordination core's scope.
type zeroUTXOSource struct{}

func (zeroUTXOSource) LookupUTXO(mempool.Outpoint) (int64, bool) { return 0, false }

func run() error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	initLogRotator(cfg.LogDir + string(os.PathSeparator) + defaultLogFilename)
	setLogLevels(cfg.DebugLevel)

	priv, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return fmt.Errorf("failed to generate wallet key: %w", err)
	}
	w := wallet.New(priv)

	pool := mempool.New(zeroUTXOSource{})
	addrBook := addrmgr.New()
	chain := newChainView()

	var udpConn *net.UDPConn
	for _, laddr := range cfg.Listeners {
		if udpAddr, err := net.ResolveUDPAddr("udp", laddr); err == nil {
			if conn, err := net.ListenUDP("udp", udpAddr); err == nil {
				udpConn = conn
				break
			}
		}
	}
	cm := connmgr.New(udpConn)

	collateralAtoms, err := dcrutil.NewAmount(cfg.Collateral)
	if err != nil {
		return fmt.Errorf("invalid collateral amount: %w", err)
	}

	mgr := incentive.NewManager(incentive.ManagerConfig{
		Chain:           chain,
		AddrBook:        addrBookAdapter{m: addrBook},
		Wallet:          walletAdapter{w: w},
		Mempool:         mempoolAdapter{p: pool},
		Peers:           peerManagerAdapter{cm: cm},
		CollateralAtoms: collateralAtoms,
		Enabled:         cfg.IncentiveEnabled,
		ElectionK:       cfg.ElectionK,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mgr.Start(ctx)
	defer mgr.Stop()

	log.Infof("vcashd started, incentive coordination enabled = %v", cfg.IncentiveEnabled)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	<-sigCh

	log.Infof("vcashd shutting down")
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
