/*
* Copyright (c) 2024-present unTill Pro, Ltd.
 */

package main

import (
	"github.com/spf13/cobra"

	"github.com/voedger/xdrgen/pkg/cobrau"
	"github.com/voedger/xdrgen/pkg/config"
)

// load reads the config. Its log level applies unless -v or --trace is given
func (p *xdrgenParams) load(cmd *cobra.Command) error {
	cfg, err := config.Load(p.ConfigFile)
	if err != nil {
		return err
	}
	p.cfg = cfg
	if cobrau.LogFlagsChanged(cmd) {
		return nil
	}
	return cfg.ApplyLogLevel()
}

// stringFlag returns the flag value if it is given, def otherwise
func stringFlag(cmd *cobra.Command, name string, value string, def string) string {
	if cmd.Flags().Changed(name) {
		return value
	}
	return def
}
