package main

import (
	"github.com/dhamidi/comb/ebnf/parse"
	"github.com/dhamidi/comb/lsp"
	"github.com/spf13/cobra"
)

func newLSPCmd() *cobra.Command {
	var tcpAddress string

	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cache, err := parse.NewCache(64)
			if err != nil {
				return err
			}
			defer cache.Close()

			server := lsp.NewServer(version, nil, cache)
			if tcpAddress != "" {
				return server.RunTCP(tcpAddress)
			}
			return server.RunStdio()
		},
	}

	cmd.Flags().StringVar(&tcpAddress, "tcp", "", "listen on this address instead of stdio")

	return cmd
}
