package main

import (
	"github.com/spf13/cobra"

	"github.com/conn-castle/deck-builder/internal/mcp"
	"github.com/conn-castle/deck-builder/internal/messages"
)

var runToolServer = mcp.RunToolServer

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   messages.ServeUse,
		Short: messages.ServeShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(); err != nil {
				return err
			}
			asm, err := a.assembler()
			if err != nil {
				return err
			}
			return runToolServer(cmd.Context(), Version, mcp.Deps{
				Assembler: asm,
				Profiles:  a.store(),
				Logger:    a.logger,
				NoiseMode: a.cfg.Warnings.NoiseMode,
			})
		},
	}
}
