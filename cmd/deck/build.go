package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conn-castle/deck-builder/internal/content"
	"github.com/conn-castle/deck-builder/internal/deckerr"
	"github.com/conn-castle/deck-builder/internal/messages"
	"github.com/conn-castle/deck-builder/internal/profile"
)

func newBuildCmd(a *app) *cobra.Command {
	var name, output string
	var sets []string

	cmd := &cobra.Command{
		Use:   messages.BuildUse,
		Short: messages.BuildShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return errors.New(messages.BuildProfileRequired)
			}
			overrides, err := profile.ParseOverrides(sets)
			if err != nil {
				return err
			}
			if err := a.load(); err != nil {
				return err
			}
			p, err := a.store().Load(name)
			if err != nil {
				return err
			}
			if err := p.Config.ApplyOverrides(overrides); err != nil {
				return err
			}
			domains, err := p.LoadRequirements()
			if err != nil {
				if errors.Is(err, deckerr.ErrInputNotFound) {
					return fmt.Errorf(messages.BuildRequirementsFmt, err, p.Name)
				}
				return err
			}

			asm, err := a.assembler()
			if err != nil {
				return err
			}
			res, err := asm.BuildProfileDeck(p, domains)
			if err != nil {
				return err
			}
			if output == "" {
				output = p.OutputPath()
			}
			summary, err := res.WriteFile(output)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, messages.BuildDoneFmt, summary)
			_, _ = fmt.Fprintf(out, messages.BuildCountsFmt, len(domains), content.RequirementCount(domains))
			a.printWarnings(out, res.Warnings)
			return nil
		},
	}
	cmd.Flags().StringVarP(&name, "profile", "p", "", messages.BuildProfileFlag)
	cmd.Flags().StringVarP(&output, "output", "o", "", messages.BuildOutputFlag)
	cmd.Flags().StringArrayVar(&sets, "set", nil, messages.BuildSetFlag)
	return cmd
}
