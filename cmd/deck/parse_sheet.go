package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conn-castle/deck-builder/internal/content"
	"github.com/conn-castle/deck-builder/internal/coverage"
	"github.com/conn-castle/deck-builder/internal/messages"
	"github.com/conn-castle/deck-builder/internal/spreadsheet"
)

var extractFile = spreadsheet.ExtractFile

func newParseSheetCmd(a *app) *cobra.Command {
	var output, name string
	var apply bool

	cmd := &cobra.Command{
		Use:   messages.ParseSheetUse,
		Short: messages.ParseSheetShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if apply && name == "" {
				return errors.New(messages.ParseSheetApplyNeedsPro)
			}
			if err := a.load(); err != nil {
				return err
			}
			res, err := extractFile(args[0], a.logger)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			summary := coverage.Summarize(res.Domains)
			_, _ = fmt.Fprintf(out, messages.ParseSheetTotalsFmt, len(summary.Rows), summary.Total.Total)
			for _, row := range summary.Rows {
				_, _ = fmt.Fprintln(out, coverage.DomainLine(row))
			}

			if output != "" {
				if err := content.Save(output, res.Domains); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(out, messages.ParseSheetSavedFmt, output)
			}

			if name != "" {
				p, err := a.store().Load(name)
				if err != nil {
					return err
				}
				diff, err := p.PreviewRequirements(res.Domains)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintln(out)
				_, _ = fmt.Fprintln(out, diff)
				if apply {
					if err := p.SaveRequirements(res.Domains); err != nil {
						return err
					}
					_, _ = fmt.Fprintf(out, messages.ParseSheetSavedFmt, p.RequirementsPath())
				} else if diff != messages.ProfileDiffNoChanges {
					_, _ = fmt.Fprintln(out, messages.ParseSheetApplyHint)
				}
			}

			a.printWarnings(out, res.Warnings)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", messages.ParseSheetOutputFlag)
	cmd.Flags().StringVarP(&name, "profile", "p", "", messages.ParseSheetProfileFlag)
	cmd.Flags().BoolVar(&apply, "apply", false, messages.ParseSheetApplyFlag)
	return cmd
}
