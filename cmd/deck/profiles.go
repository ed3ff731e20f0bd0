package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conn-castle/deck-builder/internal/config"
	"github.com/conn-castle/deck-builder/internal/deckerr"
	"github.com/conn-castle/deck-builder/internal/messages"
	"github.com/conn-castle/deck-builder/internal/profile"
	"github.com/conn-castle/deck-builder/internal/wizard"
)

func newProfilesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   messages.ProfilesUse,
		Short: messages.ProfilesShort,
	}
	cmd.AddCommand(newProfilesListCmd(a), newProfilesShowCmd(a), newProfilesNewCmd(a))
	return cmd
}

func newProfilesListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   messages.ProfilesListUse,
		Short: messages.ProfilesListShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(); err != nil {
				return err
			}
			store := a.store()
			list, err := store.List()
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), profile.Listing(store.Root, list))
			return nil
		},
	}
}

func newProfilesShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   messages.ProfilesShowUse,
		Short: messages.ProfilesShowShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(); err != nil {
				return err
			}
			p, err := a.store().Load(args[0])
			if err != nil {
				return err
			}
			tmpl, err := p.TemplatePath()
			if err != nil {
				tmpl = err.Error()
			}
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, messages.ProfilesShowDirFmt, p.Dir, p.ConfigPath, tmpl, p.OutputPath())

			report, err := p.Report()
			if errors.Is(err, deckerr.ErrInputNotFound) {
				_, _ = fmt.Fprintln(out, messages.ProfileNoRequirements)
				return nil
			}
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(out, report)
			return nil
		},
	}
}

func newProfilesNewCmd(a *app) *cobra.Command {
	var opts profile.CreateOptions

	cmd := &cobra.Command{
		Use:   messages.ProfilesNewUse,
		Short: messages.ProfilesNewShort,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(); err != nil {
				return err
			}
			if len(args) == 1 {
				opts.Name = args[0]
			}
			if opts.TemplatePath == "" {
				opts.TemplatePath = a.cfg.DefaultTemplate
			}
			if opts.TemplatePath != "" {
				expanded, err := config.Expand(opts.TemplatePath)
				if err != nil {
					return err
				}
				opts.TemplatePath = expanded
			}

			out := cmd.OutOrStdout()
			store := a.store()
			var p *profile.Profile
			var err error
			switch {
			case opts.Name != "" && opts.TemplatePath != "":
				p, err = store.Create(opts)
			case isInteractive():
				p, err = wizard.NewProfile(newWizardUI(), store, opts, out)
			default:
				return errors.New(messages.ProfilesNewMissing)
			}
			if err != nil {
				return err
			}
			if p != nil {
				_, _ = fmt.Fprintln(out, profile.CreatedMessage(p))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&opts.TemplatePath, "template", "t", "", messages.ProfilesNewTplFlag)
	cmd.Flags().StringVar(&opts.DeckTitle, "title", "", messages.ProfilesNewTitle)
	cmd.Flags().StringVar(&opts.ScreenshotsDir, "screenshots", "", messages.ProfilesNewShots)
	return cmd
}
