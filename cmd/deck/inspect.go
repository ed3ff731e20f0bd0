package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/conn-castle/deck-builder/internal/layout"
	"github.com/conn-castle/deck-builder/internal/messages"
	"github.com/conn-castle/deck-builder/internal/pptx"
)

func newInspectCmd(a *app) *cobra.Command {
	var showLayouts, showSlides bool

	cmd := &cobra.Command{
		Use:   messages.InspectUse,
		Short: messages.InspectShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(); err != nil {
				return err
			}
			pres, err := pptx.Open(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if showLayouts || !showSlides {
				if err := printLayouts(out, pres, a.cfg.LayoutIndices); err != nil {
					return err
				}
			}
			if showSlides {
				if err := printSlides(out, pres); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&showLayouts, "layouts", false, messages.InspectLayoutsFlag)
	cmd.Flags().BoolVar(&showSlides, "slides", false, messages.InspectSlidesFlag)
	return cmd
}

// printLayouts lists every layout with the roles the current indices bind to it.
func printLayouts(out io.Writer, pres *pptx.Presentation, indices map[string]int) error {
	layouts, err := pres.Layouts()
	if err != nil {
		return err
	}
	resolved, warns, err := layout.Resolve(pres, indices)
	if err != nil {
		return err
	}
	roles := make(map[int][]string)
	for _, role := range layout.Roles() {
		l := resolved[role]
		roles[l.Index] = append(roles[l.Index], string(role))
	}

	_, _ = fmt.Fprintln(out, messages.InspectLayoutsHdr)
	for _, l := range layouts {
		suffix := ""
		if names := roles[l.Index]; len(names) > 0 {
			suffix = fmt.Sprintf(messages.InspectRolesFmt, strings.Join(names, ", "))
		}
		_, _ = fmt.Fprintf(out, messages.InspectLayoutFmt, l.Index, l.Name, suffix)
	}
	for _, w := range warns {
		_, _ = fmt.Fprintln(out, w.String())
	}
	return nil
}

func printSlides(out io.Writer, pres *pptx.Presentation) error {
	infos, err := pres.Inspect()
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(out, messages.InspectSlidesHdr)
	for i, info := range infos {
		title := ""
		if len(info.Texts) > 0 {
			title = strings.SplitN(info.Texts[0], "\n", 2)[0]
		}
		_, _ = fmt.Fprintf(out, messages.InspectSlideFmt, i+1, info.Layout, title)
	}
	return nil
}
