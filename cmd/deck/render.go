package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/conn-castle/deck-builder/internal/config"
	"github.com/conn-castle/deck-builder/internal/deckerr"
	"github.com/conn-castle/deck-builder/internal/layout"
	"github.com/conn-castle/deck-builder/internal/messages"
)

func newRenderCmd(a *app) *cobra.Command {
	var templatePath, slidesPath, output string
	var layouts []string

	cmd := &cobra.Command{
		Use:   messages.RenderUse,
		Short: messages.RenderShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if slidesPath == "" {
				return errors.New(messages.RenderSlidesRequired)
			}
			if output == "" {
				return errors.New(messages.RenderOutputRequired)
			}
			indices, err := layout.ParseAssignments(layouts)
			if err != nil {
				return err
			}
			if err := a.load(); err != nil {
				return err
			}
			if templatePath == "" {
				templatePath = a.cfg.DefaultTemplate
			}
			if templatePath == "" {
				return errors.New(messages.RenderTemplateRequired)
			}
			templatePath, err = config.Expand(templatePath)
			if err != nil {
				return err
			}
			raws, err := readSlideSpecs(slidesPath)
			if err != nil {
				return err
			}

			asm, err := a.assembler()
			if err != nil {
				return err
			}
			res, err := asm.BuildSpecDeck(templatePath, raws, indices)
			if err != nil {
				return err
			}
			summary, err := res.WriteFile(output)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, messages.BuildDoneFmt, summary)
			a.printWarnings(out, res.Warnings)
			return nil
		},
	}
	cmd.Flags().StringVarP(&templatePath, "template", "t", "", messages.RenderTemplateFlag)
	cmd.Flags().StringVarP(&slidesPath, "slides", "s", "", messages.RenderSlidesFlag)
	cmd.Flags().StringVarP(&output, "output", "o", "", messages.RenderOutputFlag)
	cmd.Flags().StringArrayVar(&layouts, "layout", nil, messages.RenderLayoutFlag)
	return cmd
}

// readSlideSpecs decodes a JSON array of slide spec objects.
func readSlideSpecs(path string) ([]map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(messages.RenderReadSlidesFmt, deckerr.ErrInputNotFound, path, err)
	}
	var raws []map[string]any
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf(messages.RenderParseSlidesFmt, deckerr.ErrFormat, path, err)
	}
	return raws, nil
}
