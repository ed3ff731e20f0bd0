package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conn-castle/deck-builder/internal/config"
	"github.com/conn-castle/deck-builder/internal/doctor"
	"github.com/conn-castle/deck-builder/internal/messages"
	"github.com/conn-castle/deck-builder/internal/profile"
)

func newDoctorCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   messages.DoctorUse,
		Short: messages.DoctorShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			path, err := a.configPath()
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(out, messages.DoctorHealthCheckFmt, path)

			// 1. Config
			results, cfg := doctor.CheckConfig(path)

			if cfg != nil {
				paths, err := config.ResolvePaths(path, cfg)
				if err != nil {
					return err
				}
				// 2. Profiles directory
				results = append(results, doctor.CheckProfilesDir(paths.ProfilesDir))

				// 3. Default template
				if cfg.DefaultTemplate != "" {
					tmpl, err := config.Expand(cfg.DefaultTemplate)
					if err != nil {
						return err
					}
					results = append(results, doctor.CheckTemplate(messages.DoctorDefaultTemplateLabel, tmpl, cfg.LayoutIndices))
				}

				// 4. Every profile
				results = append(results, doctor.CheckProfiles(profile.NewStore(paths.ProfilesDir), cfg.LayoutIndices)...)
			}

			for _, r := range results {
				printResult(out, r)
			}
			if doctor.HasFailure(results) {
				_, _ = fmt.Fprintln(out, color.RedString(messages.DoctorFailureSummary))
				return errors.New(messages.DoctorFailureError)
			}
			_, _ = fmt.Fprintln(out, color.GreenString(messages.DoctorSuccessSummary))
			return nil
		},
	}
}

func printResult(out io.Writer, r doctor.Result) {
	var status string
	switch r.Status {
	case doctor.StatusOK:
		status = color.GreenString(messages.DoctorStatusOKLabel)
	case doctor.StatusWarn:
		status = color.YellowString(messages.DoctorStatusWarnLabel)
	case doctor.StatusFail:
		status = color.RedString(messages.DoctorStatusFailLabel)
	}

	_, _ = fmt.Fprintf(out, messages.DoctorResultLineFmt, status, r.CheckName, r.Message)
	if r.Recommendation != "" {
		printRecommendation(out, r.Recommendation)
	}
}

// printRecommendation renders a multi-line recommendation with consistent indentation.
func printRecommendation(out io.Writer, recommendation string) {
	for i, line := range strings.Split(recommendation, "\n") {
		if i == 0 {
			_, _ = fmt.Fprintf(out, "%s%s\n", messages.DoctorRecommendationPrefix, line)
			continue
		}
		_, _ = fmt.Fprintf(out, "%s%s\n", messages.DoctorRecommendationIndent, line)
	}
}
