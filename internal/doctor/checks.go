// Package doctor runs health checks over the tool config, profiles, and templates.
package doctor

import (
	"errors"
	"fmt"
	"os"

	"github.com/conn-castle/deck-builder/internal/config"
	"github.com/conn-castle/deck-builder/internal/content"
	"github.com/conn-castle/deck-builder/internal/layout"
	"github.com/conn-castle/deck-builder/internal/messages"
	"github.com/conn-castle/deck-builder/internal/pptx"
	"github.com/conn-castle/deck-builder/internal/profile"
)

// Status is the outcome of one check.
type Status string

const (
	StatusOK   Status = "OK"
	StatusWarn Status = "WARN"
	StatusFail Status = "FAIL"
)

// Result is one line of the doctor report.
type Result struct {
	Status         Status
	CheckName      string
	Message        string
	Recommendation string
}

var (
	readFileFunc       = os.ReadFile
	parseLenientFunc   = config.ParseLenient
	sanitizeFunc       = pptx.Sanitize
	loadRequirementsFn = content.Load
)

// CheckConfig loads the config at path. When strict loading fails on validation
// but lenient parsing works, the result is a FAIL together with the lenient config
// so the remaining checks still run. A nil config means nothing usable loaded.
func CheckConfig(path string) ([]Result, *config.Config) {
	data, err := readFileFunc(path)
	if errors.Is(err, os.ErrNotExist) {
		return []Result{{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNameConfig,
			Message:        fmt.Sprintf(messages.DoctorConfigMissingFmt, path),
			Recommendation: messages.DoctorConfigMissingRecommend,
		}}, config.Default()
	}
	if err != nil {
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameConfig,
			Message:        fmt.Sprintf(messages.DoctorConfigLoadFailedFmt, err),
			Recommendation: messages.DoctorConfigLoadRecommend,
		}}, nil
	}

	cfg, err := config.Parse(data, path)
	if err == nil {
		return []Result{{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNameConfig,
			Message:   fmt.Sprintf(messages.DoctorConfigLoadedFmt, path),
		}}, cfg
	}
	if !errors.Is(err, config.ErrConfigValidation) {
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameConfig,
			Message:        fmt.Sprintf(messages.DoctorConfigLoadFailedFmt, err),
			Recommendation: messages.DoctorConfigLoadRecommend,
		}}, nil
	}

	lenient, lenientErr := parseLenientFunc(data, path)
	if lenientErr != nil {
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameConfig,
			Message:        fmt.Sprintf(messages.DoctorConfigLoadFailedFmt, lenientErr),
			Recommendation: messages.DoctorConfigLoadRecommend,
		}}, nil
	}
	return []Result{{
		Status:         StatusFail,
		CheckName:      messages.DoctorCheckNameConfig,
		Message:        fmt.Sprintf(messages.DoctorConfigLoadFailedFmt, err),
		Recommendation: messages.DoctorConfigLoadLenientRecommend,
	}}, lenient
}

// CheckProfilesDir verifies the profiles directory exists.
func CheckProfilesDir(dir string) Result {
	info, err := os.Stat(dir)
	if err != nil {
		return Result{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNameProfilesDir,
			Message:        fmt.Sprintf(messages.DoctorProfilesDirMissingFmt, dir),
			Recommendation: messages.DoctorProfilesDirRecommend,
		}
	}
	if !info.IsDir() {
		return Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameProfilesDir,
			Message:        fmt.Sprintf(messages.DoctorProfilesDirNotDirFmt, dir),
			Recommendation: messages.DoctorProfilesDirNotDirFix,
		}
	}
	names, err := profile.NewStore(dir).Names()
	if err != nil {
		return Result{
			Status:    StatusFail,
			CheckName: messages.DoctorCheckNameProfilesDir,
			Message:   fmt.Sprintf(messages.DoctorProfilesListFailedFmt, err),
		}
	}
	return Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameProfilesDir,
		Message:   fmt.Sprintf(messages.DoctorProfilesFoundFmt, len(names), dir),
	}
}

// CheckTemplate sanitizes the template at path and resolves layout roles against it.
// label names the template in the report.
func CheckTemplate(label, path string, indices map[string]int) Result {
	pres, err := sanitizeFunc(path)
	if err != nil {
		return Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameTemplate,
			Message:        fmt.Sprintf(messages.DoctorTemplateFailedFmt, label, err),
			Recommendation: messages.DoctorTemplateFailedRecommend,
		}
	}
	layouts, err := pres.Layouts()
	if err != nil {
		return Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameTemplate,
			Message:        fmt.Sprintf(messages.DoctorTemplateFailedFmt, label, err),
			Recommendation: messages.DoctorTemplateFailedRecommend,
		}
	}
	_, warns, err := layout.Resolve(pres, indices)
	if err != nil {
		return Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameTemplate,
			Message:        fmt.Sprintf(messages.DoctorTemplateFailedFmt, label, err),
			Recommendation: messages.DoctorTemplateFailedRecommend,
		}
	}
	if len(warns) > 0 {
		rec := fmt.Sprintf(messages.DoctorTemplateWarnRecommendFmt, path)
		for _, w := range warns {
			rec += "\n" + w.Message
		}
		return Result{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNameTemplate,
			Message:        fmt.Sprintf(messages.DoctorTemplateWarnFmt, label, len(layouts), len(warns)),
			Recommendation: rec,
		}
	}
	return Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameTemplate,
		Message:   fmt.Sprintf(messages.DoctorTemplateOKFmt, label, len(layouts)),
	}
}

// CheckProfiles loads every profile and checks its template and requirements.
// globalIndices are the tool-level layout overrides the profile's own indices extend.
func CheckProfiles(store profile.Store, globalIndices map[string]int) []Result {
	names, err := store.Names()
	if err != nil {
		return []Result{{
			Status:    StatusFail,
			CheckName: messages.DoctorCheckNameProfile,
			Message:   fmt.Sprintf(messages.DoctorProfilesListFailedFmt, err),
		}}
	}
	var results []Result
	for _, name := range names {
		p, err := store.Load(name)
		if err != nil {
			results = append(results, Result{
				Status:         StatusFail,
				CheckName:      messages.DoctorCheckNameProfile,
				Message:        fmt.Sprintf(messages.DoctorProfileBrokenFmt, name, err),
				Recommendation: messages.DoctorProfileBrokenRecommend,
			})
			continue
		}
		results = append(results, Result{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNameProfile,
			Message:   fmt.Sprintf(messages.DoctorProfileOKFmt, name, p.Title()),
		})
		results = append(results, checkProfileTemplate(p, globalIndices), checkRequirements(p))
	}
	return results
}

func checkProfileTemplate(p *profile.Profile, globalIndices map[string]int) Result {
	path, err := p.TemplatePath()
	if err != nil {
		return Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameTemplate,
			Message:        fmt.Sprintf(messages.DoctorTemplateUnsetFmt, p.Name),
			Recommendation: messages.DoctorTemplateUnsetRecommend,
		}
	}
	return CheckTemplate(p.Name, path, config.MergeLayoutIndices(globalIndices, p.Config.LayoutIndices))
}

func checkRequirements(p *profile.Profile) Result {
	path := p.RequirementsPath()
	domains, err := loadRequirementsFn(path)
	if err != nil {
		if _, statErr := os.Stat(path); errors.Is(statErr, os.ErrNotExist) {
			return Result{
				Status:         StatusWarn,
				CheckName:      messages.DoctorCheckNameRequirements,
				Message:        fmt.Sprintf(messages.DoctorRequirementsMissingFmt, p.Name),
				Recommendation: messages.DoctorRequirementsMissingFix,
			}
		}
		return Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameRequirements,
			Message:        fmt.Sprintf(messages.DoctorRequirementsInvalidFmt, p.Name, err),
			Recommendation: messages.DoctorRequirementsInvalidFix,
		}
	}
	return Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameRequirements,
		Message:   fmt.Sprintf(messages.DoctorRequirementsOKFmt, p.Name, len(domains), content.RequirementCount(domains)),
	}
}

// HasFailure reports whether any result failed.
func HasFailure(results []Result) bool {
	for _, r := range results {
		if r.Status == StatusFail {
			return true
		}
	}
	return false
}
