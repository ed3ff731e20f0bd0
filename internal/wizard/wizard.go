// Package wizard prompts for the settings of a new profile.
package wizard

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/conn-castle/deck-builder/internal/config"
	"github.com/conn-castle/deck-builder/internal/messages"
	"github.com/conn-castle/deck-builder/internal/profile"
)

var (
	errBack      = errors.New("wizard back requested")
	errCancelled = errors.New("wizard cancelled")
	statFunc     = os.Stat
)

type step int

const (
	stepName step = iota
	stepTemplate
	stepTitle
	stepScreenshots
	stepReview
)

// NewProfile prompts for the profile settings, starting from opts, and creates
// the profile once the user confirms. It returns a nil profile when the user
// leaves without creating anything.
func NewProfile(ui UI, store profile.Store, opts profile.CreateOptions, out io.Writer) (*profile.Profile, error) {
	if out == nil {
		out = os.Stdout
	}
	if opts.DeckTitle == "" {
		opts.DeckTitle = messages.ProfileDefaultDeckTitle
	}

	confirmed, err := promptFlow(ui, store, &opts)
	if err != nil {
		if errors.Is(err, errBack) || errors.Is(err, errCancelled) {
			_, _ = fmt.Fprintln(out, messages.WizardExitNoChanges)
			return nil, nil
		}
		return nil, err
	}
	if !confirmed {
		_, _ = fmt.Fprintln(out, messages.WizardExitNoChanges)
		return nil, nil
	}
	return store.Create(opts)
}

func promptFlow(ui UI, store profile.Store, opts *profile.CreateOptions) (bool, error) {
	current := stepName
	for {
		snapshot := *opts
		var err error
		confirmed := false

		switch current {
		case stepName:
			err = prompt(ui, messages.WizardNameTitle, fmt.Sprintf(messages.WizardNameDescriptionFmt, store.Root), &opts.Name, nameValidator(store))
		case stepTemplate:
			err = promptTemplate(ui, opts)
		case stepTitle:
			err = prompt(ui, messages.WizardTitleTitle, messages.WizardTitleDesc, &opts.DeckTitle, nil)
		case stepScreenshots:
			err = prompt(ui, messages.WizardShotsTitle, messages.WizardShotsDesc, &opts.ScreenshotsDir, nil)
		case stepReview:
			confirmed, err = review(ui, store, *opts)
		}

		if err == nil {
			if current == stepReview {
				return confirmed, nil
			}
			current++
			continue
		}
		if !errors.Is(err, errBack) {
			return false, err
		}
		*opts = snapshot
		if current == stepName {
			leave, confirmErr := confirmExit(ui)
			if confirmErr != nil {
				return false, confirmErr
			}
			if leave {
				return false, errCancelled
			}
			continue
		}
		current--
	}
}

// prompt asks for one value and re-checks it, so a UI without inline validation
// cannot slip an invalid answer through.
func prompt(ui UI, title, description string, value *string, validate func(string) error) error {
	if err := ui.Input(title, description, value, validate); err != nil {
		return err
	}
	*value = strings.TrimSpace(*value)
	if validate != nil {
		return validate(*value)
	}
	return nil
}

func nameValidator(store profile.Store) func(string) error {
	return func(name string) error {
		slug := profile.Slug(name)
		if slug == "" {
			return errors.New(messages.ProfileNameEmpty)
		}
		if _, err := statFunc(filepath.Join(store.Root, slug)); err == nil {
			return fmt.Errorf(messages.WizardNameTakenFmt, slug)
		}
		return nil
	}
}

func validateTemplate(path string) error {
	if strings.TrimSpace(path) == "" {
		return errors.New(messages.WizardTemplateRequired)
	}
	expanded, err := config.Expand(strings.TrimSpace(path))
	if err != nil {
		return err
	}
	info, err := statFunc(expanded)
	if err != nil || info.IsDir() {
		return fmt.Errorf(messages.WizardTemplateMissingFmt, expanded)
	}
	return nil
}

func promptTemplate(ui UI, opts *profile.CreateOptions) error {
	if err := prompt(ui, messages.WizardTemplateTitle, messages.WizardTemplateDesc, &opts.TemplatePath, validateTemplate); err != nil {
		return err
	}
	expanded, err := config.Expand(opts.TemplatePath)
	if err != nil {
		return err
	}
	opts.TemplatePath = expanded
	return nil
}

// review shows the config that will be written and asks for the go-ahead.
func review(ui UI, store profile.Store, opts profile.CreateOptions) (bool, error) {
	data, err := profile.Encode(profile.Scaffold(opts))
	if err != nil {
		return false, err
	}
	slug := profile.Slug(opts.Name)
	if err := ui.Note(fmt.Sprintf(messages.WizardReviewTitleFmt, filepath.Join(store.Root, slug)), string(data)); err != nil {
		return false, err
	}
	create := true
	if err := ui.Confirm(fmt.Sprintf(messages.WizardCreatePromptFmt, slug), &create); err != nil {
		return false, err
	}
	return create, nil
}

func confirmExit(ui UI) (bool, error) {
	leave := true
	if err := ui.Confirm(messages.WizardFirstStepExit, &leave); err != nil {
		if errors.Is(err, errBack) {
			return false, nil
		}
		return false, err
	}
	return leave, nil
}
