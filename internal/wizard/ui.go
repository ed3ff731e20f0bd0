package wizard

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/conn-castle/deck-builder/internal/messages"
	"github.com/conn-castle/deck-builder/internal/terminal"
)

// UI is what the profile wizard needs from a prompt backend.
type UI interface {
	Select(title string, options []string, current *string) error
	Confirm(title string, value *bool) error
	// Input prompts for text. validate may be nil.
	Input(title, description string, value *string, validate func(string) error) error
	Note(title string, body string) error
}

// HuhUI implements UI with charmbracelet/huh forms on stderr.
type HuhUI struct {
	isTerminal func() bool
	ctrlCAbort bool
}

var runFormFunc = func(form *huh.Form) error { return form.Run() }

// NewHuhUI returns a HuhUI that refuses to run without a terminal.
func NewHuhUI() *HuhUI {
	return &HuhUI{isTerminal: terminal.IsInteractive}
}

func (ui *HuhUI) ensureInteractive() error {
	checker := ui.isTerminal
	if checker == nil {
		checker = terminal.IsInteractive
	}
	if checker() {
		return nil
	}
	return errors.New(messages.WizardRequiresTerminal)
}

// keyMap makes Esc go back one step and Ctrl+C leave the wizard.
// Prev and Next are only help hints; Quit catches both keys first.
func keyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(key.WithKeys("ctrl+c", "esc"))

	back := key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back"))
	km.Select.Prev = back
	km.Confirm.Prev = back
	km.Input.Prev = back
	km.Note.Prev = back

	exit := key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "exit"))
	km.Select.Next = exit
	km.Confirm.Next = exit
	km.Input.Next = exit
	km.Note.Next = exit

	km.Select.Filter.SetEnabled(false)
	km.Select.SetFilter.SetEnabled(false)
	km.Select.ClearFilter.SetEnabled(false)
	return km
}

// hintField keeps the back and exit hints visible. huh disables Prev on the
// first field and Next on the last, and every wizard form has one field.
type hintField struct {
	huh.Field
	km *huh.KeyMap
}

func newHintField(field huh.Field) huh.Field {
	return &hintField{Field: field, km: keyMap()}
}

// Update keeps the wrapper in the group's field list.
func (f *hintField) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := f.Field.Update(msg)
	if field, ok := model.(huh.Field); ok {
		f.Field = field
	}
	return f, cmd
}

// WithPosition re-applies the key map after huh sets positional state.
func (f *hintField) WithPosition(p huh.FieldPosition) huh.Field {
	f.Field.WithPosition(p)
	f.WithKeyMap(f.km)
	return f
}

// formFilter records Ctrl+C key presses and turns interrupts into a quit so
// the renderer clears the form. Esc aborts without setting the flag.
func (ui *HuhUI) formFilter() func(tea.Model, tea.Msg) tea.Msg {
	return func(_ tea.Model, msg tea.Msg) tea.Msg {
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyCtrlC {
			ui.ctrlCAbort = true
		}
		if _, ok := msg.(tea.InterruptMsg); ok {
			return tea.QuitMsg{}
		}
		return msg
	}
}

// runForm maps an aborted form to errBack (Esc) or errCancelled (Ctrl+C).
func (ui *HuhUI) runForm(field huh.Field) error {
	if err := ui.ensureInteractive(); err != nil {
		return err
	}
	ui.ctrlCAbort = false
	form := huh.NewForm(huh.NewGroup(newHintField(field)))
	form.WithKeyMap(keyMap())
	form.WithProgramOptions(
		tea.WithOutput(os.Stderr),
		tea.WithReportFocus(),
		tea.WithFilter(ui.formFilter()),
	)

	err := runFormFunc(form)
	if errors.Is(err, huh.ErrUserAborted) {
		if ui.ctrlCAbort {
			return errCancelled
		}
		return errBack
	}
	if err != nil {
		return fmt.Errorf(messages.WizardPromptFailedFmt, err)
	}
	return nil
}

// Select renders a single-choice prompt.
func (ui *HuhUI) Select(title string, options []string, current *string) error {
	return ui.runForm(huh.NewSelect[string]().
		Title(title).
		Options(huh.NewOptions(options...)...).
		Value(current))
}

// Confirm renders a yes/no prompt.
func (ui *HuhUI) Confirm(title string, value *bool) error {
	return ui.runForm(huh.NewConfirm().Title(title).Value(value))
}

// Input renders a text prompt.
func (ui *HuhUI) Input(title, description string, value *string, validate func(string) error) error {
	input := huh.NewInput().Title(title).Description(description).Value(value)
	if validate != nil {
		input = input.Validate(validate)
	}
	return ui.runForm(input)
}

// Note renders an informational screen.
func (ui *HuhUI) Note(title string, body string) error {
	return ui.runForm(huh.NewNote().Title(title).Description(body))
}
