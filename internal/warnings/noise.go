package warnings

import (
	"fmt"
	"strings"

	"github.com/conn-castle/deck-builder/internal/messages"
)

// Values of warnings.noise_mode.
const (
	NoiseModeDefault = "default"
	// NoiseModeReduce hides suppressible warnings unless they are critical.
	NoiseModeReduce = "reduce"
	// NoiseModeQuiet hides everything from terminal and tool output. Logs still carry them.
	NoiseModeQuiet = "quiet"
)

// NoiseModes lists the accepted modes in documentation order.
func NoiseModes() []string {
	return []string{NoiseModeDefault, NoiseModeReduce, NoiseModeQuiet}
}

// ApplyNoiseControl returns the warnings to show for mode. The input slice is not modified.
// An unrecognised mode shows everything plus a critical warning about the mode itself.
func ApplyNoiseControl(items []Warning, mode string) []Warning {
	var keep func(Warning) bool
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", NoiseModeDefault:
		keep = func(Warning) bool { return true }
	case NoiseModeReduce:
		keep = func(w Warning) bool { return w.Critical() || !w.NoiseSuppressible }
	case NoiseModeQuiet:
		return nil
	default:
		out := append([]Warning(nil), items...)
		return append(out, invalidMode(mode))
	}

	var out []Warning
	for _, w := range items {
		if keep(w) {
			out = append(out, w)
		}
	}
	return out
}

func invalidMode(mode string) Warning {
	modes := NoiseModes()
	return Warning{
		Code:     CodeWarningNoiseModeInvalid,
		Subject:  "warnings.noise_mode",
		Message:  fmt.Sprintf(messages.WarningsNoiseModeInvalidFmt, mode, modes[0], modes[1], modes[2]),
		Fix:      messages.WarningsNoiseModeInvalidFix,
		Source:   SourceConfig,
		Severity: SeverityCritical,
	}
}
