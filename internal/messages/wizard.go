package messages

// Wizard messages for interactive profile creation.
const (
	WizardRequiresTerminal = "the profile wizard needs an interactive terminal; pass NAME and --template instead"
	WizardPromptFailedFmt  = "wizard prompt: %w"
	WizardExitNoChanges    = "Exited without creating a profile."
	WizardFirstStepExit    = "Leave the wizard without creating a profile?"

	WizardNameTitle          = "Profile name"
	WizardNameDescriptionFmt = "Customer or deal name; becomes the folder under %s"
	WizardNameTakenFmt       = "profile %q already exists"
	WizardTemplateTitle      = "Template"
	WizardTemplateDesc       = "Path to the corporate .pptx or .potx"
	WizardTemplateRequired   = "a template path is required"
	WizardTemplateMissingFmt = "no file at %s"
	WizardTitleTitle         = "Deck title"
	WizardTitleDesc          = "Shown on the cover slide"
	WizardShotsTitle         = "Screenshots directory"
	WizardShotsDesc          = "Optional; image keys in the profile resolve here"
	WizardReviewTitleFmt     = "Review %s/config.toml"
	WizardCreatePromptFmt    = "Create profile %q?"
)
