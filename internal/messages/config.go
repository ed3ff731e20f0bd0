package messages

// Config messages for tool configuration loading and validation.
const (
	ConfigReadFailedFmt       = "read config %s: %w"
	ConfigInvalidConfigFmt    = "invalid config %s: %w"
	ConfigUnrecognizedKeysFmt = "%s: unrecognized config keys: %v."
	ConfigValidationGuidance  = "Run `deck doctor` to check your config."
	ConfigEncodeFailedFmt     = "encode config: %w"
	ConfigExpandPathFailedFmt = "expand path %s: %w"

	ConfigLoggingLevelInvalidFmt     = "%s: logging.level %q must be one of debug, info, warn, error"
	ConfigLoggingFormatInvalidFmt    = "%s: logging.format %q must be console or json"
	ConfigWarningNoiseModeInvalidFmt = "%s: warnings.noise_mode %q must be one of default, reduce, quiet"
	ConfigLayoutRoleInvalidFmt       = "%s: layout_indices.%s is not a layout role (valid: title_center, title_content, two_img)"
	ConfigLayoutIndexNegativeFmt     = "%s: layout_indices.%s must not be negative (got %d)"
	ConfigThemeInvalidFmt            = "%s: theme: %w"

	ConfigLogLevelDebugDescription = "Log every slide and part written"
	ConfigLogLevelInfoDescription  = "Log build progress and warnings"
	ConfigNoiseDefaultDescription  = "Show every warning"
	ConfigNoiseReduceDescription   = "Hide suppressible warnings such as missing images"
	ConfigNoiseQuietDescription    = "Hide warnings in the terminal; logs keep them"
)
