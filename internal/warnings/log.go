package warnings

import "go.uber.org/zap"

// Log writes each warning to logger at warn level. A nil logger is a no-op.
func Log(logger *zap.Logger, items []Warning) {
	if logger == nil {
		return
	}
	for _, w := range items {
		logger.Warn(w.Message,
			zap.String("code", w.Code),
			zap.String("subject", w.Subject),
			zap.String("source", w.sourceOrDefault()),
			zap.String("severity", w.severityOrDefault()),
		)
	}
}
