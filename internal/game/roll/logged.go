package roll

import "go.uber.org/zap"

// loggedSource wraps a Source and logs every draw at debug level, giving a
// full audit trail of the randomness consumed by a combat.
type loggedSource struct {
	src    Source
	logger *zap.Logger
}

// NewLoggedSource returns a Source that delegates to src and debug-logs each
// Intn call with its bound and result.
//
// Precondition: src and logger must be non-nil.
func NewLoggedSource(src Source, logger *zap.Logger) Source {
	return &loggedSource{src: src, logger: logger}
}

// Intn draws from the wrapped source and logs the result.
//
// Precondition: n > 0 (enforced by the wrapped source).
func (l *loggedSource) Intn(n int) int {
	v := l.src.Intn(n)
	l.logger.Debug("roll",
		zap.Int("bound", n),
		zap.Int("result", v),
	)
	return v
}
