package errors

// NewInvalidConfig builds the one user-visible failure the core ever
// raises: a configuration override with an out-of-range field. field names
// the offending field; reason states the acceptable range.
func NewInvalidConfig(field, reason string) *ErrorEnvelope {
	envelope := NewErrorEnvelope("INVALID_CONFIG", "invalid configuration override: "+field+": "+reason)
	envelope, _ = envelope.WithSeverity(SeverityHigh)
	envelope = envelope.WithDetails(map[string]interface{}{
		"field":  field,
		"reason": reason,
	})
	return envelope
}
