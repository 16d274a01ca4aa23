package node

// IntegrityError reports that the node detected a corrupted or
// tampered repository. It is classified separately from all other
// errors at the top level; the remediation hook is reserved and
// intentionally not defined yet.
type IntegrityError struct {
	Message string
}

func (e *IntegrityError) Error() string {
	return "repository integrity violation: " + e.Message
}
