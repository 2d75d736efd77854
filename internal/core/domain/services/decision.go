package services

// Decision is the outcome of a policy check. A denied decision carries the
// typed error to return to the caller.
type Decision struct {
	err error
}

func allow() Decision {
	return Decision{}
}

func deny(err error) Decision {
	return Decision{err: err}
}

func (d Decision) Allowed() bool {
	return d.err == nil
}

// Err returns nil when allowed.
func (d Decision) Err() error {
	return d.err
}
