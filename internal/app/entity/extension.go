package entity

// Extensions carries vendor payload fields that are not promoted to the
// normalized Order shape, keyed by dot-separated field path.
type Extensions map[string]string

func (e Extensions) Get(path string) (string, bool) {
	value, ok := e[path]
	return value, ok
}

func (e Extensions) Set(path, value string) {
	if len(value) == 0 {
		return
	}

	e[path] = value
}
