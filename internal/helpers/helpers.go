package helpers

import "fmt"

const NoneName = "<none>"

// InputError ties a script error to the line it came from. msg is optional.
func InputError(line int, err error, msg string) error {
	if msg == "" {
		return fmt.Errorf("line %d: %w", line, err)
	}
	return fmt.Errorf("line %d: %w: %s", line, err, msg)
}

// OptionalName renders a name that may be absent.
func OptionalName(name string, ok bool) string {
	if !ok {
		return NoneName
	}
	return name
}
