package location

import "time"

var loc = time.UTC

// Set loads the named time zone and makes it the application location.
// An empty name keeps UTC.
func Set(name string) error {
	if name == "" {
		return nil
	}
	l, err := time.LoadLocation(name)
	if err != nil {
		return err
	}
	loc = l
	return nil
}

// Location returns the application time zone used for user-facing times.
func Location() *time.Location {
	return loc
}
