package congress

import (
	"errors"
	"fmt"
)

// ErrVoteUnavailable reports a vote page the upstream site explicitly marks
// unavailable. It is a legitimate empty result, not a failure; callers exit
// the run cleanly on it.
var ErrVoteUnavailable = errors.New("roll call vote data is currently unavailable")

// ParseError reports fetched content missing the structure we scrape. Fatal
// to the current run, never to the process.
type ParseError struct {
	URL     string
	Missing string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: expected %s not found", e.URL, e.Missing)
}
