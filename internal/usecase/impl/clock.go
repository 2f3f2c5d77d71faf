// Package impl contains the implementation of the application's business logic.
package impl

import "time"

// Clock supplies the current time to the mutating usecases so tests can pin
// timestamps.
type Clock func() time.Time

// timestampLayout renders the human-readable date+time contract carried by
// every record ("dd/mm/yyyy, hh:mm:ss").
const timestampLayout = "02/01/2006, 15:04:05"

func formatTimestamp(t time.Time) string {
	return t.Format(timestampLayout)
}
