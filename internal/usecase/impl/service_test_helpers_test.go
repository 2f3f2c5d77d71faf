package impl

import (
	"io"
	"log/slog"
	"time"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fixedClock pins every timestamp a service writes during a test.
var fixedClockTime = time.Date(2024, 5, 17, 21, 42, 7, 0, time.UTC)

const fixedClockStamp = "17/05/2024, 21:42:07"

func fixedClock() time.Time {
	return fixedClockTime
}
