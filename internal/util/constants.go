package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

// Timestamps embedded in analysis prompts use RFC 3339 like the rest of the
// submission payload.
const TimestampFormat = "2006-01-02T15:04:05Z07:00"
