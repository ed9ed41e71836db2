package types

import (
	"log/slog"

	"github.com/google/uuid"
)

type (
	RunID       string
	SentryDSN   string
	ErrorPolicy string
	EntryStatus string
)

// ArchiveSuffix is the only compressed suffix recognized by the sweeper.
const ArchiveSuffix = ".bz2"

const (
	// ErrorPolicyAbort stops the run at the first failed entry.
	ErrorPolicyAbort ErrorPolicy = "abort"
	// ErrorPolicySkip reports a failed entry and continues with the rest.
	ErrorPolicySkip ErrorPolicy = "skip"
)

func (x ErrorPolicy) Valid() bool {
	switch x {
	case ErrorPolicyAbort, ErrorPolicySkip:
		return true
	}
	return false
}

func (x ErrorPolicy) String() string { return string(x) }

const (
	EntryStatusDecompressed EntryStatus = "decompressed"
	EntryStatusExists       EntryStatus = "exists"
	EntryStatusFailed       EntryStatus = "failed"
	EntryStatusPlanned      EntryStatus = "planned"
)

func NewRunID() RunID {
	return RunID(uuid.New().String())
}

func (x RunID) String() string { return string(x) }

func (x SentryDSN) LogValue() slog.Value {
	if x == "" {
		return slog.StringValue("")
	}
	return slog.StringValue("***********")
}

func (x SentryDSN) String() string {
	return string(x)
}
