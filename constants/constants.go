package constants

import (
	"os"
	"strconv"

	"github.com/jsphweid/fretdex/selection"
	"github.com/jsphweid/fretdex/tuning"
)

func GetAddr() string {
	addr := os.Getenv("FRETDEX_ADDR")
	if addr != "" {
		return addr
	}
	return ":8080"
}

// GetPrefsEndpoint is the DynamoDB endpoint for preferences. Empty keeps them
// in memory.
func GetPrefsEndpoint() string {
	return os.Getenv("FRETDEX_PREFS_ENDPOINT")
}

func GetPrefsTable() string {
	table := os.Getenv("FRETDEX_PREFS_TABLE")
	if table != "" {
		return table
	}
	return "fretdex-prefs"
}

func GetPrefsRegion() string {
	region := os.Getenv("FRETDEX_PREFS_REGION")
	if region != "" {
		return region
	}
	return "localhost"
}

// GetFrets is the default fret count, clamped to what a fretboard can hold.
func GetFrets() int {
	n, err := strconv.Atoi(os.Getenv("FRETDEX_FRETS"))
	if err != nil {
		return tuning.DefaultFrets
	}
	return tuning.ClampFrets(n)
}

// GetMaxSessions is how many sessions the server keeps before evicting the
// least recently used one.
func GetMaxSessions() int {
	n, err := strconv.Atoi(os.Getenv("FRETDEX_MAX_SESSIONS"))
	if err != nil || n <= 0 {
		return selection.DefaultMaxSessions
	}
	return n
}

const SampleRate = 44100

const ExportWorkers = 4
