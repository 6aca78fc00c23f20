package redis

import (
	"fmt"
	"strings"
	"time"
)

const (
	// KeyPreferences holds the raw preference profile blob.
	KeyPreferences = "pulse:preferences"
	// KeyStatusMap holds the jobID -> status map.
	KeyStatusMap = "pulse:status"
	// KeyStatusHistory holds the bounded status change log.
	KeyStatusHistory = "pulse:status:history"
	// KeySavedJobs is the set of saved job IDs.
	KeySavedJobs = "pulse:saved"
	// KeyPrefixDigest is the prefix for per-day digest blobs.
	KeyPrefixDigest = "pulse:digest:"
)

// digestDayFormat is the date layout embedded in digest keys.
const digestDayFormat = "2006-01-02"

// DigestDay renders the calendar day (local clock) used to key a digest.
func DigestDay(t time.Time) string {
	return t.Format(digestDayFormat)
}

// DigestKey returns the Redis key for a given day's digest.
func DigestKey(day string) string {
	return KeyPrefixDigest + day
}

// ExtractDigestDay parses the day back out of a digest key.
func ExtractDigestDay(key string) (time.Time, error) {
	day, ok := strings.CutPrefix(key, KeyPrefixDigest)
	if !ok {
		return time.Time{}, fmt.Errorf("invalid digest key: %s", key)
	}
	t, err := time.ParseInLocation(digestDayFormat, day, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid digest key %s: %w", key, err)
	}
	return t, nil
}
