package utils

import (
	"strconv"
	"strings"
	"time"
)

const trackingPrefix = "TC"

// GenerateTrackingNumber builds a tracking number from the current timestamp
// in base 36 plus a random suffix. Uniqueness is ultimately enforced by the
// database; callers retry on a duplicate-key error.
func GenerateTrackingNumber() (string, error) {
	ts := strconv.FormatInt(time.Now().UnixNano(), 36)

	suffix, err := GenerateRandomString(4)
	if err != nil {
		return "", err
	}
	// Keep the suffix alphanumeric for readability on labels
	suffix = strings.Map(func(r rune) rune {
		if r == '-' || r == '_' {
			return 'X'
		}
		return r
	}, suffix)

	return strings.ToUpper(trackingPrefix + "-" + ts + "-" + suffix), nil
}
