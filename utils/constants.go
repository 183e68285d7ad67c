// File: utils/constants.go
package utils

import "fmt"

// SessionCachePrefix is the prefix used for Redis booking session keys.
const SessionCachePrefix = "booking:session:"

// AvailabilityCachePrefix is the prefix used for cached availability snapshot keys.
const AvailabilityCachePrefix = "availability:"

// SessionKey builds the Redis key for a booking session.
func SessionKey(sessionID string) string {
	return SessionCachePrefix + sessionID
}

// AvailabilityKey builds the Redis key for a doctor+date availability snapshot.
func AvailabilityKey(doctorID, date string) string {
	return fmt.Sprintf("%s%s:%s", AvailabilityCachePrefix, doctorID, date)
}
