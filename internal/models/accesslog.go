package models

import "time"

// AccessLog is one append-only access record. Username is the display name
// taken from the token claims, not a foreign key into the user registry.
type AccessLog struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Timestamp time.Time `json:"timestamp"`
}

// TrackingStats are the aggregates over the access log.
type TrackingStats struct {
	TotalAccesses int64    `json:"totalAccesses"`
	UniqueUsers   []string `json:"uniqueUsers"`
	LastUser      *string  `json:"lastUser"`
}
