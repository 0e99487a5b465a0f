package models

import "time"

// Upload is the bookkeeping record for one uploaded image. The object body
// itself lives in S3-compatible storage under StorageKey; only metadata is
// kept here.
type Upload struct {
	ID           int64     `json:"id"`
	Filename     string    `json:"filename"`
	OriginalName string    `json:"originalName"`
	Mimetype     string    `json:"mimetype"`
	Size         int64     `json:"size"`
	Title        string    `json:"title"`
	Tags         []string  `json:"tags"`
	StorageKey   string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
