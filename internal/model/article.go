package model

import "time"

// JST is the reference timezone. All publication timestamps are normalized
// to it and the archive date is the JST calendar day.
var JST = time.FixedZone("JST", 9*60*60)

// Article is one normalized feed entry. Immutable after normalization.
type Article struct {
	Title       string
	Link        string
	Description string
	Source      string
	Group       string
	PublishedAt time.Time
}
