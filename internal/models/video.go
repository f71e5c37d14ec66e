package models

import (
	"encoding/json"
	"time"
)

type Video struct {
	Id            int             `json:"-"`
	Youtube_ID    string          `json:"video_id"`
	URL           string          `json:"url"`
	Tags          []string        `json:"tags"`
	Title         string          `json:"title"`
	Channel_Title string          `json:"channel_title"`
	Duration      string          `json:"duration"`
	Raw_Duration  string          `json:"raw_duration"`
	Description   string          `json:"description"`
	Embed_URL     string          `json:"embed_url"`
	Thumbnails    json.RawMessage `json:"thumbnails"`
	Created_At    time.Time       `json:"created_at"`
	Updated_At    time.Time       `json:"updated_at"`
}

// ValidTags is the closed set of tags a video can carry. The videos table
// enforces the same set with a CHECK constraint.
var ValidTags = []string{
	"Intermediate",
	"Foundation",
	"Beginner",
	"Advanced",
	"Applied",
	"Theory",
}

// InvalidTags returns the tags that are not part of ValidTags.
func InvalidTags(tags []string) []string {
	var invalid []string
	for _, tag := range tags {
		found := false
		for _, valid := range ValidTags {
			if tag == valid {
				found = true
				break
			}
		}
		if !found {
			invalid = append(invalid, tag)
		}
	}
	return invalid
}
