package youtube

import "regexp"

// Accepted URL shapes, checked in order. Scheme and "www." are optional in all
// of them.
var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:https?://)?(?:www\.)?youtube\.com/watch\?v=([^&#]+)`),
	regexp.MustCompile(`(?:https?://)?(?:www\.)?youtube\.com/embed/([^?]+)`),
	regexp.MustCompile(`(?:https?://)?(?:www\.)?youtube\.com/v/([^?]+)`),
	regexp.MustCompile(`(?:https?://)?(?:www\.)?youtu\.be/([^?]+)`),
}

// ExtractVideoID pulls the video identifier out of a YouTube URL. It returns
// an empty string when the URL matches none of the accepted shapes.
func ExtractVideoID(url string) string {
	for _, pattern := range videoIDPatterns {
		if match := pattern.FindStringSubmatch(url); match != nil {
			return match[1]
		}
	}
	return ""
}
