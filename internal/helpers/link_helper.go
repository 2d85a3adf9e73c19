package helpers

import (
	"net/url"
	"regexp"
	"strings"

	"Showcase/internal/models"
)

var (
	youtubeRegex = regexp.MustCompile(`(?:youtube\.com/(?:watch\?(?:[^#]*&)?v=|embed/|shorts/|v/)|youtu\.be/)([A-Za-z0-9_-]+)`)
	driveRegex   = regexp.MustCompile(`drive\.google\.com/file/d/([A-Za-z0-9_-]+)`)
)

// ClassifyLink detects the hosting service of a video link and derives the
// URL to embed it with. Unrecognised links embed as-is.
func ClassifyLink(rawURL string) models.ExternalLink {
	if match := youtubeRegex.FindStringSubmatch(rawURL); match != nil {
		return models.ExternalLink{
			URL:       rawURL,
			EmbedURL:  "https://www.youtube.com/embed/" + match[1],
			VideoType: models.VideoTypeYoutube,
		}
	}
	if match := driveRegex.FindStringSubmatch(rawURL); match != nil {
		return models.ExternalLink{
			URL:       rawURL,
			EmbedURL:  "https://drive.google.com/file/d/" + match[1] + "/preview",
			VideoType: models.VideoTypeGoogleDrive,
		}
	}
	return models.ExternalLink{
		URL:       rawURL,
		EmbedURL:  rawURL,
		VideoType: models.VideoTypeUnknown,
	}
}

// IsHTTPURL reports whether raw parses as an absolute http(s) URL with a host.
func IsHTTPURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
