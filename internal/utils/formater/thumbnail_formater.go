package formater

import (
	"strings"

	"github.com/isergeich22/twitch-bot/internal/models"
)

// CreateStreamThumbnail substitutes the {width} and {height} placeholders
// of the thumbnail URL template with a fixed resolution.
func CreateStreamThumbnail(templateURL string) string {
	thumbnail := strings.ReplaceAll(templateURL, "{width}", models.ThumbnailWidth)
	thumbnail = strings.ReplaceAll(thumbnail, "{height}", models.ThumbnailHeight)

	return thumbnail
}
