package specs

import (
	"net/url"
	"strings"

	"github.com/autoatlas/autoatlas/pkg/constants"
)

// normalizeLocalImagePath makes a scraped local image path relative to the
// image root. Paths without the root token keep their last two segments.
func normalizeLocalImagePath(value *string) *string {
	if value == nil || *value == "" {
		return nil
	}
	normalized := strings.ReplaceAll(*value, `\`, "/")
	token := "/" + strings.ToLower(constants.ImageRootToken) + "/"
	if idx := strings.Index(strings.ToLower(normalized), token); idx >= 0 {
		rel := normalized[idx+len(token):]
		return &rel
	}

	parts := strings.FieldsFunc(normalized, func(r rune) bool { return r == '/' })
	if len(parts) > 2 {
		parts = parts[len(parts)-2:]
	}
	rel := strings.Join(parts, "/")
	if rel == "" {
		return nil
	}
	return &rel
}

func nonEmpty(value *string) *string {
	if value == nil || *value == "" {
		return nil
	}
	v := *value
	return &v
}

// ImageSrc resolves an image reference for display. Local images are served
// under the image route with the path escaped; otherwise the remote URL is used.
func ImageSrc(img *Image) (string, bool) {
	if img == nil {
		return "", false
	}
	if img.Local != nil && *img.Local != "" {
		escaped := (&url.URL{Path: *img.Local}).EscapedPath()
		return constants.ImageRoutePrefix + escaped, true
	}
	if img.URL != nil && *img.URL != "" {
		return *img.URL, true
	}
	return "", false
}
