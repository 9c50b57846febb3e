package storage

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultAvatar is served for users who never uploaded a profile image.
const DefaultAvatar = "default-avatar-icon.jpg"

const timestampLayout = "2006-01-02-15-04-05"

// ImageFilename derives the stored name for an upload:
// <category>/<category>_image_<timestamp>_<suffix><ext>. The random
// suffix keeps names distinct when two uploads land in the same second,
// so replacing an image never reuses the path being replaced. The
// extension comes from the original filename, falling back to .jpg.
func ImageFilename(category, originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	if ext == "" {
		ext = ".jpg"
	}
	suffix := uuid.NewString()[:8]
	return filepath.Join(category, fmt.Sprintf("%s_image_%s_%s%s", category, time.Now().Format(timestampLayout), suffix, ext))
}
