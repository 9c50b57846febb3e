package storage

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageFilenameDistinctWithinSecond(t *testing.T) {
	// Replacing an image right after uploading it must never yield the
	// path already on disk, or the post-commit cleanup of the old file
	// would delete the new one.
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		name := ImageFilename(CategoryFood, "photo.png")
		require.False(t, seen[name], "duplicate filename %s", name)
		seen[name] = true
	}
}

func TestImageFilenameShape(t *testing.T) {
	name := ImageFilename(CategoryLogo, "Logo.PNG")
	assert.Equal(t, CategoryLogo, filepath.Dir(name))
	assert.True(t, strings.HasPrefix(filepath.Base(name), "logo_image_"))
	assert.True(t, strings.HasSuffix(name, ".png"), "extension is lowered: %s", name)

	noExt := ImageFilename(CategoryDrink, "upload")
	assert.True(t, strings.HasSuffix(noExt, ".jpg"), "missing extension falls back to .jpg: %s", noExt)
}
