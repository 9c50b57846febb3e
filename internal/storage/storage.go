package storage

import (
	"io"
)

// Image categories. Each maps to a directory under the storage base path.
const (
	CategoryFood         = "food"
	CategoryDrink        = "drink"
	CategoryLogo         = "logo"
	CategoryBackground   = "background"
	CategoryProfileImage = "profile_image"
)

// Storage persists uploaded image files. Paths are category-relative,
// e.g. "food/food_image_2026-08-30-12-00-00.jpg".
type Storage interface {
	// Save stores a file, creating category directories as needed.
	Save(path string, reader io.Reader) error

	// Open returns the file contents and size for streaming.
	Open(path string) (io.ReadCloser, int64, error)

	// Delete removes a file. Missing files are not an error.
	Delete(path string) error

	// Exists reports whether a file is present.
	Exists(path string) (bool, error)
}
