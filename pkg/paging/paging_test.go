package paging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginateClampsAboveLastPage(t *testing.T) {
	p := Paginate(45, 10, 20)

	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, 40, p.Offset)
}

func TestPaginateEmptyCollection(t *testing.T) {
	p := Paginate(0, 1, 20)

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 0, p.TotalPages)
	assert.Equal(t, 0, p.Offset)
}

func TestPaginateClampsBelowFirstPage(t *testing.T) {
	p := Paginate(45, -3, 20)

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 0, p.Offset)
}

func TestPaginateExactMultiple(t *testing.T) {
	// 40 rows at size 20 is exactly 2 pages, not 3.
	p := Paginate(40, 2, 20)

	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 2, p.TotalPages)
	assert.Equal(t, 20, p.Offset)
}

func TestPaginateSinglePartialPage(t *testing.T) {
	p := Paginate(7, 1, 20)

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 1, p.TotalPages)
	assert.Equal(t, 0, p.Offset)
}

func TestPaginateDefaultsBadPageSize(t *testing.T) {
	p := Paginate(45, 1, 0)

	assert.Equal(t, DefaultPageSize, p.PageSize)
	assert.Equal(t, 3, p.TotalPages)
}

func TestPaginateCapsPageSize(t *testing.T) {
	p := Paginate(1000, 2, 500)

	assert.Equal(t, MaxPageSize, p.PageSize)
	assert.Equal(t, MaxPageSize, p.Offset)
	assert.Equal(t, 10, p.TotalPages)
}

func TestPaginateOffsetInRange(t *testing.T) {
	// Offset must stay below the total for every non-empty collection.
	for total := int64(1); total <= 200; total += 13 {
		for page := 1; page <= 15; page += 2 {
			p := Paginate(total, page, 20)
			assert.GreaterOrEqual(t, p.Offset, 0)
			assert.Less(t, int64(p.Offset), total, "total=%d page=%d", total, page)
		}
	}
}
