package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	p := NewPagination(26, 25, 1)
	assert.Equal(t, 0, p.Offset())
	assert.True(t, p.HasNext)
	assert.False(t, p.HasPrev)

	p = NewPagination(26, 25, 2)
	assert.Equal(t, 25, p.Offset())
	assert.False(t, p.HasNext)
	assert.True(t, p.HasPrev)

	// Page numbers below 1 clamp to 1.
	p = NewPagination(10, 25, 0)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 0, p.Offset())
}

func TestPaginateSlices(t *testing.T) {
	items := make([]int, 26)
	for i := range items {
		items[i] = i
	}

	page, p := Paginate(items, 25, 1)
	assert.Len(t, page, 25)
	assert.True(t, p.HasNext)

	page, p = Paginate(items, 25, 2)
	assert.Len(t, page, 1)
	assert.Equal(t, 25, page[0])
	assert.True(t, p.HasPrev)

	// Out-of-range pages are empty, never an error.
	page, _ = Paginate(items, 25, 9)
	assert.Empty(t, page)
}

func TestPageParam(t *testing.T) {
	assert.Equal(t, 3, PageParam("3"))
	assert.Equal(t, 1, PageParam(""))
	assert.Equal(t, 1, PageParam("-2"))
	assert.Equal(t, 1, PageParam("junk"))
}
