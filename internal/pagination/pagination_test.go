package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate_MiddlePage(t *testing.T) {
	p := Paginate(2, 10, 25)

	assert.Equal(t, 2, p.CurrentPage)
	assert.Equal(t, 10, p.ItemsPerPage)
	assert.Equal(t, 10, p.Offset)
	assert.Equal(t, int64(25), p.TotalItems)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNextPage)
	assert.True(t, p.HasPrevPage)
}

func TestPaginate_SinglePage(t *testing.T) {
	p := Paginate(1, 10, 5)

	assert.Equal(t, 1, p.TotalPages)
	assert.False(t, p.HasNextPage)
	assert.False(t, p.HasPrevPage)
	assert.Equal(t, 0, p.Offset)
}

func TestPaginate_LastPage(t *testing.T) {
	p := Paginate(3, 10, 25)

	assert.Equal(t, 20, p.Offset)
	assert.False(t, p.HasNextPage)
	assert.True(t, p.HasPrevPage)
}

func TestPaginate_ZeroItems(t *testing.T) {
	p := Paginate(1, 10, 0)

	assert.Equal(t, 0, p.TotalPages)
	assert.False(t, p.HasNextPage)
	assert.False(t, p.HasPrevPage)
}

// page/limitの不正値は矯正される
func TestPaginate_CoercesInvalidInput(t *testing.T) {
	p := Paginate(0, 0, 30)

	assert.Equal(t, 1, p.CurrentPage)
	assert.Equal(t, DefaultLimit, p.ItemsPerPage)
	assert.Equal(t, 0, p.Offset)
}

func TestParsePage(t *testing.T) {
	assert.Equal(t, 3, ParsePage("3"))
	assert.Equal(t, 1, ParsePage(""))
	assert.Equal(t, 1, ParsePage("abc"))
	assert.Equal(t, 1, ParsePage("0"))
	assert.Equal(t, 1, ParsePage("-2"))
}
