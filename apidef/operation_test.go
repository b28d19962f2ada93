package apidef

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOperationMinimal(t *testing.T) {
	op := NewOperation("GetObject", HTTPBinding{Method: "GET", RequestURI: "/{Bucket}/{Key+}"}, "GetObjectRequest")

	assert.Equal(t, "GetObject", op.Name())
	assert.Equal(t, "GET", op.HTTP().Method)
	assert.Equal(t, "GetObjectRequest", op.InputShape())

	_, ok := op.Output()
	assert.False(t, ok)

	_, ok = op.Pagination()
	assert.False(t, ok)
}

func TestNewOperationWithOutput(t *testing.T) {
	op := NewOperation("GetObject", HTTPBinding{Method: "GET"}, "GetObjectRequest",
		WithOutput("GetObjectResult", "GetObjectResult"))

	out, ok := op.Output()
	require.True(t, ok)
	assert.Equal(t, "GetObjectResult", out.ShapeName)
	assert.Equal(t, "GetObjectResult", out.ResultWrapper)
}

func TestNewOperationWithDocumentation(t *testing.T) {
	op := NewOperation("GetObject", HTTPBinding{Method: "GET"}, "GetObjectRequest",
		WithDocumentation("<p>Retrieves an object.</p>", "https://example.com/docs/GetObject"))

	assert.Equal(t, "<p>Retrieves an object.</p>", op.Documentation())
	assert.Equal(t, "https://example.com/docs/GetObject", op.DocumentationURL())
}

func TestNewOperationWithPagination(t *testing.T) {
	op := NewOperation("ListObjects", HTTPBinding{Method: "GET"}, "ListObjectsRequest",
		WithPagination("Contents", "CommonPrefixes"))

	pg, ok := op.Pagination()
	require.True(t, ok)
	assert.True(t, pg.HasResultKey())
	assert.Equal(t, []string{"Contents", "CommonPrefixes"}, pg.ResultKey)
}

func TestPaginationHasResultKeyFalseWhenEmpty(t *testing.T) {
	var pg Pagination
	assert.False(t, pg.HasResultKey())
}
