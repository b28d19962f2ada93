package generr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaErrorIsErrSchema(t *testing.T) {
	err := NewSchemaError(CodeShapeNotFound, "Widget", "referenced shape not found")

	assert.ErrorIs(t, err, ErrSchema)

	var se *SchemaError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, CodeShapeNotFound, se.Code)
	assert.Equal(t, "Widget", se.ShapeName)
}

func TestSchemaErrorMessageOmitsEmptyShapeName(t *testing.T) {
	err := NewSchemaError(CodeMissingResultKey, "", "pagination declared with no result_key")
	assert.NotContains(t, err.Error(), "shape")
}

func TestUnsupportedDocumentationErrorIsErrUnsupportedDocumentation(t *testing.T) {
	err := NewUnsupportedDocumentationError("<div>residual</div>")

	assert.ErrorIs(t, err, ErrUnsupportedDocumentation)

	var ue *UnsupportedDocumentationError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, "<div>residual</div>", ue.Fragment)
}

func TestIOErrorIsErrIOAndWrapsCause(t *testing.T) {
	cause := errors.New("disk full")
	err := NewIOError("Aws\\Example\\Input\\GetObjectRequest", cause)

	assert.ErrorIs(t, err, ErrIO)
	assert.ErrorIs(t, err, cause)

	var ioErr *IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, cause, ioErr.Cause)
}

func TestCodeStringIsStable(t *testing.T) {
	assert.Equal(t, "E_SHAPE_NOT_FOUND", CodeShapeNotFound.String())
	assert.Equal(t, "E_PAGINATION_NOT_ITERABLE", CodePaginationNotIterable.String())
}
