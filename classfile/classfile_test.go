package classfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digitalsanctum/svcgen/emitclass"
)

type fakeSource struct {
	files map[string]string
}

func (f fakeSource) Read(fqcn string) (string, bool) {
	s, ok := f.files[fqcn]
	return s, ok
}

func TestLoadOrCreateCreatesFreshWhenAbsent(t *testing.T) {
	src := fakeSource{files: map[string]string{}}
	c := LoadOrCreate(src, "Aws\\S3", "S3Client")

	assert.Equal(t, "Aws\\S3", c.Namespace)
	assert.Equal(t, "S3Client", c.Name)
	assert.Empty(t, c.Methods())
}

func TestLoadOrCreateParsesExistingClass(t *testing.T) {
	existing := emitclass.New("Aws\\S3", "S3Client")
	existing.AddMethod(emitclass.Method{
		Name:       "myCustomHelper",
		Visibility: emitclass.Public,
		Body:       "return 42;",
	})
	source := existing.Render()

	src := fakeSource{files: map[string]string{"Aws\\S3\\S3Client": source}}
	c := LoadOrCreate(src, "Aws\\S3", "S3Client")

	assert.Equal(t, "Aws\\S3", c.Namespace)
	assert.Equal(t, "S3Client", c.Name)
	require.True(t, c.HasMethod("myCustomHelper"))
}

func TestLoadOrCreatePreservesUserMethodAcrossOperationMerge(t *testing.T) {
	existing := emitclass.New("Aws\\S3", "S3Client")
	existing.AddMethod(emitclass.Method{Name: "myCustomHelper", Body: "return 1;"})
	existing.AddMethod(emitclass.Method{Name: "getObject", Body: "// old body"})
	source := existing.Render()

	src := fakeSource{files: map[string]string{"Aws\\S3\\S3Client": source}}
	c := LoadOrCreate(src, "Aws\\S3", "S3Client")

	// Simulate OperationGenerator's remove-then-add for the operation method.
	c.RemoveMethod("getObject")
	c.AddMethod(emitclass.Method{Name: "getObject", Body: "// new body"})

	require.True(t, c.HasMethod("myCustomHelper"))
	require.True(t, c.HasMethod("getObject"))

	rendered := c.Render()
	assert.Contains(t, rendered, "return 1;")
	assert.Contains(t, rendered, "// new body")
	assert.NotContains(t, rendered, "// old body")
}

func TestParsePreservesBaseClassAndInterfaces(t *testing.T) {
	original := emitclass.New("Aws\\S3\\Result", "ListObjectsResult")
	original.BaseClass = "Result"
	original.AddInterface("IteratorAggregate")
	source := original.Render()

	parsed := Parse(source)
	assert.Equal(t, "Result", parsed.BaseClass)
	assert.Contains(t, parsed.Interfaces, "IteratorAggregate")
}

func TestParsePreservesProperties(t *testing.T) {
	original := emitclass.New("Aws\\S3\\Input", "GetObjectRequest")
	original.AddProperty(emitclass.Property{Name: "Bucket", Visibility: emitclass.Private, HasDefault: true, Default: "null"})
	source := original.Render()

	parsed := Parse(source)
	require.True(t, parsed.HasProperty("Bucket"))
}

func TestRegeneratingTwiceIsDeterministic(t *testing.T) {
	build := func() *emitclass.Class {
		c := emitclass.New("Aws\\S3", "S3Client")
		c.AddMethod(emitclass.Method{Name: "getObject", Body: "// body"})
		return c
	}

	first := build().Render()
	second := build().Render()
	assert.Equal(t, first, second)
}
