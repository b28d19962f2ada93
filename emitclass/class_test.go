package emitclass

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddMethodThenHasMethod(t *testing.T) {
	c := New("Aws\\S3\\Input", "GetObjectRequest")
	assert.False(t, c.HasMethod("validate"))

	c.AddMethod(Method{Name: "validate", Visibility: Public, Body: "// no-op"})
	assert.True(t, c.HasMethod("validate"))
	require.Len(t, c.Methods(), 1)
}

func TestAddMethodReplacesExisting(t *testing.T) {
	c := New("Aws\\S3", "S3Client")
	c.AddMethod(Method{Name: "getObject", Body: "// v1"})
	c.AddMethod(Method{Name: "getObject", Body: "// v2"})

	methods := c.Methods()
	require.Len(t, methods, 1)
	assert.Equal(t, "// v2", methods[0].Body)
}

func TestRemoveMethod(t *testing.T) {
	c := New("Aws\\S3", "S3Client")
	c.AddMethod(Method{Name: "getObject"})
	c.AddMethod(Method{Name: "putObject"})

	c.RemoveMethod("getObject")
	assert.False(t, c.HasMethod("getObject"))
	assert.True(t, c.HasMethod("putObject"))
	require.Len(t, c.Methods(), 1)
	assert.Equal(t, "putObject", c.Methods()[0].Name)
}

func TestRemoveMethodMissingIsNoOp(t *testing.T) {
	c := New("Aws\\S3", "S3Client")
	c.AddMethod(Method{Name: "getObject"})
	c.RemoveMethod("doesNotExist")
	require.Len(t, c.Methods(), 1)
}

func TestAddImportInterfaceTraitDedupe(t *testing.T) {
	c := New("Aws\\S3\\Result", "ListObjectsResult")
	c.AddImport("Aws\\Result")
	c.AddImport("Aws\\Result")
	c.AddInterface("IteratorAggregate")
	c.AddInterface("IteratorAggregate")
	c.AddTrait("Aws\\HasDataTrait")
	c.AddTrait("Aws\\HasDataTrait")

	assert.Len(t, c.Imports, 1)
	assert.Len(t, c.Interfaces, 1)
	assert.Len(t, c.Traits, 1)
}

func TestPropertiesPreserveDeclarationOrder(t *testing.T) {
	c := New("Aws\\S3\\Input", "GetObjectRequest")
	c.AddProperty(Property{Name: "Bucket", Visibility: Private, Type: "string"})
	c.AddProperty(Property{Name: "Key", Visibility: Private, Type: "string"})

	props := c.Properties()
	require.Len(t, props, 2)
	assert.Equal(t, "Bucket", props[0].Name)
	assert.Equal(t, "Key", props[1].Name)
}

func TestRenderProducesWellFormedClass(t *testing.T) {
	c := New("Aws\\S3\\Input", "GetObjectRequest")
	c.BaseClass = ""
	c.AddProperty(Property{Name: "Bucket", Visibility: Private, Type: "string", Nullable: true, Doc: "@var string|null"})
	c.AddMethod(Method{
		Name:       "getBucket",
		Visibility: Public,
		ReturnType: "string",
		Nullable:   true,
		Body:       "return $this->Bucket;",
	})

	out := c.Render()
	assert.Contains(t, out, "namespace Aws\\S3\\Input;")
	assert.Contains(t, out, "class GetObjectRequest")
	assert.Contains(t, out, "private $Bucket;")
	assert.Contains(t, out, "function getBucket(): ?string")
	assert.Contains(t, out, "return $this->Bucket;")
}

func TestRenderWithBaseClassAndInterfaces(t *testing.T) {
	c := New("Aws\\S3\\Result", "ListObjectsResult")
	c.BaseClass = "Result"
	c.AddInterface("IteratorAggregate")

	out := c.Render()
	assert.Contains(t, out, "class ListObjectsResult extends Result implements IteratorAggregate")
}
