package typemap

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/digitalsanctum/svcgen/apidef"
)

func TestForScalarTable(t *testing.T) {
	tests := []struct {
		kind         apidef.ScalarKind
		wantType     string
		wantNullable bool
	}{
		{apidef.KindBoolean, "bool", true},
		{apidef.KindInteger, "int", true},
		{apidef.KindLong, "string", true},
		{apidef.KindBlob, "string", true},
		{apidef.KindTimestamp, "\\DateTimeInterface", true},
		{apidef.KindString, "string", true},
	}
	for _, tc := range tests {
		t.Run(tc.wantType, func(t *testing.T) {
			m := ForScalar(tc.kind)
			assert.Equal(t, tc.wantType, m.Type)
			assert.Equal(t, tc.wantNullable, m.Nullable)
		})
	}
}

func TestForScalarDocIncludesTimestampUnion(t *testing.T) {
	assert.Equal(t, "\\DateTimeInterface|string", ForScalarDoc(apidef.KindTimestamp))
	assert.Equal(t, "int", ForScalarDoc(apidef.KindInteger))
}

func TestForContainerDefaultsToEmptyNotNull(t *testing.T) {
	m := ForContainer()
	assert.Equal(t, "array", m.Type)
	assert.False(t, m.Nullable)
}

func TestForStructureUsesSanitizedName(t *testing.T) {
	m := ForStructure("AwsObject")
	assert.Equal(t, "AwsObject", m.Type)
	assert.True(t, m.Nullable)
}

func TestForStreaming(t *testing.T) {
	m := ForStreaming()
	assert.Equal(t, "string|resource|callable", m.Type)
}

func TestResolveDispatchesByShapeKind(t *testing.T) {
	scalarShape := apidef.NewScalarShape("BucketName", apidef.KindString)
	assert.Equal(t, "string", Resolve(scalarShape, "").Type)

	listShape := apidef.NewListShape("BucketList", "Bucket")
	lm := Resolve(listShape, "")
	assert.Equal(t, "array", lm.Type)
	assert.False(t, lm.Nullable)

	mapShape := apidef.NewMapShape("Metadata", "String", "key", "String", "value")
	mm := Resolve(mapShape, "")
	assert.Equal(t, "array", mm.Type)

	structShape := apidef.NewStructureShape("Node", nil, nil, "")
	sm := Resolve(structShape, "Node")
	assert.Equal(t, "Node", sm.Type)
	assert.True(t, sm.Nullable)
}
