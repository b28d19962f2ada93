package xmlcfg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digitalsanctum/svcgen/apidef"
	"github.com/digitalsanctum/svcgen/apidef/build"
	"github.com/digitalsanctum/svcgen/generr"
)

func TestExtractSimpleStructure(t *testing.T) {
	reg := build.New("2006-03-01").
		Scalar("String", apidef.KindString).
		Structure("Body", []apidef.Member{
			apidef.NewMember("Name", "String"),
		}, nil, "").
		Build()

	cfg, err := Extract(reg, "Body", "Body", "")
	require.NoError(t, err)

	assert.Equal(t, "Body", cfg.Root.Type)
	require.Contains(t, cfg.Shapes, "Body")
	assert.Equal(t, "structure", cfg.Shapes["Body"].Type)
	require.Contains(t, cfg.Shapes, "String")
	assert.Equal(t, "string", cfg.Shapes["String"].Type)
}

func TestExtractTraversesListAndStructure(t *testing.T) {
	reg := build.New("2006-03-01").
		Scalar("String", apidef.KindString).
		Structure("Item", []apidef.Member{
			apidef.NewMember("Name", "String"),
		}, nil, "").
		List("ItemList", "Item").
		Structure("Body", []apidef.Member{
			apidef.NewMember("Items", "ItemList"),
		}, nil, "").
		Build()

	cfg, err := Extract(reg, "Body", "Body", "")
	require.NoError(t, err)

	assert.Contains(t, cfg.Shapes, "Body")
	assert.Contains(t, cfg.Shapes, "ItemList")
	assert.Contains(t, cfg.Shapes, "Item")
	assert.Contains(t, cfg.Shapes, "String")
	assert.Equal(t, "Item", cfg.Shapes["ItemList"].ListMember.Shape)
}

func TestExtractTraversesMap(t *testing.T) {
	reg := build.New("2006-03-01").
		Scalar("String", apidef.KindString).
		Map("Metadata", "String", "key", "String", "value").
		Structure("Body", []apidef.Member{
			apidef.NewMember("Metadata", "Metadata"),
		}, nil, "").
		Build()

	cfg, err := Extract(reg, "Body", "Body", "")
	require.NoError(t, err)
	assert.Contains(t, cfg.Shapes, "Metadata")
	assert.Equal(t, "key", cfg.Shapes["Metadata"].MapKey.LocationName)
}

func TestExtractTerminatesOnCycle(t *testing.T) {
	reg := build.New("2006-03-01").Build()
	node := apidef.NewStructureShape("Node", []apidef.Member{
		apidef.NewMember("Child", "Node"),
	}, nil, "")
	reg.AddShape(node)

	cfg, err := Extract(reg, "Node", "Node", "")
	require.NoError(t, err)
	assert.Len(t, cfg.Shapes, 1)
}

func TestExtractMissingShapeIsSchemaError(t *testing.T) {
	reg := build.New("2006-03-01").Build()
	_, err := Extract(reg, "Ghost", "Ghost", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, generr.ErrSchema)
}
