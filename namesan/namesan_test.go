package namesan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizePassesThroughOrdinaryNames(t *testing.T) {
	assert.Equal(t, "Bucket", Sanitize("Bucket"))
	assert.Equal(t, "GetObjectRequest", Sanitize("GetObjectRequest"))
}

func TestSanitizeRenamesFixedCollisionSet(t *testing.T) {
	assert.Equal(t, "AwsObject", Sanitize("Object"))
	assert.Equal(t, "AwsClass", Sanitize("Class"))
	assert.Equal(t, "AwsTrait", Sanitize("Trait"))
}

func TestSanitizeRenamesTargetLanguageKeywords(t *testing.T) {
	assert.Equal(t, "Awslist", Sanitize("list"))
	assert.Equal(t, "Awsfor", Sanitize("for"))
}

func TestSanitizeIsCaseInsensitive(t *testing.T) {
	assert.Equal(t, "Awsobject", Sanitize("object"))
	assert.Equal(t, "AwsOBJECT", Sanitize("OBJECT"))
}

func TestSanitizeIsIdempotent(t *testing.T) {
	for _, name := range []string{"Object", "Bucket", "class", "GetObjectRequest"} {
		once := Sanitize(name)
		twice := Sanitize(once)
		assert.Equal(t, once, twice, "Sanitize(%q) not idempotent", name)
	}
}

func TestSanitizeIsTotalForEmptyString(t *testing.T) {
	assert.Equal(t, "", Sanitize(""))
}
