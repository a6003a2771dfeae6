package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslateKnownKey(t *testing.T) {
	assert.Equal(t, "Scan Food", Translate("en", "scanFood", nil))
	assert.NotEqual(t, Translate("en", "scanFood", nil), Translate("hi", "scanFood", nil))
}

func TestTranslateMissingKeyReturnsKey(t *testing.T) {
	assert.Equal(t, "noSuchKey", Translate("en", "noSuchKey", nil))
	assert.Equal(t, "noSuchKey", Translate("hi", "noSuchKey", nil))
}

func TestTranslateUnknownLanguageFallsBack(t *testing.T) {
	assert.Equal(t, Translate("en", "scanFood", nil), Translate("fr", "scanFood", nil))
}

func TestTranslateInterpolation(t *testing.T) {
	got := Translate("en", "helloName", map[string]string{"name": "Priya"})
	assert.Contains(t, got, "Priya")
	assert.NotContains(t, got, "{{name}}")
}

func TestTranslateInterpolationLeavesUnmatchedPlaceholders(t *testing.T) {
	got := Translate("en", "helloName", map[string]string{"unrelated": "x"})
	assert.Contains(t, got, "{{name}}")
}

func TestTableReturnsCopy(t *testing.T) {
	table := Table("en")
	require.NotEmpty(t, table)

	table["scanFood"] = "mutated"
	assert.Equal(t, "Scan Food", Translate("en", "scanFood", nil))
	assert.Equal(t, Table("en")["scanFood"], "Scan Food")
}

func TestTableUnknownLanguageFallsBack(t *testing.T) {
	assert.Equal(t, Table("en"), Table("fr"))
}

func TestSupported(t *testing.T) {
	assert.True(t, Supported("en"))
	assert.True(t, Supported("hi"))
	assert.False(t, Supported("fr"))
}
