package querycodec_test

import (
	"testing"

	"github.com/hava-distribution/catalog/pkg/querycodec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTags(t *testing.T) {
	t.Run("Plain", func(t *testing.T) {
		got := querycodec.ParseTags("tag1,tag2,tag3")
		assert.Equal(t, []string{"tag1", "tag2", "tag3"}, got)
	})

	t.Run("SurroundingWhitespace", func(t *testing.T) {
		got := querycodec.ParseTags("tag1, tag2 , tag3")
		assert.Equal(t, []string{"tag1", "tag2", "tag3"}, got)
	})

	t.Run("Empty", func(t *testing.T) {
		assert.Empty(t, querycodec.ParseTags(""))
	})

	t.Run("EmptySegmentsDropped", func(t *testing.T) {
		got := querycodec.ParseTags("tag1,,tag2,")
		assert.Equal(t, []string{"tag1", "tag2"}, got)
	})

	t.Run("OrderAndDuplicatesPreserved", func(t *testing.T) {
		got := querycodec.ParseTags("b,a,b")
		assert.Equal(t, []string{"b", "a", "b"}, got)
	})
}

func TestParseSpecs(t *testing.T) {
	t.Run("Plain", func(t *testing.T) {
		got := querycodec.ParseSpecs("key1:value1|key2:value2")
		assert.Equal(t, map[string]string{
			"key1": "value1",
			"key2": "value2",
		}, got)
	})

	t.Run("SurroundingWhitespace", func(t *testing.T) {
		got := querycodec.ParseSpecs("key1 : value1 | key2 : value2")
		assert.Equal(t, map[string]string{
			"key1": "value1",
			"key2": "value2",
		}, got)
	})

	t.Run("Empty", func(t *testing.T) {
		got := querycodec.ParseSpecs("")
		require.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("MalformedSegmentDropped", func(t *testing.T) {
		got := querycodec.ParseSpecs("key1:value1|invalid|key2:value2")
		assert.Equal(t, map[string]string{
			"key1": "value1",
			"key2": "value2",
		}, got)
	})

	t.Run("SplitsOnFirstColon", func(t *testing.T) {
		got := querycodec.ParseSpecs("dimension:30x30:mm")
		assert.Equal(t, map[string]string{"dimension": "30x30:mm"}, got)
	})

	t.Run("EmptyKeyOrValueDropped", func(t *testing.T) {
		got := querycodec.ParseSpecs(":value|key:|a:b")
		assert.Equal(t, map[string]string{"a": "b"}, got)
	})

	t.Run("LastKeyWins", func(t *testing.T) {
		got := querycodec.ParseSpecs("k:first|k:second")
		assert.Equal(t, map[string]string{"k": "second"}, got)
	})
}

func TestRoundTrip(t *testing.T) {
	t.Run("TagsFixedPoint", func(t *testing.T) {
		for _, raw := range []string{
			"tag1,tag2,tag3",
			"tag1, tag2 , tag3",
			"tag1,,tag2,",
			"",
		} {
			once := querycodec.ParseTags(raw)
			again := querycodec.ParseTags(querycodec.EncodeTags(once))
			assert.Equal(t, once, again, "input %q", raw)
		}
	})

	t.Run("SpecsFixedPoint", func(t *testing.T) {
		for _, raw := range []string{
			"key1:value1|key2:value2",
			"key1:value1|invalid|key2:value2",
			"",
		} {
			once := querycodec.ParseSpecs(raw)
			again := querycodec.ParseSpecs(querycodec.EncodeSpecs(once))
			assert.Equal(t, once, again, "input %q", raw)
		}
	})
}

func TestValues(t *testing.T) {
	t.Run("AllParts", func(t *testing.T) {
		v := querycodec.Values(
			"serrures",
			[]string{"exterieur", "securite"},
			map[string]string{"entraxe": "70 mm"},
		)
		assert.Equal(t, "serrures", v.Get("category"))
		assert.Equal(t, "exterieur,securite", v.Get("tags"))
		assert.Equal(t, "entraxe:70 mm", v.Get("specs"))
	})

	t.Run("EmptyPartsOmitted", func(t *testing.T) {
		v := querycodec.Values("", nil, nil)
		assert.Empty(t, v)
	})
}
