// Package querycodec encodes and decodes the compact filter strings used
// in shareable catalog URLs and hotspot definitions: a comma-joined tag
// list and a pipe-joined key:value spec list. The format is a wire
// contract with existing links and bookmarks and must not change.
package querycodec

import (
	"net/url"
	"sort"
	"strings"
)

// ParseTags splits a comma-separated tag list. Segments are trimmed and
// empty ones (leading, trailing or doubled commas) are dropped. Order is
// preserved and duplicates are kept. An empty input yields no tags.
func ParseTags(raw string) []string {
	if raw == "" {
		return nil
	}
	var tags []string
	for _, seg := range strings.Split(raw, ",") {
		if tag := strings.TrimSpace(seg); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// EncodeTags is the inverse of ParseTags.
func EncodeTags(tags []string) string {
	return strings.Join(tags, ",")
}

// ParseSpecs splits a pipe-separated list of key:value pairs. Each
// segment splits on its first colon; both halves are trimmed. Segments
// with no colon or an empty key or value are dropped without aborting
// the rest. The last occurrence of a key wins. An empty input yields an
// empty map.
func ParseSpecs(raw string) map[string]string {
	specs := make(map[string]string)
	if raw == "" {
		return specs
	}
	for _, seg := range strings.Split(raw, "|") {
		key, value, ok := strings.Cut(seg, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if key == "" || value == "" {
			continue
		}
		specs[key] = value
	}
	return specs
}

// EncodeSpecs is the inverse of ParseSpecs. Keys are emitted in sorted
// order so equal maps encode identically.
func EncodeSpecs(specs map[string]string) string {
	if len(specs) == 0 {
		return ""
	}
	keys := make([]string, 0, len(specs))
	for k := range specs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+":"+specs[k])
	}
	return strings.Join(pairs, "|")
}

// Values builds the three-parameter query string a hotspot link carries.
// Empty parts are omitted.
func Values(category string, tags []string, specs map[string]string) url.Values {
	v := url.Values{}
	if category != "" {
		v.Set("category", category)
	}
	if len(tags) > 0 {
		v.Set("tags", EncodeTags(tags))
	}
	if len(specs) > 0 {
		v.Set("specs", EncodeSpecs(specs))
	}
	return v
}
