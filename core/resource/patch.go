package resource

import (
	"encoding/json"
	"fmt"

	"github.com/peterbourgon/mergemap"
	"github.com/r3labs/diff/v2"
)

// Apply merges patch over rec's JSON form and decodes the result back into a
// new T. Nested objects are merged key by key. rec is never modified.
func Apply[T any](rec T, patch Patch) (T, error) {
	var merged T
	if len(patch) == 0 {
		return rec, nil
	}

	raw, err := json.Marshal(rec)
	if err != nil {
		return merged, fmt.Errorf("encode record: %w", err)
	}
	doc := map[string]interface{}{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return merged, fmt.Errorf("decode record: %w", err)
	}

	doc = mergemap.Merge(doc, clone(patch))

	raw, err = json.Marshal(doc)
	if err != nil {
		return merged, fmt.Errorf("encode merged record: %w", err)
	}
	if err := json.Unmarshal(raw, &merged); err != nil {
		return merged, fmt.Errorf("decode merged record: %w", err)
	}
	return merged, nil
}

// Changes lists the attributes that differ between before and after, named by JSON key.
func Changes[T any](before, after T) (diff.Changelog, error) {
	return diff.Diff(before, after, diff.TagName("json"), diff.DisableStructValues(), diff.SliceOrdering(true))
}

// Paths flattens a changelog into dotted attribute paths for logging.
func Paths(cl diff.Changelog) []string {
	paths := make([]string, 0, len(cl))
	for _, c := range cl {
		p := ""
		for i, seg := range c.Path {
			if i > 0 {
				p += "."
			}
			p += seg
		}
		paths = append(paths, p)
	}
	return paths
}

// clone deep copies nested maps so that mergemap never writes into the caller's patch.
func clone(src map[string]interface{}) map[string]interface{} {
	dst := make(map[string]interface{}, len(src))
	for k, v := range src {
		if m, ok := v.(map[string]interface{}); ok {
			dst[k] = clone(m)
			continue
		}
		if m, ok := v.(Patch); ok {
			dst[k] = clone(m)
			continue
		}
		dst[k] = v
	}
	return dst
}
