package handler

import (
	"fmt"
	"sort"
	"strings"
)

// TagKey is the field name adapters read a per-entry tag from. When an
// entry carries a string field with this key, it replaces the adapter's
// configured tag and is not rendered as a field.
const TagKey = "tag"

// AppendField writes " key=value" to b.
func AppendField(b *strings.Builder, key string, value any) {
	b.WriteByte(' ')
	b.WriteString(key)
	b.WriteByte('=')
	switch v := value.(type) {
	case string:
		b.WriteString(v)
	case error:
		b.WriteString(v.Error())
	case fmt.Stringer:
		b.WriteString(v.String())
	default:
		fmt.Fprint(b, v)
	}
}

// Line renders msg followed by the fields in key order. A string TagKey
// field is removed and returned as tag; otherwise tag is defaultTag.
func Line(defaultTag, msg string, fields map[string]any) (tag, line string) {
	tag = defaultTag
	tagged := false
	if v, ok := fields[TagKey].(string); ok {
		tag, tagged = v, true
	}
	if len(fields) == 0 || (tagged && len(fields) == 1) {
		return tag, msg
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		if tagged && k == TagKey {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(msg)
	for _, k := range keys {
		AppendField(&b, k, fields[k])
	}
	return tag, b.String()
}
