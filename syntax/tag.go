package syntax

import (
	"regexp"
	"strings"
)

var tagRE = regexp.MustCompile(`^\s*\{%\s*(/)?([a-zA-Z0-9_-]+)((?s:\s+.*?))?\s*(/)?%\}\s*$`)

// Tag is the lexical reading of a `{% ... %}` directive.
type Tag struct {
	Name        string
	Closing     bool
	SelfClosing bool
	Attrs       string // raw attribute text, trimmed
}

// ParseTag reads text as a single tag directive. ok is false when text does
// not match the tag pattern.
func ParseTag(text string) (Tag, bool) {
	m := tagRE.FindStringSubmatch(text)
	if m == nil {
		return Tag{}, false
	}
	return Tag{
		Name:        m[2],
		Closing:     m[1] != "",
		SelfClosing: m[4] != "",
		Attrs:       strings.TrimSpace(m[3]),
	}, true
}

// Attribute is one key/value pair of a tag.
type Attribute struct {
	Key   string
	Value string
}

// Attributes splits the raw attribute text into key/value pairs in source
// order. Values may be double-quoted; a bare key reads as "true".
func (t Tag) Attributes() []Attribute {
	var out []Attribute
	s := t.Attrs
	for {
		s = strings.TrimLeft(s, " \t\r\n")
		if s == "" {
			return out
		}
		end := strings.IndexAny(s, "= \t\r\n")
		if end < 0 {
			return append(out, Attribute{Key: s, Value: "true"})
		}
		key := s[:end]
		if s[end] != '=' {
			out = append(out, Attribute{Key: key, Value: "true"})
			s = s[end:]
			continue
		}
		s = s[end+1:]
		var val string
		if strings.HasPrefix(s, `"`) {
			closeAt := strings.IndexByte(s[1:], '"')
			if closeAt < 0 {
				val, s = s[1:], ""
			} else {
				val, s = s[1:closeAt+1], s[closeAt+2:]
			}
		} else {
			stop := strings.IndexAny(s, " \t\r\n")
			if stop < 0 {
				val, s = s, ""
			} else {
				val, s = s[:stop], s[stop:]
			}
		}
		if key != "" {
			out = append(out, Attribute{Key: key, Value: val})
		}
	}
}
