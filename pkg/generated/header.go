package generated

import (
	"path/filepath"
	"regexp"
	"strings"
)

// HeaderStyle selects the comment syntax of the fingerprint header.
type HeaderStyle int

const (
	// MarkupComment is `<!-- bmad-generated:H -->`, for documents.
	MarkupComment HeaderStyle = iota
	// LineComment is `// bmad-generated:H`, for scripts.
	LineComment
)

const headerTag = "bmad-generated:"

func (s HeaderStyle) String() string {
	switch s {
	case MarkupComment:
		return "markup"
	case LineComment:
		return "line"
	default:
		return "unknown"
	}
}

// Line returns the header line for hash, trailing newline included.
func (s HeaderStyle) Line(hash string) string {
	if s == LineComment {
		return "// " + headerTag + hash + "\n"
	}
	return "<!-- " + headerTag + hash + " -->\n"
}

var lineCommentExts = map[string]bool{
	".js":  true,
	".cjs": true,
	".mjs": true,
	".ts":  true,
	".go":  true,
}

// StyleForPath picks LineComment for script files and MarkupComment for
// everything else.
func StyleForPath(path string) HeaderStyle {
	if lineCommentExts[strings.ToLower(filepath.Ext(path))] {
		return LineComment
	}
	return MarkupComment
}

// Compose returns the full file content for body: the header carrying the
// body's fingerprint, then the body. For LineComment bodies starting with a
// shebang the header becomes line 2.
func Compose(body string, style HeaderStyle) string {
	if style == LineComment && strings.HasPrefix(body, "#!") {
		nl := strings.IndexByte(body, '\n')
		if nl < 0 {
			body += "\n"
			nl = len(body) - 1
		}
		shebang, rest := body[:nl+1], body[nl+1:]
		return shebang + style.Line(Fingerprint(body)) + rest
	}
	return style.Line(Fingerprint(body)) + body
}

var (
	markupHeaderRe  = regexp.MustCompile(`^<!-- bmad-generated:([0-9a-f]{8}) -->\n`)
	lineHeaderRe    = regexp.MustCompile(`^// bmad-generated:([0-9a-f]{8})\n`)
	shebangHeaderRe = regexp.MustCompile(`^(#![^\n]*\n)// bmad-generated:([0-9a-f]{8})\n`)
)

// Header is a parsed fingerprint header.
type Header struct {
	Style    HeaderStyle
	Shebang  bool
	Embedded string
	// Body is the text the embedded fingerprint was computed over.
	Body string
}

// Actual returns the fingerprint of the current body.
func (h Header) Actual() string {
	return Fingerprint(h.Body)
}

// Modified reports whether the body no longer matches the embedded
// fingerprint.
func (h Header) Modified() bool {
	return h.Actual() != h.Embedded
}

// ParseHeader extracts the header from content. The shapes are tried in
// order: markup header on line 1, line-comment header on line 1, then
// line-comment header on line 2 after a shebang.
func ParseHeader(content string) (Header, bool) {
	if m := markupHeaderRe.FindStringSubmatch(content); m != nil {
		return Header{Style: MarkupComment, Embedded: m[1], Body: content[len(m[0]):]}, true
	}
	if m := lineHeaderRe.FindStringSubmatch(content); m != nil {
		return Header{Style: LineComment, Embedded: m[1], Body: content[len(m[0]):]}, true
	}
	if m := shebangHeaderRe.FindStringSubmatch(content); m != nil {
		return Header{
			Style:    LineComment,
			Shebang:  true,
			Embedded: m[2],
			Body:     m[1] + content[len(m[0]):],
		}, true
	}
	return Header{}, false
}

// HasDrifted reports whether content carries a header whose fingerprint no
// longer matches. Content without a header has not drifted.
func HasDrifted(content string) bool {
	h, ok := ParseHeader(content)
	return ok && h.Modified()
}
