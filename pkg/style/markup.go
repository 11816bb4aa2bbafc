package style

import (
	"regexp"
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// MarkupParser renders [tag]text[/tag] markup with a theme's styles. Tags
// nest; unknown tags are left as is.
type MarkupParser struct {
	styles map[string]lipgloss.Style
	tags   []string
	res    map[string]*regexp.Regexp
}

func newMarkupParser(t *Theme) *MarkupParser {
	p := &MarkupParser{
		styles: map[string]lipgloss.Style{},
		res:    map[string]*regexp.Regexp{},
	}
	for tag, st := range map[string]lipgloss.Style{
		"title":     t.Title,
		"subtitle":  t.Subtitle,
		"muted":     t.Muted,
		"bold":      t.Bold,
		"success":   t.Success,
		"error":     t.Error,
		"warning":   t.Warning,
		"info":      t.Info,
		"path":      t.Path,
		"code":      t.Code,
		"clean":     t.Clean,
		"modified":  t.Modified,
		"missing":   t.Missing,
		"unmanaged": t.Unmanaged,
		"ejected":   t.Ejected,
	} {
		p.AddStyle(tag, st)
	}
	return p
}

// AddStyle registers or replaces a tag.
func (p *MarkupParser) AddStyle(tag string, st lipgloss.Style) {
	if _, ok := p.styles[tag]; !ok {
		p.tags = append(p.tags, tag)
		sort.Strings(p.tags)
	}
	p.styles[tag] = st
	p.res[tag] = regexp.MustCompile(`(?s)\[` + regexp.QuoteMeta(tag) + `\](.*?)\[/` + regexp.QuoteMeta(tag) + `\]`)
}

// Render processes markup text and returns styled output.
func (p *MarkupParser) Render(text string) string {
	result := text
	for {
		before := result
		for _, tag := range p.tags {
			st := p.styles[tag]
			result = p.res[tag].ReplaceAllStringFunc(result, func(match string) string {
				return st.Render(p.res[tag].FindStringSubmatch(match)[1])
			})
		}
		if result == before {
			return result
		}
	}
}

// Markup renders [tag]…[/tag] markup with the theme.
func (t *Theme) Markup(text string) string {
	return t.markup.Render(text)
}

// MarkupParser returns the theme's parser so callers can add tags.
func (t *Theme) MarkupParser() *MarkupParser {
	return t.markup
}
