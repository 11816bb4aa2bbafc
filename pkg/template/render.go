package template

import (
	"regexp"
	"strings"
)

const (
	eachOpen    = "{{#each"
	eachClose   = "{{/each}}"
	ifOpen      = "{{#if"
	ifClose     = "{{/if}}"
	elseMarker  = "{{#else}}"
	unlessOpen  = "{{#unless"
	unlessClose = "{{/unless}}"

	// ThisKey is the context key bound to the current item inside an each block.
	ThisKey    = "this"
	thisMarker = "{{" + ThisKey + "}}"
)

var (
	eachOpenRe    = regexp.MustCompile(`\{\{#each\s+([^}]+)\}\}`)
	ifOpenRe      = regexp.MustCompile(`\{\{#if\s+([^}]+)\}\}`)
	unlessOpenRe  = regexp.MustCompile(`\{\{#unless\s+([^}]+)\}\}`)
	placeholderRe = regexp.MustCompile(`\{\{([^#/][^}]*)\}\}`)
)

type blockKind int

const (
	kindEach blockKind = iota
	kindIf
	kindUnless
)

// block describes one directive kind. The kinds differ only in their marker
// spelling and in how a matched block is expanded.
type block struct {
	kind   blockKind
	openRe *regexp.Regexp
	open   string
	close  string
}

var (
	eachBlock   = block{kind: kindEach, openRe: eachOpenRe, open: eachOpen, close: eachClose}
	ifBlock     = block{kind: kindIf, openRe: ifOpenRe, open: ifOpen, close: ifClose}
	unlessBlock = block{kind: kindUnless, openRe: unlessOpenRe, open: unlessOpen, close: unlessClose}
)

func (b block) expand(body string, value any, resolved bool, ctx Context) string {
	switch b.kind {
	case kindEach:
		return expandEach(body, value, resolved, ctx)
	case kindIf:
		return expandIf(body, value, resolved, ctx)
	default:
		return expandUnless(body, value, resolved, ctx)
	}
}

// Render evaluates tmpl against ctx. It is a pure function: the same template
// and context always produce the same output, and ctx is never modified.
func Render(tmpl string, ctx Context) string {
	result := processBlocks(tmpl, ctx, eachBlock)
	result = processBlocks(result, ctx, ifBlock)
	result = processBlocks(result, ctx, unlessBlock)
	return replacePlaceholders(result, ctx)
}

// processBlocks replaces every block of one kind, left to right. Scanning
// resumes after the inserted replacement. An open marker without a matching
// close stops the pass, leaving the rest of the text untouched.
func processBlocks(s string, ctx Context, kind block) string {
	result := s
	pos := 0
	for pos <= len(result) {
		loc := kind.openRe.FindStringSubmatchIndex(result[pos:])
		if loc == nil {
			break
		}
		start := pos + loc[0]
		afterOpen := pos + loc[1]
		key := strings.TrimSpace(result[pos+loc[2] : pos+loc[3]])

		closeAt := FindMatchingClose(result, kind.open, kind.close, afterOpen)
		if closeAt < 0 {
			break
		}

		value, resolved := Resolve(ctx, key)
		replacement := kind.expand(result[afterOpen:closeAt], value, resolved, ctx)

		result = result[:start] + replacement + result[closeAt+len(kind.close):]
		pos = start + len(replacement)
	}
	return result
}

func expandEach(body string, value any, resolved bool, ctx Context) string {
	if !resolved {
		return ""
	}
	items, ok := asSequence(value)
	if !ok {
		return ""
	}

	var out strings.Builder
	for _, item := range items {
		if fields, isMap := asMapping(item); isMap {
			out.WriteString(Render(body, overlay(ctx, fields, item)))
			continue
		}
		out.WriteString(Render(strings.ReplaceAll(body, thisMarker, Stringify(item)), ctx))
	}
	return out.String()
}

func expandIf(body string, value any, resolved bool, ctx Context) string {
	whenTrue, whenFalse, _ := splitElse(body)
	if resolved && Truthy(value) {
		return Render(whenTrue, ctx)
	}
	return Render(whenFalse, ctx)
}

func expandUnless(body string, value any, resolved bool, ctx Context) string {
	if resolved && Truthy(value) {
		return ""
	}
	return Render(body, ctx)
}

// overlay builds the per item context of an each block: the outer context,
// then the item's fields, then the item itself under ThisKey.
func overlay(ctx Context, fields map[string]any, item any) Context {
	merged := make(Context, len(ctx)+len(fields)+1)
	for k, v := range ctx {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	merged[ThisKey] = item
	return merged
}

func replacePlaceholders(s string, ctx Context) string {
	return placeholderRe.ReplaceAllStringFunc(s, func(marker string) string {
		key := strings.TrimSpace(marker[2 : len(marker)-2])
		value, ok := Resolve(ctx, key)
		if !ok {
			return marker
		}
		return Stringify(value)
	})
}

// Unresolved lists the placeholder paths still present in rendered output,
// in order of appearance, without duplicates.
func Unresolved(rendered string) []string {
	var keys []string
	seen := make(map[string]bool)
	for _, m := range placeholderRe.FindAllStringSubmatch(rendered, -1) {
		key := strings.TrimSpace(m[1])
		if seen[key] {
			continue
		}
		seen[key] = true
		keys = append(keys, key)
	}
	return keys
}
