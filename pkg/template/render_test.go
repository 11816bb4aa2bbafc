package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender_Placeholders(t *testing.T) {
	tests := []struct {
		name     string
		template string
		ctx      Context
		expected string
	}{
		{
			name:     "simple placeholder",
			template: "Hello {{name}}!",
			ctx:      Context{"name": "World"},
			expected: "Hello World!",
		},
		{
			name:     "nested placeholders",
			template: "{{project.name}} is {{project.type}}",
			ctx:      Context{"project": map[string]any{"name": "MyApp", "type": "web-app"}},
			expected: "MyApp is web-app",
		},
		{
			name:     "unknown placeholder left unchanged",
			template: "Hello {{unknown}}!",
			ctx:      Context{},
			expected: "Hello {{unknown}}!",
		},
		{
			name:     "unresolved deep path left unchanged",
			template: "{{a.b.c}}",
			ctx:      Context{"a": map[string]any{}},
			expected: "{{a.b.c}}",
		},
		{
			name:     "whitespace inside braces is trimmed",
			template: "{{ project.name }}",
			ctx:      Context{"project": map[string]any{"name": "MyApp"}},
			expected: "MyApp",
		},
		{
			name:     "numbers and booleans are stringified",
			template: "{{count}} {{ratio}} {{whole}} {{enabled}}",
			ctx:      Context{"count": 42, "ratio": 1.5, "whole": float64(2), "enabled": false},
			expected: "42 1.5 2 false",
		},
		{
			name:     "sequences are comma joined",
			template: "{{tags}}",
			ctx:      Context{"tags": []string{"a", "b"}},
			expected: "a,b",
		},
		{
			name:     "numeric segment indexes a sequence",
			template: "{{items.1}}",
			ctx:      Context{"items": []any{"x", "y"}},
			expected: "y",
		},
		{
			name:     "no escaping is applied",
			template: "{{html}}",
			ctx:      Context{"html": "<b>&</b>"},
			expected: "<b>&</b>",
		},
		{
			name:     "nil value is unresolved",
			template: "{{gone}}",
			ctx:      Context{"gone": nil},
			expected: "{{gone}}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Render(tt.template, tt.ctx))
		})
	}
}

func TestRender_Conditionals(t *testing.T) {
	tests := []struct {
		name     string
		template string
		ctx      Context
		expected string
	}{
		{
			name:     "truthy condition keeps block",
			template: "{{#if show}}visible{{/if}}",
			ctx:      Context{"show": true},
			expected: "visible",
		},
		{
			name:     "falsy condition drops block",
			template: "{{#if show}}hidden{{/if}}",
			ctx:      Context{"show": false},
			expected: "",
		},
		{
			name:     "missing key drops block",
			template: "before{{#if missing}}hidden{{/if}}after",
			ctx:      Context{},
			expected: "beforeafter",
		},
		{
			name:     "nested key condition",
			template: "{{#if stack.framework}}has framework{{/if}}",
			ctx:      Context{"stack": map[string]any{"framework": "React"}},
			expected: "has framework",
		},
		{
			name:     "else branch when falsy",
			template: "{{#if a}}Y{{#else}}N{{/if}}",
			ctx:      Context{"a": false},
			expected: "N",
		},
		{
			name:     "true branch when truthy",
			template: "{{#if a}}Y{{#else}}N{{/if}}",
			ctx:      Context{"a": true},
			expected: "Y",
		},
		{
			name:     "else branch when missing",
			template: "{{#if missing}}yes{{#else}}no{{/if}}",
			ctx:      Context{},
			expected: "no",
		},
		{
			name:     "nested if both true",
			template: "{{#if a}}{{#if b}}X{{/if}}{{/if}}",
			ctx:      Context{"a": true, "b": true},
			expected: "X",
		},
		{
			name:     "nested if outer false",
			template: "{{#if a}}{{#if b}}X{{/if}}{{/if}}",
			ctx:      Context{"a": false, "b": true},
			expected: "",
		},
		{
			name:     "inner else does not split outer block",
			template: "{{#if a}}{{#if b}}AB{{#else}}A{{/if}}{{#else}}N{{/if}}",
			ctx:      Context{"a": true, "b": false},
			expected: "A",
		},
		{
			name:     "outer else with nested else inside true branch",
			template: "{{#if a}}{{#if b}}AB{{#else}}A{{/if}}{{#else}}N{{/if}}",
			ctx:      Context{"a": false, "b": true},
			expected: "N",
		},
		{
			name:     "empty sequence is truthy",
			template: "{{#if items}}yes{{#else}}no{{/if}}",
			ctx:      Context{"items": []any{}},
			expected: "yes",
		},
		{
			name:     "empty map is truthy",
			template: "{{#if meta}}yes{{#else}}no{{/if}}",
			ctx:      Context{"meta": map[string]any{}},
			expected: "yes",
		},
		{
			name:     "zero is falsy",
			template: "{{#if count}}yes{{#else}}no{{/if}}",
			ctx:      Context{"count": 0},
			expected: "no",
		},
		{
			name:     "empty string is falsy",
			template: "{{#if name}}yes{{#else}}no{{/if}}",
			ctx:      Context{"name": ""},
			expected: "no",
		},
		{
			name:     "false branch references never resolve",
			template: "{{#if ok}}fine{{#else}}{{does.not.exist}}{{/if}}",
			ctx:      Context{"ok": true},
			expected: "fine",
		},
		{
			name:     "sibling blocks",
			template: "{{#if a}}A{{/if}}-{{#if b}}B{{/if}}-{{#if c}}C{{/if}}",
			ctx:      Context{"a": true, "b": false, "c": 1},
			expected: "A--C",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Render(tt.template, tt.ctx))
		})
	}
}

func TestRender_Unless(t *testing.T) {
	assert.Equal(t, "visible", Render("{{#unless hidden}}visible{{/unless}}", Context{"hidden": false}))
	assert.Equal(t, "", Render("{{#unless hidden}}visible{{/unless}}", Context{"hidden": true}))
	assert.Equal(t, "visible", Render("{{#unless missing}}visible{{/unless}}", Context{}))
	assert.Equal(t, "[x]", Render("{{#unless a}}[{{#unless b}}{{v}}{{/unless}}]{{/unless}}", Context{"v": "x"}))

	// unless has no else branch: the marker is just text in the body
	assert.Equal(t, "A{{#else}}B", Render("{{#unless a}}A{{#else}}B{{/unless}}", Context{}))
}

func TestRender_Each(t *testing.T) {
	tests := []struct {
		name     string
		template string
		ctx      Context
		expected string
	}{
		{
			name:     "sequence of primitives",
			template: "{{#each items}}[{{this}}]{{/each}}",
			ctx:      Context{"items": []any{"a", "b", "c"}},
			expected: "[a][b][c]",
		},
		{
			name:     "sequence of maps",
			template: "{{#each items}}{{name}} {{/each}}",
			ctx: Context{"items": []any{
				map[string]any{"name": "x"},
				map[string]any{"name": "y"},
			}},
			expected: "x y ",
		},
		{
			name:     "map fields and numbers",
			template: "{{#each items}}{{name}}:{{value}} {{/each}}",
			ctx: Context{"items": []map[string]any{
				{"name": "x", "value": 1},
				{"name": "y", "value": 2},
			}},
			expected: "x:1 y:2 ",
		},
		{
			name:     "empty sequence",
			template: "before{{#each items}}item{{/each}}after",
			ctx:      Context{"items": []any{}},
			expected: "beforeafter",
		},
		{
			name:     "missing sequence",
			template: "before{{#each items}}item{{/each}}after",
			ctx:      Context{},
			expected: "beforeafter",
		},
		{
			name:     "nil sequence",
			template: "before{{#each items}}item{{/each}}after",
			ctx:      Context{"items": nil},
			expected: "beforeafter",
		},
		{
			name:     "non sequence value renders nothing",
			template: "before{{#each name}}{{#if x}}item{{/if}}{{/each}}after",
			ctx:      Context{"name": "abc", "x": true},
			expected: "beforeafter",
		},
		{
			name:     "conditionals inside each",
			template: "{{#each items}}{{#if active}}[{{name}}]{{/if}}{{/each}}",
			ctx: Context{"items": []any{
				map[string]any{"name": "a", "active": true},
				map[string]any{"name": "b", "active": false},
				map[string]any{"name": "c", "active": true},
			}},
			expected: "[a][c]",
		},
		{
			name:     "primitive items still see outer scope",
			template: "{{#each tags}}{{prefix}}-{{this}} {{/each}}",
			ctx:      Context{"prefix": "x", "tags": []string{"a", "b"}},
			expected: "x-a x-b ",
		},
		{
			name:     "map items see outer scope and shadow it",
			template: "{{#each items}}{{name}}@{{project}} {{/each}}{{name}}",
			ctx: Context{
				"name":    "outer",
				"project": "p",
				"items":   []any{map[string]any{"name": "inner"}},
			},
			expected: "inner@p outer",
		},
		{
			name:     "this binds the current map item",
			template: "{{#each items}}{{this.name}};{{/each}}",
			ctx:      Context{"items": []any{map[string]any{"name": "x"}}},
			expected: "x;",
		},
		{
			name:     "nested each",
			template: "{{#each groups}}{{name}}:{{#each members}}{{this}},{{/each}};{{/each}}",
			ctx: Context{"groups": []any{
				map[string]any{"name": "g1", "members": []any{"a", "b"}},
				map[string]any{"name": "g2", "members": []any{"c"}},
			}},
			expected: "g1:a,b,;g2:c,;",
		},
		{
			name:     "numeric items",
			template: "{{#each nums}}<{{this}}>{{/each}}",
			ctx:      Context{"nums": []int{1, 2, 3}},
			expected: "<1><2><3>",
		},
		{
			name:     "each inside if",
			template: "{{#if show}}{{#each xs}}{{this}}{{/each}}{{/if}}",
			ctx:      Context{"show": true, "xs": []string{"a", "b"}},
			expected: "ab",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Render(tt.template, tt.ctx))
		})
	}
}

func TestRender_Malformed(t *testing.T) {
	t.Run("unclosed if is left verbatim", func(t *testing.T) {
		out := Render("before {{#if a}}unclosed {{name}}", Context{"a": true, "name": "x"})
		assert.Equal(t, "before {{#if a}}unclosed x", out)
	})

	t.Run("unbalanced nesting stops the pass", func(t *testing.T) {
		tmpl := "{{#if a}}X{{#if b}}Y{{/if}}"
		assert.Equal(t, tmpl, Render(tmpl, Context{"a": true, "b": true}))
	})

	t.Run("earlier blocks are still processed", func(t *testing.T) {
		out := Render("{{#each xs}}{{this}}{{/each}} {{#each ys}}", Context{"xs": []string{"1", "2"}})
		assert.Equal(t, "12 {{#each ys}}", out)
	})

	t.Run("stray close marker is text", func(t *testing.T) {
		assert.Equal(t, "a{{/if}}", Render("a{{/if}}", Context{}))
	})
}

func TestRender_DoesNotMutateContext(t *testing.T) {
	ctx := Context{
		"items": []any{map[string]any{"name": "x"}},
		"name":  "outer",
	}
	_ = Render("{{#each items}}{{name}}{{/each}}", ctx)

	assert.Len(t, ctx, 2)
	assert.Equal(t, "outer", ctx["name"])
	_, hasThis := ctx[ThisKey]
	assert.False(t, hasThis)
	assert.Len(t, ctx["items"].([]any)[0].(map[string]any), 1)
}

func TestUnresolved(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, Unresolved("{{a}} {{ b }} {{a}}"))
	assert.Empty(t, Unresolved("plain {{#if x}} text"))
}

func TestRenderer_MatchesRender(t *testing.T) {
	r := NewRenderer()
	tmpl := "{{#if a}}{{name}}{{/if}} {{missing}}"
	ctx := Context{"a": true, "name": "n"}
	assert.Equal(t, Render(tmpl, ctx), r.Render("test", tmpl, ctx))
}
