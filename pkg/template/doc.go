// Package template implements the small directive language used to render
// bmad-swarm's package templates.
//
// Templates are plain strings with four kinds of markers:
//
//	{{#each items}}...{{/each}}        iterate a sequence
//	{{#if flag}}...{{#else}}...{{/if}}  conditional with optional else
//	{{#unless flag}}...{{/unless}}      negated conditional, no else
//	{{project.name}}                    placeholder, dotted path lookup
//
// Rendering runs four whole-string passes in a fixed order (each, if, unless,
// placeholders). Block bodies are rendered by recursing through all four
// passes. Malformed blocks and unresolved placeholders are left verbatim in
// the output; rendering never fails.
package template
