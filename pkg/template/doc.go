// Package template parses and renders the `{name}` / `{{ expression }}`
// template syntax. A parsed Template is an ordered chunk list; rendering
// is a single pass that emits text verbatim and evaluates holes against
// a write-once provider registry and the expression function registry.
package template
