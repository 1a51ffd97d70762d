// Package registry implements the command namespace of the dispatcher. A
// Registry is filled once with alias and regex rules, sealed, and from then
// on only read: Dispatch resolves a typed line into a fully expanded command
// string and Describe serves help text. Hot reload is done by building a new
// Registry and swapping the reference held by the caller, never by mutating
// a sealed one.
package registry
