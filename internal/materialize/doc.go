// Package materialize reproduces a template's directory tree at a destination
// and rewrites the copied manifest's name. Failures are not rolled back: a
// copy that fails partway leaves whatever was already written in place.
package materialize
