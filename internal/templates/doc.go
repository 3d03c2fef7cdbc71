// Package templates locates the templates root and enumerates the templates
// it holds. Every immediate, non-hidden subdirectory of the root is a
// template; the listing is read from disk on each call.
package templates
