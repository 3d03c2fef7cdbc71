// Package prompt collects the run configuration from the operator with plain
// line-based questions: free text, numbered menus and yes/no confirmations.
package prompt
