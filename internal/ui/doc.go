// Package ui holds the terminal styling and status indicators shared by the
// commands.
package ui
