// Package install runs the package manager's install command in a freshly
// materialized project. Installation is best-effort: callers report a
// failure and carry on.
package install
