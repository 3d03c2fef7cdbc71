// Package manifest reads, patches and validates the package.json manifest at
// the top of every template. Manifests are edited in place: key order and
// every field other than the one being set survive a load/save round trip.
package manifest
