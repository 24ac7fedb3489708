// Package assets bundles the default map so the binary runs without data files.
package assets

import _ "embed"

// DefaultMap is the 21x41 map matching puzzle.DefaultLayout
//
//go:embed maps/default.txt
var DefaultMap string
