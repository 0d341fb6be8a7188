// Package levels embeds the bundled arena maps.
package levels

import "embed"

// Default is the arena loaded when no level is given.
const Default = "arena.tmx"

//go:embed *.tmx
var FS embed.FS
