// Package content embeds the Lua scripts that define the built-in game,
// "Shadow Circuit: A Night in Austin".
package content

import "embed"

//go:embed *.lua
var Files embed.FS
