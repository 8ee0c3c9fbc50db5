package main

import "embed"

// dataFS holds the engine config, messages and cutscene scripts shipped
// with the player.
//
//go:embed data
var dataFS embed.FS
