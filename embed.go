package unopro

import "embed"

// EmbeddedAssets contains the script shipped with the site: site.js, which
// drives the compare sliders, section scrolling and form pre-checks.
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
