// Package web embeds the dashboard's static assets.
package web

import "embed"

//go:embed templates
var Templates embed.FS
