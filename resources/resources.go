// Package resources embeds the default fixture documents served by the app.
package resources

import "embed"

//go:embed *.json
var FS embed.FS
