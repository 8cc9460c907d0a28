// Package assets embeds the shader sources shipped with the binary.
package assets

import "embed"

// FS holds shaders/<name>.vert and shaders/<name>.frag for desktop GLSL 4.10,
// and shaders/es/ for GLSL ES 3.00 sources meant for translation.
//
//go:embed shaders
var FS embed.FS
