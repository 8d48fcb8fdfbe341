// Package static serves embedded static assets over HTTP.
//
// FS wraps an fs.FS (typically an embed.FS) in a typed handler with directory
// listing disabled and optional prefix stripping, sub-filesystem selection,
// and Cache-Control headers.
package static
