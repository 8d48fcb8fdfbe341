package static

import (
	"io/fs"
	"net/http"
	"strconv"

	"github.com/dmitrymomot/landing/core/handler"
)

// fsConfig holds configuration options for fs.FS serving.
type fsConfig struct {
	fs          fs.FS
	stripPrefix string
	subPath     string
	cacheMaxAge int
}

// FSOption is a functional option type for configuring fs.FS serving behavior.
type FSOption func(*fsConfig)

// WithFSStripPrefix removes the given prefix from the URL path before serving files.
//
// For example, if embedded files are mounted at "/assets/" but stored in "assets/",
// use WithFSStripPrefix("/assets") so "/assets/style.css" serves "assets/style.css".
func WithFSStripPrefix(prefix string) FSOption {
	return func(c *fsConfig) {
		c.stripPrefix = prefix
	}
}

// WithSubFS serves files from a subdirectory within the fs.FS.
// The path parameter should use forward slashes regardless of OS.
func WithSubFS(path string) FSOption {
	return func(c *fsConfig) {
		c.subPath = path
	}
}

// WithCacheMaxAge sets a Cache-Control max-age header on served files.
// Embedded assets are immutable for the lifetime of the binary, so long
// max-age values are safe.
func WithCacheMaxAge(seconds int) FSOption {
	return func(c *fsConfig) {
		if seconds > 0 {
			c.cacheMaxAge = seconds
		}
	}
}

// FS creates a handler that serves files from an fs.FS (including embed.FS).
//
// Directory listing is disabled; a directory is only accessible when it
// contains an index.html file. Range requests and conditional headers are
// handled by the underlying http.FileServer.
//
// Panics at startup if the sub-path specified in WithSubFS is invalid or the
// filesystem root is not accessible, so misconfiguration fails fast instead
// of surfacing as runtime 404s.
//
// Example with embed.FS:
//
//	//go:embed assets/*
//	var assetsFS embed.FS
//
//	handler := static.FS[*router.Context](
//		assetsFS,
//		static.WithFSStripPrefix("/assets"),
//		static.WithSubFS("assets"),
//	)
func FS[C handler.Context](fsys fs.FS, opts ...FSOption) handler.HandlerFunc[C] {
	config := &fsConfig{
		fs: fsys,
	}

	for _, opt := range opts {
		opt(config)
	}

	if config.subPath != "" {
		sub, err := fs.Sub(fsys, config.subPath)
		if err != nil {
			panic("static.FS: invalid sub-path '" + config.subPath + "': " + err.Error())
		}
		config.fs = sub
	}

	// Fail fast on an inaccessible filesystem
	if _, err := config.fs.Open("."); err != nil {
		panic("static.FS: filesystem is not accessible: " + err.Error())
	}

	fileServer := http.FileServer(neuteredFileSystem{fs: http.FS(config.fs)})

	if config.stripPrefix != "" {
		fileServer = http.StripPrefix(config.stripPrefix, fileServer)
	}

	cacheControl := ""
	if config.cacheMaxAge > 0 {
		cacheControl = "public, max-age=" + strconv.Itoa(config.cacheMaxAge)
	}

	return func(ctx C) handler.Response {
		return func(w http.ResponseWriter, r *http.Request) error {
			if cacheControl != "" {
				w.Header().Set("Cache-Control", cacheControl)
			}
			fileServer.ServeHTTP(w, r)
			return nil
		}
	}
}
