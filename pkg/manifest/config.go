package manifest

import (
	"fmt"
	"path"
	"strings"
)

// Config is the top-level route manifest.
//
//	base_path = "/"
//
//	[[route]]
//	name = "hello"
//	handler = { type = "text", body = "hello world" }
type Config struct {
	BasePath string  `toml:"base_path"`
	Routes   []Route `toml:"route"`
}

// Validate normalizes the manifest in place and reports the first problem.
// A manifest without routes is valid and serves nothing.
func (c *Config) Validate() error {
	bp, err := normalizeBase(c.BasePath)
	if err != nil {
		return err
	}
	c.BasePath = bp
	return c.validateRoutes()
}

func normalizeBase(p string) (string, error) {
	p = strings.TrimSpace(p)
	if p == "" {
		return DefaultBasePath, nil
	}
	if strings.ContainsAny(p, "{}*?#") {
		return "", fmt.Errorf("base_path %q: pattern characters not allowed", p)
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return path.Clean(p), nil
}
