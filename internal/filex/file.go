// Package filex prepares on-disk locations used by the server.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SQLitePath extracts the database file from a sqlite DSN such as
// "data/addrkeeper.db" or "file:data/addrkeeper.db?_pragma=busy_timeout(5000)".
// In-memory databases yield an empty string.
func SQLitePath(dsn string) string {
	path := strings.TrimPrefix(dsn, "file:")
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	if path == "" || path == ":memory:" {
		return ""
	}
	return path
}

// EnsureParentDir creates the directory holding path and returns it as an
// absolute path. Relative paths are resolved against the working directory.
func EnsureParentDir(path string) (string, error) {
	dir := filepath.Dir(path)

	if !filepath.IsAbs(dir) {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getwd: %w", err)
		}
		dir = filepath.Join(cwd, dir)
	}

	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	return dir, nil
}
