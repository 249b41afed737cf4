package routes

import (
	"fmt"
	"path"
	"sort"
	"strings"
	"unicode"

	"go.uber.org/multierr"
)

// Table maps route names to handlers. Names are relative to the mount point
// and may contain "/" to nest (e.g. "api/hello").
type Table map[string]Handler

// Entry is a single table row.
type Entry struct {
	Name    string
	Handler Handler
}

// NewTable builds a Table from entries. Two entries whose names normalize to
// the same path are reported as ErrDuplicateRoute.
func NewTable(entries ...Entry) (Table, error) {
	t := make(Table, len(entries))
	seen := make(map[string]string, len(entries))
	var errs error
	for _, e := range entries {
		key := e.Name
		if n, err := NormalizeName(e.Name); err == nil {
			key = n
		}
		if prev, dup := seen[key]; dup {
			errs = multierr.Append(errs, fmt.Errorf("route %q: %w (conflicts with %q)", e.Name, ErrDuplicateRoute, prev))
			continue
		}
		seen[key] = e.Name
		t[e.Name] = e.Handler
	}
	if errs != nil {
		return nil, errs
	}
	return t, nil
}

// NormalizeName trims surrounding slashes and cleans the name. It rejects
// names that cannot be served as a static path.
func NormalizeName(name string) (string, error) {
	n := strings.Trim(strings.TrimSpace(name), "/")
	if n == "" {
		return "", ErrInvalidName
	}
	if strings.ContainsAny(n, "{}*?#%") || strings.IndexFunc(n, unicode.IsSpace) >= 0 {
		return "", ErrInvalidName
	}
	for _, seg := range strings.Split(n, "/") {
		if seg == "." || seg == ".." {
			return "", ErrInvalidName
		}
	}
	return path.Clean(n), nil
}

// entries validates the table and returns its rows sorted by normalized name.
func (t Table) entries() ([]Entry, error) {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]Entry, 0, len(t))
	seen := make(map[string]string, len(t))
	var errs error
	for _, name := range names {
		h := t[name]
		n, err := NormalizeName(name)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("route %q: %w", name, err))
			continue
		}
		if isNil(h) {
			errs = multierr.Append(errs, fmt.Errorf("route %q: %w", name, ErrNilHandler))
			continue
		}
		if prev, dup := seen[n]; dup {
			errs = multierr.Append(errs, fmt.Errorf("route %q: %w (conflicts with %q)", name, ErrDuplicateRoute, prev))
			continue
		}
		seen[n] = name
		out = append(out, Entry{Name: n, Handler: h})
	}
	if errs != nil {
		return nil, errs
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Names returns the normalized names of valid rows, sorted.
func (t Table) Names() []string {
	out := make([]string, 0, len(t))
	for name := range t {
		if n, err := NormalizeName(name); err == nil {
			out = append(out, n)
		}
	}
	sort.Strings(out)
	return out
}

// Entries returns the table rows sorted by name. Names are not normalized.
func (t Table) Entries() []Entry {
	out := make([]Entry, 0, len(t))
	for name, h := range t {
		out = append(out, Entry{Name: name, Handler: h})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
