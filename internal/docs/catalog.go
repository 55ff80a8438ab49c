// Package docs holds the documentation catalog and the fetcher that serves
// each entry's markdown on demand.
package docs

import (
	"net/url"
	"strings"

	"github.com/cockroachdb/errors"
)

// Entry binds a tool name to a remote markdown document.
type Entry struct {
	Name        string
	Description string
	SourceURL   string
}

// ToolName is the MCP tool name for the entry: the catalog key with dashes
// replaced by underscores.
func (e Entry) ToolName() string {
	return strings.ReplaceAll(e.Name, "-", "_")
}

// Catalog returns a copy of the documentation catalog in registration order.
func Catalog() []Entry {
	out := make([]Entry, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup returns the entry registered under name.
func Lookup(name string) (Entry, bool) {
	for _, e := range catalog {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// Validate checks that every entry has a name, an absolute http(s) URL, and
// that neither names nor tool names collide.
func Validate(entries []Entry) error {
	names := make(map[string]bool, len(entries))
	tools := make(map[string]string, len(entries))
	for _, e := range entries {
		if e.Name == "" {
			return errors.New("catalog entry with empty name")
		}
		if names[e.Name] {
			return errors.Newf("duplicate catalog entry %q", e.Name)
		}
		names[e.Name] = true

		if prev, ok := tools[e.ToolName()]; ok {
			return errors.Newf("catalog entries %q and %q map to the same tool name %q", prev, e.Name, e.ToolName())
		}
		tools[e.ToolName()] = e.Name

		u, err := url.Parse(e.SourceURL)
		if err != nil {
			return errors.Wrapf(err, "catalog entry %q", e.Name)
		}
		if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return errors.Newf("catalog entry %q: source url must be absolute http(s), got %q", e.Name, e.SourceURL)
		}
	}
	return nil
}
