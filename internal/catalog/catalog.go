// Package catalog defines the static tool catalog for the Follow Up Boss API.
// Each tool is a thin description of one REST endpoint: name, HTTP method,
// path template with :name placeholders, and a parameter schema.
package catalog

import (
	"fmt"
	"strings"
)

// allowedMethods is the whitelist of HTTP methods for catalog tools.
var allowedMethods = map[string]bool{
	"GET": true, "POST": true, "PUT": true, "PATCH": true, "DELETE": true,
}

// Tool describes one Follow Up Boss REST endpoint exposed as a named tool.
type Tool struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Method      string  `json:"method"`
	Path        string  `json:"path"`
	Params      []Param `json:"params"`
}

// Param describes one parameter for a catalog tool.
type Param struct {
	Name        string `json:"name"`
	Type        string `json:"type"` // string, number, boolean, array, object
	Description string `json:"description"`
	Required    bool   `json:"required"`
	In          string `json:"in"` // path, query, body
}

// Catalog is an immutable, ordered collection of tools with unique names.
type Catalog struct {
	tools  []Tool
	byName map[string]int
}

// New builds a catalog from the given tools, validating every entry.
// Duplicate names are an error: lookup must be unambiguous.
func New(tools []Tool) (*Catalog, error) {
	byName := make(map[string]int, len(tools))
	for i, t := range tools {
		if err := ValidateTool(t); err != nil {
			return nil, err
		}
		if _, ok := byName[t.Name]; ok {
			return nil, fmt.Errorf("duplicate tool name %q", t.Name)
		}
		byName[t.Name] = i
	}

	owned := make([]Tool, len(tools))
	copy(owned, tools)
	return &Catalog{tools: owned, byName: byName}, nil
}

// MustNew is New, panicking on error. Used for the compiled-in table,
// where a validation failure is a programming error.
func MustNew(tools []Tool) *Catalog {
	c, err := New(tools)
	if err != nil {
		panic(err)
	}
	return c
}

// ValidateTool validates a single catalog tool entry.
func ValidateTool(t Tool) error {
	if t.Name == "" {
		return fmt.Errorf("tool has empty name")
	}
	if t.Method == "" {
		return fmt.Errorf("tool %q has empty method", t.Name)
	}
	if !allowedMethods[strings.ToUpper(t.Method)] {
		return fmt.Errorf("tool %q has unsupported method %q", t.Name, t.Method)
	}
	if t.Path == "" {
		return fmt.Errorf("tool %q has empty path", t.Name)
	}
	if !strings.HasPrefix(t.Path, "/") {
		return fmt.Errorf("tool %q has invalid path %q (must start with /)", t.Name, t.Path)
	}
	if strings.Contains(t.Path, "..") {
		return fmt.Errorf("tool %q has invalid path %q (contains ..)", t.Name, t.Path)
	}
	return nil
}

// Tools returns a copy of the catalog in registration order.
func (c *Catalog) Tools() []Tool {
	result := make([]Tool, len(c.tools))
	copy(result, c.tools)
	return result
}

// Lookup returns the tool with the given name.
func (c *Catalog) Lookup(name string) (Tool, bool) {
	i, ok := c.byName[name]
	if !ok {
		return Tool{}, false
	}
	return c.tools[i], true
}

// Len returns the number of tools in the catalog.
func (c *Catalog) Len() int {
	return len(c.tools)
}

// Placeholders returns the :name placeholder keys in a path template,
// in order of appearance.
func Placeholders(path string) []string {
	var keys []string
	for i := 0; i < len(path); i++ {
		if path[i] != ':' {
			continue
		}
		j := i + 1
		for j < len(path) && path[j] != '/' && path[j] != '?' && path[j] != '&' {
			j++
		}
		if j > i+1 {
			keys = append(keys, path[i+1:j])
		}
		i = j - 1
	}
	return keys
}
