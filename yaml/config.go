// Package yaml lets command-line flags be preset from a YAML file.
//
// Top-level keys set flags of any command; a mapping named after a command
// sets that command's flags and wins over top-level keys:
//
//	timeout: 20s
//	article:
//	  out: ~/kindle
//	  proxy: [https://proxy.example.com/]
package yaml

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kong"
	yamlv3 "gopkg.in/yaml.v3"
)

// Loader is a kong.ConfigurationLoader for YAML documents.
func Loader(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}
	if err := yamlv3.NewDecoder(r).Decode(&values); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	var f kong.ResolverFunc = func(_ *kong.Context, parent *kong.Path, flag *kong.Flag) (any, error) {
		if parent != nil && parent.Command != nil {
			if section, ok := values[parent.Command.Name].(map[string]any); ok {
				if v, ok := lookup(section, flag.Name); ok {
					return v, nil
				}
			}
		}
		if v, ok := lookup(values, flag.Name); ok {
			return v, nil
		}
		return nil, nil
	}
	return f, nil
}

// lookup finds name as written or with dashes replaced by underscores and
// flattens the value into the string form kong parses from the command line.
func lookup(values map[string]any, name string) (string, bool) {
	raw, ok := values[name]
	if !ok {
		raw, ok = values[strings.ReplaceAll(name, "-", "_")]
	}
	if !ok || raw == nil {
		return "", false
	}
	switch v := raw.(type) {
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, fmt.Sprint(item))
		}
		return strings.Join(parts, ","), true
	case map[string]any:
		return "", false
	default:
		return fmt.Sprint(v), true
	}
}
