package sites

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

type documentFile struct {
	Sites []Site `json:"sites" yaml:"sites"`
}

// LoadSites parses a JSON or YAML site list. The document is either a bare
// list of sites or an object with a "sites" key. Order is preserved.
func LoadSites(r io.Reader) ([]Site, error) {
	if r == nil {
		return nil, fmt.Errorf("sites: missing reader")
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("sites: read: %w", err)
	}
	return parseSites(data, "input")
}

// LoadFile reads a site list from path.
func LoadFile(path string) ([]Site, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sites: read %s: %w", path, err)
	}
	return parseSites(data, path)
}

// NewStoreFromFile builds a Store seeded from a site file.
func NewStoreFromFile(path string) (*Store, error) {
	list, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	return NewStore(list...)
}

func parseSites(data []byte, source string) ([]Site, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("sites: file %s is empty", source)
	}

	list, ok := decodeJSON(trimmed)
	if !ok {
		list, ok = decodeYAML(trimmed)
	}
	if !ok {
		return nil, fmt.Errorf("sites: parse %s: invalid JSON or YAML", source)
	}

	clean, err := normalizeSites(list)
	if err != nil {
		return nil, fmt.Errorf("%w (file %s)", err, source)
	}
	return clean, nil
}

func decodeJSON(data []byte) ([]Site, bool) {
	if data[0] == '[' {
		var list []Site
		if err := json.Unmarshal(data, &list); err != nil {
			return nil, false
		}
		return list, true
	}
	var doc documentFile
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, false
	}
	return doc.Sites, true
}

func decodeYAML(data []byte) ([]Site, bool) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, false
	}
	if len(node.Content) == 0 {
		return nil, false
	}
	root := node.Content[0]
	switch root.Kind {
	case yaml.SequenceNode:
		var list []Site
		if err := root.Decode(&list); err != nil {
			return nil, false
		}
		return list, true
	case yaml.MappingNode:
		var doc documentFile
		if err := root.Decode(&doc); err != nil {
			return nil, false
		}
		return doc.Sites, true
	default:
		return nil, false
	}
}
