package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// errNoDocuments is returned when a documents file holds no documents.
var errNoDocuments = errors.New("no documents")

// documentsFile is the mapping form of a YAML documents file.
type documentsFile struct {
	Documents []string `yaml:"documents"`
}

// loadDocuments reads a document set from path.
//
// Files ending in .yaml, .yml or .json are decoded as YAML (a superset of
// JSON) holding either a list of strings or a "documents" key. Any other
// file yields one document per non-blank line; lines starting with # are
// comments.
func loadDocuments(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read documents: %w", err)
	}

	var docs []string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		docs, err = parseYAMLDocuments(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	default:
		docs = parseLineDocuments(string(data))
	}

	if len(docs) == 0 {
		return nil, fmt.Errorf("%w in %s", errNoDocuments, path)
	}
	return docs, nil
}

func parseYAMLDocuments(data []byte) ([]string, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	if len(root.Content) == 0 {
		return nil, nil
	}

	node := root.Content[0]
	switch node.Kind {
	case yaml.SequenceNode:
		var docs []string
		if err := node.Decode(&docs); err != nil {
			return nil, err
		}
		return docs, nil
	case yaml.MappingNode:
		var f documentsFile
		if err := node.Decode(&f); err != nil {
			return nil, err
		}
		return f.Documents, nil
	default:
		return nil, fmt.Errorf("expected a list or a documents mapping, got %s", kindName(node.Kind))
	}
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.ScalarNode:
		return "a scalar"
	case yaml.AliasNode:
		return "an alias"
	default:
		return fmt.Sprintf("node kind %d", k)
	}
}

func parseLineDocuments(text string) []string {
	var docs []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		docs = append(docs, line)
	}
	return docs
}
