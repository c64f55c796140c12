package command

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load decodes a YAML command definition, normalizes it and validates it.
// The root's bin name defaults to its name when the definition omits it.
func Load(r io.Reader) (*Command, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var root Command
	if err := decoder.Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("command definition is empty")
		}
		return nil, fmt.Errorf("failed to decode command definition: %w", err)
	}

	root.normalize()
	if root.BinName == "" {
		root.BinName = root.Name
	}

	if err := Validate(&root); err != nil {
		return nil, fmt.Errorf("invalid command definition: %w", err)
	}

	return &root, nil
}

// LoadFile loads a YAML command definition from path.
func LoadFile(path string) (*Command, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open command definition: %w", err)
	}
	defer file.Close()

	return Load(file)
}
