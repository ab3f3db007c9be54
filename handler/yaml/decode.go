package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/0xalexb/hjarta-conf/tree"

	"github.com/goccy/go-yaml"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// ErrMultilineKey is returned when a mapping key holds a line break. Such keys are
// emitted as block scalars, which the parser does not accept as keys.
var ErrMultilineKey = errors.New("mapping key contains a line break")

// ErrPathNotFound is returned when the requested key is not present in the document.
var ErrPathNotFound = errors.New("path not found")

// DecodeInto unmarshals YAML data into target. A non-empty key selects a section
// of the document (see package documentation for the key syntax).
func DecodeInto(data []byte, target any, key string) error {
	if len(data) == 0 {
		return ErrEmptyData
	}

	if key == "" {
		err := yaml.Unmarshal(data, target)
		if err != nil {
			return fmt.Errorf("unmarshal error: %w", err)
		}

		return nil
	}

	pathObj, err := yaml.PathString(convertToYAMLPath(key))
	if err != nil {
		return fmt.Errorf("invalid key %q: %w", key, err)
	}

	err = pathObj.Read(bytes.NewReader(data), target)
	if err != nil {
		if isKeyNotFoundError(err) {
			return fmt.Errorf("%w: %s", ErrPathNotFound, key)
		}

		return fmt.Errorf("reading key %q: %w", key, err)
	}

	return nil
}

// DecodeTree unmarshals a section of a configuration tree into target.
func DecodeTree(value tree.Value, target any, key string) error {
	data, err := Encode(value)
	if err != nil {
		return err
	}

	return DecodeInto(data, target, key)
}

// convertToYAMLPath converts a dotted key to goccy/go-yaml PathString format.
// Examples:
//   - "key" -> "$.key"
//   - "api.permissions" -> "$.api.permissions"
//   - "servers.0.host" -> "$.servers[0].host"
func convertToYAMLPath(key string) string {
	var b strings.Builder

	b.WriteString("$")

	for _, part := range strings.Split(key, tree.KeySeparator) {
		if _, err := strconv.Atoi(part); err == nil {
			b.WriteString("[" + part + "]")

			continue
		}

		b.WriteString("." + part)
	}

	return b.String()
}

// isKeyNotFoundError checks if the error indicates a key was not found.
func isKeyNotFoundError(err error) bool {
	return yaml.IsNotFoundNodeError(err)
}
