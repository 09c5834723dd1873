// Package props reads build property files written in dotenv syntax and
// folds them into the global options table.
package props

import (
	"fmt"
	"sort"

	"github.com/joho/godotenv"
	"github.com/specialistvlad/configsnap/internal/config"
)

// KeyPrefix is prepended to every key read from a properties file.
const KeyPrefix = "build_property."

// Read parses the dotenv file at path into a table of build properties.
// Keys are sorted since dotenv carries no reliable order.
func Read(path string) (config.Table, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		return config.Table{}, fmt.Errorf("failed to read properties file %s: %w", path, err)
	}
	return fromMap(values), nil
}

// Parse is Read over an in-memory properties document.
func Parse(src string) (config.Table, error) {
	values, err := godotenv.Unmarshal(src)
	if err != nil {
		return config.Table{}, fmt.Errorf("failed to parse properties: %w", err)
	}
	return fromMap(values), nil
}

// Apply sets every property into the model's global options. Existing keys
// keep their position and take the new value.
func Apply(m *config.Model, properties config.Table) {
	m.GlobalOptions.Merge(properties)
}

func fromMap(values map[string]string) config.Table {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var t config.Table
	for _, k := range keys {
		t.Set(KeyPrefix+k, config.String(values[k]))
	}
	return t
}
