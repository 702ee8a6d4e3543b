package pricing

import "github.com/BurntSushi/toml"

// tomlDocument mirrors the [[rule]] array-of-tables format a pricing file uses.
type tomlDocument struct {
	Rules []Rule `toml:"rule"`
}

// LoadTOML reads a pricing rule file from path and builds a Table.
func LoadTOML(path string) (*Table, error) {
	var doc tomlDocument

	if _, err := toml.DecodeFile(path, &doc); err != nil {
		return nil, err
	}

	return NewTable(doc.Rules), nil
}
