package subscription

import (
	"fmt"

	"gopkg.in/ini.v1"
)

// LoadConfig parses a planet config.ini into section name -> key/value maps.
// Section and key case is preserved: section names are URLs and their paths
// are case sensitive.
func LoadConfig(path string) (map[string]map[string]string, error) {
	file, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	sections := make(map[string]map[string]string)
	for _, sec := range file.Sections() {
		if sec.Name() == ini.DefaultSection {
			continue
		}
		sections[sec.Name()] = sec.KeysHash()
	}
	return sections, nil
}
