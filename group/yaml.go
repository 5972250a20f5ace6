package group

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// groupsFile is the on-disk shape of a group definition file:
//
//	groups:
//	  - name: disease
//	    keywords: [disease, sick]
//	  - name: healthy
//	    keywords: [healthy, control]
type groupsFile struct {
	Groups []KeywordGroup `yaml:"groups"`
}

// LoadGroups parses keyword-group definitions from YAML.
func LoadGroups(r io.Reader) ([]KeywordGroup, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read groups: %w", err)
	}

	var file groupsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse groups: %w", err)
	}

	if len(file.Groups) == 0 {
		return nil, fmt.Errorf("no groups defined")
	}
	for i, g := range file.Groups {
		if len(g.Keywords) == 0 {
			return nil, fmt.Errorf("group %d (%s): at least one keyword required", i, g.Name)
		}
	}

	return file.Groups, nil
}

// LoadGroupsFile parses keyword-group definitions from a YAML file.
func LoadGroupsFile(path string) ([]KeywordGroup, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open groups file: %w", err)
	}
	defer f.Close()
	return LoadGroups(f)
}
