package group

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadGroups(t *testing.T) {
	data := `
groups:
  - name: disease
    keywords: [disease, sick]
  - name: healthy
    keywords:
      - healthy
      - control
`
	groups, err := LoadGroups(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, groups, 2)

	assert.Equal(t, "disease", groups[0].Name)
	assert.Equal(t, []string{"disease", "sick"}, groups[0].Keywords)
	assert.Equal(t, []string{"healthy", "control"}, groups[1].Keywords)
}

func TestLoadGroupsEmpty(t *testing.T) {
	_, err := LoadGroups(strings.NewReader("groups: []"))
	assert.Error(t, err)
}

func TestLoadGroupsMissingKeywords(t *testing.T) {
	data := `
groups:
  - name: disease
`
	_, err := LoadGroups(strings.NewReader(data))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disease")
}

func TestLoadGroupsBadYAML(t *testing.T) {
	_, err := LoadGroups(strings.NewReader("groups: [unclosed"))
	assert.Error(t, err)
}
