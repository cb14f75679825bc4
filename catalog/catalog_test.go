package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbedded(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 24, c.Len())

	p, err := c.Get("ml-engineer-senior")
	require.NoError(t, err)
	assert.Equal(t, "Senior Machine Learning Engineer", p.Title)
	assert.Equal(t, "AI/ML Platform Services", p.Department)
	assert.True(t, p.Remote)
	assert.Contains(t, p.RequiredSkills, "MLOps")
	assert.Equal(t, "$150K - $200K", p.SalaryRange)
}

func TestGetUnknown(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)

	_, err = c.Get("astronaut")
	assert.ErrorIs(t, err, ErrPositionNotFound)
}

func TestDepartments(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)

	depts := c.Departments()
	assert.Len(t, depts, 14)
	assert.IsNonDecreasing(t, depts)
	assert.Equal(t, "AI/ML Platform Services", depts[0])
}

func TestList(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)

	remote := true
	onsite := false

	tests := []struct {
		name   string
		filter Filter
		check  func(t *testing.T, n int)
	}{
		{"all", Filter{}, func(t *testing.T, n int) { assert.Equal(t, 24, n) }},
		{"department", Filter{Department: "Accounting"}, func(t *testing.T, n int) { assert.Equal(t, 2, n) }},
		{"unknown department", Filter{Department: "Astronomy"}, func(t *testing.T, n int) { assert.Zero(t, n) }},
		{"level", Filter{Level: "executive"}, func(t *testing.T, n int) { assert.Equal(t, 1, n) }},
		{"query by skill", Filter{Query: "kubernetes"}, func(t *testing.T, n int) { assert.GreaterOrEqual(t, n, 2) }},
		{"remote plus onsite", Filter{}, func(t *testing.T, n int) {
			assert.Equal(t, n, len(c.List(Filter{Remote: &remote}))+len(c.List(Filter{Remote: &onsite})))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, len(c.List(tt.filter)))
		})
	}

	for _, p := range c.List(Filter{Department: "Accounting", Remote: &onsite}) {
		assert.Equal(t, "senior-accountant", p.ID)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := map[string]string{
		"missing id": `positions:
- title: X
  department: Y
  level: mid`,
		"bad level": `positions:
- id: a
  title: X
  department: Y
  level: intern`,
		"duplicate id": `positions:
- {id: a, title: X, department: Y, level: mid}
- {id: a, title: Z, department: Y, level: mid}`,
		"unknown field": `positions:
- {id: a, title: X, department: Y, level: mid, bonus: big}`,
		"not yaml": `positions: [`,
	}

	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "positions.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`positions:
- id: go-dev
  title: Go Developer
  department: Engineering
  level: mid
  requiredSkills: [Go]
  remote: true
`), 0o600))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, []string{"Engineering"}, c.Departments())

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestParseFillsAbsentLists(t *testing.T) {
	c, err := Parse([]byte(`positions:
  - id: sre
    title: Site Reliability Engineer
    department: Compute
    level: mid
`))
	require.NoError(t, err)

	p, err := c.Get("sre")
	require.NoError(t, err)
	assert.NotNil(t, p.RequiredSkills)
	assert.NotNil(t, p.NiceToHaveSkills)
	assert.NotNil(t, p.Responsibilities)

	empty, err := Parse([]byte("positions: []\n"))
	require.NoError(t, err)
	assert.NotNil(t, empty.Departments())
	assert.NotNil(t, empty.List(Filter{}))
}
