package manifest

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePackageJSON = `{
  "name": "basic-template",
  "version": "1.0.0",
  "scripts": {
    "start": "node index.js"
  },
  "dependencies": {},
  "keywords": []
}
`

func TestParsePreservesKeyOrder(t *testing.T) {
	m, err := Parse([]byte(samplePackageJSON))
	require.NoError(t, err)

	assert.Equal(t, []string{"name", "version", "scripts", "dependencies", "keywords"}, m.Keys())

	name, ok := m.Name()
	require.True(t, ok)
	assert.Equal(t, "basic-template", name)
}

func TestRoundTripIsStable(t *testing.T) {
	m, err := Parse([]byte(samplePackageJSON))
	require.NoError(t, err)

	out, err := m.Marshal()
	require.NoError(t, err)
	assert.Equal(t, samplePackageJSON, string(out))
}

func TestSetNameChangesOnlyName(t *testing.T) {
	m, err := Parse([]byte(samplePackageJSON))
	require.NoError(t, err)
	require.NoError(t, m.SetName("my-app"))

	out, err := m.Marshal()
	require.NoError(t, err)

	want := `{
  "name": "my-app",
  "version": "1.0.0",
  "scripts": {
    "start": "node index.js"
  },
  "dependencies": {},
  "keywords": []
}
`
	assert.Equal(t, want, string(out))
}

func TestSetNameAppendsWhenMissing(t *testing.T) {
	m, err := Parse([]byte(`{"version":"0.1.0"}`))
	require.NoError(t, err)
	require.NoError(t, m.SetName("demo"))

	out, err := m.Marshal()
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"version\": \"0.1.0\",\n  \"name\": \"demo\"\n}", string(out))
}

func TestSetNameDoesNotEscapeHTML(t *testing.T) {
	m, err := Parse([]byte(`{"name":"x"}`))
	require.NoError(t, err)
	require.NoError(t, m.SetName("apps/<web>&co"))

	out, err := m.Marshal()
	require.NoError(t, err)
	assert.Contains(t, string(out), `"name": "apps/<web>&co"`)
}

func TestParseReindentsCompactInput(t *testing.T) {
	m, err := Parse([]byte(`{"name":"a","nested":{"list":[1,2]}}`))
	require.NoError(t, err)

	out, err := m.Marshal()
	require.NoError(t, err)

	want := `{
  "name": "a",
  "nested": {
    "list": [
      1,
      2
    ]
  }
}`
	assert.Equal(t, want, string(out))
}

func TestParseDuplicateKeys(t *testing.T) {
	m, err := Parse([]byte(`{"name":"first","version":"1.0.0","name":"second"}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"name", "version"}, m.Keys())
	name, _ := m.Name()
	assert.Equal(t, "second", name)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"array", `["name"]`},
		{"string", `"name"`},
		{"truncated", `{"name": "a"`},
		{"trailing data", `{"name": "a"} {}`},
		{"empty", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestNameNotString(t *testing.T) {
	m, err := Parse([]byte(`{"name": 42}`))
	require.NoError(t, err)

	_, ok := m.Name()
	assert.False(t, ok)
}

func TestEngines(t *testing.T) {
	m, err := Parse([]byte(`{"name":"a","engines":{"node":">=18","npm":"^9.0.0","bogus":3}}`))
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"node": ">=18", "npm": "^9.0.0"}, m.Engines())
}

func TestEnginesMissing(t *testing.T) {
	m, err := Parse([]byte(`{"name":"a"}`))
	require.NoError(t, err)
	assert.Nil(t, m.Engines())
}

func TestLoadAndSave(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/app/package.json", []byte(samplePackageJSON), 0644))

	m, err := Load(fsys, "/app/package.json")
	require.NoError(t, err)
	require.NoError(t, m.SetName("renamed"))
	require.NoError(t, m.Save(fsys, "/app/package.json", 0644))

	reloaded, err := Load(fsys, "/app/package.json")
	require.NoError(t, err)
	name, _ := reloaded.Name()
	assert.Equal(t, "renamed", name)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(afero.NewMemMapFs(), "/nope/package.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading manifest")
}

func TestNameFor(t *testing.T) {
	tests := []struct {
		template    string
		destination string
		want        string
	}{
		{"foo", ".", "foo"},
		{"foo", "my-app", "my-app"},
		{"basic", "", "basic"},
		{"basic", "./my-app", "./my-app"},
		{"basic", "nested/dir/app", "nested/dir/app"},
	}

	for _, tt := range tests {
		if got := NameFor(tt.template, tt.destination); got != tt.want {
			t.Errorf("NameFor(%q, %q) = %q, want %q", tt.template, tt.destination, got, tt.want)
		}
	}
}
