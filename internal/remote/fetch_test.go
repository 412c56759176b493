package remote

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// combinedResponse mimics a gitignore.io payload for the given sections.
const combinedResponse = `# Created by https://example.test/api/go,python
# Edit at https://example.test/api?templates=go,python

### Go ###
*.exe
*.test

### Python ###
__pycache__/
*.pyc

# End of https://example.test/api/go,python`

func TestSplitResponseTwoTemplates(t *testing.T) {
	templates, err := splitResponse(combinedResponse, []string{"Go", "Python"})

	require.NoError(t, err)
	require.Len(t, templates, 2)
	assert.Equal(t, "Go", templates[0].Name)
	assert.Equal(t, "*.exe\n*.test", templates[0].Body)
	assert.Equal(t, "Python", templates[1].Name)
	assert.Equal(t, "__pycache__/\n*.pyc", templates[1].Body)
}

func TestSplitResponseResultFollowsRequestOrder(t *testing.T) {
	templates, err := splitResponse(combinedResponse, []string{"Python", "Go"})

	require.NoError(t, err)
	require.Len(t, templates, 2)
	assert.Equal(t, "Python", templates[0].Name)
	assert.Equal(t, "Go", templates[1].Name)
}

func TestSplitResponseHeaderCaseInsensitive(t *testing.T) {
	resp := "### GO ###\n*.exe\n# End of https://example.test/api/go"

	templates, err := splitResponse(resp, []string{"Go"})

	require.NoError(t, err)
	require.Len(t, templates, 1)
	// Canonical casing comes from the validated request, not the header.
	assert.Equal(t, "Go", templates[0].Name)
	assert.Equal(t, "*.exe", templates[0].Body)
}

func TestSplitResponseSubHeaderStaysInBody(t *testing.T) {
	resp := "### Python ###\n*.pyc\n\n### Python Patch ###\n*.pyo\n\n# End of https://example.test/api/python"

	templates, err := splitResponse(resp, []string{"Python"})

	require.NoError(t, err)
	require.Len(t, templates, 1)
	assert.Equal(t, "*.pyc\n\n### Python Patch ###\n*.pyo", templates[0].Body)
}

func TestSplitResponseMissingBody(t *testing.T) {
	_, err := splitResponse(combinedResponse, []string{"Go", "Rust"})

	require.Error(t, err)
	assert.True(t, IsType(err, TemplateBodyMissing))
	assert.Equal(t, []string{"Rust"}, err.(*Error).Names)
}

func TestSplitResponseEmptyTemplateBody(t *testing.T) {
	resp := "### Empty ###\n\n# End of https://example.test/api/empty"

	templates, err := splitResponse(resp, []string{"Empty"})

	require.NoError(t, err)
	require.Len(t, templates, 1)
	assert.Equal(t, "", templates[0].Body)
}

func TestSplitResponseCRLF(t *testing.T) {
	resp := "### Go ###\r\n*.exe\r\n# End of https://example.test/api/go\r\n"

	templates, err := splitResponse(resp, []string{"Go"})

	require.NoError(t, err)
	assert.Equal(t, "*.exe", templates[0].Body)
}

func TestParseNameList(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []string
	}{
		{
			name: "newline separated",
			body: "go\npython\nrust\n",
			want: []string{"go", "python", "rust"},
		},
		{
			name: "comma separated",
			body: "go,python,rust",
			want: []string{"go", "python", "rust"},
		},
		{
			name: "mixed with blanks",
			body: "go,python\n\nrust\n",
			want: []string{"go", "python", "rust"},
		},
		{
			name: "empty",
			body: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseNameList(tt.body))
		})
	}
}
