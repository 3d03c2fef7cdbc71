package prompt

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPrompter(input string) (*Prompter, *bytes.Buffer) {
	var out bytes.Buffer
	return NewPrompter(strings.NewReader(input), &out), &out
}

func TestInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"typed", "my-app\n", "my-app"},
		{"empty uses default", "\n", "."},
		{"whitespace uses default", "   \n", "."},
		{"trimmed", "  my-app  \n", "my-app"},
		{"no trailing newline", "my-app", "my-app"},
		{"windows line ending", "my-app\r\n", "my-app"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := newTestPrompter(tt.input)
			got, err := p.Input("Where?", ".")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInputShowsDefault(t *testing.T) {
	p, out := newTestPrompter("\n")
	_, err := p.Input("Where?", ".")
	require.NoError(t, err)
	assert.Equal(t, "? Where? (.) ", out.String())
}

func TestInputEOF(t *testing.T) {
	p, _ := newTestPrompter("")
	_, err := p.Input("Where?", ".")
	assert.ErrorIs(t, err, ErrNoInput)
}

func TestSelect(t *testing.T) {
	p, out := newTestPrompter("2\n")
	idx, err := p.Select("Pick:", []string{"advanced", "basic"})
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
	assert.Contains(t, out.String(), "  1) advanced\n  2) basic\n")
}

func TestSelectRetriesInvalidInput(t *testing.T) {
	p, out := newTestPrompter("zero\n9\n1\n")
	idx, err := p.Select("Pick:", []string{"advanced", "basic"})
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
	assert.Equal(t, 2, strings.Count(out.String(), "Please enter a number between 1 and 2."))
}

func TestSelectGivesUp(t *testing.T) {
	p, _ := newTestPrompter("0\n3\n-1\n1\n")
	_, err := p.Select("Pick:", []string{"advanced", "basic"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid selection")
}

func TestSelectEmpty(t *testing.T) {
	p, _ := newTestPrompter("1\n")
	_, err := p.Select("Pick:", nil)
	assert.Error(t, err)
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		def   bool
		want  bool
	}{
		{"\n", false, false},
		{"\n", true, true},
		{"y\n", false, true},
		{"YES\n", false, true},
		{"n\n", true, false},
		{"No\n", true, false},
		{"maybe\ny\n", false, true},
	}

	for _, tt := range tests {
		p, _ := newTestPrompter(tt.input)
		got, err := p.Confirm("Install?", tt.def)
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestConfirmHint(t *testing.T) {
	p, out := newTestPrompter("\n")
	_, err := p.Confirm("Install?", false)
	require.NoError(t, err)
	assert.Equal(t, "? Install? (y/N) ", out.String())
}

func TestConfirmEOF(t *testing.T) {
	p, _ := newTestPrompter("")
	_, err := p.Confirm("Install?", false)
	assert.ErrorIs(t, err, ErrNoInput)
}

func TestReaderKeepsUnreadInput(t *testing.T) {
	p, _ := newTestPrompter("my-app\nleft for the child\n")
	_, err := p.Input("Where?", ".")
	require.NoError(t, err)

	rest, err := io.ReadAll(p.Reader())
	require.NoError(t, err)
	assert.Equal(t, "left for the child\n", string(rest))
}

func TestReaderReturnsSourceWhenDrained(t *testing.T) {
	src := strings.NewReader("my-app\n")
	p := NewPrompter(src, io.Discard)
	_, err := p.Input("Where?", ".")
	require.NoError(t, err)

	assert.Same(t, src, p.Reader())
}
