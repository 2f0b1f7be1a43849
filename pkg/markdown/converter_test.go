package markdown_test

import (
	"errors"
	"html/template"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/alertmail/pkg/markdown"
	"github.com/dmitrymomot/alertmail/pkg/sanitizer"
)

func TestGoldmark_Convert(t *testing.T) {
	t.Parallel()

	conv := markdown.New()

	tests := []struct {
		name     string
		src      string
		expected string
	}{
		{
			name:     "paragraph",
			src:      "aVALb",
			expected: "<p>aVALb</p>\n",
		},
		{
			name:     "emphasis",
			src:      "**Alert** fired",
			expected: "<p><strong>Alert</strong> fired</p>\n",
		},
		{
			name:     "heading",
			src:      "# Monitor",
			expected: "<h1>Monitor</h1>\n",
		},
		{
			name:     "placeholder text passes through",
			src:      "a${unterminated b",
			expected: "<p>a${unterminated b</p>\n",
		},
		{
			name:     "unreplaced placeholder is literal",
			src:      "value ${missing}",
			expected: "<p>value ${missing}</p>\n",
		},
		{
			name:     "strikethrough",
			src:      "~~old~~",
			expected: "<p><del>old</del></p>\n",
		},
		{
			name:     "raw html omitted",
			src:      "<script>alert(1)</script>",
			expected: "<!-- raw HTML omitted -->\n",
		},
		{
			name:     "empty input",
			src:      "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out, err := conv.Convert(tt.src)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestGoldmark_Convert_Table(t *testing.T) {
	t.Parallel()

	out, err := markdown.New().Convert("| Key | Value |\n|-----|-------|\n| tx | 0xabc |\n")
	require.NoError(t, err)
	assert.Contains(t, out, "<table>")
	assert.Contains(t, out, "<td>0xabc</td>")
}

func TestGoldmark_Convert_Deterministic(t *testing.T) {
	t.Parallel()

	conv := markdown.New(markdown.WithPolicy(sanitizer.EmailPolicy()))
	src := "# Alert\n\n| a | b |\n|---|---|\n| 1 | 2 |\n\n[!button|Open](https://example.com)\n"

	first, err := conv.Convert(src)
	require.NoError(t, err)
	second, err := conv.Convert(src)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGoldmark_WithHardWraps(t *testing.T) {
	t.Parallel()

	soft, err := markdown.New().Convert("line1\nline2")
	require.NoError(t, err)
	assert.Equal(t, "<p>line1\nline2</p>\n", soft)

	hard, err := markdown.New(markdown.WithHardWraps()).Convert("line1\nline2")
	require.NoError(t, err)
	assert.Contains(t, hard, "<br>")
}

func TestGoldmark_WithPolicy(t *testing.T) {
	t.Parallel()

	conv := markdown.New(markdown.WithPolicy(sanitizer.EmailPolicy()))

	out, err := conv.Convert("[link](https://example.com) and ![img](https://example.com/a.png)")
	require.NoError(t, err)
	assert.Contains(t, out, `<a href="https://example.com">link</a>`)
	assert.NotContains(t, out, "<img")
}

func TestGoldmark_WithLayout(t *testing.T) {
	t.Parallel()

	layout := template.Must(template.New("base").Parse(`<html><body>{{.Content}}</body></html>`))
	conv := markdown.New(markdown.WithLayout(layout))

	out, err := conv.Convert("Hello **world**")
	require.NoError(t, err)
	assert.Equal(t, "<html><body><p>Hello <strong>world</strong></p>\n</body></html>", out)
}

func TestGoldmark_WithLayout_ExecutionError(t *testing.T) {
	t.Parallel()

	layout := template.Must(template.New("base").Parse(`{{template "missing" .}}`))
	conv := markdown.New(markdown.WithLayout(layout))

	_, err := conv.Convert("text")
	require.ErrorIs(t, err, markdown.ErrLayoutFailed)
}

func TestGoldmark_ConcurrentConvert(t *testing.T) {
	t.Parallel()

	conv := markdown.New(markdown.WithPolicy(sanitizer.EmailPolicy()))
	want, err := conv.Convert("**bold** ${x}")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := conv.Convert("**bold** ${x}")
			assert.NoError(t, err)
			assert.Equal(t, want, got)
		}()
	}
	wg.Wait()
}

func TestConverterFunc(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	var conv markdown.Converter = markdown.ConverterFunc(func(string) (string, error) {
		return "", boom
	})

	_, err := conv.Convert("x")
	require.ErrorIs(t, err, boom)
}
