package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formkit/pkg/sanitizer"
)

func TestSanitizeText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "escapes basic HTML characters",
			input:    "<script>alert('xss')</script>",
			expected: "&lt;script&gt;alert(&#39;xss&#39;)&lt;/script&gt;",
		},
		{
			name:     "escapes quotes and ampersands",
			input:    `"test" & 'value'`,
			expected: "&#34;test&#34; &amp; &#39;value&#39;",
		},
		{
			name:     "trims and drops control characters",
			input:    "  Great\x00 innings\x07  ",
			expected: "Great innings",
		},
		{
			name:     "normalizes to NFC",
			input:    "Jose\u0301",
			expected: "Jos\u00e9",
		},
		{
			name:     "handles empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.SanitizeText(tt.input))
		})
	}
}

func TestSanitizeHTML(t *testing.T) {
	t.Parallel()

	t.Run("removes script blocks", func(t *testing.T) {
		t.Parallel()
		result := sanitizer.SanitizeHTML("<p>Match report</p><script>alert('xss')</script>")
		assert.Equal(t, "<p>Match report</p>", result)
	})

	t.Run("removes event handlers", func(t *testing.T) {
		t.Parallel()
		result := sanitizer.SanitizeHTML(`<p onclick="steal()">Hi</p>`)
		assert.NotContains(t, result, "onclick")
		assert.Contains(t, result, "Hi")
	})

	t.Run("removes javascript links", func(t *testing.T) {
		t.Parallel()
		result := sanitizer.SanitizeHTML(`<a href="javascript:alert(1)">click</a>`)
		assert.NotContains(t, result, "javascript")
		assert.Contains(t, result, "click")
	})

	t.Run("keeps safe formatting", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "<b>Six!</b>", sanitizer.SanitizeHTML("<b>Six!</b>"))
	})

	t.Run("removes iframes", func(t *testing.T) {
		t.Parallel()
		result := sanitizer.SanitizeHTML(`<iframe src="https://evil.example"></iframe>text`)
		assert.NotContains(t, result, "iframe")
		assert.Contains(t, result, "text")
	})
}

func TestSanitizeURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "keeps https url", input: " https://example.com/teams?id=1 ", expected: "https://example.com/teams?id=1"},
		{name: "rejects javascript scheme", input: "javascript:alert(1)", expected: ""},
		{name: "rejects obfuscated javascript scheme", input: "JavaScript :alert(1)", expected: ""},
		{name: "rejects data scheme", input: "data:text/html;base64,PHNjcmlwdD4=", expected: ""},
		{name: "rejects file scheme", input: "file:///etc/passwd", expected: ""},
		{name: "strips angle brackets", input: "https://example.com/<b>", expected: "https://example.com/b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.SanitizeURL(tt.input))
		})
	}
}
