package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntityNormalizer(t *testing.T) {
	testCases := []struct {
		name     string
		in       string
		expected string
	}{
		{
			name:     "named entity becomes numeric",
			in:       "a&nbsp;b",
			expected: "a&#160;b",
		},
		{
			name:     "xml native entities pass through",
			in:       "&amp;&lt;&gt;&quot;&apos;",
			expected: "&amp;&lt;&gt;&quot;&apos;",
		},
		{
			name:     "numeric references pass through",
			in:       "&#160;&#x2014;",
			expected: "&#160;&#x2014;",
		},
		{
			name:     "bare ampersand is left alone",
			in:       "fish & chips",
			expected: "fish & chips",
		},
		{
			name:     "unknown entity is left alone",
			in:       "&bogusentity;",
			expected: "&bogusentity;",
		},
		{
			name:     "entity inside attribute-like text",
			in:       `<p title="&copy; 2025">x</p>`,
			expected: `<p title="&#169; 2025">x</p>`,
		},
		{
			name:     "no ampersand short-circuits",
			in:       "<div>plain</div>",
			expected: "<div>plain</div>",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, EntityNormalizer{}.Normalize(tc.in))
		})
	}
}

func TestNopNormalizer(t *testing.T) {
	assert.Equal(t, "a&nbsp;b", NopNormalizer{}.Normalize("a&nbsp;b"))
}
