package llm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studyaid/internal/llm"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{
			name: "bare object passes through",
			in:   `{"summary": "hi"}`,
			want: `{"summary": "hi"}`,
		},
		{
			name: "code fence stripped",
			in:   "```json\n{\"summary\": \"hi\"}\n```",
			want: `{"summary": "hi"}`,
		},
		{
			name: "prose around the object",
			in:   `Here is your JSON: {"questions": []} Hope it helps!`,
			want: `{"questions": []}`,
		},
		{
			name: "nested braces keep the outer object",
			in:   `x {"a": {"b": 1}} y`,
			want: `{"a": {"b": 1}}`,
		},
		{
			name:    "no object at all",
			in:      "I cannot help with that.",
			wantErr: true,
		},
		{
			name:    "closing brace before opening",
			in:      `} nothing {`,
			wantErr: true,
		},
		{
			name:    "empty input",
			in:      "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := llm.ExtractJSON(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
