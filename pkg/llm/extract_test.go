package llm

import "testing"

func TestExtractPayload(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain JSON unchanged",
			input: `{"summary":"test"}`,
			want:  `{"summary":"test"}`,
		},
		{
			name:  "extracts json fenced block",
			input: "```json\n{\"summary\":\"test\"}\n```",
			want:  `{"summary":"test"}`,
		},
		{
			name:  "extracts plain fenced block",
			input: "```\n{\"summary\":\"test\"}\n```",
			want:  `{"summary":"test"}`,
		},
		{
			name:  "fenced block with surrounding prose",
			input: "以下が結果です。\n```json\n{\"summary\":\"test\"}\n```\n以上です。",
			want:  `{"summary":"test"}`,
		},
		{
			name:  "prose around bare JSON",
			input: "Here you go: {\"summary\":\"test\"} hope that helps",
			want:  `{"summary":"test"}`,
		},
		{
			name:  "trims surrounding whitespace",
			input: "  {\"summary\":\"test\"}  ",
			want:  `{"summary":"test"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractPayload(tt.input)
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTruncateForLog(t *testing.T) {
	short := "short response"
	if got := truncateForLog(short); got != short {
		t.Errorf("got %q, want %q", got, short)
	}

	long := make([]rune, 600)
	for i := range long {
		long[i] = 'x'
	}
	got := truncateForLog(string(long))
	if len([]rune(got)) != 503 {
		t.Errorf("truncated length = %d, want 503", len([]rune(got)))
	}
}
