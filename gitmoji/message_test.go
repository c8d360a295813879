package gitmoji_test

import (
	"testing"

	"github.com/gitmoji/conventional-pre-commit/gitmoji"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{
			name:    "plain message unchanged",
			message: "✨ Add feature\n\nBody text.\n",
			want:    "✨ Add feature\n\nBody text.\n",
		},
		{
			name:    "comment lines removed",
			message: "✨ Add feature\n# Please enter the commit message\n# Lines starting with '#' will be ignored\n",
			want:    "✨ Add feature\n",
		},
		{
			name:    "comment only message becomes empty",
			message: "# nothing here\n",
			want:    "",
		},
		{
			name: "scissors section removed",
			message: "✨ Add feature\n\n" +
				"# ------------------------ >8 ------------------------\n" +
				"diff --git a/main.go b/main.go\n+func main() {}\n",
			want: "✨ Add feature\n\n",
		},
		{
			name:    "crlf normalized",
			message: "✨ Add feature\r\n\r\nBody text.\r\n",
			want:    "✨ Add feature\n\nBody text.\n",
		},
		{
			name:    "hash inside line is kept",
			message: "🐛 Fix issue #42\n",
			want:    "🐛 Fix issue #42\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := gitmoji.Clean(tt.message)
			if got != tt.want {
				t.Errorf("Clean() = %q, want %q", got, tt.want)
			}
		})
	}
}
