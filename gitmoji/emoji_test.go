package gitmoji_test

import (
	"slices"
	"testing"

	"github.com/gitmoji/conventional-pre-commit/gitmoji"
)

func TestResolveEmojiSet(t *testing.T) {
	tests := []struct {
		name     string
		extras   []string
		wantLen  int
		validate func(*testing.T, gitmoji.EmojiSet)
	}{
		{
			name:    "no extras yields built-in set",
			extras:  nil,
			wantLen: len(gitmoji.DefaultEmojis),
			validate: func(t *testing.T, set gitmoji.EmojiSet) {
				t.Helper()
				if !slices.Equal(set, gitmoji.DefaultEmojis) {
					t.Error("expected resolved set to equal DefaultEmojis, order preserved")
				}
			},
		},
		{
			name:    "empty extras yields built-in set",
			extras:  []string{},
			wantLen: len(gitmoji.DefaultEmojis),
		},
		{
			name:    "extras are appended after built-ins",
			extras:  []string{":tada:", ":boom:"},
			wantLen: len(gitmoji.DefaultEmojis) + 2,
			validate: func(t *testing.T, set gitmoji.EmojiSet) {
				t.Helper()
				if set[len(set)-2] != ":tada:" || set[len(set)-1] != ":boom:" {
					t.Errorf("expected extras at the end in order, got %q", set[len(set)-2:])
				}
			},
		},
		{
			name:    "duplicate extras are dropped",
			extras:  []string{"🔖", "🔖"},
			wantLen: len(gitmoji.DefaultEmojis),
			validate: func(t *testing.T, set gitmoji.EmojiSet) {
				t.Helper()
				count := 0
				for _, e := range set {
					if e == "🔖" {
						count++
					}
				}

				if count != 1 {
					t.Errorf("expected exactly one 🔖 entry, got %d", count)
				}
			},
		},
		{
			name:    "extra duplicating a built-in is dropped",
			extras:  []string{"✨", ":new:"},
			wantLen: len(gitmoji.DefaultEmojis) + 1,
			validate: func(t *testing.T, set gitmoji.EmojiSet) {
				t.Helper()
				if set[len(set)-1] != ":new:" {
					t.Errorf("expected :new: as last entry, got %q", set[len(set)-1])
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := gitmoji.ResolveEmojiSet(tt.extras)

			if len(set) != tt.wantLen {
				t.Errorf("len = %d, want %d", len(set), tt.wantLen)
			}

			seen := make(map[string]struct{}, len(set))
			for _, e := range set {
				if _, ok := seen[e]; ok {
					t.Errorf("duplicate entry %q in resolved set", e)
				}

				seen[e] = struct{}{}
			}

			if tt.validate != nil {
				tt.validate(t, set)
			}
		})
	}
}

func TestDefaultEmojis(t *testing.T) {
	if len(gitmoji.DefaultEmojis) != 74 {
		t.Errorf("expected 74 built-in emojis, got %d", len(gitmoji.DefaultEmojis))
	}

	for _, emoji := range []string{"🎨", "🔥", "🐛", "✨", "✅", "🔖", "🚀", "💄", "🎉"} {
		if !slices.Contains([]string(gitmoji.DefaultEmojis), emoji) {
			t.Errorf("expected built-in set to contain %q", emoji)
		}
	}
}
