// pkg/strength/strength_test.go

package strength

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssess(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     Level
	}{
		{
			name:     "empty",
			password: "",
			want:     VeryWeak,
		},
		{
			name:     "short lowercase only",
			password: "abcdefgh",
			want:     Weak,
		},
		{
			name:     "short uppercase only",
			password: "ABCDEFGH",
			want:     Weak,
		},
		{
			name:     "digits only",
			password: "12345678",
			want:     Weak,
		},
		{
			name:     "symbols only",
			password: "!@#$%^&*",
			want:     Weak,
		},
		{
			name:     "twelve lowercase",
			password: "abcdefghijkl",
			want:     Medium,
		},
		{
			name:     "sixteen lowercase",
			password: "abcdefghijklmnop",
			want:     Strong,
		},
		{
			name:     "short with three categories",
			password: "Abcdefg1",
			want:     Strong,
		},
		{
			name:     "short with all categories",
			password: "Abcde1!x",
			want:     VeryStrong,
		},
		{
			name:     "twelve with all categories",
			password: "Ab3!Ab3!Ab3!",
			want:     VeryStrong,
		},
		{
			name:     "unicode lowercase counts as a category",
			password: "пароль",
			want:     Weak,
		},
		{
			// 12 runes but 36 bytes: the length bonus counts runes, so
			// this scores the single >=12 bonus and nothing else.
			name:     "unicode length counted in runes",
			password: "密码密码密码密码密码密码",
			want:     Weak,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Assess(tt.password),
				"Assess(%q)", tt.password)
		})
	}
}

// Growing a password without removing categories must never lower its
// rating.
func TestAssessMonotonicInLength(t *testing.T) {
	prev := VeryWeak
	for n := 1; n <= 40; n++ {
		level := Assess(strings.Repeat("a", n))
		assert.GreaterOrEqual(t, level, prev, "length %d", n)
		prev = level
	}
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		name  string
		level Level
		want  string
	}{
		{name: "very weak", level: VeryWeak, want: "Very Weak"},
		{name: "weak", level: Weak, want: "Weak"},
		{name: "medium", level: Medium, want: "Medium"},
		{name: "strong", level: Strong, want: "Strong"},
		{name: "very strong", level: VeryStrong, want: "Very Strong"},
		{name: "out of range", level: Level(42), want: "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.level.String())
		})
	}
}

func FuzzAssess(f *testing.F) {
	f.Add("")
	f.Add("a")
	f.Add("Ab3!Ab3!Ab3!")
	f.Add(strings.Repeat("x", 1000))
	f.Add("пароль密码\x00\x7f")

	f.Fuzz(func(t *testing.T, password string) {
		defer func() {
			if r := recover(); r != nil {
				t.Errorf("Assess panicked on %q: %v", password, r)
			}
		}()

		level := Assess(password)
		assert.GreaterOrEqual(t, level, VeryWeak)
		assert.LessOrEqual(t, level, VeryStrong)
	})
}
