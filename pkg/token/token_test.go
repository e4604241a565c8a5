package token

import "testing"

func TestEqual(t *testing.T) {
	cases := []struct {
		name  string
		a, b  Token
		equal bool
	}{
		{"same number", Number(5), Number(5), true},
		{"different number", Number(5), Number(6), false},
		{"same id", Id("x"), Id("x"), true},
		{"id vs string with same text", Id("x"), String("x"), false},
		{"same char", Char('+'), Char('+'), true},
		{"different char", Char('+'), Char('-'), false},
		{"simple tokens of same type", Simple(NEWLINE), Simple(NEWLINE), true},
		{"simple tokens of different type", Simple(NEWLINE), Simple(EOF), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Equal(tc.b); got != tc.equal {
				t.Errorf("%v.Equal(%v) = %v, want %v", tc.a, tc.b, got, tc.equal)
			}
		})
	}
}

func TestKeywordsCoverReservedWords(t *testing.T) {
	want := []string{"class", "return", "if", "else", "def", "print", "and", "or", "not", "None", "True", "False"}
	for _, w := range want {
		if _, ok := Keywords[w]; !ok {
			t.Errorf("Keywords missing entry for %q", w)
		}
	}
}
