package lexer

import (
	"fmt"

	"github.com/oolang/interpreter/pkg/token"
)

// Stream is a cursor over an already-lexed token slice, giving the
// parser the current/next/expect/expect_next consumer operations the
// source lexer exposes. Once the cursor passes the last token, Current
// and Next keep returning Eof rather than panicking, so a parser that
// over-reads at the very end of a malformed program gets a clean error
// instead of an index panic.
type Stream struct {
	tokens []token.Token
	pos    int
}

func NewStream(tokens []token.Token) *Stream {
	return &Stream{tokens: tokens}
}

// Current returns the token at the cursor without advancing it.
func (s *Stream) Current() token.Token {
	if s.pos >= len(s.tokens) {
		return token.Eof
	}
	return s.tokens[s.pos]
}

// Next advances the cursor and returns the token it now points to.
func (s *Stream) Next() token.Token {
	if s.pos < len(s.tokens) {
		s.pos++
	}
	return s.Current()
}

// Expect checks the current token's type without consuming it.
func (s *Stream) Expect(want token.Type) error {
	if got := s.Current(); got.Type != want {
		return fmt.Errorf("expected %s, got %s", want, got)
	}
	return nil
}

// ExpectValue checks both the current token's type and a specific value,
// narrowed per token variant (a Number's Num, an Id/String's Str, a
// Char's Ch).
func (s *Stream) ExpectValue(want token.Token) error {
	got := s.Current()
	if !got.Equal(want) {
		return fmt.Errorf("expected %s, got %s", want, got)
	}
	return nil
}

// ExpectNext is Next followed by Expect: it advances first, then checks
// the new current token, leaving the cursor sitting on it rather than
// consuming it.
func (s *Stream) ExpectNext(want token.Type) (token.Token, error) {
	tok := s.Next()
	if err := s.Expect(want); err != nil {
		return tok, err
	}
	return tok, nil
}

// ExpectNextValue is Next followed by ExpectValue.
func (s *Stream) ExpectNextValue(want token.Token) (token.Token, error) {
	tok := s.Next()
	if err := s.ExpectValue(want); err != nil {
		return tok, err
	}
	return tok, nil
}

// PeekAt returns the token offset positions ahead of the cursor without
// moving it, used by the parser for short lookahead decisions (such as
// telling a bare-name print apart from a general expression).
func (s *Stream) PeekAt(offset int) token.Token {
	i := s.pos + offset
	if i < 0 || i >= len(s.tokens) {
		return token.Eof
	}
	return s.tokens[i]
}

// Pos and Seek let a caller backtrack a speculative parse.
func (s *Stream) Pos() int        { return s.pos }
func (s *Stream) Seek(pos int)    { s.pos = pos }

