// Package lexer turns source text into the token stream pkg/parser
// consumes: line-oriented, indentation-sensitive, emitting synthetic
// Indent/Dedent/Newline/Eof tokens alongside the ordinary keyword,
// identifier, literal, and structural tokens.
package lexer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/oolang/interpreter/pkg/token"
)

// numericLiteralBits bounds the signed 64-bit range a numeric literal is
// parsed into; an out-of-range literal is a lexer error rather than
// silently wrapping, per the design notes' instruction to make overflow
// behavior explicit instead of leaving it to the host's int width.
const numericLiteralBits = 64

// operatorChars are the single characters that may begin a (possibly
// two-character) operator token.
var operatorChars = map[byte]bool{
	'+': true, '-': true, '*': true, '/': true,
	'=': true, '<': true, '>': true, '!': true,
}

// wideOperators maps a one-char operator to its token when immediately
// followed by '='.
var wideOperators = map[byte]token.Token{
	'=': token.Simple(token.EQ),
	'!': token.Simple(token.NOTEQ),
	'<': token.Simple(token.LESSOREQ),
	'>': token.Simple(token.GREATEROREQ),
}

var structuralChars = map[byte]bool{
	'(': true, ')': true, ':': true, ',': true, '.': true,
}

// Lex tokenizes the whole source text in one pass.
func Lex(src string) ([]token.Token, error) {
	var tokens []token.Token
	lines := strings.Split(src, "\n")
	oldIndent := 0

	for lineNo, raw := range lines {
		if len(raw) == 0 || raw[0] == '#' {
			continue
		}

		indent, bodyStart := readIndents(raw)
		line := raw[bodyStart:]

		var lineTokens []token.Token
		pos := 0
		for pos < len(line) {
			c := line[pos]
			switch {
			case c == ' ':
				pos++
			case c == '"' || c == '\'':
				s, next, err := readString(line, pos)
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo+1, err)
				}
				lineTokens = append(lineTokens, token.String(s))
				pos = next
			case operatorChars[c]:
				tok, next := readOperator(line, pos)
				lineTokens = append(lineTokens, tok)
				pos = next
			case structuralChars[c]:
				lineTokens = append(lineTokens, token.Char(c))
				pos++
			case c >= '0' && c <= '9':
				n, next, err := readNumber(line, pos)
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo+1, err)
				}
				lineTokens = append(lineTokens, token.Number(n))
				pos = next
			case c == '#':
				pos = len(line)
			default:
				id, next, stop := readID(line, pos)
				if kw, ok := token.Keywords[id]; ok {
					lineTokens = append(lineTokens, kw)
				} else {
					lineTokens = append(lineTokens, token.Id(id))
				}
				pos = next
				if stop {
					pos = len(line)
				}
			}
		}

		if len(lineTokens) == 0 {
			continue
		}

		lineNum := lineNo + 1
		if indent > oldIndent {
			for k := 0; k < indent-oldIndent; k++ {
				tokens = append(tokens, stamp(token.Simple(token.INDENT), lineNum, indent))
			}
		} else if indent < oldIndent {
			for k := 0; k < oldIndent-indent; k++ {
				tokens = append(tokens, stamp(token.Simple(token.DEDENT), lineNum, indent))
			}
		}
		oldIndent = indent

		for _, tok := range lineTokens {
			tokens = append(tokens, stamp(tok, lineNum, indent))
		}
		tokens = append(tokens, stamp(token.Simple(token.NEWLINE), lineNum, indent))
	}

	lastLine := len(lines)
	for k := 0; k < oldIndent; k++ {
		tokens = append(tokens, stamp(token.Simple(token.DEDENT), lastLine, 0))
	}
	tokens = append(tokens, stamp(token.Eof, lastLine, 0))
	return tokens, nil
}

// stamp attaches source-position metadata to a token built without it.
func stamp(tok token.Token, line, indent int) token.Token {
	tok.Line = line
	tok.Indent = indent
	return tok
}

// readIndents counts leading space pairs. A single trailing space left
// before a non-space character is consumed without advancing the indent
// counter — the "partial pair" rule carried over from the source lexer.
func readIndents(line string) (indent int, bodyStart int) {
	spaces := 0
	for spaces < len(line) && line[spaces] == ' ' {
		spaces++
	}
	return spaces / 2, spaces
}

// readString reads a quoted literal starting at a quote character. An
// unterminated string (no matching close quote before end of line) ends
// at end of line with no diagnostic, matching the source's behavior of
// simply stopping at the line buffer's end.
func readString(line string, start int) (string, int, error) {
	quote := line[start]
	var sb strings.Builder
	pos := start + 1
	for pos < len(line) {
		c := line[pos]
		if c == quote {
			return sb.String(), pos + 1, nil
		}
		if c == '\\' && pos+1 < len(line) {
			switch line[pos+1] {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case '"':
				sb.WriteByte('"')
			case '\'':
				sb.WriteByte('\'')
			case '\\':
				sb.WriteByte('\\')
			default:
				sb.WriteByte(line[pos+1])
			}
			pos += 2
			continue
		}
		sb.WriteByte(c)
		pos++
	}
	return sb.String(), pos, nil
}

// readOperator reads one of +-*/=<>! and widens it to a two-character
// operator (==, !=, <=, >=) when immediately followed by '='. A lone '!'
// not followed by '=' is a documented quirk of the source lexer: it is
// tokenized as None rather than rejected or treated as logical not.
func readOperator(line string, start int) (token.Token, int) {
	c := line[start]
	if start+1 < len(line) && line[start+1] == '=' {
		if wide, ok := wideOperators[c]; ok {
			return wide, start + 2
		}
	}
	if c == '!' {
		return token.Simple(token.NONE), start + 1
	}
	return token.Char(c), start + 1
}

// readNumber parses a run of ASCII digits, optionally preceded by a
// leading '-' sign, into a signed 64-bit integer, rejecting literals that
// would overflow that range. In the main per-line scan above, '-' is
// always claimed first by readOperator (it is one of operatorChars), so
// the leading-sign branch here is unreachable from Lex; it exists so this
// function's documented contract — and any caller invoking it directly,
// such as its unit tests — matches the source reader's own leading-minus
// handling.
func readNumber(line string, start int) (int64, int, error) {
	pos := start
	neg := false
	if pos < len(line) && line[pos] == '-' {
		neg = true
		pos++
	}
	digitsStart := pos
	for pos < len(line) && line[pos] >= '0' && line[pos] <= '9' {
		pos++
	}
	text := line[digitsStart:pos]
	if neg {
		text = "-" + text
	}
	n, err := strconv.ParseInt(text, 10, numericLiteralBits)
	if err != nil {
		return 0, pos, fmt.Errorf("integer literal %q out of range", text)
	}
	return n, pos, nil
}

// readID reads an identifier up to the next space, quote, operator, or
// structural character; other whitespace such as a tab does not end it. A '#' encountered mid-identifier ends both the
// identifier and the rest of the line, matching the source reader's
// behavior of treating '#' as a universal comment marker even inside an
// in-progress identifier scan.
func readID(line string, start int) (id string, next int, hitComment bool) {
	pos := start
	for pos < len(line) {
		c := line[pos]
		if c == '#' {
			return line[start:pos], pos, true
		}
		if c == ' ' || operatorChars[c] || structuralChars[c] || c == '"' || c == '\'' {
			break
		}
		pos++
	}
	return line[start:pos], pos, false
}
