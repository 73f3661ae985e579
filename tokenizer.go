package xmltok

import (
	"bytes"
	"iter"

	"github.com/rawbytedev/xmltok/internal/bytescan"
)

// Tokenizer is a cursor over an immutable byte buffer. Each call to Next
// advances the cursor past exactly one token. A Tokenizer is a forward-only,
// single-use value; construct a new one to rescan.
type Tokenizer struct {
	buf []byte
	pos int
}

// New returns a Tokenizer positioned at the start of buf. The Tokenizer
// never copies or mutates buf.
func New(buf []byte) *Tokenizer {
	return &Tokenizer{buf: buf}
}

// Next returns the next token and true, or the zero Token and false once the
// buffer is exhausted. Next keeps returning false after exhaustion. It never
// fails: unterminated markup is emitted as a best-effort terminal token
// covering the rest of the buffer.
func (t *Tokenizer) Next() (Token, bool) {
	if t.pos >= len(t.buf) {
		return Token{}, false
	}
	rest := t.buf[t.pos:]
	if rest[0] != '<' {
		end := bytes.IndexByte(rest, '<')
		if end < 0 {
			end = len(rest)
		}
		return t.emit(KindSpan, end), true
	}
	return t.markup(rest), true
}

// All returns a single-use iterator that drains the tokenizer.
func (t *Tokenizer) All() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for {
			tok, ok := t.Next()
			if !ok || !yield(tok) {
				return
			}
		}
	}
}

// markup classifies the construct starting at rest[0] == '<' and emits it.
// A lone '<' at the end of the buffer falls through to the element branch.
func (t *Tokenizer) markup(rest []byte) Token {
	if len(rest) < 2 {
		return t.emit(KindElement, len(rest))
	}
	switch rest[1] {
	case '!':
		if len(rest) >= 4 && rest[2] == '-' && rest[3] == '-' {
			return t.comment(rest)
		}
		return t.decl(rest)
	case '?':
		return t.pi(rest)
	case '/':
		return t.elementEnd(rest)
	default:
		return t.element(rest)
	}
}

var (
	commentEnd = []byte("-->")
	piEnd      = []byte("?>")
)

// comment matches from "<!--" through the first "-->". A '>' or '-' inside
// the body does not terminate it.
func (t *Tokenizer) comment(rest []byte) Token {
	if i := bytes.Index(rest[4:], commentEnd); i >= 0 {
		return t.emit(KindComment, 4+i+len(commentEnd))
	}
	return t.emit(KindComment, len(rest))
}

// pi matches from "<?" through the first "?>".
func (t *Tokenizer) pi(rest []byte) Token {
	if i := bytes.Index(rest[2:], piEnd); i >= 0 {
		return t.emit(KindPI, 2+i+len(piEnd))
	}
	return t.emit(KindPI, len(rest))
}

// decl matches a "<!...>" construct by angle-bracket depth, so an inline DTD
// internal subset with its own `<!ELEMENT ...>` entries stays one token.
func (t *Tokenizer) decl(rest []byte) Token {
	depth := 0
	for i := 0; i < len(rest); {
		j := bytescan.IndexAny2(rest[i:], '<', '>')
		if j < 0 {
			break
		}
		i += j
		if rest[i] == '<' {
			depth++
		} else {
			depth--
			if depth == 0 {
				return t.emit(KindDecl, i+1)
			}
		}
		i++
	}
	return t.emit(KindDecl, len(rest))
}

// element matches any other "<..." construct through the first '>'. The '>'
// of an attribute value like `href=">"` terminates the match; validating
// that is a caller concern.
func (t *Tokenizer) element(rest []byte) Token {
	if i := bytes.IndexByte(rest, '>'); i >= 0 {
		return t.emit(KindElement, i+1)
	}
	return t.emit(KindElement, len(rest))
}

// elementEnd matches "</..." through the first '>'.
func (t *Tokenizer) elementEnd(rest []byte) Token {
	if i := bytes.IndexByte(rest, '>'); i >= 0 {
		return t.emit(KindElementEnd, i+1)
	}
	return t.emit(KindElementEnd, len(rest))
}

// emit cuts n bytes at the cursor into a token and advances past them.
func (t *Tokenizer) emit(k Kind, n int) Token {
	tok := Token{Kind: k, Pos: t.pos, Data: t.buf[t.pos : t.pos+n]}
	t.pos += n
	return tok
}
