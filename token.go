// Package xmltok is a zero-copy XML tokenizer over byte slices.
//
// Design goals:
//   - operates on byte slices, no reader abstraction
//   - minimal validation
//   - support for inline DTD declarations
//   - partitions the whole input into non-empty spans
//
// Every token is a view into the buffer passed to New; nothing is copied and
// nothing is allocated while scanning. The buffer must outlive every token
// derived from it.
package xmltok

// Kind identifies what a token's bytes represent.
type Kind uint8

const (
	// KindSpan is a run of non-markup content bytes.
	KindSpan Kind = iota

	// KindElement is an opening tag like `<a href="x">`. Self-closing tags
	// are not distinguished; callers check for a trailing `/>` themselves.
	KindElement

	// KindElementEnd is a closing tag like `</a>`.
	KindElementEnd

	// KindDecl is a `<!...>` declaration. Nested angle brackets are matched,
	// so a DOCTYPE with an inline internal subset is one token.
	KindDecl

	// KindComment is `<!-- ... -->`.
	KindComment

	// KindPI is a processing instruction, `<? ... ?>`.
	KindPI
)

func (k Kind) String() string {
	switch k {
	case KindSpan:
		return "Span"
	case KindElement:
		return "Element"
	case KindElementEnd:
		return "ElementEnd"
	case KindDecl:
		return "Decl"
	case KindComment:
		return "Comment"
	case KindPI:
		return "PI"
	default:
		return "Unknown"
	}
}

// Token is a typed view into the input buffer. Data aliases the buffer
// passed to New and Pos is its start offset within that buffer.
type Token struct {
	Kind Kind
	Pos  int
	Data []byte
}
