package xmltok

import (
	"bytes"
	"testing"
)

func benchDoc(items int) []byte {
	var b bytes.Buffer
	b.WriteString("<?xml version=\"1.0\"?>\n")
	b.WriteString("<!DOCTYPE feed [<!ELEMENT item ANY>]>\n<feed>\n")
	for i := 0; i < items; i++ {
		b.WriteString("<item id=\"42\">payload text</item>\n")
	}
	b.WriteString("<!-- end of feed -->\n</feed>\n")
	return b.Bytes()
}

func drain(doc []byte) int {
	tk := Tokenizer{buf: doc}
	n := 0
	for {
		if _, ok := tk.Next(); !ok {
			return n
		}
		n++
	}
}

func BenchmarkTokenizerZeroAllocs(b *testing.B) {
	doc := []byte("<x>Hello World!</x>")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = drain(doc)
	}
}

func BenchmarkTokenizerFeed(b *testing.B) {
	doc := benchDoc(2000)
	b.SetBytes(int64(len(doc)))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = drain(doc)
	}
}

func BenchmarkTokenizerDeclHeavy(b *testing.B) {
	var buf bytes.Buffer
	buf.WriteString("<!DOCTYPE root [\n")
	for i := 0; i < 500; i++ {
		buf.WriteString("<!ELEMENT foo (#PCDATA)>\n<!ATTLIST foo id ID #IMPLIED>\n")
	}
	buf.WriteString("]>")
	doc := buf.Bytes()
	b.SetBytes(int64(len(doc)))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = drain(doc)
	}
}
