package xmltok_test

import (
	"fmt"

	"github.com/rawbytedev/xmltok"
)

func ExampleTokenizer() {
	tk := xmltok.New([]byte("<x>Hello World!</x>"))
	for {
		tok, ok := tk.Next()
		if !ok {
			break
		}
		fmt.Printf("%s %q\n", tok.Kind, tok.Data)
	}
	// Output:
	// Element "<x>"
	// Span "Hello World!"
	// ElementEnd "</x>"
}

func ExampleTokenizer_All() {
	doc := []byte(`<!DOCTYPE root [<!ELEMENT foo ANY>]><root/>`)
	for tok := range xmltok.New(doc).All() {
		fmt.Println(tok.Kind, len(tok.Data))
	}
	// Output:
	// Decl 36
	// Element 7
}
