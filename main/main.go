package main

import (
	"bytes"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/rawbytedev/xmltok"
)

func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()
	f, err := os.Create("mem.prof")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	runtime.MemProfileRate = 1

	var b bytes.Buffer
	b.WriteString("<?xml version=\"1.0\"?>\n<!DOCTYPE feed [<!ELEMENT item ANY>]>\n<feed>\n")
	for i := 0; i < 5000; i++ {
		b.WriteString("<item id=\"42\">payload text</item>\n")
	}
	b.WriteString("</feed>\n")
	doc := b.Bytes()

	var total int
	for i := 0; i < 10000; i++ {
		tk := xmltok.New(doc)
		for {
			tok, ok := tk.Next()
			if !ok {
				break
			}
			total += len(tok.Data)
		}
	}
	log.Printf("scanned %d bytes", total)
	pprof.WriteHeapProfile(f)
	time.Sleep(5 * time.Minute)
}
