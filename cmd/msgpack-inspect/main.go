// Command msgpack-inspect reads a file of MessagePack bytes and prints the
// decoded Payload tree as indented text. It is a devtool, not part of the
// codec's core contract.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/coreclef/msgpack/payload"
	"github.com/coreclef/msgpack/wire"
)

func main() {
	path := flag.String("file", "", "path to a file containing a single MessagePack-encoded value")
	flag.Parse()

	if *path == "" {
		log.Fatal("msgpack-inspect: -file is required")
	}

	data, err := os.ReadFile(*path)
	if err != nil {
		log.Fatalf("msgpack-inspect: failed to read %s: %v", *path, err)
	}

	p, err := wire.Unmarshal(data)
	if err != nil {
		log.Fatalf("msgpack-inspect: failed to decode: %v", err)
	}

	dump(os.Stdout, p, 0)
}

func dump(w *os.File, p payload.Payload, depth int) {
	indent := strings.Repeat("  ", depth)

	switch p.Kind() {
	case payload.KindNil:
		fmt.Fprintf(w, "%snil\n", indent)
	case payload.KindBool:
		v, _ := p.AsBool()
		fmt.Fprintf(w, "%sbool(%t)\n", indent, v)
	case payload.KindInt:
		v, _ := p.AsInt()
		fmt.Fprintf(w, "%sint(%d)\n", indent, v)
	case payload.KindUint:
		v, _ := p.AsUint()
		fmt.Fprintf(w, "%suint(%d)\n", indent, v)
	case payload.KindFloat:
		v, _ := p.AsFloat()
		fmt.Fprintf(w, "%sfloat(%v)\n", indent, v)
	case payload.KindStr:
		v, _ := p.AsStr()
		fmt.Fprintf(w, "%sstr(%q)\n", indent, v)
	case payload.KindBin:
		v, _ := p.AsBin()
		fmt.Fprintf(w, "%sbin(%d bytes)\n", indent, len(v))
	case payload.KindExt:
		typ, v, _ := p.AsExt()
		fmt.Fprintf(w, "%sext(type=%d, %d bytes)\n", indent, typ, len(v))
	case payload.KindTimestamp:
		sec, nsec := p.TimestampValue()
		fmt.Fprintf(w, "%stimestamp(seconds=%d, nanoseconds=%d)\n", indent, sec, nsec)
	case payload.KindArr:
		items := p.ArrItems()
		fmt.Fprintf(w, "%sarr[%d]\n", indent, len(items))
		for _, item := range items {
			dump(w, item, depth+1)
		}
	case payload.KindMap:
		n, _ := p.MapLen()
		fmt.Fprintf(w, "%smap[%d]\n", indent, n)
		for k, v := range p.MapEntries() {
			fmt.Fprintf(w, "%s  %q:\n", indent, k)
			dump(w, v, depth+2)
		}
	}
}
