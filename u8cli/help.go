package main

import (
	"strings"

	"github.com/pterm/pterm"
)

func helpOp(op *Op) (error, bool) {
	help(op.arg)
	return nil, false
}

func help(topic string) {
	tracer().Infof("help %v", topic)
	t := strings.ToLower(topic)
	switch t {
	case "decode", "hex":
		pterm.Info.Println("decode / hex")
		pterm.Println(`
	decode <text>          segment text into code-unit runs and print one row per run
	hex <byte string>      same, but on raw bytes given in hex, e.g.  hex c0 80
	                       malformed runs are reported with error kind and byte offset
	`)
	case "encode", "name":
		pterm.Info.Println("encode / name")
		pterm.Println(`
	encode <U+xxxx ...>    encode code points into their UTF-8 byte sequence
	name <U+xxxx ...>      look up Unicode character names
	`)
	case "norm":
		pterm.Info.Println("norm")
		pterm.Println(`
	norm <form> <text>     normalize text to NFC, NFD, NFKC or NFKD and show the
	                       code-point sequences before and after
	`)
	default:
		pterm.Info.Println("Commands")
		pterm.Println(`
	decode <text>          inspect the UTF-8 runs of a text
	hex <byte string>      inspect raw bytes, e.g.  hex f0 9f 8c b5
	encode <U+xxxx ...>    code points to bytes
	name <U+xxxx ...>      Unicode character names
	norm <form> <text>     normalize (NFC|NFD|NFKC|NFKD)
	help <command>         more on a single command
	quit                   leave
	`)
	}
}
