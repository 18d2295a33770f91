package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'unicode.codec'
func tracer() tracing.Trace {
	return tracing.Select("unicode.codec")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":     "go",
		"trace.unicode.codec": "Info",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	infile := flag.String("in", "", "File to decode on startup")
	flag.Parse()
	switch *tlevel {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		tracer().Errorf("Invalid trace level: %s", *tlevel)
		os.Exit(5)
	}
	pterm.Info.Println("Welcome to the UTF-8 inspector") // colored welcome message
	//
	// decode input given up front, if any
	if *infile != "" {
		data, err := os.ReadFile(*infile)
		if err != nil {
			tracer().Errorf(err.Error())
			os.Exit(4)
		}
		printDecoded(data)
	} else if flag.NArg() > 0 {
		printDecoded([]byte(strings.Join(flag.Args(), " ")))
	}
	//
	// set up REPL
	repl, err := readline.New("u8 > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{repl: repl}
	pterm.Info.Println("Quit with <ctrl>D")
	intp.REPL() // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	repl *readline.Instance
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		op, err := parseCommand(line)
		if err != nil {
			tracer().Errorf(err.Error())
			continue
		}
		err, quit := execute(op)
		if err != nil {
			tracer().Errorf(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// Op is a single parsed command: an op-code plus the rest of the line.
type Op struct {
	code int
	arg  string
}

func (op *Op) noArg() bool {
	return op.arg == ""
}

const NOOP = -1
const (
	QUIT int = iota
	HELP
	DECODE
	ENCODE
	NAME
	NORM
	HEX
)

var opMap = map[string]int{
	"quit":   QUIT,
	"help":   HELP,
	"decode": DECODE,
	"encode": ENCODE,
	"name":   NAME,
	"norm":   NORM,
	"hex":    HEX,
}

var opNames = []string{
	"quit",
	"help",
	"decode",
	"encode",
	"name",
	"norm",
	"hex",
}

func parseCommand(line string) (*Op, error) {
	word, arg, _ := strings.Cut(line, " ")
	code, ok := opMap[strings.ToLower(word)]
	if !ok {
		return nil, fmt.Errorf("unknown command %q; try 'help'", word)
	}
	op := &Op{code: code, arg: strings.TrimSpace(arg)}
	tracer().Debugf("parsed command: %s %q", opNames[op.code], op.arg)
	return op, nil
}

var commandFn = map[int]func(*Op) (error, bool){
	QUIT:   quitOp,
	HELP:   helpOp,
	DECODE: decodeOp,
	ENCODE: encodeOp,
	NAME:   nameOp,
	NORM:   normOp,
	HEX:    hexOp,
}

func execute(op *Op) (error, bool) {
	fn, ok := commandFn[op.code]
	if !ok {
		return fmt.Errorf("command %q not yet implemented", opNames[op.code]), false
	}
	return fn(op)
}

func quitOp(op *Op) (error, bool) {
	return nil, true
}
