package main

import (
	"fmt"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/eszett"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
)

// Intp is our interpreter object
type Intp struct {
	repl *readline.Instance
	dir  eszett.Direction
	opts []eszett.Option
}

func runReplCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setTraceLevel(mustFlagString(flags["trace"], "trace"))
	opts, err := transformOptions(flags)
	if err != nil {
		fatalf("%v", err)
	}
	intp := &Intp{dir: eszett.Expand, opts: opts}
	if intp.repl, err = readline.New(intp.prompt()); err != nil {
		fatalf("%v", err)
	}
	defer intp.repl.Close()
	pterm.Info.Println("Welcome to eszett")
	pterm.Info.Println("Quit with <ctrl>D or :quit, switch direction with :expand and :restore")
	intp.REPL()
}

func (intp *Intp) prompt() string {
	return fmt.Sprintf("%s > ", intp.dir)
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.HasPrefix(line, ":") {
			if quit := intp.execute(strings.TrimSpace(line[1:])); quit {
				break
			}
			continue
		}
		intp.transform(line)
	}
	pterm.Info.Println("Good bye!")
}

// execute runs a REPL command and reports whether to quit.
func (intp *Intp) execute(cmd string) bool {
	tracer().Debugf("cmd = %q", cmd)
	switch strings.ToLower(cmd) {
	case "quit", "q":
		return true
	case "expand":
		intp.dir = eszett.Expand
	case "restore":
		intp.dir = eszett.Restore
	case "help", "h":
		pterm.Println(":expand   switch to expanding umlauts and eszett")
		pterm.Println(":restore  switch to restoring digraphs")
		pterm.Println(":quit     leave")
	default:
		pterm.Error.Printf("unknown command :%s\n", cmd)
	}
	intp.repl.SetPrompt(intp.prompt())
	return false
}

func (intp *Intp) transform(line string) {
	res, err := eszett.TransformResult(line, nil, intp.dir, intp.opts...)
	if err != nil {
		pterm.Error.Println(err)
		return
	}
	pterm.Println(res.Text)
	for _, amb := range res.Ambiguities {
		pterm.Warning.Println(amb.Error())
	}
}
