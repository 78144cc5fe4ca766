/*
Command eszett rewrites German umlauts and eszett in texts.

	eszett expand "Grüße aus Köln"           → Gruesse aus Koeln
	eszett restore -f letter.txt             → restores digraphs using a heuristic
	eszett expand -r 6:17 "Visit müller.com" → leaves bytes 6 to 17 untouched
	eszett repl                              → interactive mode

Text is taken from the command line, from a file (--file) or from stdin.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/eszett"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
)

// tracer traces with key 'eszett.cli'
func tracer() tracing.Trace {
	return tracing.Select("eszett.cli")
}

// traceKeys are all tracers of the module.
var traceKeys = []string{"eszett", "eszett.scope", "eszett.german", "eszett.cli"}

func main() {
	initDisplay()
	initTracing()

	commando.
		SetExecutableName("eszett").
		SetVersion("v0.1.0").
		SetDescription("Rewrite German umlauts and eszett, leaving selected regions of a text untouched.")

	for _, dir := range []eszett.Direction{eszett.Expand, eszett.Restore} {
		registerTransformCommand(dir)
	}

	commando.
		Register("repl").
		SetDescription("Transform lines interactively. Switch direction with :expand and :restore.").
		SetShortDescription("interactive mode").
		AddFlag("resolver", "digraph resolver: heuristic|native|literal|wordlist|ambiguous", commando.String, "heuristic").
		AddFlag("words,w", "word list file for the wordlist resolver", commando.String, "-").
		AddFlag("lang,l", "language tag (BCP 47, e.g. de, de-CH)", commando.String, "de").
		AddFlag("trace,t", "trace level [Debug|Info|Error]", commando.String, "Error").
		SetAction(runReplCommand)

	commando.Parse(nil)
}

func registerTransformCommand(dir eszett.Direction) {
	descr := map[eszett.Direction]string{
		eszett.Expand:  "Replace umlauts and eszett by their ASCII digraphs (ü → ue, ß → ss).",
		eszett.Restore: "Replace ASCII digraphs by umlauts and eszett where the resolver agrees.",
	}
	commando.
		Register(dir.String()).
		SetDescription(descr[dir]).
		SetShortDescription(dir.String() + " special characters").
		AddArgument("text", "text to transform (reads --file or stdin if omitted)", "").
		AddFlag("file,f", "read text from file", commando.String, "-").
		AddFlag("ranges,r", "byte ranges start:end,... to exclude (see --restrict)", commando.String, "-").
		AddFlag("restrict,R", "process only the given ranges instead of excluding them", commando.Bool, nil).
		AddFlag("resolver", "digraph resolver: heuristic|native|literal|wordlist|ambiguous", commando.String, "heuristic").
		AddFlag("fallback", "decision for undecided digraphs: literal|native", commando.String, "literal").
		AddFlag("words,w", "word list file for the wordlist resolver", commando.String, "-").
		AddFlag("lang,l", "language tag (BCP 47, e.g. de, de-CH)", commando.String, "de").
		AddFlag("verbose,V", "report substitutions and ambiguous digraphs", commando.Bool, nil).
		AddFlag("trace,t", "trace level [Debug|Info|Error]", commando.String, "Error").
		SetAction(func(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
			runTransformCommand(dir, args, flags)
		})
}

func runTransformCommand(dir eszett.Direction, args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setTraceLevel(mustFlagString(flags["trace"], "trace"))
	text, err := readInput(args["text"], flags["file"])
	if err != nil {
		fatalf("%v", err)
	}
	ranges, err := parseRanges(mustFlagString(flags["ranges"], "ranges"))
	if err != nil {
		fatalf("%v", err)
	}
	opts, err := transformOptions(flags)
	if err != nil {
		fatalf("%v", err)
	}
	if mustFlagBool(flags["restrict"], "restrict") {
		opts = append(opts, eszett.WithRestrict())
	}
	res, err := eszett.TransformResult(text, ranges, dir, opts...)
	if err != nil {
		fatalf("%v", err)
	}
	fmt.Print(res.Text)
	if args["text"].Value != "" {
		fmt.Println()
	}
	if mustFlagBool(flags["verbose"], "verbose") {
		pterm.Info.Printf("%d substitution(s)\n", res.Substitutions)
		for _, amb := range res.Ambiguities {
			pterm.Warning.Println(amb.Error())
		}
	}
}

func readInput(textArg commando.ArgValue, fileFlag commando.FlagValue) (string, error) {
	if textArg.Value != "" {
		return textArg.Value, nil
	}
	path, err := fileFlag.GetString()
	if err != nil {
		return "", fmt.Errorf("invalid --file flag: %w", err)
	}
	if path = strings.TrimSpace(path); path != "-" && path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("cannot read %s: %w", path, err)
		}
		return string(b), nil
	}
	b, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("cannot read stdin: %w", err)
	}
	return string(b), nil
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func initTracing() {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
	}
	for _, key := range traceKeys {
		conf["trace."+key] = "Error"
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Fprintln(os.Stderr, "eszett: error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
}

func setTraceLevel(level string) {
	for _, key := range traceKeys {
		t := tracing.Select(key)
		switch level {
		case "Debug":
			t.SetTraceLevel(tracing.LevelDebug)
		case "Info":
			t.SetTraceLevel(tracing.LevelInfo)
		case "Error":
			t.SetTraceLevel(tracing.LevelError)
		default:
			fatalf("invalid trace level: %s", level)
		}
	}
	tracer().Infof("trace level is %s", level)
}

func mustFlagString(flag commando.FlagValue, name string) string {
	s, err := flag.GetString()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return strings.TrimSpace(s)
}

func mustFlagBool(flag commando.FlagValue, name string) bool {
	b, err := flag.GetBool()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return b
}

func fatalf(format string, args ...interface{}) {
	pterm.Error.Printf(format+"\n", args...)
	os.Exit(1)
}
