package main

import (
	"flag"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/knadh/koanf"
	"github.com/npillmayer/railtrack/session"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracers which are configured from flag -trace
var tracerKeys = []string{
	"railtrack.cli",
	"railtrack.pattern",
	"railtrack.automaton",
	"railtrack.marker",
	"railtrack.engine",
	"railtrack.session",
	"railtrack.diagram",
	"railtrack.scanner",
}

// main() starts an interactive CLI, where users may load a pattern and
// step through it symbol by symbol.
func main() {
	initDisplay()
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	strict := flag.Bool("strict", false, "Stepping over a symbol which is not enabled is an error")
	idbase := flag.Int("idbase", 0, "First identifier for diagram terminals (default from configuration, or 1)")
	initf := flag.String("init", "", "Initial load")
	flag.Parse()
	//
	conf := setupConfiguration(*tlevel)
	flag.Visit(func(f *flag.Flag) { // flags override configuration values
		switch f.Name {
		case "strict":
			conf.Set("strict-transitions", *strict)
		case "idbase":
			conf.Set("diagram-id-base", *idbase)
		}
	})
	if err := setupTracing(conf); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
	pterm.Info.Println("Welcome to railtrack") // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)
	//
	repl, err := readline.New("railtrack> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{
		session: session.New(nil),
		repl:    repl,
	}
	tracer().Infof("strict transitions = %v", gconf.GetBool("strict-transitions"))
	if input := strings.TrimSpace(strings.Join(flag.Args(), " ")); input != "" {
		if _, err := intp.Eval(":pattern " + input); err != nil {
			os.Exit(2)
		}
	}
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.loadInitFile(*initf)               // init file name provided by flag
	intp.REPL()                             // go into interactive mode
}

// setupConfiguration loads the application configuration and makes it
// globally available.
func setupConfiguration(tlevel string) *koanfadapter.KConf {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := koanfadapter.New(koanf.New("."), "railtrack", []string{"nt"})
	gconf.Initialize(conf) // calls conf.InitDefaults()
	conf.Set("tracelevel.root", tlevel)
	for _, key := range tracerKeys {
		conf.Set("tracelevel."+key, tlevel)
	}
	return conf
}

// setupTracing installs trace2go as the tracer selector, with tracers
// writing to the Go log.
func setupTracing(conf *koanfadapter.KConf) error {
	if err := trace2go.ConfigureRoot(conf, "tracelevel", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
