package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/railtrack/automaton"
	"github.com/npillmayer/railtrack/engine"
	"github.com/npillmayer/railtrack/pattern"
	"github.com/npillmayer/railtrack/session"
	"github.com/pterm/pterm"
)

// Intp is our interpreter object
type Intp struct {
	session *session.Session
	repl    *readline.Instance
	out     io.Writer // destination for :dot without a file name; nil = stdout
}

func (intp *Intp) loadInitFile(filename string) {
	if filename == "" {
		return
	}
	f, err := os.Open(filename)
	if err != nil {
		tracer().Errorf("Unable to open init file: %s", filename)
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineno := 1
	for scanner.Scan() {
		line := scanner.Text()
		if line = strings.TrimSpace(line); line == "" || strings.HasPrefix(line, "#") {
			lineno++
			continue
		}
		if _, err := intp.Eval(line); err != nil {
			tracer().Errorf("Error line %d: "+err.Error(), lineno)
		}
		lineno++
	}
	if err := scanner.Err(); err != nil {
		tracer().Errorf("Error while reading init file: " + err.Error())
	}
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
		quit, err := intp.Eval(line)
		if err != nil {
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

type command func(intp *Intp, arg string) (engine.State, bool, error)

var commands map[string]command

func init() {
	commands = map[string]command{
		"pattern": cmdPattern,
		"p":       cmdPattern,
		"back":    cmdBack,
		"replay":  cmdReplay,
		"reset":   cmdReset,
		"state":   cmdState,
		"tree":    cmdTree,
		"dot":     cmdDot,
		"grammar": cmdGrammar,
		"help":    cmdHelp,
		"quit":    cmdQuit,
	}
}

// Eval executes a command or steps over a sequence of symbols, given on a
// line by itself. It returns true if the user asked to quit.
func (intp *Intp) Eval(line string) (bool, error) {
	var state engine.State
	var show bool
	var err error
	if strings.HasPrefix(line, ":") {
		name, arg := line[1:], ""
		if i := strings.IndexAny(name, " \t"); i >= 0 {
			name, arg = name[:i], strings.TrimSpace(name[i+1:])
		}
		cmd, ok := commands[name]
		if !ok {
			err = fmt.Errorf("unknown command :%s, try :help", name)
			pterm.Error.Println(err.Error())
			return false, err
		}
		if name == "quit" {
			return true, nil
		}
		state, show, err = cmd(intp, arg)
	} else {
		state, err = intp.session.Feed(strings.Join(strings.Fields(line), ""))
		show = err == nil
	}
	if err != nil {
		printError(err)
		return false, err
	}
	if show {
		printState(state)
	}
	return false, nil
}

func cmdPattern(intp *Intp, arg string) (engine.State, bool, error) {
	if arg == "" {
		return engine.State{}, false, errors.New("usage: :pattern <pattern>")
	}
	state, err := intp.session.Load(arg)
	return state, err == nil, err
}

func cmdBack(intp *Intp, arg string) (engine.State, bool, error) {
	state, err := intp.session.Back()
	return state, err == nil, err
}

func cmdReplay(intp *Intp, arg string) (engine.State, bool, error) {
	state, err := intp.session.Replay(strings.Join(strings.Fields(arg), ""))
	return state, err == nil, err
}

func cmdReset(intp *Intp, arg string) (engine.State, bool, error) {
	state, err := intp.session.Replay("")
	return state, err == nil, err
}

func cmdState(intp *Intp, arg string) (engine.State, bool, error) {
	state, err := intp.session.State()
	if err != nil {
		return state, false, err
	}
	printState(state)
	pterm.Info.Println(fmt.Sprintf("history %q, digest %s", string(state.History), state.Digest()))
	return state, false, nil
}

func cmdTree(intp *Intp, arg string) (engine.State, bool, error) {
	d := intp.session.Diagram()
	if d == nil {
		return engine.State{}, false, session.ErrNoPattern
	}
	ll := pterm.LeveledList{}
	for _, line := range d.Outline() {
		ll = append(ll, pterm.LeveledListItem{Level: line.Level, Text: line.Text})
	}
	tracer().Debugf("|ll| = %d, ll = %v", len(ll), ll)
	pterm.Println(d.Pattern.Source())
	pterm.DefaultTree.WithRoot(pterm.NewTreeFromLeveledList(ll)).Render()
	return engine.State{}, false, nil
}

func cmdDot(intp *Intp, arg string) (engine.State, bool, error) {
	var auto *automaton.Automaton
	var active *automaton.StateSet
	intp.session.Inspect(func(eng *engine.Engine) {
		if auto = eng.Automaton(); auto != nil {
			active = eng.Expression().Markers()
		}
	})
	if auto == nil {
		return engine.State{}, false, session.ErrNoPattern
	}
	if arg == "" {
		w := intp.out
		if w == nil {
			w = os.Stdout
		}
		return engine.State{}, false, auto.ToGraphViz(w, active)
	}
	f, err := os.Create(arg)
	if err != nil {
		return engine.State{}, false, err
	}
	defer f.Close()
	if err = auto.ToGraphViz(f, active); err != nil {
		return engine.State{}, false, err
	}
	pterm.Info.Println("automaton written to " + arg)
	return engine.State{}, false, nil
}

func cmdGrammar(intp *Intp, arg string) (engine.State, bool, error) {
	if _, err := pattern.Grammar(); err != nil {
		return engine.State{}, false, err
	}
	pterm.Println(strings.TrimSpace(pattern.GrammarSource))
	return engine.State{}, false, nil
}

func cmdHelp(intp *Intp, arg string) (engine.State, bool, error) {
	pterm.Println(`:pattern P   load pattern P (also :p)
:back        revert the last step
:replay S    reset and step over the symbols S
:reset       revert to the initial state
:state       print the current state and its digest
:tree        print the railroad diagram of the pattern
:dot [file]  export the position automaton in Graphviz format
:grammar     print the grammar of patterns
:quit        leave
anything else is a sequence of symbols to step over`)
	return engine.State{}, false, nil
}

func cmdQuit(intp *Intp, arg string) (engine.State, bool, error) {
	return engine.State{}, false, nil
}

func printState(state engine.State) {
	pterm.Info.Println(state.Expression)
	if state.IsDead() {
		pterm.Println("   active:  none (dead state)")
	} else {
		pterm.Println(fmt.Sprintf("   active:  %v", state.Active))
	}
	pterm.Println(fmt.Sprintf("   enabled: %s", enabledString(state.Enabled)))
}

func enabledString(syms []rune) string {
	if len(syms) == 0 {
		return "none"
	}
	s := make([]string, len(syms))
	for i, r := range syms {
		s[i] = string(r)
	}
	return strings.Join(s, " ")
}

func printError(err error) {
	var verr *pattern.ValidationError
	if errors.As(err, &verr) {
		pterm.Error.Println(fmt.Sprintf("%v [%v]", err, verr.Kind))
		return
	}
	var operr *engine.OperationError
	if errors.As(err, &operr) {
		pterm.Error.Println(fmt.Sprintf("%v [%v]", err, operr.Kind))
		return
	}
	pterm.Error.Println(err.Error())
}
