// Command dosedit is a DOS-Edit-style terminal text editor.
//
//	dosedit [-log FILE] [-version] [PATH]
//
// A missing PATH starts an empty document that saves to PATH. Without PATH
// the document is untitled and saves to UNTITLED.TXT.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/iw2rmb/dosedit"
	"github.com/iw2rmb/dosedit/buffer"
	"github.com/iw2rmb/dosedit/editor"
)

// logEnv names the environment variable that enables logging like -log.
const logEnv = "DOSEDIT_LOG"

type options struct {
	logPath string
	version bool
	path    string
}

func parseArgs(args []string, stderr io.Writer) (options, error) {
	var o options
	flags := flag.NewFlagSet("dosedit", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVar(&o.logPath, "log", os.Getenv(logEnv), "append debug log to `FILE`")
	flags.BoolVar(&o.version, "version", false, "print the version and exit")
	flags.Usage = func() {
		fmt.Fprintln(stderr, "usage: dosedit [-log FILE] [-version] [PATH]")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		return o, err
	}
	if flags.NArg() > 1 {
		flags.Usage()
		return o, fmt.Errorf("expected at most one path, got %d", flags.NArg())
	}
	o.path = flags.Arg(0)
	return o, nil
}

// openDocument loads path. A path that does not exist yet is a new document.
func openDocument(path string) (*buffer.Buffer, error) {
	if path == "" {
		return buffer.New(""), nil
	}
	doc, err := buffer.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return buffer.New(""), nil
	}
	return doc, err
}

type systemClipboard struct{}

func (systemClipboard) ReadText() (string, error) { return clipboard.ReadAll() }
func (systemClipboard) WriteText(s string) error  { return clipboard.WriteAll(s) }

func newClipboard() editor.Clipboard {
	if clipboard.Unsupported {
		return nil
	}
	return systemClipboard{}
}

type model struct {
	editor editor.Model
}

func newModel(doc *buffer.Buffer, path string, clip editor.Clipboard) model {
	return model{editor: editor.New(editor.Config{
		Doc:       doc,
		Path:      path,
		Style:     editor.DefaultStyle(),
		Clipboard: clip,
	})}
}

func (m model) Init() tea.Cmd { return m.editor.Init() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m model) View() string { return m.editor.View() }

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func run(args []string, stdout, stderr io.Writer) int {
	o, err := parseArgs(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "dosedit: %v\n", err)
		return 2
	}
	if o.version {
		fmt.Fprintln(stdout, "dosedit", dosedit.VersionTag())
		return 0
	}

	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		fmt.Fprintln(stderr, "dosedit: stdin and stdout must be a terminal")
		return 1
	}

	if o.logPath != "" {
		f, err := tea.LogToFile(o.logPath, "dosedit")
		if err != nil {
			fmt.Fprintf(stderr, "dosedit: open log: %v\n", err)
			return 1
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	doc, err := openDocument(o.path)
	if err != nil {
		fmt.Fprintf(stderr, "dosedit: %v\n", err)
		return 1
	}
	log.Printf("open %q: %d lines", o.path, doc.LineCount())

	lipgloss.SetColorProfile(termenv.EnvColorProfile())
	p := tea.NewProgram(newModel(doc, o.path, newClipboard()), tea.WithAltScreen())
	if o.path != "" {
		stop, err := watchFile(o.path, p.Send)
		if err != nil {
			log.Printf("watch %s: %v", o.path, err)
		} else {
			defer stop()
		}
	}
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(stderr, "dosedit: %v\n", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
