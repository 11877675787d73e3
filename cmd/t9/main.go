package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/t9vm/asm"
	"github.com/wippyai/t9vm/errors"
	"github.com/wippyai/t9vm/vm"
)

type options struct {
	programFile string
	asmFile     string
	outFile     string
	prefix      string
	limit       int
	maxDepth    int
	maxWord     int
	showPrio    bool
	dump        bool
	strict      bool
	styled      bool
}

var (
	prioStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#87CEEB"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
)

func main() {
	var (
		opts        options
		verbose     = flag.Bool("v", false, "Log traversal at debug level to stderr")
		interactive = flag.Bool("i", false, "Interactive completion mode with TUI")
	)
	flag.StringVar(&opts.programFile, "program", "", "Path to a binary trie program")
	flag.StringVar(&opts.asmFile, "asm", "", "Path to a text listing to assemble")
	flag.StringVar(&opts.outFile, "o", "", "Write the assembled program to this file and exit")
	flag.StringVar(&opts.prefix, "prefix", "", "Only list words starting with this prefix")
	flag.IntVar(&opts.limit, "limit", 0, "Maximum number of words to list (0 = all)")
	flag.IntVar(&opts.maxDepth, "max-depth", 0, "Deepest node path the machine accepts (0 = default)")
	flag.IntVar(&opts.maxWord, "max-word", 0, "Longest word in bytes the machine accepts (0 = default)")
	flag.BoolVar(&opts.showPrio, "prio", false, "Show each word's priority byte")
	flag.BoolVar(&opts.dump, "dump", false, "Print the program as a listing and exit")
	flag.BoolVar(&opts.strict, "strict", false, "Report a node with missing children as truncated")
	flag.Parse()

	if (opts.programFile == "") == (opts.asmFile == "") {
		fmt.Fprintln(os.Stderr, "Usage: t9 -program <file.t9> [-prefix p] [-limit n] [-prio]")
		fmt.Fprintln(os.Stderr, "       t9 -asm <file.txt> [-o file.t9]")
		fmt.Fprintln(os.Stderr, "       t9 -program <file.t9> -dump")
		fmt.Fprintln(os.Stderr, "       t9 -program <file.t9> -i  (interactive mode)")
		os.Exit(1)
	}

	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer l.Sync()
		vm.SetLogger(l)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: -i needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	opts.styled = term.IsTerminal(int(os.Stdout.Fd()))
	if err := run(os.Stdout, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadProgram(opts options) ([]byte, error) {
	if opts.programFile != "" {
		data, err := os.ReadFile(opts.programFile)
		if err != nil {
			return nil, errors.Load("read program", err)
		}
		return data, nil
	}

	src, err := os.ReadFile(opts.asmFile)
	if err != nil {
		return nil, errors.Load("read listing", err)
	}
	program, err := asm.Parse(string(src))
	if err != nil {
		return nil, fmt.Errorf("assemble %s: %w", opts.asmFile, err)
	}
	return program, nil
}

func (o options) config() vm.Config {
	return vm.Config{
		MaxDepth:   o.maxDepth,
		MaxWordLen: o.maxWord,
		Strict:     o.strict,
	}
}

func run(w io.Writer, opts options) error {
	program, err := loadProgram(opts)
	if err != nil {
		return err
	}

	if opts.outFile != "" {
		if err := os.WriteFile(opts.outFile, program, 0o644); err != nil {
			return errors.Load("write program", err)
		}
		fmt.Fprintf(w, "wrote %d bytes to %s\n", len(program), opts.outFile)
		return nil
	}

	if opts.dump {
		lines, err := asm.Disassemble(program)
		if _, werr := io.WriteString(w, asm.Format(lines)); werr != nil {
			return werr
		}
		return err
	}

	m := vm.NewWithConfig(program, opts.config())
	cands, err := m.Complete(opts.prefix, opts.limit)
	for _, c := range cands {
		if opts.showPrio {
			fmt.Fprintf(w, "%s %s\n", render(opts.styled, prioStyle, fmt.Sprintf("%3d", c.Priority)), c.Word)
		} else {
			fmt.Fprintln(w, c.Word)
		}
	}
	if err != nil {
		return fmt.Errorf("after %d word(s): %w", len(cands), err)
	}

	if opts.styled && opts.prefix == "" && opts.limit <= 0 {
		fmt.Fprintln(w, render(true, headerStyle, fmt.Sprintf("%d words, %d bytes", len(cands), len(program))))
	}
	return nil
}

func render(styled bool, s lipgloss.Style, text string) string {
	if !styled {
		return text
	}
	return s.Render(text)
}
