package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	lisp "github.com/dmitryguzeev/lisp-impl"
)

const (
	appName     = "lisp"
	historyFile = ".lisp_impl_history"
	prompt      = ">> "
)

func main() {
	if len(os.Args) < 2 {
		os.Exit(cmdRepl())
	}
	switch cmd := os.Args[1]; cmd {
	case "run":
		os.Exit(cmdRun(os.Args[2:]))
	case "repl":
		os.Exit(cmdRepl())
	case "version":
		fmt.Println(lisp.Version)
	case "-h", "--help", "help":
		usage()
	default:
		// A bare path runs it, matching the reference binary.
		if strings.ContainsAny(cmd, "./") {
			os.Exit(cmdRun(os.Args[1:]))
		}
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", appName, cmd)
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Printf(`lisp-impl %s

Usage:
  %s run <file.lisp>    Evaluate a file's top-level expressions.
  %s repl               Start the interactive session (default).
  %s version            Print the version.

The interactive session exits on .exit or Ctrl+D.
`, lisp.Version, appName, appName, appName)
}

// -----------------------------------------------------------------------------
// run
// -----------------------------------------------------------------------------

func cmdRun(args []string) int {
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "usage: %s run <file.lisp>\n", appName)
		return 2
	}
	file := args[0]

	src, err := os.ReadFile(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: couldn't load file at %s, skipping\n", appName, file)
		return 1
	}

	ip, err := lisp.NewRuntime()
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return 1
	}

	if _, err := ip.EvalSource(file, string(src)); err != nil {
		// Reader faults are fatal; render them with a source snippet.
		fmt.Fprintln(os.Stderr, lisp.WrapErrorWithSource(err, string(src)).Error())
		return 1
	}
	return 0
}

// -----------------------------------------------------------------------------
// repl
// -----------------------------------------------------------------------------

func cmdRepl() int {
	fmt.Printf("lisp-impl %s. Type .exit or press Ctrl+D to exit.\n", lisp.Version)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	ip, err := lisp.NewRuntime()
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return 1
	}

	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return 0
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			return 1
		}

		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.TrimSpace(line) == ".exit" {
			return 0
		}
		ln.AppendHistory(line)

		// One expression per line; its repr is echoed back.
		v, err := ip.ReadEval("repl", line)
		if err != nil {
			// Reader faults terminate the session, keeping the
			// fatal/recoverable split of the batch mode.
			fmt.Fprintln(os.Stderr, lisp.WrapErrorWithSource(err, line).Error())
			return 1
		}
		fmt.Println(lisp.FormatObject(v))
	}
}
