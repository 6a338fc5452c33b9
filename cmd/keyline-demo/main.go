// Package main is a small shell-like demo of the keyline editor.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dshills/keyline"
	"github.com/dshills/keyline/complete"
	"github.com/dshills/keyline/config"
	"github.com/dshills/keyline/history"
	"github.com/dshills/keyline/term"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts, histPath, ok := parseFlags()
	if !ok {
		return 0
	}

	backend, err := term.NewTcell()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to open terminal: %v\n", err)
		return 1
	}
	defer backend.Close()
	backend.SetTabWidth(opts.TabWidth)

	ed, err := keyline.New(backend, backend, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	ed.SetCompleter(complete.Filenames{})

	if histPath != "" {
		if err := history.LoadInto(ed.History(), histPath); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: history not loaded: %v\n", err)
		}
		defer func() {
			if err := history.Save(histPath, ed.History().Entries()); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: history not saved: %v\n", err)
			}
		}()

		// Pick up entries written by concurrent sessions.
		watcher, err := history.NewWatcher(histPath)
		if err == nil {
			defer watcher.Close()
			go func() {
				for range watcher.Events {
					_ = history.MergeInto(ed.History(), histPath)
				}
			}()
		}
	}

	for {
		line, err := ed.ReadLine("keyline> ")
		switch {
		case errors.Is(err, keyline.ErrInputEnded):
			backend.Println("exit")
			return 0
		case errors.Is(err, keyline.ErrCancelled):
			backend.Println("^C")
			continue
		case err != nil:
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		backend.Println("keyline> " + line)
		backend.Println("-> " + line)
	}
}

func parseFlags() (config.Options, string, bool) {
	opts := config.Defaults()

	var configPath string
	var histPath string
	var vi bool
	var showVersion bool

	flag.StringVar(&configPath, "config", "", "Path to configuration file")
	flag.StringVar(&histPath, "history", defaultHistoryPath(), "Path to the history file")
	flag.BoolVar(&vi, "vi", false, "Use Vi keybindings")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("keyline-demo %s (%s)\n", version, commit)
		return opts, "", false
	}

	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		} else {
			opts = loaded
		}
	}
	if vi {
		opts.Mode = config.ModeVi
	}
	if opts.HistoryFile != "" && histPath == defaultHistoryPath() {
		histPath = opts.HistoryFile
	}
	return opts, histPath, true
}

func defaultHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".keyline_history")
}
