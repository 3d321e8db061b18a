// Package cmd implements the CLI application to keep an income and expense cashbook.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	iofs "io/fs"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/cashbook"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

// Commands lists all the subcommands of the application.
// A main package will register them, and Execute() the user-selected one.
var Commands = []subcommands.Command{
	&menuCmd{},
	&dialogCmd{},
	&reportCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var currency = flag.String("currency", "", "Currency code used to display amounts in reports (e.g. EUR). Defaults to $"+EnvCurrency+".")
var Verbose = flag.Bool("v", false, "Print diagnostic messages on stderr. Defaults to $"+EnvVerbose+".")

// envFlags maps global flags to the environment variable providing their default.
var envFlags = map[string]string{
	"currency": EnvCurrency,
	"v":        EnvVerbose,
}

// LoadEnv completes the parsed global flags with environment variables.
//
// A .env file in the current directory is loaded first, if any. Flags set on
// the command line take precedence over the environment.
func LoadEnv(fs *flag.FlagSet) error {
	// the .env file is optional, but must be valid when present.
	if err := godotenv.Load(); err != nil && !errors.Is(err, iofs.ErrNotExist) {
		return fmt.Errorf("cannot load .env: %w", err)
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	for name, env := range envFlags {
		if set[name] {
			continue
		}
		if v := os.Getenv(env); v != "" {
			if err := fs.Set(name, v); err != nil {
				return fmt.Errorf("invalid $%s %q: %w", env, v, err)
			}
		}
	}

	if err := cashbook.ValidateCurrency(*currency); err != nil {
		return err
	}

	log.SetFlags(0)
	log.SetPrefix("cbk: ")
	if !*Verbose {
		log.SetOutput(io.Discard)
	}
	return nil
}

// printMarkdown renders markdown for the terminal.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		log.Printf("cannot render markdown: %v", err)
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// sessionLogger returns the logger for interactive sessions.
func sessionLogger() *log.Logger {
	if *Verbose {
		return log.Default()
	}
	return log.New(io.Discard, "", 0)
}
