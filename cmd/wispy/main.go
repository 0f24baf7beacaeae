// Command wispy is the Wispy interpreter's CLI driver: a REPL when given
// no arguments, a file loader when given one or more.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/jasonflorentino/wispy"
	wispybuiltins "github.com/jasonflorentino/wispy/builtins"
	wispyparse "github.com/jasonflorentino/wispy/parse"
	wispyread "github.com/jasonflorentino/wispy/read"
)

const banner = "\n Wispy Version 0.0.0.0.5\n" +
	" A lisp-y language by Jason\n" +
	" Made reading buildyourownlisp.com by Daniel Holden\n" +
	" Press Ctrl+C to exit\n"

const prompt = "wispy~> "

// resultPrefix prefixes every printed REPL result.
const resultPrefix = "    <~  "

func newGlobalEnv() *wispy.Environment {
	env := wispy.NewEnvironment(nil)
	wispybuiltins.Install(env)
	return env
}

func loadFile(log *slog.Logger, env *wispy.Environment, path string) wispy.Value {
	result := wispybuiltins.Load.Fn(env, wispy.NewSExpr(wispy.MakeString(path)))
	if err, isErr := result.(*wispy.Error); isErr {
		log.Error("load failed", "path", path, "error", err.Message())
	}
	return result
}

func runREPL(log *slog.Logger, env *wispy.Environment) error {
	fmt.Print(banner)

	rl, err := readline.New(prompt)
	if err != nil {
		return fmt.Errorf("initialize line editor: %w", err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			if err == io.EOF || err == readline.ErrInterrupt {
				return nil
			}
			return fmt.Errorf("read line: %w", err)
		}

		node, err := wispyparse.Parse(strings.NewReader(line))
		if err != nil {
			log.Debug("parse error", "input", line, "error", err)
			fmt.Println(err)
			continue
		}

		for _, v := range wispyread.ReadProgram(node) {
			result := wispy.Eval(env, v)
			fmt.Print(resultPrefix)
			wispy.Print(os.Stdout, result)
			fmt.Println()
		}
	}
}

func newRootCmd() *cobra.Command {
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	return &cobra.Command{
		Use:   "wispy [file ...]",
		Short: "Wispy is a small Lisp-family interpreter",
		RunE: func(_ *cobra.Command, args []string) error {
			env := newGlobalEnv()
			if len(args) == 0 {
				return runREPL(log, env)
			}
			for _, path := range args {
				if result := loadFile(log, env, path); result.Kind() == wispy.KindError {
					fmt.Println(result)
				}
			}
			return nil
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
