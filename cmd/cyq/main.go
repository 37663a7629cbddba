package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/seuros/cypher-ast/src/cypher"
	"github.com/seuros/cypher-ast/src/parser"
	"github.com/seuros/cypher-ast/src/renderer"
)

const version = "0.1.0"

// exitError carries the process exit code alongside the message.
type exitError struct {
	code int
	msg  string
}

func (e *exitError) Error() string { return e.msg }

func usageErrorf(code int, format string, args ...any) error {
	return &exitError{code: code, msg: fmt.Sprintf(format, args...)}
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "lint":
		err = lintCommand(args)
	case "fmt":
		err = fmtCommand(args)
	case "inspect":
		err = inspectCommand(args)
	case "version", "--version", "-v":
		err = versionCommand()
	case "help", "--help", "-h":
		printUsage()
		return
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			if exitErr.Error() != "" {
				fmt.Fprintln(os.Stderr, exitErr.Error())
			}
			os.Exit(exitErr.code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("cyq - Cypher statement tool")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  cyq lint <file|->    - Validate Cypher syntax")
	fmt.Println("  cyq fmt <file|->     - Normalize a Cypher statement")
	fmt.Println("  cyq inspect <file|-> - Print the statement tree")
	fmt.Println("  cyq version          - Show version information")
}

func versionCommand() error {
	fmt.Printf("cyq version %s\n", version)
	return nil
}

func readInput(arg string) (string, error) {
	if arg == "-" {
		content, err := io.ReadAll(os.Stdin)
		return string(content), err
	}
	content, err := os.ReadFile(arg)
	return string(content), err
}

func parseInput(arg string) (*cypher.Statement, error) {
	content, err := readInput(arg)
	if err != nil {
		return nil, err
	}

	p, err := parser.New()
	if err != nil {
		return nil, err
	}

	return p.Parse(content)
}

func lintCommand(args []string) error {
	if len(args) != 1 {
		return usageErrorf(2, "Usage: cyq lint <file|->")
	}

	level := renderer.LogLevelOff
	if v := os.Getenv("CYQ_LOG_LEVEL"); v != "" {
		level = renderer.ParseLogLevel(v)
	}
	log := renderer.NewConsoleLogger(level)

	if _, err := parseInput(args[0]); err != nil {
		return usageErrorf(1, "Syntax error in %s: %v", args[0], err)
	}

	log.Info("lint passed", "input", args[0])
	fmt.Printf("%s: OK\n", args[0])
	return nil
}

func fmtCommand(args []string) error {
	if len(args) != 1 {
		return usageErrorf(2, "Usage: cyq fmt <file|->")
	}

	statement, err := parseInput(args[0])
	if err != nil {
		return err
	}

	fmt.Println(renderer.Render(statement))
	return nil
}

func inspectCommand(args []string) error {
	if len(args) != 1 {
		return usageErrorf(2, "Usage: cyq inspect <file|->")
	}

	statement, err := parseInput(args[0])
	if err != nil {
		return err
	}

	fmt.Print(cypher.Describe(statement))
	return nil
}
