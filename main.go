package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"

	"github.com/CodeyBoi/brang2/brang"
)

const usage = `usage: brang2 <command> <input> [arguments]

commands:
  compile <input> [-o <output>]  compile a source file to Brainfuck (default out.b)
  run <input>                    compile and execute with the host toolchain
  interpret <input>              compile and step through interactively
`

func compileFile(path string) (string, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("Could not read source code file: %v", err)
	}
	return brang.Compile(string(src))
}

func main() {
	flag.Parse()
	args := flag.Args()
	if len(args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	command, input := args[0], args[1]
	switch command {
	case "compile":
		fs := flag.NewFlagSet("compile", flag.ExitOnError)
		output := fs.String("o", "out.b", "output file path")
		fs.Parse(args[2:])
		code, err := compileFile(input)
		if err != nil {
			glog.Fatalln(err)
		}
		if err := os.WriteFile(*output, []byte(code), 0644); err != nil {
			glog.Fatalf("Could not write to output file: %v", err)
		}
	case "run":
		code, err := compileFile(input)
		if err != nil {
			glog.Fatalln(err)
		}
		if err := brang.RunProgram(code); err != nil {
			glog.Fatalln(err)
		}
	case "interpret":
		code, err := compileFile(input)
		if err != nil {
			glog.Fatalln(err)
		}
		if err := brang.NewDebugger(code).Debug(); err != nil {
			glog.Fatalln(err)
		}
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
}
