package brang

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Debugger steps a Brainfuck program interactively, you can execute
// some commands through stdio.
// commands:
//   s [n]:
//     execute n step(s), default 1.
//   p:
//     print the machine state.
//   br <pc>:
//     set a break point at an opcode index.
//   r:
//     reset.
//   q:
//     quit.
type Debugger struct {
	*Interpreter
	steps       uint64
	breakpoints []int
}

// NewDebugger creates a debugger for a program. The , opcode reads
// from stdin, like the commands do.
func NewDebugger(program string) *Debugger {
	return &Debugger{Interpreter: NewInterpreter(program, os.Stdin)}
}

// Debug runs the command loop until the program ends or the q command
// quits.
func (d *Debugger) Debug() error {
	in := bufio.NewReader(os.Stdin)
	for {
		fmt.Printf("Debugger mode, 'q' to quit\n>> ")
		line, err := in.ReadString('\n')
		if err != nil {
			return err
		}
		args := strings.Split(strings.TrimSuffix(line, "\n"), " ")
		switch args[0] {
		case "s", "step":
			running, err := d.stepCommand(args)
			d.dump()
			if err != nil {
				return err
			}
			if !running {
				fmt.Println("Program finished.")
				return nil
			}
		case "p", "print":
			d.dump()
		case "br", "breakpoint":
			if err := d.breakpointCommand(args); err != nil {
				fmt.Println(err)
			}
		case "r", "reset":
			d.Reset()
			d.steps = 0
		case "q", "quit":
			fmt.Println("Quitting.")
			return nil
		default:
			fmt.Printf("Unknown command %s\n", args[0])
		}
	}
}

func (d *Debugger) stepCommand(args []string) (bool, error) {
	count := 1
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return true, fmt.Errorf("Not a step count: %s", args[1])
		}
		count = n
	}
	for i := 0; i < count; i++ {
		running, err := d.Step()
		if err != nil || !running {
			return running, err
		}
		d.steps++
		if d.checkBreak() {
			break
		}
	}
	return true, nil
}

func (d *Debugger) breakpointCommand(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("br needs an opcode index")
	}
	pc, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("Not an opcode index: %s", args[1])
	}
	d.breakpoints = append(d.breakpoints, pc)
	return nil
}

func (d *Debugger) checkBreak() bool {
	for _, pc := range d.breakpoints {
		if pc == d.pc {
			fmt.Printf("Break at: %d\n", pc)
			return true
		}
	}
	return false
}

// dump renders the tape with the head marked, the program with the
// program counter marked, and the output so far.
func (d *Debugger) dump() {
	const width = 16
	fmt.Println("--------------------------------------------------")
	fmt.Printf("Executed steps: %d\n", d.steps)
	fmt.Print("Memory:")
	for i, m := range d.memory {
		if i%width == 0 {
			fmt.Println()
		}
		if i == d.ptr {
			fmt.Printf("[%02x]", m)
		} else {
			fmt.Printf(" %02x ", m)
		}
	}
	fmt.Print("\n\nInstructions:")
	for i, c := range d.program {
		if i%64 == 0 {
			if d.pc >= i && d.pc < i+64 {
				fmt.Printf("\n%*s\n", d.pc%64+1, "v")
			} else {
				fmt.Println()
			}
		}
		fmt.Printf("%c", c)
	}
	fmt.Printf("\n\nOutput:\n%s\n", d.Output())
}
