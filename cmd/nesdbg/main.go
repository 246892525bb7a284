// Command nesdbg is an interactive debugger over the CPU core: it loads a
// flat PRG image, then drops into a breakpoint/single-step/memory-dump REPL,
// driven by github.com/urfave/cli/v2 flags. There is no graphics window here:
// host graphics output is out of scope for the core this tool debugs.
package main

import (
	"bufio"
	"fmt"
	"os"

	cli "github.com/urfave/cli/v2"

	"github.com/halvorsen-dev/nescore/internal/bus"
	"github.com/halvorsen-dev/nescore/internal/cartridge"
	"github.com/halvorsen-dev/nescore/internal/ppu"
	"github.com/halvorsen-dev/nescore/mos6502"
)

func main() {
	app := &cli.App{
		Name:    "nesdbg",
		Usage:   "interactively step a 6502 CPU core loaded with a flat PRG image",
		Version: "v0.1.0",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "prg",
				Aliases:  []string{"p"},
				Usage:    "path to a flat 16KiB or 32KiB PRG image (no iNES header)",
				Required: true,
			},
			&cli.UintFlag{
				Name:  "reset-vector",
				Usage: "override the reset vector instead of reading $FFFC/D from the image",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	prg, err := os.ReadFile(c.String("prg"))
	if err != nil {
		return fmt.Errorf("nesdbg: reading prg image: %w", err)
	}

	cart, err := cartridge.New(prg)
	if err != nil {
		return fmt.Errorf("nesdbg: %w", err)
	}

	b := bus.New(ppu.New(nil), cart)

	cpu := mos6502.New(b)
	b.AttachCPU(cpu)

	// NROM PRG is read-only, so the vector can't be patched through the
	// bus; overriding means pointing PC there directly after reset.
	if rv := c.Uint("reset-vector"); rv != 0 {
		cpu.PC = uint16(rv)
	}

	repl(cpu, b)
	return nil
}

// repl is the interactive debugger loop: breakpoints, single-step, run, and
// a raw memory dump.
func repl(cpu *mos6502.CPU, b *bus.Bus) {
	in := bufio.NewReader(os.Stdin)
	breaks := make(map[uint16]struct{})

	for {
		fmt.Printf("%s\n\n", cpu)
		fmt.Println("(b)reak <addr> - add a breakpoint")
		fmt.Println("(c)lear        - clear breakpoints")
		fmt.Println("(r)un          - run until a breakpoint")
		fmt.Println("(s)tep         - execute one instruction")
		fmt.Println("(m)em <lo> <hi> - dump a memory range")
		fmt.Println("(q)uit")
		fmt.Print("choice: ")

		line, err := in.ReadString('\n')
		if err != nil {
			return
		}

		var cmd string
		var a, hi uint
		fmt.Sscanf(line, "%s %x %x", &cmd, &a, &hi)

		switch cmd {
		case "b", "break":
			breaks[uint16(a)] = struct{}{}
		case "c", "clear":
			breaks = make(map[uint16]struct{})
		case "q", "quit":
			return
		case "s", "step":
			cpu.Step()
		case "r", "run":
			for {
				cpu.Step()
				if _, hit := breaks[cpu.PC]; hit {
					fmt.Printf("breakpoint hit at $%04X\n", cpu.PC)
					break
				}
			}
		case "m", "mem":
			for addr := uint16(a); ; addr++ {
				fmt.Printf("$%04X: %02X\n", addr, b.Read8(addr))
				if addr == uint16(hi) {
					break
				}
			}
		}
	}
}
