// Command nesdbg loads an iNES ROM image, disassembles it, and steps a
// nes.CPU through it on a nesbus.Bus while a debug HUD shows register and
// disassembly state.
package main

import (
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/faiface/pixel/pixelgl"
	"github.com/spf13/cobra"

	"github.com/lodestone-6502/nes6502/nes"
	"github.com/lodestone-6502/nes6502/nesbus"
)

var (
	flagStart     uint16
	flagLog       bool
	flagStepLimit int
	flagHeadless  bool
)

func main() {
	root := &cobra.Command{
		Use:   "nesdbg <rom.nes>",
		Short: "Step a 6502 CPU through an NES ROM image with a debug HUD",
		Args:  cobra.ExactArgs(1),
		RunE:  run,
	}

	root.Flags().Uint16Var(&flagStart, "start", 0, "override the reset vector's entry point (0 = use the ROM's vector)")
	root.Flags().BoolVar(&flagLog, "log", false, "write a per-instruction trace log to ./logs")
	root.Flags().IntVar(&flagStepLimit, "steps", 0, "stop after this many instructions (0 = unbounded)")
	root.Flags().BoolVar(&flagHeadless, "headless", false, "run without opening a debug window")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	romPath := args[0]

	cart, err := nesbus.LoadCartridge(romPath)
	if err != nil {
		return fmt.Errorf("loading cartridge: %w", err)
	}

	bus := nesbus.NewBus()
	bus.InsertCartridge(cart)

	cpu := nes.NewCPU(bus)
	if flagLog {
		f, err := os.Create(defaultLogPath())
		if err != nil {
			return fmt.Errorf("creating log file: %w", err)
		}
		defer f.Close()
		cpu.Logger = log.New(f, "", 0)
	}

	cpu.Reset()
	if flagStart != 0 {
		cpu.PC = flagStart
	}

	disassembly := nes.Disassemble(bus, 0x8000, 0xFFFF)

	if flagHeadless {
		return runHeadless(cpu)
	}

	pixelgl.Run(func() { runWithHUD(cpu, bus, disassembly) })
	return nil
}

func runHeadless(cpu *nes.CPU) error {
	steps := 0
	for flagStepLimit == 0 || steps < flagStepLimit {
		if err := cpu.Step(); err != nil {
			if err == nes.ErrBreak {
				return nil
			}
			return fmt.Errorf("step %d: %w", steps, err)
		}
		steps++
	}
	return nil
}

func runWithHUD(cpu *nes.CPU, bus *nesbus.Bus, disassembly map[uint16]string) {
	hud, err := nesbus.NewDebugHUD()
	if err != nil {
		log.Fatalf("nesdbg: %v", err)
	}

	running := false
	steps := 0
	for !hud.Closed() {
		hud.Poll(bus.Controller())

		if hud.SpacePressed() {
			running = !running
		}
		if hud.RPressed() {
			cpu.Reset()
			steps = 0
		}

		if running && (flagStepLimit == 0 || steps < flagStepLimit) {
			if err := cpu.Step(); err != nil {
				running = false
			} else {
				steps++
			}
		}

		hud.Draw(cpu, nearbyDisassembly(disassembly, cpu.PC, 12))
	}
}

// nearbyDisassembly returns up to n disassembly lines starting at or after
// pc, in address order, for display in the HUD's instruction panel.
func nearbyDisassembly(disassembly map[uint16]string, pc uint16, n int) []string {
	addrs := make([]uint16, 0, len(disassembly))
	for addr := range disassembly {
		if addr >= pc {
			addrs = append(addrs, addr)
		}
	}
	sort.Slice(addrs, func(i, j int) bool { return addrs[i] < addrs[j] })

	lines := make([]string, 0, n)
	for i, addr := range addrs {
		if i >= n {
			break
		}
		lines = append(lines, disassembly[addr])
	}
	return lines
}

func defaultLogPath() string {
	if err := os.MkdirAll("./logs", 0755); err != nil {
		return "nesdbg.log"
	}
	return "./logs/nesdbg.log"
}
