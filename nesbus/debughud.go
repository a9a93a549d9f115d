package nesbus

import (
	"fmt"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/pixelgl"
	"github.com/faiface/pixel/text"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/lodestone-6502/nes6502/nes"
)

const (
	debugW float64 = 512
	debugH float64 = 720
)

// DebugHUD is a faiface/pixel window that prints the CPU's register file
// and a rolling disassembly while a CPU steps through a loaded cartridge.
// It does not render PPU pixel output; this host only needs enough of a
// window to show state to a person running and pausing a ROM.
type DebugHUD struct {
	window   *pixelgl.Window
	atlas    *text.Atlas
	regText  *text.Text
	instText *text.Text
}

func NewDebugHUD() (*DebugHUD, error) {
	cfg := pixelgl.WindowConfig{
		Title:  "nesdbg",
		Bounds: pixel.R(0, 0, debugW, debugH),
		VSync:  true,
	}
	win, err := pixelgl.NewWindow(cfg)
	if err != nil {
		return nil, fmt.Errorf("nesbus: creating debug window: %w", err)
	}

	atlas := text.NewAtlas(basicfont.Face7x13, text.ASCII)
	return &DebugHUD{
		window:   win,
		atlas:    atlas,
		regText:  text.New(pixel.V(8, debugH-40), atlas),
		instText: text.New(pixel.V(8, debugH-220), atlas),
	}, nil
}

func (h *DebugHUD) Closed() bool { return h.window.Closed() }

// Draw repaints the register panel and disassembly window for the given
// CPU and instruction listing, then presents the frame.
func (h *DebugHUD) Draw(cpu *nes.CPU, disassembly []string) {
	h.window.Clear(colornames.Black)

	h.regText.Clear()
	fmt.Fprintf(h.regText, "PC: %#04X\n", cpu.PC)
	fmt.Fprintf(h.regText, "A:  %#02X\n", cpu.A)
	fmt.Fprintf(h.regText, "X:  %#02X\n", cpu.X)
	fmt.Fprintf(h.regText, "Y:  %#02X\n", cpu.Y)
	fmt.Fprintf(h.regText, "SP: %#02X\n", cpu.SP)
	fmt.Fprintf(h.regText, "P:  %08b\n", byte(cpu.P))
	fmt.Fprintf(h.regText, "Cycles: %d\n", cpu.Cycles)
	h.regText.Draw(h.window, pixel.IM)

	h.instText.Clear()
	for _, line := range disassembly {
		fmt.Fprintln(h.instText, line)
	}
	h.instText.Draw(h.window, pixel.IM)

	h.window.Update()
}

func (h *DebugHUD) Poll(controller *Controller) {
	controller.Poll(h.window)
}

func (h *DebugHUD) SpacePressed() bool {
	return h.window.JustPressed(pixelgl.KeySpace)
}

func (h *DebugHUD) RPressed() bool {
	return h.window.JustPressed(pixelgl.KeyR)
}
