package nesbus

const (
	ramMinAddr uint16 = 0x0000
	ramMaxAddr uint16 = 0x1FFF
	ramMirror  uint16 = 0x07FF

	ppuMinAddr uint16 = 0x2000
	ppuMaxAddr uint16 = 0x3FFF
	ppuMirror  uint16 = 0x0007

	controllerAddr uint16 = 0x4016

	// The cartridge's external window starts at $4020, leaving $4000-$401F
	// for APU/IO registers this bus doesn't implement. An NROM image's
	// fixed bank still only ever answers $8000+, since Mapper000 itself
	// rejects anything below that.
	cartMinAddr uint16 = 0x4020
	cartMaxAddr uint16 = 0xFFFF
)

// Bus implements nes.Memory: 2KB of mirrored work RAM, an 8-byte mirrored
// PPU register window, the controller port at $4016, and
// a cartridge occupying the rest of the address space. A nes.CPU driven
// through a Bus exercises a full external memory map without the CPU
// core ever importing this package.
type Bus struct {
	ram        [0x0800]byte
	ppu        *Ppu
	cart       *Cartridge
	controller *Controller
}

func NewBus() *Bus {
	return &Bus{
		ppu:        NewPpu(),
		controller: NewController(),
	}
}

// InsertCartridge wires cart to both the CPU-facing address space and the
// PPU's CHR-memory access.
func (b *Bus) InsertCartridge(cart *Cartridge) {
	b.cart = cart
	b.ppu.ConnectCartridge(cart)
}

func (b *Bus) Controller() *Controller { return b.controller }

func (b *Bus) Read(addr uint16) byte {
	switch {
	case addr >= ramMinAddr && addr <= ramMaxAddr:
		return b.ram[addr&ramMirror]
	case addr >= ppuMinAddr && addr <= ppuMaxAddr:
		return b.ppu.CpuRead(addr & ppuMirror)
	case addr == controllerAddr:
		return b.controller.Read()
	case addr >= cartMinAddr && addr <= cartMaxAddr:
		if b.cart != nil {
			if data, ok := b.cart.CpuRead(addr); ok {
				return data
			}
		}
		return 0
	default:
		return 0
	}
}

func (b *Bus) Write(addr uint16, data byte) {
	switch {
	case addr >= ramMinAddr && addr <= ramMaxAddr:
		b.ram[addr&ramMirror] = data
	case addr >= ppuMinAddr && addr <= ppuMaxAddr:
		b.ppu.CpuWrite(addr&ppuMirror, data)
	case addr == controllerAddr:
		b.controller.Write(data)
	case addr >= cartMinAddr && addr <= cartMaxAddr:
		if b.cart != nil {
			b.cart.CpuWrite(addr, data)
		}
	}
}
