package nesbus

// PpuRegFlag names a single bit within one of the PPU's CPU-visible
// registers, the way nes.Flags names a bit within the CPU's status
// register.
type PpuRegFlag byte

// PPUCTRL flags.
const (
	ctrlNameTblLo PpuRegFlag = 1 << iota
	ctrlNameTblHi
	ctrlVramInc
	ctrlSpritePatternTbl
	ctrlBgPatternTbl
	ctrlSpriteSize
	ctrlExtMode
	ctrlNmi
)

// PPUSTATUS flags.
const (
	statusSpriteOverflow PpuRegFlag = 1 << (iota + 5)
	statusSprite0Hit
	statusVBlank
)

// PpuReg is one of the PPU's 8-bit CPU-visible registers. Its flag
// methods take pointer receivers so mutation actually sticks — a value
// receiver here would silently discard every set/clear/toggle.
type PpuReg byte

func (r *PpuReg) setFlag(flag PpuRegFlag)    { *r |= PpuReg(flag) }
func (r *PpuReg) clearFlag(flag PpuRegFlag)  { *r &^= PpuReg(flag) }
func (r *PpuReg) toggleFlag(flag PpuRegFlag) { *r ^= PpuReg(flag) }
func (r PpuReg) isFlagSet(flag PpuRegFlag) bool {
	return r&PpuReg(flag) != 0
}

// oamSprite is one 4-byte entry in Object Attribute Memory.
type oamSprite struct {
	y         byte
	id        byte
	attribute byte
	x         byte
}

type objectAttributeMemory []oamSprite

func (oam objectAttributeMemory) read(addr byte) byte {
	sprite := &oam[int(addr)/4]
	switch int(addr) % 4 {
	case 0:
		return sprite.y
	case 1:
		return sprite.id
	case 2:
		return sprite.attribute
	default:
		return sprite.x
	}
}

// write mutates the slice element in place. The teacher's equivalent
// copied the sprite by value first, so writes were silently lost; taking
// the address of the slice element fixes that.
func (oam objectAttributeMemory) write(addr byte, data byte) {
	sprite := &oam[int(addr)/4]
	switch int(addr) % 4 {
	case 0:
		sprite.y = data
	case 1:
		sprite.id = data
	case 2:
		sprite.attribute = data
	default:
		sprite.x = data
	}
}

func (oam objectAttributeMemory) clear() {
	for i := range oam {
		oam[i] = oamSprite{y: 0xFF, id: 0xFF, attribute: 0xFF, x: 0xFF}
	}
}

// Ppu answers the eight CPU-visible PPU registers and owns OAM, without
// implementing pixel rendering: the Bus's Memory boundary still needs
// something to answer reads/writes in $2000-$3FFF.
type Ppu struct {
	ctrl   PpuReg
	mask   PpuReg
	status PpuReg

	oamAddr byte
	oam     objectAttributeMemory

	cart *Cartridge

	// addrLatch/dataBuffer implement PPUADDR's two-write latch and
	// PPUDATA's one-read-behind buffering, the two CPU-visible quirks of
	// the real register file that a stub still has to honor.
	addrLatch  bool
	vramAddr   uint16
	dataBuffer byte

	vram [2048]byte // nametable RAM; addr&0x07FF gives vertical mirroring ($2000=$2800)
}

func NewPpu() *Ppu {
	return &Ppu{oam: make(objectAttributeMemory, 64)}
}

func (p *Ppu) ConnectCartridge(cart *Cartridge) {
	p.cart = cart
}

// CpuRead answers a CPU access to one of the 8 PPU registers, already
// mirrored down to 0-7 by the caller (nesbus.Bus).
func (p *Ppu) CpuRead(reg uint16) byte {
	switch reg {
	case 2: // PPUSTATUS
		data := byte(p.status&0xE0) | (p.dataBuffer & 0x1F)
		p.status.clearFlag(statusVBlank)
		p.addrLatch = false
		return data
	case 4: // OAMDATA
		return p.oam.read(p.oamAddr)
	case 7: // PPUDATA
		data := p.dataBuffer
		p.dataBuffer = p.ppuReadInternal(p.vramAddr)
		if p.vramAddr >= 0x3F00 {
			data = p.dataBuffer
		}
		p.vramAddr += p.vramIncrement()
		return data
	default:
		return 0
	}
}

// CpuWrite answers a CPU write to one of the 8 PPU registers.
func (p *Ppu) CpuWrite(reg uint16, data byte) {
	switch reg {
	case 0: // PPUCTRL
		p.ctrl = PpuReg(data)
	case 1: // PPUMASK
		p.mask = PpuReg(data)
	case 3: // OAMADDR
		p.oamAddr = data
	case 4: // OAMDATA
		p.oam.write(p.oamAddr, data)
		p.oamAddr++
	case 6: // PPUADDR, two-write latch: high byte first, then low byte
		if !p.addrLatch {
			p.vramAddr = uint16(data)<<8 | (p.vramAddr & 0x00FF)
		} else {
			p.vramAddr = (p.vramAddr & 0xFF00) | uint16(data)
		}
		p.addrLatch = !p.addrLatch
	case 7: // PPUDATA
		p.ppuWriteInternal(p.vramAddr, data)
		p.vramAddr += p.vramIncrement()
	}
}

func (p *Ppu) vramIncrement() uint16 {
	if p.ctrl.isFlagSet(ctrlVramInc) {
		return 32
	}
	return 1
}

func (p *Ppu) ppuReadInternal(addr uint16) byte {
	addr &= 0x3FFF
	if addr < 0x2000 {
		if p.cart != nil {
			if data, ok := p.cart.PpuRead(addr); ok {
				return data
			}
		}
		return 0
	}
	return p.vram[addr&0x07FF]
}

func (p *Ppu) ppuWriteInternal(addr uint16, data byte) {
	addr &= 0x3FFF
	if addr < 0x2000 {
		if p.cart != nil {
			p.cart.PpuWrite(addr, data)
		}
		return
	}
	p.vram[addr&0x07FF] = data
}
