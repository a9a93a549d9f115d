package nesbus

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
)

// Cartridge holds a loaded iNES image's PRG/CHR memory and the mapper that
// translates addresses into it. Reachable from both the CPU-facing Bus and
// (for CHR reads, once a renderer exists) the PPU.
type Cartridge struct {
	prgMem []byte
	chrMem []byte
	mapper Mapper
}

// header is the 16-byte iNES file header.
// Reference: https://wiki.nesdev.com/w/index.php/INES
type header struct {
	Magic        [4]byte
	PrgRomChunks byte
	ChrRomChunks byte
	Flags6       byte
	Flags7       byte
	PrgRamSize   byte
	TvSystem1    byte
	TvSystem2    byte
	_            [5]byte
}

var inesMagic = [4]byte{'N', 'E', 'S', 0x1A}

// LoadCartridge parses an iNES ROM image from path and builds the mapper
// named by its header. Only mapper 0 (NROM) is supported.
func LoadCartridge(path string) (*Cartridge, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("nesbus: reading %s: %w", path, err)
	}
	return parseCartridge(data)
}

func parseCartridge(data []byte) (*Cartridge, error) {
	buf := bytes.NewReader(data)

	var h header
	if err := binary.Read(buf, binary.BigEndian, &h); err != nil {
		return nil, fmt.Errorf("nesbus: reading iNES header: %w", err)
	}
	if h.Magic != inesMagic {
		return nil, fmt.Errorf("nesbus: not an iNES image (bad magic %x)", h.Magic)
	}

	if h.Flags6&(1<<3) != 0 {
		// 512-byte trainer, not used by any mapper-0 consumer here.
		if _, err := buf.Seek(512, 1); err != nil {
			return nil, fmt.Errorf("nesbus: skipping trainer: %w", err)
		}
	}

	mapperID := (h.Flags7 & 0xF0) | (h.Flags6 >> 4)
	var mapper Mapper
	switch mapperID {
	case 0:
		mapper = NewMapper000(h.PrgRomChunks, h.ChrRomChunks)
	default:
		return nil, fmt.Errorf("nesbus: unsupported mapper %d", mapperID)
	}

	cart := &Cartridge{mapper: mapper}

	cart.prgMem = make([]byte, 16*1024*int(h.PrgRomChunks))
	if _, err := buf.Read(cart.prgMem); err != nil {
		return nil, fmt.Errorf("nesbus: reading PRG-ROM: %w", err)
	}

	cart.chrMem = make([]byte, 8*1024*int(h.ChrRomChunks))
	if len(cart.chrMem) > 0 {
		if _, err := buf.Read(cart.chrMem); err != nil {
			return nil, fmt.Errorf("nesbus: reading CHR-ROM: %w", err)
		}
	}

	return cart, nil
}

func (c *Cartridge) CpuRead(addr uint16) (byte, bool) {
	mapped, ok := c.mapper.CpuMapRead(addr)
	if !ok {
		return 0, false
	}
	return c.prgMem[mapped], true
}

func (c *Cartridge) CpuWrite(addr uint16, data byte) bool {
	mapped, ok := c.mapper.CpuMapWrite(addr)
	if !ok {
		return false
	}
	c.prgMem[mapped] = data
	return true
}

func (c *Cartridge) PpuRead(addr uint16) (byte, bool) {
	mapped, ok := c.mapper.PpuMapRead(addr)
	if !ok {
		return 0, false
	}
	return c.chrMem[mapped], true
}

func (c *Cartridge) PpuWrite(addr uint16, data byte) bool {
	mapped, ok := c.mapper.PpuMapWrite(addr)
	if !ok {
		return false
	}
	c.chrMem[mapped] = data
	return true
}
