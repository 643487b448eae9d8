package cpu

import "github.com/thelolagemann/sm83/pkg/utils"

// high is the base of the LDH addressing window.
const high uint16 = 0xFF00

// indirect returns the address selected by mode, applying the HL
// post-increment or post-decrement.
func (c *CPU) indirect(mode Indirect) uint16 {
	switch mode {
	case IndirectBC:
		return c.Get16(BC)
	case IndirectDE:
		return c.Get16(DE)
	case IndirectHLInc:
		hl := c.HL()
		c.Set16(HL, hl+1)
		return hl
	}
	hl := c.HL()
	c.Set16(HL, hl-1)
	return hl
}

// storeSP writes SP to the 16-bit immediate address, low byte first.
//
//	LD (nn), SP
func (c *CPU) storeSP() {
	address := c.readOperand16()
	high, low := utils.Uint16ToBytes(c.SP)
	c.bus.Write(address, low)
	c.bus.Write(address+1, high)
}

// loadHLSP loads HL with SP plus a signed immediate, leaving SP as is.
//
//	LD HL, SP+e
func (c *CPU) loadHLSP() {
	c.Set16(HL, c.addSPSigned(c.readOperand()))
}
