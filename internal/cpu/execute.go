package cpu

// execute carries out a decoded instruction. Operands are read from
// PC, which already points past the opcode.
func (c *CPU) execute(instruction Instruction, at uint16) error {
	switch i := instruction.(type) {
	case Nop:
	case Stop:
		c.readOperand()
		c.mode = ModeStop
	case Halt:
		c.mode = ModeHalt
	case DI:
		c.IME = false
		c.eiPending = false
	case EI:
		c.eiPending = true
	case DAA:
		c.decimalAdjust()
	case CPL:
		c.complement()
	case SCF:
		c.setCarryFlag()
	case CCF:
		c.complementCarryFlag()

	// loads
	case LoadImm8:
		c.write(i.Dst, c.readOperand())
	case LoadImm16:
		c.Set16(i.Dst.Reg16(), c.readOperand16())
	case Load:
		c.write(i.Dst, c.read(i.Src))
	case StoreIndirect:
		c.bus.Write(c.indirect(i.Mode), c.A)
	case LoadIndirect:
		c.A = c.bus.Read(c.indirect(i.Mode))
	case StoreSP:
		c.storeSP()
	case StoreHigh:
		c.bus.Write(high|uint16(c.readOperand()), c.A)
	case LoadHigh:
		c.A = c.bus.Read(high | uint16(c.readOperand()))
	case StoreHighC:
		c.bus.Write(high|uint16(c.C), c.A)
	case LoadHighC:
		c.A = c.bus.Read(high | uint16(c.C))
	case StoreAbs:
		c.bus.Write(c.readOperand16(), c.A)
	case LoadAbs:
		c.A = c.bus.Read(c.readOperand16())
	case LoadHLSP:
		c.loadHLSP()
	case LoadSPHL:
		c.SP = c.HL()
	case Push:
		c.push(c.Get16(i.Src.Reg16()))
	case Pop:
		c.Set16(i.Dst.Reg16(), c.pop())

	// arithmetic
	case ALU:
		c.alu(i.Op, c.read(i.Src))
	case ALUImm:
		c.alu(i.Op, c.readOperand())
	case AddHL:
		c.addHL(c.Get16(i.Src.Reg16()))
	case AddSP:
		c.SP = c.addSPSigned(c.readOperand())
	case Inc8:
		c.write(i.Target, c.increment(c.read(i.Target)))
	case Dec8:
		c.write(i.Target, c.decrement(c.read(i.Target)))
	case Inc16:
		c.Set16(i.Target.Reg16(), c.Get16(i.Target.Reg16())+1)
	case Dec16:
		c.Set16(i.Target.Reg16(), c.Get16(i.Target.Reg16())-1)

	// rotates, shifts and bits
	case RotateA:
		c.rotateA(i.Op)
	case Shift:
		c.shiftOperand(i.Op, i.Target)
	case Bit:
		c.testBit(i.Index, i.Target)
	case Res:
		c.resetBit(i.Index, i.Target)
	case Set:
		c.setBit(i.Index, i.Target)

	// control flow
	case JR:
		c.jumpRelative(i.Cond)
	case JP:
		c.jumpAbsolute(i.Cond)
	case JPHL:
		c.PC = c.HL()
	case Call:
		c.call(i.Cond)
	case Ret:
		c.ret(i.Cond)
	case RetI:
		c.ret(CondAlways)
		c.IME = true
		c.eiPending = false
	case RST:
		c.restart(i.Vector)
	default:
		return &UnimplementedError{Instruction: instruction, Address: at}
	}
	return nil
}
