package chip

import "errors"

// Command codes, as issued by the Adafruit_GC9A01A driver family.
const (
	cmdSWRESET = 0x01 // software reset
	cmdSLPOUT  = 0x11 // sleep out
	cmdINVOFF  = 0x20 // inversion off
	cmdINVON   = 0x21 // inversion on
	cmdDISPOFF = 0x28 // display off
	cmdDISPON  = 0x29 // display on
	cmdCASET   = 0x2A // column address set
	cmdRASET   = 0x2B // row address set
	cmdRAMWR   = 0x2C // memory write
	cmdMADCTL  = 0x36 // memory access control
	cmdCOLMOD  = 0x3A // pixel format set
)

// maxCommandArgs bounds the argument accumulator. CASET/RASET take 4 bytes,
// everything else fewer.
const maxCommandArgs = 16

var (
	errNilStore = errors.New("chip: nil pixel store")
	errBadSize  = errors.New("chip: width and height must be positive")
)

// argCount returns the fixed argument count for a command byte. Unknown
// commands take no arguments and dispatch as no-ops.
func argCount(command byte) int {
	switch command {
	case cmdCASET, cmdRASET:
		return 4
	case cmdMADCTL, cmdCOLMOD:
		return 1
	default:
		return 0
	}
}

// dispatch runs a completed command. args holds exactly argCount(command)
// bytes; the parser never dispatches short. Commands cannot fail: the real
// controller acknowledges everything, so malformed input degrades to a
// no-op rather than an error.
func (c *Chip) dispatch(command byte, args []byte) {
	switch command {
	case cmdSWRESET:
		c.softReset()
	case cmdSLPOUT:
		// Accepted; the model has no sleep state.
	case cmdDISPON:
		c.displayOn = true
	case cmdDISPOFF:
		c.displayOn = false
	case cmdCASET:
		c.win.setColumns(be16(args[0], args[1]), be16(args[2], args[3]))
	case cmdRASET:
		c.win.setRows(be16(args[0], args[1]), be16(args[2], args[3]))
	case cmdRAMWR:
		c.writeActive = true
		c.pendingValid = false
	case cmdMADCTL, cmdCOLMOD:
		// Accepted for driver compatibility; the argument has no
		// observable effect on the model.
	case cmdINVOFF:
		c.inverted = false
	case cmdINVON:
		c.inverted = true
	default:
		// Unknown commands are zero-argument no-ops.
	}
}

func be16(hi, lo byte) int {
	return int(hi)<<8 | int(lo)
}
