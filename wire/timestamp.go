package wire

import (
	"github.com/coreclef/msgpack/errs"
	"github.com/coreclef/msgpack/internal/pool"
	"github.com/coreclef/msgpack/marker"
)

const nanosPerSecond = 1_000_000_000

// encodeTimestamp picks the narrowest of the three timestamp physical
// formats the specification describes:
//
//   - 32-bit: seconds fit in an unsigned 32-bit value and nanoseconds is 0
//   - 64-bit: seconds fits in 34 bits and nanoseconds is nonzero or seconds
//     doesn't fit in 32 bits
//   - 96-bit: seconds doesn't fit in the 64-bit format's 34-bit field
func encodeTimestamp(buf *pool.ByteBuffer, sec int64, nsec uint32) error {
	if nsec >= nanosPerSecond {
		return errs.Wrapf(errs.ErrInputValueTooLarge, -1, "timestamp nanoseconds %d out of range", nsec)
	}

	switch {
	case sec >= 0 && sec <= 0xFFFF_FFFF && nsec == 0:
		buf.MustWrite([]byte{marker.FixExt4, byte(marker.TimestampExtType),
			byte(sec >> 24), byte(sec >> 16), byte(sec >> 8), byte(sec)})
		return nil
	case sec >= 0 && sec < (1<<34):
		data := uint64(nsec)<<34 | uint64(sec)
		buf.MustWrite([]byte{marker.FixExt8, byte(marker.TimestampExtType),
			byte(data >> 56), byte(data >> 48), byte(data >> 40), byte(data >> 32),
			byte(data >> 24), byte(data >> 16), byte(data >> 8), byte(data)})
		return nil
	default:
		usec := uint64(sec)
		buf.Grow(15)
		buf.MustWrite([]byte{marker.Ext8, 12, byte(marker.TimestampExtType),
			byte(nsec >> 24), byte(nsec >> 16), byte(nsec >> 8), byte(nsec),
			byte(usec >> 56), byte(usec >> 48), byte(usec >> 40), byte(usec >> 32),
			byte(usec >> 24), byte(usec >> 16), byte(usec >> 8), byte(usec)})
		return nil
	}
}

// decodeTimestamp32 parses the fixext4 timestamp payload (seconds only).
func decodeTimestamp32(data []byte) (sec int64, nsec uint32) {
	sec32 := uint32(data[0])<<24 | uint32(data[1])<<16 | uint32(data[2])<<8 | uint32(data[3])
	return int64(sec32), 0
}

// decodeTimestamp64 parses the fixext8 timestamp payload (34-bit seconds,
// 30-bit nanoseconds packed into a 64-bit big-endian integer).
func decodeTimestamp64(data []byte) (sec int64, nsec uint32) {
	v := uint64(data[0])<<56 | uint64(data[1])<<48 | uint64(data[2])<<40 | uint64(data[3])<<32 |
		uint64(data[4])<<24 | uint64(data[5])<<16 | uint64(data[6])<<8 | uint64(data[7])
	sec = int64(v & 0x3_FFFF_FFFF)
	nsec = uint32(v >> 34)
	return sec, nsec
}

// decodeTimestamp96 parses the ext8-length-12 timestamp payload (32-bit
// nanoseconds followed by a signed 64-bit seconds field).
func decodeTimestamp96(data []byte) (sec int64, nsec uint32) {
	nsec = uint32(data[0])<<24 | uint32(data[1])<<16 | uint32(data[2])<<8 | uint32(data[3])
	usec := uint64(data[4])<<56 | uint64(data[5])<<48 | uint64(data[6])<<40 | uint64(data[7])<<32 |
		uint64(data[8])<<24 | uint64(data[9])<<16 | uint64(data[10])<<8 | uint64(data[11])
	return int64(usec), nsec
}
