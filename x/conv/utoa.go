package conv

// Utoa writes the base-10 representation of n into the tail of buf and
// returns the used slice. buf should be length >= 20 for uint64.
// No allocations; no fmt/strconv dependency.
func Utoa(buf []byte, n uint64) []byte {
	if len(buf) == 0 {
		return buf[:0]
	}
	i := len(buf)
	if n == 0 {
		i--
		buf[i] = '0'
		return buf[i:]
	}
	for n > 0 && i > 0 {
		i--
		buf[i] = byte('0' + (n % 10))
		n /= 10
	}
	return buf[i:]
}

// AppendUint appends the decimal form of n to dst.
func AppendUint(dst []byte, n uint64) []byte {
	var tmp [20]byte
	return append(dst, Utoa(tmp[:], n)...)
}
