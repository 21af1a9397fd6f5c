package rawxml

// Name and value scanning operate on ASCII byte classes only; only the
// text-chunk cut site (see textCutLength in scan.go) needs to reason about
// multi-byte UTF-8, since that is the one place a cut can otherwise land
// inside a codepoint.

var whitespaceLUT = [256]bool{
	'\t': true,
	'\n': true,
	'\r': true,
	' ':  true,
}

func isWhitespace(b byte) bool {
	return whitespaceLUT[b]
}

func isWhitespaceBytes(data []byte) bool {
	for _, b := range data {
		if !isWhitespace(b) {
			return false
		}
	}
	return true
}

var nameStartByteLUT = func() [256]bool {
	var lut [256]bool
	for b := byte('a'); b <= 'z'; b++ {
		lut[b] = true
	}
	for b := byte('A'); b <= 'Z'; b++ {
		lut[b] = true
	}
	lut['_'] = true
	lut[':'] = true
	return lut
}()

var nameByteLUT = func() [256]bool {
	lut := nameStartByteLUT
	for b := byte('0'); b <= '9'; b++ {
		lut[b] = true
	}
	lut['.'] = true
	lut['-'] = true
	lut[0xB7] = true
	return lut
}()

func isNameStartByte(b byte) bool {
	return nameStartByteLUT[b]
}

func isNameByte(b byte) bool {
	return nameByteLUT[b]
}

// isContinuationByte reports whether b is a UTF-8 trailing byte (top two
// bits 10).
func isContinuationByte(b byte) bool {
	return b&0xC0 == 0x80
}
