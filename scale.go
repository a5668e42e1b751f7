package clockless

// Scale8 scales v by s/256 the way the bit program does it: one multiply by
// s+1 and the high byte of the product. Scale 255 leaves v unchanged and
// scale 0 yields 0.
func Scale8(v, s uint8) uint8 {
	return uint8(uint16(v) * (uint16(s) + 1) >> 8)
}
