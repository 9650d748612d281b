package ecsbind

// slotMask records one bit per query slot. It is used to remember which
// columns of a batch are shared, which is why MaxArity may not exceed 64.
type slotMask uint64

// set enables the bit for the given slot.
func (m *slotMask) set(slot int) {
	*m |= slotMask(1) << uint(slot)
}

// has checks if the bit for the given slot is set.
func (m slotMask) has(slot int) bool {
	return m&(slotMask(1)<<uint(slot)) != 0
}

// any checks if at least one slot bit is set.
func (m slotMask) any() bool {
	return m != 0
}
