package raster

// Bits is a fixed-size array of bits packed most-significant-bit first into
// bytes, the order ESC/POS raster data uses.
type Bits struct {
	data []byte
	size int
}

// NewBits creates a Bits holding size zero bits.
func NewBits(size int) *Bits {
	if size <= 0 {
		return &Bits{}
	}
	return &Bits{
		data: make([]byte, (size+7)/8),
		size: size,
	}
}

// Size returns the number of bits.
func (b *Bits) Size() int {
	return b.size
}

// SizeInBytes returns the number of bytes needed to hold the bits.
func (b *Bits) SizeInBytes() int {
	return len(b.data)
}

// Get returns true if bit i is set.
func (b *Bits) Get(i int) bool {
	return b.data[i/8]&(1<<uint(7-i%8)) != 0
}

// Set sets bit i.
func (b *Bits) Set(i int) {
	b.data[i/8] |= 1 << uint(7-i%8)
}

// Clear unsets bit i.
func (b *Bits) Clear(i int) {
	b.data[i/8] &^= 1 << uint(7-i%8)
}

// Bytes returns the backing bytes. The slice is shared with b.
func (b *Bits) Bytes() []byte {
	return b.data
}

// String renders the bits as 'X' and '.' in groups of eight.
func (b *Bits) String() string {
	out := make([]byte, 0, b.size+b.size/8)
	for i := 0; i < b.size; i++ {
		if i > 0 && i%8 == 0 {
			out = append(out, ' ')
		}
		if b.Get(i) {
			out = append(out, 'X')
		} else {
			out = append(out, '.')
		}
	}
	return string(out)
}
