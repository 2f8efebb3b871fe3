package video

const (
	FramebufferWidth  = 64
	FramebufferHeight = 32

	// MaxSpriteLength is the architectural cap on sprite height in rows.
	MaxSpriteLength = 15
)

// FrameBuffer is the 64x32 monochrome pixel grid. A dirty flag tracks
// whether any pixel changed since the last presentation so render
// surfaces can skip redundant output work.
type FrameBuffer struct {
	width  uint
	height uint
	pixels []bool
	dirty  bool
}

// NewFrameBuffer creates an all-unlit frame buffer.
func NewFrameBuffer() *FrameBuffer {
	return &FrameBuffer{
		width:  FramebufferWidth,
		height: FramebufferHeight,
		pixels: make([]bool, FramebufferWidth*FramebufferHeight),
		dirty:  true,
	}
}

func (fb *FrameBuffer) GetPixel(x, y uint) bool {
	return fb.pixels[y*fb.width+x]
}

func (fb *FrameBuffer) SetPixel(x, y uint, lit bool) {
	fb.pixels[y*fb.width+x] = lit
	fb.dirty = true
}

// ToSlice returns the pixel grid in row-major order.
func (fb *FrameBuffer) ToSlice() []bool {
	return fb.pixels
}

// Draw XORs a sprite onto the grid at (x, y) and reports whether any
// lit pixel was erased as a result. Rows are clipped at the bottom edge
// and columns at the right edge; there is no wraparound. Drawing fully
// off screen or with a sprite taller than MaxSpriteLength is a no-op.
func (fb *FrameBuffer) Draw(x, y uint8, sprite []byte) bool {
	erased := false

	if uint(x) >= fb.width || uint(y) >= fb.height || len(sprite) > MaxSpriteLength {
		return erased
	}

	for i := 0; i < len(sprite) && uint(y)+uint(i) < fb.height; i++ {
		row := (uint(y) + uint(i)) * fb.width
		for j := 0; j < 8 && uint(x)+uint(j) < fb.width; j++ {
			idx := row + uint(x) + uint(j)
			prev := fb.pixels[idx]
			lit := (sprite[i]>>(7-j))&1 == 1
			fb.pixels[idx] = prev != lit
			if prev && lit {
				erased = true
			}
			fb.dirty = true
		}
	}
	return erased
}

// Clear resets every pixel to unlit.
func (fb *FrameBuffer) Clear() {
	for i := range fb.pixels {
		fb.pixels[i] = false
	}
	fb.dirty = true
}

// Dirty reports whether the grid changed since the last MarkPresented.
func (fb *FrameBuffer) Dirty() bool {
	return fb.dirty
}

// MarkPresented clears the dirty flag after a render surface has
// consumed the current frame.
func (fb *FrameBuffer) MarkPresented() {
	fb.dirty = false
}
