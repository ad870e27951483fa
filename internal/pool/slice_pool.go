package pool

import "sync"

// ScanBufferSize is the capacity of pooled line-scanning buffers. Numeric
// tokens are short, so one buffer comfortably holds any sane line.
const ScanBufferSize = 64 * 1024

// Scratch pools for the hot read and quantile paths. Repeated analyses
// reuse buffers instead of reallocating per call.
var (
	float64SlicePool = sync.Pool{
		New: func() any { return &[]float64{} },
	}
	scanBufferPool = sync.Pool{
		New: func() any {
			b := make([]byte, 0, ScanBufferSize)

			return &b
		},
	}
)

// GetFloat64Slice retrieves and resizes a float64 slice from the pool.
//
// The returned slice has exactly the requested length. If the pooled slice
// has insufficient capacity, a new slice is allocated. The caller must call
// the returned cleanup function to return the slice to the pool.
//
// Parameters:
//   - size: The desired length of the slice
//
// Returns:
//   - []float64: A slice with length equal to size
//   - func(): Cleanup function that must be called (typically with defer) to return the slice to the pool
//
// Example:
//
//	scratch, cleanup := pool.GetFloat64Slice(len(samples))
//	defer cleanup()
//	copy(scratch, samples)
func GetFloat64Slice(size int) ([]float64, func()) {
	ptr, _ := float64SlicePool.Get().(*[]float64)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]float64, size)
		*ptr = slice
	} else {
		slice = slice[:size]
		*ptr = slice
	}

	return slice, func() { float64SlicePool.Put(ptr) }
}

// GetScanBuffer retrieves an empty ScanBufferSize-capacity byte buffer from
// the pool, suitable as the initial buffer of a bufio.Scanner. The caller
// must call the returned cleanup function once scanning has finished.
//
// Returns:
//   - []byte: A zero-length buffer with ScanBufferSize capacity
//   - func(): Cleanup function that must be called (typically with defer) to return the buffer to the pool
//
// Example:
//
//	buf, cleanup := pool.GetScanBuffer()
//	defer cleanup()
//	scanner.Buffer(buf, maxLineSize)
func GetScanBuffer() ([]byte, func()) {
	ptr, _ := scanBufferPool.Get().(*[]byte)
	buf := (*ptr)[:0]
	*ptr = buf

	return buf, func() { scanBufferPool.Put(ptr) }
}
