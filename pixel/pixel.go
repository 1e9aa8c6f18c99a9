// Package pixel defines the pixel formats a buffer can be parametrized by.
//
// Every format is a plain comparable value type. A format knows how wide it
// is in bits and how to store and load itself in a packed row of bytes, so a
// buffer never inspects a pixel's dynamic type.
package pixel

// Mono is implemented by every format: the two canonical extremes.
type Mono[P any] interface {
	Black() P
	White() P
}

// Color is implemented by color-capable formats.
type Color[P any] interface {
	Mono[P]
	Red() P
	Green() P
	Blue() P
}

// Format is the constraint buffers and graphics contexts are built over.
type Format[P any] interface {
	comparable
	Mono[P]

	// BitsPerPixel is the packed size of one pixel.
	BitsPerPixel() int
	// RowBytes is the packed size of a row of width pixels, padding excluded.
	RowBytes(width int) int
	// Store writes the receiver at column x of a packed row.
	Store(line []byte, x int)
	// Load reads column x of a packed row.
	Load(line []byte, x int) P
}

// Black returns the black constant of P.
func Black[P Mono[P]]() P {
	var p P
	return p.Black()
}

// White returns the white constant of P.
func White[P Mono[P]]() P {
	var p P
	return p.White()
}

func Red[P Color[P]]() P {
	var p P
	return p.Red()
}

func Green[P Color[P]]() P {
	var p P
	return p.Green()
}

func Blue[P Color[P]]() P {
	var p P
	return p.Blue()
}
