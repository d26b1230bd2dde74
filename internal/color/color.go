// Color holds a 3 channel (red, green, blue) value and the arithmetic used on it
package color

import (
	"fmt"
	"math"
)

// Channel indexes (internal order is always R, G, B)
const (
	Red = iota
	Green
	Blue
)

// Color is an ordered (R, G, B) triple. Channels are float64 so intermediate
// results may leave [0, 255]; they are normalized only when written to a buffer.
type Color struct {
	value [3]float64
}

// Operation is applied channel by channel by Combine.
type Operation func(x, y float64) float64

// Operand is something a Color can be combined with: another *Color
// (element-wise) or a Scalar (same value for all three channels).
type Operand interface {
	channels() [3]float64
}

// Scalar applies one value to every channel.
type Scalar float64

func (s Scalar) channels() [3]float64 {
	v := float64(s)
	return [3]float64{v, v, v}
}

func (c *Color) channels() [3]float64 {
	return c.value
}

// Supported operations. Div is real division; callers truncate with Trunc.
var (
	Sum  Operation = func(x, y float64) float64 { return x + y }
	Sub  Operation = func(x, y float64) float64 { return x - y }
	Mult Operation = func(x, y float64) float64 { return x * y }
	Div  Operation = func(x, y float64) float64 { return x / y }
	Mod  Operation = math.Mod
)

// Creates a Color from red, green and blue
func FromRGB(r, g, b float64) *Color {
	return &Color{value: [3]float64{r, g, b}}
}

// Creates a Color from blue, green and red (the order BMP stores pixels in)
func FromBGR(b, g, r float64) *Color {
	return &Color{value: [3]float64{r, g, b}}
}

// Returns the channels in R, G, B order
func (c *Color) RGB() [3]float64 {
	return c.value
}

// Returns the channels in B, G, R order
func (c *Color) BGR() [3]float64 {
	return [3]float64{c.value[Blue], c.value[Green], c.value[Red]}
}

func (c *Color) R() float64 { return c.value[Red] }
func (c *Color) G() float64 { return c.value[Green] }
func (c *Color) B() float64 { return c.value[Blue] }

// Combine applies op to every channel against each operand in turn, mutating
// c and returning it so calls can be chained.
func (c *Color) Combine(op Operation, operands ...Operand) *Color {
	for _, operand := range operands {
		other := operand.channels()
		for i := range c.value {
			c.value[i] = op(c.value[i], other[i])
		}
	}
	return c
}

func (c *Color) Add(operands ...Operand) *Color      { return c.Combine(Sum, operands...) }
func (c *Color) Subtract(operands ...Operand) *Color { return c.Combine(Sub, operands...) }
func (c *Color) Multiply(operands ...Operand) *Color { return c.Combine(Mult, operands...) }
func (c *Color) Divide(operands ...Operand) *Color   { return c.Combine(Div, operands...) }

// Truncates every channel toward zero (in-place)
func (c *Color) Trunc() *Color {
	for i := range c.value {
		c.value[i] = math.Trunc(c.value[i])
	}
	return c
}

// Returns (255, 255, 255) - c as a new Color. c is left untouched.
func (c *Color) Invert() *Color {
	return FromRGB(255, 255, 255).Subtract(c)
}

// Returns a copy of the color
func (c *Color) Clone() *Color {
	return &Color{value: c.value}
}

// Reports whether both colors hold the same channel values
func (c *Color) Equal(other *Color) bool {
	return c.value == other.value
}

// Returns the channels in B, G, R order as bytes, each truncated and
// wrapped into [0, 255] by NormalizeChannel.
func (c *Color) Bytes() [3]byte {
	bgr := c.BGR()
	var out [3]byte
	for i, v := range bgr {
		out[i] = NormalizeChannel(int(math.Trunc(v)))
	}
	return out
}

func (c *Color) String() string {
	return fmt.Sprintf("rgb(%g, %g, %g)", c.value[Red], c.value[Green], c.value[Blue])
}

// NormalizeChannel wraps any integer into [0, 255]. Negative values wrap
// upward: x -> ceil(-x/256)*256 + x, so -248 becomes 8 and -500 becomes 12.
func NormalizeChannel(x int) uint8 {
	if x < 0 {
		n := (-x + 255) / 256
		return uint8(n*256 + x)
	}
	return uint8(x % 256)
}
