package game

const (
	left  = -1
	right = 1
)

// Cycler walks seat indices around the table in either direction.
type Cycler struct {
	size      int
	current   int
	direction int
	skipNext  bool
}

func NewCycler(size int) *Cycler {
	return &Cycler{
		size:      size,
		current:   0,
		direction: right,
	}
}

func (c *Cycler) Current() int {
	return c.current
}

func (c *Cycler) Direction() int {
	return c.direction
}

// Peek is the seat one step away in the current direction, ignoring skips.
func (c *Cycler) Peek() int {
	return c.offset(c.direction)
}

func (c *Cycler) Next() int {
	step := c.direction
	if c.skipNext {
		step *= 2
	}
	c.current = c.offset(step)
	c.skipNext = false
	return c.current
}

func (c *Cycler) Skip() {
	c.skipNext = true
}

func (c *Cycler) Skipping() bool {
	return c.skipNext
}

func (c *Cycler) Reverse() {
	switch c.direction {
	case right:
		c.direction = left
	case left:
		c.direction = right
	}
}

func (c *Cycler) offset(step int) int {
	return ((c.current+step)%c.size + c.size) % c.size
}
