package backfill

// Cursor walks the codes still to be looked up.
type Cursor struct {
	codes []string
	pos   int
}

// NewCursor creates a cursor positioned before the first code.
func NewCursor(codes []string) *Cursor {
	return &Cursor{codes: codes}
}

// Done reports whether every code has been returned.
func (c *Cursor) Done() bool {
	return c.pos >= len(c.codes)
}

// Next returns the current code and advances. It returns "" once Done.
func (c *Cursor) Next() string {
	if c.Done() {
		return ""
	}
	code := c.codes[c.pos]
	c.pos++
	return code
}

// Position returns how many codes have been returned so far.
func (c *Cursor) Position() int {
	return c.pos
}

// Len returns the total number of codes.
func (c *Cursor) Len() int {
	return len(c.codes)
}
