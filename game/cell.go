package game

// Cell represents a spatial partition cell containing objects
type Cell struct {
	// Objects in this cell (preallocated slice)
	Objects []Object

	// Current count of objects
	Count int
}

// NewCell creates a new cell with preallocated storage
func NewCell(initialCapacity int) *Cell {
	return &Cell{
		Objects: make([]Object, 0, initialCapacity),
	}
}

// Add adds an object to this cell
func (c *Cell) Add(obj Object) {
	if c.Count < len(c.Objects) {
		c.Objects[c.Count] = obj
	} else {
		c.Objects = append(c.Objects, obj)
	}
	c.Count++
}

// Remove removes an object from this cell
func (c *Cell) Remove(obj Object) {
	for i := 0; i < c.Count; i++ {
		if c.Objects[i] == obj {
			// Swap with last element and decrease count
			c.Objects[i] = c.Objects[c.Count-1]
			c.Objects[c.Count-1] = nil
			c.Count--
			return
		}
	}
}

// Items returns the objects currently in the cell
func (c *Cell) Items() []Object {
	return c.Objects[:c.Count]
}

// Clear removes all objects from the cell (but keeps capacity)
func (c *Cell) Clear() {
	for i := 0; i < c.Count; i++ {
		c.Objects[i] = nil
	}
	c.Count = 0
}
