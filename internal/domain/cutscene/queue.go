package cutscene

// Queue is a one-directional sequence of directives read through a cursor.
// Consumed directives are never revisited.
type Queue struct {
	items  []Directive
	cursor int
}

// NewQueue creates a queue holding a copy of the given directives
func NewQueue(items ...Directive) *Queue {
	q := &Queue{items: make([]Directive, 0, len(items))}
	q.items = append(q.items, items...)
	return q
}

// Peek returns the front directive without consuming it
func (q *Queue) Peek() (Directive, bool) {
	if q.cursor >= len(q.items) {
		return nil, false
	}
	return q.items[q.cursor], true
}

// Pop consumes and returns the front directive
func (q *Queue) Pop() (Directive, bool) {
	d, ok := q.Peek()
	if ok {
		q.items[q.cursor] = nil
		q.cursor++
	}
	return d, ok
}

// Len returns the number of directives not yet consumed
func (q *Queue) Len() int {
	return len(q.items) - q.cursor
}

// Empty reports whether every directive has been consumed
func (q *Queue) Empty() bool {
	return q.Len() == 0
}
