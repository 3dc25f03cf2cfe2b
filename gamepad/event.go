package gamepad

// ButtonRelease is queued when a held button is let go.
// Duration is the total hold time in milliseconds.
type ButtonRelease struct {
	Button   ButtonID
	Duration float64
}

// DirectionChange is queued when a stick returns to its dead zone after
// being held in a direction. Duration only counts time spent active.
type DirectionChange struct {
	Side     StickSide
	Bucket   Bucket
	Duration float64
}

// queue is a FIFO of completed events.
type queue[T any] struct {
	items []T
}

func (q *queue[T]) push(v T) {
	q.items = append(q.items, v)
}

func (q *queue[T]) pop() (T, bool) {
	var zero T
	if len(q.items) == 0 {
		return zero, false
	}
	v := q.items[0]
	q.items[0] = zero
	q.items = q.items[1:]
	if len(q.items) == 0 {
		q.items = nil
	}
	return v, true
}

func (q *queue[T]) len() int {
	return len(q.items)
}
