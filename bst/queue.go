package bst

// queue is the FIFO scratch buffer of a single level-order traversal.
type queue[T any] struct {
	items []T
	head  int
}

func (q *queue[T]) empty() bool {
	return q.head == len(q.items)
}

func (q *queue[T]) push(v T) {
	q.items = append(q.items, v)
}

func (q *queue[T]) pop() (T, bool) {
	var zero T
	if q.empty() {
		return zero, false
	}
	v := q.items[q.head]
	// drop the reference so popped nodes are not pinned by the backing array
	q.items[q.head] = zero
	q.head++
	return v, true
}
