package frontier

import "container/heap"

// Frontier is an ordering policy over pending items.
type Frontier[T any] interface {
	// Push inserts item. Policies that do not order by priority ignore it.
	Push(item T, priority int)

	// Pop removes and returns the next item; ok is false when the frontier is empty.
	Pop() (item T, ok bool)

	// Len returns the number of pending items.
	Len() int
}

// Queue is a FIFO frontier.
type Queue[T any] struct {
	items []T
	head  int
}

// NewQueue returns an empty FIFO frontier.
func NewQueue[T any]() *Queue[T] { return &Queue[T]{} }

// Push appends item at the tail.
func (q *Queue[T]) Push(item T, _ int) { q.items = append(q.items, item) }

// Pop removes the item at the head.
func (q *Queue[T]) Pop() (T, bool) {
	var zero T
	if q.head == len(q.items) {
		return zero, false
	}
	item := q.items[q.head]
	q.items[q.head] = zero // drop the reference so popped nodes can be collected
	q.head++
	// compact once the consumed prefix dominates the backing array
	if q.head > 32 && q.head*2 >= len(q.items) {
		n := copy(q.items, q.items[q.head:])
		clear(q.items[n:])
		q.items = q.items[:n]
		q.head = 0
	}

	return item, true
}

// Len returns the number of queued items.
func (q *Queue[T]) Len() int { return len(q.items) - q.head }

// Stack is a LIFO frontier.
type Stack[T any] struct {
	items []T
}

// NewStack returns an empty LIFO frontier.
func NewStack[T any]() *Stack[T] { return &Stack[T]{} }

// Push places item on top.
func (s *Stack[T]) Push(item T, _ int) { s.items = append(s.items, item) }

// Pop removes the top item.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	n := len(s.items)
	if n == 0 {
		return zero, false
	}
	item := s.items[n-1]
	s.items[n-1] = zero
	s.items = s.items[:n-1]

	return item, true
}

// Len returns the number of stacked items.
func (s *Stack[T]) Len() int { return len(s.items) }

// PriorityQueue is a min-priority frontier with insertion-order tie-breaking.
type PriorityQueue[T any] struct {
	h   entryHeap[T]
	seq uint64
}

// NewPriorityQueue returns an empty priority frontier.
func NewPriorityQueue[T any]() *PriorityQueue[T] { return &PriorityQueue[T]{} }

// Push inserts item with the given priority; lower priorities leave first.
func (pq *PriorityQueue[T]) Push(item T, priority int) {
	heap.Push(&pq.h, entry[T]{item: item, priority: priority, seq: pq.seq})
	pq.seq++
}

// Pop removes the item with the lowest priority, oldest first among equals.
func (pq *PriorityQueue[T]) Pop() (T, bool) {
	if pq.h.Len() == 0 {
		var zero T
		return zero, false
	}

	return heap.Pop(&pq.h).(entry[T]).item, true
}

// Len returns the number of pending items.
func (pq *PriorityQueue[T]) Len() int { return pq.h.Len() }

// entry pairs an item with its priority and insertion sequence number.
type entry[T any] struct {
	item     T
	priority int
	seq      uint64
}

// entryHeap implements heap.Interface ordered by (priority, seq).
type entryHeap[T any] []entry[T]

func (h entryHeap[T]) Len() int { return len(h) }

func (h entryHeap[T]) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}

	return h[i].seq < h[j].seq
}

func (h entryHeap[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entryHeap[T]) Push(x any) { *h = append(*h, x.(entry[T])) }

func (h *entryHeap[T]) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = entry[T]{}
	*h = old[:n-1]

	return item
}
