// Package frontier provides the ordering policies over pending search nodes.
//
// Every policy implements Frontier[T]:
//
//	Push(item T, priority int)
//	Pop() (T, bool)
//	Len() int
//
// Policies
//
//   - Queue: FIFO. Items leave in exactly the order they arrived; priority is ignored.
//   - Stack: LIFO. The most recently pushed item leaves first; priority is ignored.
//   - PriorityQueue: ascending priority. Equal priorities leave in insertion order,
//     enforced by an explicit, monotonically increasing sequence number used as the
//     secondary key. container/heap is not stable on its own, so without that key
//     best-first results would depend on heap internals.
//
// Complexity
//
//   - Queue, Stack: amortised O(1) Push and Pop.
//   - PriorityQueue: O(log n) Push and Pop.
//
// A Frontier is owned by a single traversal and is not safe for concurrent use.
package frontier
