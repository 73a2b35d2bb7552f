package internal

// PriorityHeap is a binary min-heap of write priorities.
//
// Priorities are arbitrary non-negative ints, so the heap is keyed rather than
// indexed: sparse or very large priorities cost the same as dense ones.
type PriorityHeap struct {
	keys []int
}

func NewPriorityHeap() *PriorityHeap {
	return &PriorityHeap{
		keys: make([]int, 0),
	}
}

func (h *PriorityHeap) Empty() bool {
	return len(h.keys) == 0
}

func (h *PriorityHeap) Push(key int) {
	h.keys = append(h.keys, key)

	// sift up
	for i := len(h.keys) - 1; i > 0; {
		parent := (i - 1) / 2
		if h.keys[parent] <= h.keys[i] {
			break
		}
		h.keys[parent], h.keys[i] = h.keys[i], h.keys[parent]
		i = parent
	}
}

// Pop removes and returns the lowest priority. The heap must not be empty.
func (h *PriorityHeap) Pop() int {
	min := h.keys[0]

	last := len(h.keys) - 1
	h.keys[0] = h.keys[last]
	h.keys = h.keys[:last]

	// sift down
	for i := 0; ; {
		left := 2*i + 1
		if left >= last {
			break
		}

		child := left
		if right := left + 1; right < last && h.keys[right] < h.keys[left] {
			child = right
		}

		if h.keys[i] <= h.keys[child] {
			break
		}
		h.keys[i], h.keys[child] = h.keys[child], h.keys[i]
		i = child
	}

	return min
}
