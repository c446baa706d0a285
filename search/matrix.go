package search

// Matrix returns the position of target in m, where each row is
// ascending and every row starts after the previous row ends — the
// matrix reads as one sorted list. ok is false when target is absent
// or the matrix is empty.
//
// Algorithm Outline:
//  1. Treat the matrix as a flat sorted slice of rows·cols elements.
//  2. Binary-search flat indices, mapping each probe back to
//     (index/cols, index%cols).
//
// Time Complexity: O(log(rows·cols)), Memory: O(1).
func Matrix(m [][]int, target int) (int, int, bool) {
	if len(m) == 0 || len(m[0]) == 0 {
		return 0, 0, false
	}
	rows, cols := len(m), len(m[0])
	front, back := 0, rows*cols-1
	for front <= back {
		mid := front + (back-front)/2
		v := m[mid/cols][mid%cols]
		switch {
		case v == target:
			return mid / cols, mid % cols, true
		case v < target:
			front = mid + 1
		default:
			back = mid - 1
		}
	}

	return 0, 0, false
}
