package allocator

// SerpentineOrder returns, for each of n seeds, the group that receives it.
//
// The index sweeps back and forth across the groups. The direction flips as
// soon as the next index lands on either boundary, so boundary groups are
// visited once per sweep: with 4 groups the order is 0,1,2,3,2,1,0,1,2,...
// A single group receives every seed.
func SerpentineOrder(n, groupCount int) []int {
	order := make([]int, n)
	if groupCount <= 1 {
		return order
	}

	index, direction := 0, 1
	for i := range order {
		order[i] = index
		index += direction
		if index >= groupCount-1 || index <= 0 {
			direction = -direction
		}
	}
	return order
}
