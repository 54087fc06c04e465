package paging

// Range returns the consecutive integers from min to max inclusive.
// It returns an empty slice when min > max.
func Range(min, max int) []int {
	if min > max {
		return []int{}
	}
	list := make([]int, 0, max-min+1)
	for i := min; i <= max; i++ {
		list = append(list, i)
	}
	return list
}
