package config

// RepeatColumns concatenates every row of block with itself n times, the way
// a repeating trainable layer is laid out. n <= 1 returns a copy.
func RepeatColumns(block [][]string, n int) [][]string {
	if block == nil {
		return nil
	}
	if n < 1 {
		n = 1
	}
	out := make([][]string, len(block))
	for i, row := range block {
		r := make([]string, 0, len(row)*n)
		for k := 0; k < n; k++ {
			r = append(r, row...)
		}
		out[i] = r
	}
	return out
}
