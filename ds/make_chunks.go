package ds

// MakeChunks groups elements of a slice into consecutive chunks of n
// elements each. For example,
//
//	MakeChunks([]int{1, 2, 3, 4}, 2)
//
// should return this exact value:
//
//	[][]int{{1, 2}, {3, 4}}
//
// When len(ts) is not a multiple of n, the last chunk is shorter;
// callers that need whole chunks only must check the length themselves.
func MakeChunks[T any](ts []T, n int) [][]T {
	chunks := make([][]T, 0, len(ts)/n+1)
	for i := 0; i < len(ts); i += n {
		end := i + n
		if end > len(ts) {
			end = len(ts)
		}
		chunks = append(chunks, ts[i:end])
	}
	return chunks
}
