package mail

// DefaultBatchSize bounds how many sends are in flight against the provider
// at once. All batches except possibly the last have exactly this length.
const DefaultBatchSize = 40

// Chunk partitions rows into contiguous, order-preserving batches of at most
// size elements. Concatenating the result reproduces rows exactly. A size
// below 1 falls back to DefaultBatchSize.
func Chunk(rows []Recipient, size int) [][]Recipient {
	if size < 1 {
		size = DefaultBatchSize
	}
	if len(rows) == 0 {
		return nil
	}
	batches := make([][]Recipient, 0, (len(rows)+size-1)/size)
	for start := 0; start < len(rows); start += size {
		end := start + size
		if end > len(rows) {
			end = len(rows)
		}
		batches = append(batches, rows[start:end])
	}
	return batches
}
