package metrics

// Partition splits records into contiguous groups of at most size elements,
// preserving order: every group except possibly the last holds exactly size
// records, and concatenating the groups reproduces records exactly. An empty
// input yields no groups. size must be positive.
func Partition(records []Record, size int) [][]Record {
	if size <= 0 {
		panic("metrics: partition size must be positive")
	}
	if len(records) == 0 {
		return nil
	}

	batches := make([][]Record, 0, (len(records)+size-1)/size)
	for start := 0; start < len(records); start += size {
		end := start + size
		if end > len(records) {
			end = len(records)
		}
		batches = append(batches, records[start:end:end])
	}
	return batches
}
