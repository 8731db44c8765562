package index

// FetchCount returns the number of remote metadata fetches performed.
// This is exported for testing purposes only.
func (i *Index) FetchCount() int {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.fetchCount
}
