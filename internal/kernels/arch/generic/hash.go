package generic

// HashUpdate folds data into the DJB2 state h one byte at a time:
// h = h*33 + b, strictly left to right.
func HashUpdate(h uint64, data []byte) uint64 {
	for _, b := range data {
		h = h*33 + uint64(b)
	}
	return h
}
