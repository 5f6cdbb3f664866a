package attrtext

// RunStart returns the index of the first character of the run containing
// index. A run is the longest stretch of characters with the same style
func RunStart(seq Sequence, index int) int {
	checkIndex(index, seq.Len())
	style := seq.StyleAt(index)
	for index > 0 && seq.StyleAt(index-1) == style {
		index -= 1
	}
	return index
}

// RunLimit returns the index after the last character of the run containing
// index
func RunLimit(seq Sequence, index int) int {
	checkIndex(index, seq.Len())
	style := seq.StyleAt(index)
	for index < seq.Len()-1 && seq.StyleAt(index+1) == style {
		index += 1
	}
	return index + 1
}
