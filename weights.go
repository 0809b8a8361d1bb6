package longdoc

// weightSet records the weights already given out within one folder.
type weightSet map[int]struct{}

// nextFree returns w, or the first integer above w that is not yet used.
func (s weightSet) nextFree(w int) int {
	for {
		if _, used := s[w]; !used {
			return w
		}
		w++
	}
}

// claim reserves the first free weight at or above w and returns it.
func (s weightSet) claim(w int) int {
	w = s.nextFree(w)
	s[w] = struct{}{}
	return w
}
