package crypto

// Zero overwrites a byte slice with zeros. Works everywhere, including
// platforms without mlock support.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
