package domain

// Zero overwrites a byte slice with zeros to clear key material from memory.
// Callers should invoke it as soon as a raw key has been handed to a cipher.
func Zero(b []byte) {
	clear(b)
}
