package main

// In-place sort of a shared slice: the function receives a copy of the
// slice HEADER, but the header points at the caller's backing array, so
// sorting inside the function reorders the caller's data too.
//
// Run:
//
//	go run ./sorting
func main() {
	demoSort()
}
