//go:build !linux

package mem

// Huge page advice is Linux-only; elsewhere the pre-touch pass alone does
// the pre-faulting.
func adviseHugePages([]byte) {}
