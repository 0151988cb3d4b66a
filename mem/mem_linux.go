//go:build linux

package mem

import "golang.org/x/sys/unix"

// adviseHugePages asks the kernel to back the page-aligned region b with
// transparent huge pages. The advice is best-effort; failure is ignored.
func adviseHugePages(b []byte) {
	_ = unix.Madvise(b, unix.MADV_HUGEPAGE)
}
