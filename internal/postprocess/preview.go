package postprocess

import (
	"github.com/sergi/go-diff/diffmatchpatch"
)

// PreviewCleanup renders a patch-formatted diff of the line-oriented text
// before and after a cleanup command, so the host can show what a cleanup
// will change before applying it. Returns "" when nothing changes.
func PreviewCleanup(before, after string) string {
	if before == after {
		return ""
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(before, after, true)
	diffs = dmp.DiffCleanupSemantic(diffs)
	patches := dmp.PatchMake(before, diffs)
	return dmp.PatchToText(patches)
}
