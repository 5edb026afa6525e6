package parser

import "github.com/littler00t/md2dir/model"

// LocateStructureBlock scans blocks in order and returns the file paths of
// the first one that parses as a non-trivial tree diagram, together with
// the original index of that block. Malformed candidates are skipped the
// same way non-tree content is; first accepted candidate wins.
func LocateStructureBlock(blocks []model.CodeBlock) ([]string, int, bool) {
	for _, block := range blocks {
		paths, err := ParseTree(block.Content)
		if err != nil || len(paths) == 0 {
			continue
		}
		return paths, block.Index, true
	}
	return nil, -1, false
}
