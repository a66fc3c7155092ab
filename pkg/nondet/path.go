package nondet

import (
	"strconv"
	"strings"
)

// Path is the ordered record of choice indices made along one candidate
// execution, in the order the computation requested them. Paths are
// treated as immutable: deriving a child copies the parent, so sibling
// paths may be replayed concurrently without coordination.
type Path []int

// Extend returns a new Path equal to p with index appended. p is not
// modified.
func (p Path) Extend(index int) Path {
	child := make(Path, len(p)+1)
	copy(child, p)
	child[len(p)] = index
	return child
}

// String renders the path as slash-separated indices, e.g. "0/2/1".
// The empty path renders as "".
func (p Path) String() string {
	if len(p) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, index := range p {
		if i > 0 {
			sb.WriteByte('/')
		}
		sb.WriteString(strconv.Itoa(index))
	}
	return sb.String()
}
