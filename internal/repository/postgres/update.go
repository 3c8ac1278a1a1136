package postgres

import (
	"fmt"
	"strings"
)

// updateSet accumulates SET fragments for a partial update. Only columns
// explicitly added end up in the statement, which is what keeps omitted
// request fields untouched.
type updateSet struct {
	cols []string
	args []interface{}
}

func (u *updateSet) add(col string, val interface{}) {
	u.cols = append(u.cols, col)
	u.args = append(u.args, val)
}

func (u *updateSet) empty() bool {
	return len(u.cols) == 0
}

// clause renders "col1 = $1, col2 = $2, ..." starting at placeholder $start
// and returns the matching args. updated_at is always appended.
func (u *updateSet) clause(start int) (string, []interface{}) {
	parts := make([]string, 0, len(u.cols)+1)
	for i, col := range u.cols {
		parts = append(parts, fmt.Sprintf("%s = $%d", col, start+i))
	}
	parts = append(parts, "updated_at = now()")
	return strings.Join(parts, ", "), u.args
}
