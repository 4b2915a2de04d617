package repositories

import (
	"errors"
	"strings"

	"laundry/internal/pagination"

	"github.com/go-sql-driver/mysql"
)

// IsDuplicateEntry reports a MySQL duplicate-key violation (1062). The
// machines table's composite unique key on (condominium_id, identifier)
// raises it when two creates race past the fast-path lookup.
func IsDuplicateEntry(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == 1062
}

// orderClause renders the validated paging descriptor as an ORDER BY
// body. The sort column is caller supplied and passed through to MySQL;
// an unknown column fails the query, which is the intended surface for
// bad sort fields. Backticks are stripped so the quoting stays intact.
func orderClause(req pagination.Request) string {
	col := strings.ReplaceAll(req.SortBy, "`", "")
	return "`" + col + "` " + req.Direction
}

func totalPages(total int64, size int) int {
	if size <= 0 {
		return 0
	}
	return int((total + int64(size) - 1) / int64(size))
}
