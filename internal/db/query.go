package db

import (
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/ledgerscope/explorer-analytics/internal/classifier"
	"github.com/ledgerscope/explorer-analytics/internal/db/model"
	"github.com/ledgerscope/explorer-analytics/internal/types"
)

// query is a rendered aggregate statement with its bound arguments.
// name is used for errors and metrics, never sent to the database.
type query struct {
	name string
	sql  string
	args []any
}

func ident(name string) string {
	return pgx.Identifier{name}.Sanitize()
}

func countAllQuery(name, table string) query {
	return query{
		name: name,
		sql:  fmt.Sprintf("SELECT count(*) AS cnt FROM %s", ident(table)),
	}
}

func transactionsSinceQuery(since int64) query {
	return query{
		name: "transactions_since",
		sql: fmt.Sprintf(
			"SELECT count(*) AS cnt FROM %s WHERE %s >= $1",
			ident(model.TransactionTable), ident(model.TimestampColumn),
		),
		args: []any{since},
	}
}

func concealedNativeTxsQuery(match classifier.Match) (query, error) {
	predicate, err := match.Predicate(ident(classifier.ContentColumn))
	if err != nil {
		return query{}, err
	}

	return query{
		name: "native_txs_" + match.String(),
		sql:  fmt.Sprintf("SELECT count(*) AS cnt FROM %s WHERE %s", ident(model.NativeTxTable), predicate),
	}, nil
}

func distinctInWindowQuery(name, table, column string, window types.TimeWindow) query {
	where, args := windowClause(window)

	sql := fmt.Sprintf("SELECT count(DISTINCT %s) AS cnt FROM %s", ident(column), ident(table))
	if where != "" {
		sql += " " + where
	}

	return query{name: name, sql: sql, args: args}
}

// windowClause renders the open interval of window as a WHERE clause with
// positional parameters. An unbounded window renders to an empty clause.
func windowClause(window types.TimeWindow) (string, []any) {
	var (
		predicates []string
		args       []any
	)

	column := ident(model.TimestampColumn)
	if window.Start != nil {
		args = append(args, *window.Start)
		predicates = append(predicates, fmt.Sprintf("%s > $%d", column, len(args)))
	}
	if window.End != nil {
		args = append(args, *window.End)
		predicates = append(predicates, fmt.Sprintf("%s < $%d", column, len(args)))
	}

	if len(predicates) == 0 {
		return "", nil
	}

	return "WHERE " + strings.Join(predicates, " AND "), args
}
