package postgres

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// assignScan copies values into scan destinations the way pgx would for
// already-decoded values. nil means SQL NULL.
func assignScan(dest []any, values []any) error {
	if len(dest) != len(values) {
		return fmt.Errorf("scan: %d destinations for %d values", len(dest), len(values))
	}
	for i, d := range dest {
		dv := reflect.ValueOf(d).Elem()
		if values[i] == nil {
			dv.Set(reflect.Zero(dv.Type()))
			continue
		}
		v := reflect.ValueOf(values[i])
		switch {
		case v.Type().AssignableTo(dv.Type()):
			dv.Set(v)
		case dv.Kind() == reflect.Pointer && v.Type().AssignableTo(dv.Type().Elem()):
			p := reflect.New(dv.Type().Elem())
			p.Elem().Set(v)
			dv.Set(p)
		default:
			return fmt.Errorf("scan: column %d: cannot assign %T to %s", i, values[i], dv.Type())
		}
	}
	return nil
}

type fakeRows struct {
	pgx.Rows
	data   [][]any
	pos    int
	err    error
	closed bool
}

func (r *fakeRows) Next() bool {
	if r.pos >= len(r.data) {
		return false
	}
	r.pos++
	return true
}

func (r *fakeRows) Scan(dest ...any) error { return assignScan(dest, r.data[r.pos-1]) }
func (r *fakeRows) Err() error             { return r.err }
func (r *fakeRows) Close()                 { r.closed = true }

type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return assignScan(dest, r.values)
}

type execCall struct {
	query string
	args  []any
}

// fakeTx stages a profile name change and applies it to the store only on commit.
type fakeTx struct {
	pgx.Tx
	store *fakeStore

	failOn      string
	failErr     error
	zeroRowsOn  string
	commitErr   error
	rollbackErr error

	execs       []execCall
	staged      map[int64]string
	committed   bool
	rolledBack  bool
	rollbackCtx context.Context
}

func (tx *fakeTx) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	tx.execs = append(tx.execs, execCall{query: sql, args: args})
	if tx.failOn != "" && strings.Contains(sql, tx.failOn) {
		return pgconn.CommandTag{}, tx.failErr
	}
	if tx.zeroRowsOn != "" && strings.Contains(sql, tx.zeroRowsOn) {
		return pgconn.NewCommandTag("UPDATE 0"), nil
	}
	if strings.Contains(sql, "UPDATE cons_profile") {
		if tx.staged == nil {
			tx.staged = map[int64]string{}
		}
		tx.staged[args[len(args)-1].(int64)] = args[0].(string)
	}
	return pgconn.NewCommandTag("UPDATE 1"), nil
}

func (tx *fakeTx) Commit(context.Context) error {
	if tx.commitErr != nil {
		return tx.commitErr
	}
	for id, name := range tx.staged {
		tx.store.profileNames[id] = name
	}
	tx.committed = true
	return nil
}

func (tx *fakeTx) Rollback(ctx context.Context) error {
	tx.rollbackCtx = ctx
	if tx.committed {
		return pgx.ErrTxClosed
	}
	if tx.rollbackErr != nil {
		return tx.rollbackErr
	}
	tx.rolledBack = true
	tx.staged = nil
	return nil
}

type fakeStore struct {
	profileNames map[int64]string
}

type fakeDB struct {
	tx       *fakeTx
	beginErr error
	begins   int

	// keyed by a distinctive substring of the SQL
	queries   map[string]*fakeRows
	queryRows map[string]fakeRow
	queryErr  error
	lastArgs  []any
}

func (db *fakeDB) Begin(context.Context) (pgx.Tx, error) {
	db.begins++
	if db.beginErr != nil {
		return nil, db.beginErr
	}
	return db.tx, nil
}

func (db *fakeDB) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, fmt.Errorf("unexpected Exec outside transaction")
}

func (db *fakeDB) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	db.lastArgs = args
	if db.queryErr != nil {
		return nil, db.queryErr
	}
	for key, rows := range db.queries {
		if strings.Contains(sql, key) {
			return rows, nil
		}
	}
	return &fakeRows{}, nil
}

func (db *fakeDB) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	db.lastArgs = args
	for key, row := range db.queryRows {
		if strings.Contains(sql, key) {
			return row
		}
	}
	return fakeRow{err: pgx.ErrNoRows}
}
