package xpgx

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Pool executes squirrel queries against Postgres. The x-suffixed
// methods take a Sqlizer so call sites never touch raw SQL strings.
// Inside InTx the same interface is backed by the transaction.
type Pool interface {
	Execx(ctx context.Context, q sq.Sqlizer) (pgconn.CommandTag, error)
	Getx(ctx context.Context, dest interface{}, q sq.Sqlizer) error
	Selectx(ctx context.Context, dest interface{}, q sq.Sqlizer) error
	InTx(ctx context.Context, fn func(Pool) error) error
}

type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	pgxscan.Querier
}

type pool struct {
	q    querier
	root *pgxpool.Pool // nil when this pool wraps a transaction
}

// NewPool connects to Postgres and pings the server.
func NewPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	p, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.New: %w", err)
	}
	if err := p.Ping(ctx); err != nil {
		p.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	return p, nil
}

// Wrap adapts a pgx pool to the Pool interface.
func Wrap(p *pgxpool.Pool) Pool {
	return &pool{q: p, root: p}
}

func (p *pool) Execx(ctx context.Context, q sq.Sqlizer) (pgconn.CommandTag, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return pgconn.CommandTag{}, fmt.Errorf("build query: %w", err)
	}
	return p.q.Exec(ctx, sql, args...)
}

func (p *pool) Getx(ctx context.Context, dest interface{}, q sq.Sqlizer) error {
	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	return pgxscan.Get(ctx, p.q, dest, sql, args...)
}

func (p *pool) Selectx(ctx context.Context, dest interface{}, q sq.Sqlizer) error {
	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	return pgxscan.Select(ctx, p.q, dest, sql, args...)
}

// InTx runs fn inside a transaction; any error rolls the whole unit back.
func (p *pool) InTx(ctx context.Context, fn func(Pool) error) error {
	if p.root == nil {
		// already inside a transaction; run on the same one
		return fn(p)
	}

	tx, err := p.root.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if err := fn(&pool{q: tx}); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
