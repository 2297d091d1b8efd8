// Package pg serves the catalog from PostgreSQL through the pgx driver.
package pg

import (
	"context"
	"database/sql"
	"embed"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"verifind.org/internal/catalog"
	"verifind.org/internal/filter"
)

// SQL holds the schema migrations under sql/migrations and demo seeds under
// sql/seeds.
//
//go:embed sql
var SQL embed.FS

const (
	MigrationsDir = "sql/migrations"
	SeedsDir      = "sql/seeds"
)

// Store is a read-only catalog. Rows are loaded per call and filtered in
// process, so the filter semantics match the in-memory catalog exactly.
type Store struct {
	db *sql.DB
}

var _ catalog.Service = (*Store)(nil)

// Open connects through the pgx stdlib driver.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)
	db.SetConnMaxIdleTime(5 * time.Minute)
	return New(db), nil
}

// New wraps an existing handle.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) DB() *sql.DB { return s.db }

// Ping backs the readiness probe.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

const casesQuery = `
	select id, name, age, status, location, to_char(reported_on, 'YYYY-MM-DD'),
	       description, reward, tips, blockchain_hash, submitter
	from cases
	order by id`

func (s *Store) Cases(ctx context.Context, c filter.Criteria) (filter.Result[catalog.Case], error) {
	rows, err := s.db.QueryContext(ctx, casesQuery)
	if err != nil {
		return filter.Result[catalog.Case]{}, err
	}
	defer rows.Close()

	var cases []catalog.Case
	for rows.Next() {
		var cs catalog.Case
		if err := rows.Scan(&cs.ID, &cs.Name, &cs.Age, &cs.Status, &cs.Location, &cs.Date,
			&cs.Description, &cs.Reward, &cs.Tips, &cs.BlockchainHash, &cs.Submitter); err != nil {
			return filter.Result[catalog.Case]{}, err
		}
		cases = append(cases, cs)
	}
	if err := rows.Err(); err != nil {
		return filter.Result[catalog.Case]{}, err
	}
	return filter.NewResult(cases, catalog.CaseSchema, c, catalog.EmptyCases), nil
}

const tipsQuery = `
	select t.id, t.case_id, c.name, t.description, t.location,
	       to_char(t.submitted_at, 'YYYY-MM-DD HH24:MI'), t.status, t.reward, t.blockchain_hash
	from tips t
	join cases c on c.id = t.case_id
	order by t.id`

func (s *Store) Tips(ctx context.Context, c filter.Criteria) (filter.Result[catalog.Tip], error) {
	rows, err := s.db.QueryContext(ctx, tipsQuery)
	if err != nil {
		return filter.Result[catalog.Tip]{}, err
	}
	defer rows.Close()

	var tips []catalog.Tip
	for rows.Next() {
		var t catalog.Tip
		if err := rows.Scan(&t.ID, &t.CaseID, &t.CaseName, &t.Description, &t.Location,
			&t.Timestamp, &t.Status, &t.Reward, &t.BlockchainHash); err != nil {
			return filter.Result[catalog.Tip]{}, err
		}
		tips = append(tips, t)
	}
	if err := rows.Err(); err != nil {
		return filter.Result[catalog.Tip]{}, err
	}
	return filter.NewResult(tips, catalog.TipSchema, c, catalog.EmptyTips), nil
}

const alertsQuery = `
	select a.id, a.case_id, c.name, c.age, a.description, a.location, a.radius_km,
	       to_char(a.issued_at, 'YYYY-MM-DD HH24:MI'), a.priority, a.status, a.responders
	from alerts a
	join cases c on c.id = a.case_id
	order by a.id`

func (s *Store) Alerts(ctx context.Context, c filter.Criteria) (filter.Result[catalog.Alert], error) {
	rows, err := s.db.QueryContext(ctx, alertsQuery)
	if err != nil {
		return filter.Result[catalog.Alert]{}, err
	}
	defer rows.Close()

	var alerts []catalog.Alert
	for rows.Next() {
		var a catalog.Alert
		if err := rows.Scan(&a.ID, &a.CaseID, &a.CaseName, &a.Age, &a.Description, &a.Location,
			&a.Radius, &a.Timestamp, &a.Priority, &a.Status, &a.Responders); err != nil {
			return filter.Result[catalog.Alert]{}, err
		}
		alerts = append(alerts, a)
	}
	if err := rows.Err(); err != nil {
		return filter.Result[catalog.Alert]{}, err
	}
	return filter.NewResult(alerts, catalog.AlertSchema, c, catalog.EmptyAlerts), nil
}

const targetsQuery = `select id, name, reward from cases where status = 'active' order by id`

func (s *Store) TipTargets(ctx context.Context) ([]catalog.TipTarget, error) {
	rows, err := s.db.QueryContext(ctx, targetsQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []catalog.TipTarget
	for rows.Next() {
		var t catalog.TipTarget
		if err := rows.Scan(&t.ID, &t.Name, &t.Reward); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
