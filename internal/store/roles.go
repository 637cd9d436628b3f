package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"trackr-engine/internal/domain"
)

// Migrate brings the schema up to the current version. Versioned with
// PRAGMA user_version so re-running is a no-op.
func Migrate(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var v int
	if err := tx.QueryRow(`PRAGMA user_version;`).Scan(&v); err != nil {
		return err
	}
	if v >= 1 {
		return tx.Commit()
	}

	// Date columns are NULLable: NULL means the source cell didn't parse.
	// Everything else defaults to ''.
	if _, err := tx.Exec(`
CREATE TABLE IF NOT EXISTS roles (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  category TEXT NOT NULL,
  company_name TEXT NOT NULL,
  company_link TEXT NOT NULL DEFAULT '',
  role_title TEXT NOT NULL DEFAULT '',
  role_link TEXT NOT NULL DEFAULT '',
  application_opens TEXT,
  application_closes TEXT,
  last_year_opened TEXT,
  interview_stages TEXT NOT NULL DEFAULT '',
  assessment_platform TEXT NOT NULL DEFAULT '',
  online_application TEXT NOT NULL DEFAULT '',
  cv_required TEXT NOT NULL DEFAULT '',
  cover_letter TEXT NOT NULL DEFAULT '',
  test_required TEXT NOT NULL DEFAULT '',
  notes TEXT NOT NULL DEFAULT ''
);
`); err != nil {
		return err
	}

	if _, err := tx.Exec(`
CREATE INDEX IF NOT EXISTS idx_roles_opens
ON roles(application_opens DESC);
`); err != nil {
		return err
	}

	if _, err := tx.Exec(`PRAGMA user_version = 1;`); err != nil {
		return err
	}

	return tx.Commit()
}

// DeleteAllRoles hard-deletes the entire persisted dataset.
func DeleteAllRoles(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, `DELETE FROM roles;`); err != nil {
		return fmt.Errorf("delete roles: %w", err)
	}
	return nil
}

const roleCols = `category, company_name, company_link, role_title, role_link,
application_opens, application_closes, last_year_opened,
interview_stages, assessment_platform, online_application,
cv_required, cover_letter, test_required, notes`

// InsertRolesBatch inserts one batch as a single multi-row statement.
func InsertRolesBatch(ctx context.Context, db *sql.DB, recs []domain.RoleRecord) error {
	if len(recs) == 0 {
		return nil
	}

	placeholders := make([]string, 0, len(recs))
	args := make([]any, 0, len(recs)*15)
	for _, r := range recs {
		placeholders = append(placeholders, "(?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)")
		args = append(args,
			r.Category, r.CompanyName, r.CompanyLink, r.RoleTitle, r.RoleLink,
			nullDate(r.ApplicationOpens), nullDate(r.ApplicationCloses), nullDate(r.LastYearOpened),
			r.InterviewStages, r.AssessmentPlatform, r.OnlineApplication,
			r.CVRequired, r.CoverLetter, r.TestRequired, r.Notes,
		)
	}

	q := fmt.Sprintf(`INSERT INTO roles (%s) VALUES %s;`, roleCols, strings.Join(placeholders, ","))
	if _, err := db.ExecContext(ctx, q, args...); err != nil {
		return fmt.Errorf("insert roles batch: %w", err)
	}
	return nil
}

// ReplaceAllRoles replaces the whole dataset with one scrape batch: delete
// everything, then insert in chunks of batchSize.
//
// This is intentionally NOT transactional across the delete and the inserts
// (the record-store contract is deleteAll + insertBatch, nothing more). A
// failure partway through leaves the store partially populated; the recovery
// path is re-running the scrape, which is what callers do anyway.
func ReplaceAllRoles(ctx context.Context, db *sql.DB, recs []domain.RoleRecord, batchSize int) error {
	if batchSize <= 0 {
		batchSize = 100
	}

	if err := DeleteAllRoles(ctx, db); err != nil {
		return err
	}

	for start := 0; start < len(recs); start += batchSize {
		end := start + batchSize
		if end > len(recs) {
			end = len(recs)
		}
		if err := InsertRolesBatch(ctx, db, recs[start:end]); err != nil {
			return fmt.Errorf("batch %d..%d: %w", start, end, err)
		}
	}
	return nil
}

type ListRolesOpts struct {
	Category string // exact match, "" = all
	Sort     string // opens | company
}

// ListRoles returns the persisted dataset. Sorting by opens is descending
// with absent open dates last (an absent date sorts as the earliest possible
// one). Openness is derived by the caller at read time, never stored here.
func ListRoles(ctx context.Context, db *sql.DB, opts ListRolesOpts) ([]domain.RoleRecord, error) {
	// whitelist sort expressions
	order := map[string]string{
		"opens":   `COALESCE(application_opens, '') DESC, company_name ASC`,
		"company": `company_name ASC, role_title ASC`,
	}[opts.Sort]
	if order == "" {
		order = `id ASC`
	}

	where := ""
	var args []any
	if opts.Category != "" {
		where = "WHERE category = ?"
		args = append(args, opts.Category)
	}

	q := fmt.Sprintf(`SELECT %s FROM roles %s ORDER BY %s;`, roleCols, where, order)

	rows, err := db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.RoleRecord
	for rows.Next() {
		var r domain.RoleRecord
		var opens, closes, lastYear sql.NullString
		if err := rows.Scan(
			&r.Category, &r.CompanyName, &r.CompanyLink, &r.RoleTitle, &r.RoleLink,
			&opens, &closes, &lastYear,
			&r.InterviewStages, &r.AssessmentPlatform, &r.OnlineApplication,
			&r.CVRequired, &r.CoverLetter, &r.TestRequired, &r.Notes,
		); err != nil {
			return nil, err
		}
		r.ApplicationOpens = opens.String
		r.ApplicationCloses = closes.String
		r.LastYearOpened = lastYear.String
		out = append(out, r)
	}
	return out, rows.Err()
}

// CountRoles reports dataset size, used by /health and scrape status.
func CountRoles(ctx context.Context, db *sql.DB) (int, error) {
	var n int
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM roles;`).Scan(&n)
	return n, err
}

func nullDate(s string) any {
	if s == "" {
		return nil
	}
	return s
}
