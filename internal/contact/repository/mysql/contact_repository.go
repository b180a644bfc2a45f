// Package mysql implements contact persistence for MySQL. UUIDs are stored as BINARY(16).
package mysql

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	contactDomain "github.com/allisson/leadmail/internal/contact/domain"
	"github.com/allisson/leadmail/internal/database"
	apperrors "github.com/allisson/leadmail/internal/errors"
)

const contactColumns = `id, name, email, phone, company, status, notes, source, lead_score, last_contacted, created_at, updated_at`

// ContactRepository implements contact persistence for MySQL.
type ContactRepository struct {
	db *sql.DB
}

// NewContactRepository creates a new MySQL contact repository.
func NewContactRepository(db *sql.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

// Create inserts a new contact.
func (r *ContactRepository) Create(ctx context.Context, contact *contactDomain.Contact) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO contacts (` + contactColumns + `)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := querier.ExecContext(ctx, query,
		database.UUIDBytes(contact.ID),
		contact.Name,
		contact.Email,
		contact.Phone,
		contact.Company,
		contact.Status,
		contact.Notes,
		contact.Source,
		contact.LeadScore,
		contact.LastContacted,
		contact.CreatedAt,
		contact.UpdatedAt,
	)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return contactDomain.ErrContactAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create contact")
	}
	return nil
}

// Update overwrites the mutable fields of a contact.
func (r *ContactRepository) Update(ctx context.Context, contact *contactDomain.Contact) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE contacts
			  SET name = ?, email = ?, phone = ?, company = ?, status = ?, notes = ?,
			      source = ?, lead_score = ?, updated_at = ?
			  WHERE id = ?`

	_, err := querier.ExecContext(ctx, query,
		contact.Name,
		contact.Email,
		contact.Phone,
		contact.Company,
		contact.Status,
		contact.Notes,
		contact.Source,
		contact.LeadScore,
		contact.UpdatedAt,
		database.UUIDBytes(contact.ID),
	)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return contactDomain.ErrContactAlreadyExists
		}
		return apperrors.Wrap(err, "failed to update contact")
	}
	// MySQL reports zero affected rows for no-op updates, so existence is checked by the use case.
	return nil
}

// Delete removes a contact.
func (r *ContactRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM contacts WHERE id = ?`, database.UUIDBytes(id))
	if err != nil {
		return apperrors.Wrap(err, "failed to delete contact")
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to read affected rows")
	}
	if affected == 0 {
		return contactDomain.ErrContactNotFound
	}
	return nil
}

// Get retrieves a contact by id.
func (r *ContactRepository) Get(ctx context.Context, id uuid.UUID) (*contactDomain.Contact, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + contactColumns + ` FROM contacts WHERE id = ?`

	contact, err := scanContact(querier.QueryRowContext(ctx, query, database.UUIDBytes(id)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, contactDomain.ErrContactNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get contact")
	}
	return contact, nil
}

// List returns a page of contacts and the total number of matching rows.
func (r *ContactRepository) List(
	ctx context.Context,
	filter contactDomain.ListFilter,
) ([]*contactDomain.Contact, int64, error) {
	querier := database.GetTx(ctx, r.db)

	var conditions []string
	var args []any
	if filter.Status != "" {
		conditions = append(conditions, "status = ?")
		args = append(args, filter.Status)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		conditions = append(conditions, "(name LIKE ? OR email LIKE ? OR company LIKE ?)")
		args = append(args, pattern, pattern, pattern)
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	if err := querier.QueryRowContext(ctx, `SELECT COUNT(*) FROM contacts`+where, args...).Scan(&total); err != nil {
		return nil, 0, apperrors.Wrap(err, "failed to count contacts")
	}

	query := `SELECT ` + contactColumns + ` FROM contacts` + where + ` ORDER BY created_at DESC LIMIT ? OFFSET ?`
	args = append(args, filter.Limit, filter.Offset)

	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "failed to list contacts")
	}
	defer func() { _ = rows.Close() }()

	contacts, err := scanContacts(rows)
	if err != nil {
		return nil, 0, err
	}
	return contacts, total, nil
}

// ListByIDs returns the contacts matching ids in no particular order.
func (r *ContactRepository) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*contactDomain.Contact, error) {
	if len(ids) == 0 {
		return []*contactDomain.Contact{}, nil
	}
	querier := database.GetTx(ctx, r.db)

	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = "?"
		args[i] = database.UUIDBytes(id)
	}

	query := `SELECT ` + contactColumns + ` FROM contacts WHERE id IN (` + strings.Join(placeholders, ", ") + `)`

	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list contacts by ids")
	}
	defer func() { _ = rows.Close() }()

	return scanContacts(rows)
}

// TouchLastContacted records the time of the latest successful send to the contact.
func (r *ContactRepository) TouchLastContacted(ctx context.Context, id uuid.UUID, at time.Time) error {
	querier := database.GetTx(ctx, r.db)

	_, err := querier.ExecContext(ctx,
		`UPDATE contacts SET last_contacted = ?, updated_at = ? WHERE id = ?`, at, at, database.UUIDBytes(id))
	if err != nil {
		return apperrors.Wrap(err, "failed to touch contact last_contacted")
	}
	return nil
}

// CountByStatus returns the number of contacts in each pipeline stage that has any.
func (r *ContactRepository) CountByStatus(ctx context.Context) (map[contactDomain.Status]int64, error) {
	querier := database.GetTx(ctx, r.db)

	rows, err := querier.QueryContext(ctx, `SELECT status, COUNT(*) FROM contacts GROUP BY status`)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to count contacts by status")
	}
	defer func() { _ = rows.Close() }()

	counts := make(map[contactDomain.Status]int64)
	for rows.Next() {
		var status contactDomain.Status
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan contact count")
		}
		counts[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate contact counts")
	}
	return counts, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanContact(row rowScanner) (*contactDomain.Contact, error) {
	var c contactDomain.Contact
	var id []byte
	err := row.Scan(
		&id,
		&c.Name,
		&c.Email,
		&c.Phone,
		&c.Company,
		&c.Status,
		&c.Notes,
		&c.Source,
		&c.LeadScore,
		&c.LastContacted,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if c.ID, err = database.UUIDFromBytes(id); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal contact id")
	}
	return &c, nil
}

func scanContacts(rows *sql.Rows) ([]*contactDomain.Contact, error) {
	contacts := make([]*contactDomain.Contact, 0)
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan contact")
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate contacts")
	}
	return contacts, nil
}
