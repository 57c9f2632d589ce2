package payment

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// Repository persists the placeholder payment records created on successful
// initiation. Status updates belong to a reconciliation process outside this
// service; the method exists for it.
type Repository interface {
	SavePayment(ctx context.Context, p *Payment) error
	UpdatePaymentStatus(ctx context.Context, reference string, status Status, paidAt *time.Time) error
	GetPaymentByReference(ctx context.Context, reference string) (*Payment, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) SavePayment(ctx context.Context, p *Payment) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO payments (reference, customer_name, customer_email, amount, status, initiated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`,
		p.Reference, p.CustomerName, p.CustomerEmail, p.Amount, p.Status, p.InitiatedAt,
	)
	return err
}

func (r *repository) UpdatePaymentStatus(ctx context.Context, reference string, status Status, paidAt *time.Time) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE payments SET status = $1, paid_at = $2 WHERE reference = $3
	`, status, paidAt, reference)
	return err
}

func (r *repository) GetPaymentByReference(ctx context.Context, reference string) (*Payment, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, reference, customer_name, customer_email, amount, status, paid_at, initiated_at
		FROM payments WHERE reference = $1
	`, reference)

	var p Payment
	err := row.Scan(
		&p.ID, &p.Reference, &p.CustomerName, &p.CustomerEmail,
		&p.Amount, &p.Status, &p.PaidAt, &p.InitiatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return &p, nil
}
