package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"SHAREMYTRIP_WEB/internal/models"
)

var ErrNotFound = errors.New("passenger not found")

const schema = `
create table if not exists public.passengers (
	id            text primary key,
	first_name    text,
	last_name     text,
	email         text,
	mobile        text,
	date_of_birth date,
	aadhar_card   text,
	mini_bio      text,
	created_at    timestamptz not null default now(),
	updated_at    timestamptz not null default now()
);
`

const selectPassenger = `
select
	id,
	first_name,
	last_name,
	email,
	mobile,
	date_of_birth, -- date
	aadhar_card,
	mini_bio,
	created_at,
	updated_at
from public.passengers
where id = $1
limit 1;
`

// PassengerRepository reads and writes public.passengers
type PassengerRepository struct {
	pool *pgxpool.Pool
}

func NewPassengerRepository(pool *pgxpool.Pool) *PassengerRepository {
	return &PassengerRepository{pool: pool}
}

// EnsureSchema creates the passengers table when missing
func (r *PassengerRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, schema)
	return err
}

func (r *PassengerRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func (r *PassengerRepository) Get(ctx context.Context, id string) (*models.Passenger, error) {
	var p models.Passenger
	err := r.pool.QueryRow(ctx, selectPassenger, id).Scan(
		&p.ID,
		&p.FirstName,
		&p.LastName,
		&p.Email,
		&p.Mobile,
		&p.DateOfBirth,
		&p.AadharCard,
		&p.MiniBio,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Update overwrites every profile column of an existing passenger. Empty
// strings are stored as NULL.
func (r *PassengerRepository) Update(ctx context.Context, p *models.Passenger) error {
	const q = `
update public.passengers set
	first_name = $2,
	last_name = $3,
	email = $4,
	mobile = $5,
	date_of_birth = $6,
	aadhar_card = $7,
	mini_bio = $8,
	updated_at = now()
where id = $1
`
	ct, err := r.pool.Exec(ctx, q,
		p.ID,
		nullable(p.FirstName), nullable(p.LastName), nullable(p.Email), nullable(p.Mobile),
		p.DateOfBirth,
		nullable(p.AadharCard), nullable(p.MiniBio),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			return fmt.Errorf("update passenger %s: %s (%s)", p.ID, pgErr.Message, pgErr.Code)
		}
		return fmt.Errorf("update passenger %s: %w", p.ID, err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Create inserts a passenger; used for seeding local environments.
func (r *PassengerRepository) Create(ctx context.Context, p *models.Passenger) error {
	const q = `
insert into public.passengers(id, first_name, last_name, email, mobile, date_of_birth, aadhar_card, mini_bio)
values ($1, $2, $3, $4, $5, $6, $7, $8)
on conflict (id) do nothing
`
	_, err := r.pool.Exec(ctx, q,
		p.ID,
		nullable(p.FirstName), nullable(p.LastName), nullable(p.Email), nullable(p.Mobile),
		p.DateOfBirth,
		nullable(p.AadharCard), nullable(p.MiniBio),
	)
	return err
}

// ---------- helpers ----------

func nullable(p *string) *string {
	if p == nil || *p == "" {
		return nil
	}
	return p
}

// ParseDate รองรับ "YYYY-MM-DD" และ RFC3339
func ParseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return &t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}
	return nil, fmt.Errorf("date must be YYYY-MM-DD or RFC3339, got %q", s)
}
