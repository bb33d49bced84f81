package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/zoombxu/surplus/internal/domain/errors"
	"github.com/zoombxu/surplus/internal/domain/model"
	"github.com/zoombxu/surplus/internal/domain/repository"
)

// Pool is the subset of pgxpool.Pool the storage depends on.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   Pool
	logger *slog.Logger
}

type orderRepository struct {
	storage *Storage
}

type profileRepository struct {
	storage *Storage
}

type messageRepository struct {
	storage *Storage
}

type productRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) Profiles() repository.ProfileRepository {
	return &profileRepository{storage: s}
}

func (s *Storage) Messages() repository.MessageRepository {
	return &messageRepository{storage: s}
}

func (s *Storage) Products() repository.ProductRepository {
	return &productRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS orders (
            id UUID PRIMARY KEY,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            customer_name TEXT NOT NULL,
            customer_phone TEXT NOT NULL,
            items JSONB NOT NULL,
            total_price TEXT NOT NULL,
            status TEXT NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS profiles (
            phone TEXT PRIMARY KEY,
            cancellation_count INT NOT NULL DEFAULT 0,
            penalty_until TIMESTAMPTZ
        )`,
		`CREATE TABLE IF NOT EXISTS messages (
            id UUID PRIMARY KEY,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            content TEXT NOT NULL,
            sender_id TEXT NOT NULL,
            sender_name TEXT NOT NULL,
            is_admin BOOLEAN NOT NULL DEFAULT FALSE,
            recipient_id TEXT NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS products (
            id UUID PRIMARY KEY,
            name TEXT NOT NULL,
            price TEXT NOT NULL,
            original_price TEXT,
            rating DOUBLE PRECISION NOT NULL DEFAULT 5,
            review_count INT NOT NULL DEFAULT 0,
            images JSONB NOT NULL DEFAULT '[]',
            category TEXT NOT NULL,
            badge TEXT,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_customer ON orders(customer_phone, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_messages_participants ON messages(sender_id, recipient_id, created_at)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- OrderRepository implementation ---

const orderColumns = `id, created_at, customer_name, customer_phone, items, total_price, status`

func scanOrder(row pgx.Row) (*model.Order, error) {
	var (
		o     model.Order
		items []byte
	)
	if err := row.Scan(&o.ID, &o.CreatedAt, &o.CustomerName, &o.CustomerPhone, &items, &o.TotalPrice, &o.Status); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(items, &o.Items); err != nil {
		return nil, fmt.Errorf("decode order items: %w", err)
	}
	return &o, nil
}

func (r *orderRepository) Create(ctx context.Context, order *model.Order) error {
	const query = `INSERT INTO orders (id, customer_name, customer_phone, items, total_price, status)
                   VALUES ($1, $2, $3, $4, $5, $6)
                   RETURNING created_at`
	items, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("encode order items: %w", err)
	}
	err = r.storage.pool.QueryRow(ctx, query,
		order.ID, order.CustomerName, order.CustomerPhone, items, order.TotalPrice, order.Status,
	).Scan(&order.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domainErrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) listOrders(ctx context.Context, query string, args ...any) ([]model.Order, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) ListByCustomer(ctx context.Context, phone string) ([]model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders WHERE customer_phone=$1 ORDER BY created_at DESC`
	return r.listOrders(ctx, query, phone)
}

func (r *orderRepository) ListAll(ctx context.Context) ([]model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC`
	return r.listOrders(ctx, query)
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id string, from, to model.OrderStatus) (*model.Order, error) {
	const query = `UPDATE orders SET status=$3 WHERE id=$1 AND status=$2 RETURNING ` + orderColumns
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, id, from, to))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Either the order is gone or another writer moved it first.
			if _, getErr := r.GetByID(ctx, id); getErr != nil {
				return nil, getErr
			}
			return nil, domainErrors.ErrConflict
		}
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM orders WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- ProfileRepository implementation ---

func (r *profileRepository) GetByPhone(ctx context.Context, phone string) (*model.Profile, error) {
	const query = `SELECT phone, cancellation_count, penalty_until FROM profiles WHERE phone=$1`
	var p model.Profile
	err := r.storage.pool.QueryRow(ctx, query, phone).Scan(&p.Phone, &p.CancellationCount, &p.PenaltyUntil)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *profileRepository) CreateIfAbsent(ctx context.Context, phone string) (*model.Profile, error) {
	const query = `INSERT INTO profiles (phone) VALUES ($1)
                   ON CONFLICT (phone) DO NOTHING
                   RETURNING phone, cancellation_count, penalty_until`
	var p model.Profile
	err := r.storage.pool.QueryRow(ctx, query, phone).Scan(&p.Phone, &p.CancellationCount, &p.PenaltyUntil)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return r.GetByPhone(ctx, phone)
		}
		return nil, err
	}
	return &p, nil
}

func (r *profileRepository) Update(ctx context.Context, phone string, cancellationCount int, penaltyUntil *time.Time) (*model.Profile, error) {
	const query = `UPDATE profiles SET cancellation_count=$2, penalty_until=$3 WHERE phone=$1
                   RETURNING phone, cancellation_count, penalty_until`
	var p model.Profile
	err := r.storage.pool.QueryRow(ctx, query, phone, cancellationCount, penaltyUntil).Scan(&p.Phone, &p.CancellationCount, &p.PenaltyUntil)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// --- MessageRepository implementation ---

func (r *messageRepository) Append(ctx context.Context, message *model.Message) error {
	const query = `INSERT INTO messages (id, content, sender_id, sender_name, is_admin, recipient_id)
                   VALUES ($1, $2, $3, $4, $5, $6)
                   RETURNING created_at`
	return r.storage.pool.QueryRow(ctx, query,
		message.ID, message.Content, message.SenderID, message.SenderName, message.IsAdmin, message.RecipientID,
	).Scan(&message.CreatedAt)
}

func (r *messageRepository) Transcript(ctx context.Context, participant string) ([]model.Message, error) {
	const query = `SELECT id, created_at, content, sender_id, sender_name, is_admin, recipient_id
                   FROM messages
                   WHERE sender_id=$1 OR recipient_id=$1
                   ORDER BY created_at ASC`
	rows, err := r.storage.pool.Query(ctx, query, participant)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Message
	for rows.Next() {
		var m model.Message
		if err := rows.Scan(&m.ID, &m.CreatedAt, &m.Content, &m.SenderID, &m.SenderName, &m.IsAdmin, &m.RecipientID); err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *messageRepository) Sessions(ctx context.Context) ([]model.ChatSession, error) {
	const query = `SELECT sender_id, sender_name, content, created_at FROM (
                       SELECT DISTINCT ON (sender_id) sender_id, sender_name, content, created_at
                       FROM messages
                       WHERE is_admin = FALSE
                       ORDER BY sender_id, created_at DESC
                   ) latest
                   ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.ChatSession
	for rows.Next() {
		var s model.ChatSession
		if err := rows.Scan(&s.SenderID, &s.SenderName, &s.LastMessage, &s.LastActive); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// --- ProductRepository implementation ---

const productColumns = `id, name, price, original_price, rating, review_count, images, category, badge, created_at, updated_at`

func scanProduct(row pgx.Row) (*model.Product, error) {
	var (
		p      model.Product
		images []byte
	)
	err := row.Scan(&p.ID, &p.Name, &p.Price, &p.OriginalPrice, &p.Rating, &p.ReviewCount, &images, &p.Category, &p.Badge, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(images, &p.Images); err != nil {
		return nil, fmt.Errorf("decode product images: %w", err)
	}
	return &p, nil
}

func (r *productRepository) Create(ctx context.Context, product *model.Product) error {
	const query = `INSERT INTO products (id, name, price, original_price, rating, review_count, images, category, badge)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
                   RETURNING created_at, updated_at`
	images, err := json.Marshal(product.Images)
	if err != nil {
		return fmt.Errorf("encode product images: %w", err)
	}
	err = r.storage.pool.QueryRow(ctx, query,
		product.ID, product.Name, product.Price, product.OriginalPrice,
		product.Rating, product.ReviewCount, images, product.Category, product.Badge,
	).Scan(&product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domainErrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*model.Product, error) {
	const query = `SELECT ` + productColumns + ` FROM products WHERE id=$1`
	product, err := scanProduct(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return product, nil
}

func (r *productRepository) List(ctx context.Context) ([]model.Product, error) {
	const query = `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *product)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *productRepository) Update(ctx context.Context, product *model.Product) (*model.Product, error) {
	const query = `UPDATE products
                   SET name=$2, price=$3, original_price=$4, rating=$5, review_count=$6, images=$7, category=$8, badge=$9, updated_at=NOW()
                   WHERE id=$1
                   RETURNING ` + productColumns
	images, err := json.Marshal(product.Images)
	if err != nil {
		return nil, fmt.Errorf("encode product images: %w", err)
	}
	updated, err := scanProduct(r.storage.pool.QueryRow(ctx, query,
		product.ID, product.Name, product.Price, product.OriginalPrice,
		product.Rating, product.ReviewCount, images, product.Category, product.Badge,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (r *productRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM products WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
