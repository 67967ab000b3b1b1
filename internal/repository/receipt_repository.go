package repository

import (
	"context"
	"errors"
	"fmt"

	"spendit-receipts/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// ReceiptRepository is the storage gateway for receipts and their line
// items. The pool may be nil when the database was unreachable at startup;
// every operation then reports ErrStorageUnavailable and callers decide
// whether to degrade.
type ReceiptRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewReceiptRepository(db *pgxpool.Pool, logger *zap.Logger) *ReceiptRepository {
	return &ReceiptRepository{
		db:     db,
		logger: logger,
	}
}

// Available reports whether a connection pool was established.
func (r *ReceiptRepository) Available() bool {
	return r.db != nil
}

// Save writes the receipt and all of its line items in a single
// transaction. Either both commit or neither does.
func (r *ReceiptRepository) Save(ctx context.Context, receipt *models.Receipt, items []models.LineItem) error {
	if r.db == nil {
		return ErrStorageUnavailable
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := squirrel.Insert("receipts").
		Columns("receipt_id", "merchant_name", "total_amount", "receipt_date", "image_url", "status", "created_at").
		Values(receipt.ID, receipt.MerchantName, receipt.TotalAmount, receipt.ReceiptDate, receipt.ImageURL, receipt.Status, receipt.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("failed to insert receipt: %w", err)
	}

	if len(items) > 0 {
		builder := squirrel.Insert("receipt_items").
			Columns("receipt_id", "line_index", "item_name", "quantity", "price").
			PlaceholderFormat(squirrel.Dollar)
		for _, item := range items {
			builder = builder.Values(item.ReceiptID, item.LineIndex, item.ItemName, item.Quantity, item.Price)
		}

		sql, args, err := builder.ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			return fmt.Errorf("failed to insert receipt items: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	r.logger.Info("Receipt saved",
		zap.String("receipt_id", receipt.ID),
		zap.Int("items", len(items)),
	)

	return nil
}

// Get reads one receipt and its line items in insertion order.
func (r *ReceiptRepository) Get(ctx context.Context, id string) (*models.Receipt, []models.LineItem, error) {
	if r.db == nil {
		return nil, nil, ErrStorageUnavailable
	}

	query := squirrel.Select("receipt_id", "merchant_name", "total_amount", "receipt_date", "image_url", "status", "created_at").
		From("receipts").
		Where(squirrel.Eq{"receipt_id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, nil, err
	}

	var receipt models.Receipt
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&receipt.ID, &receipt.MerchantName, &receipt.TotalAmount, &receipt.ReceiptDate, &receipt.ImageURL, &receipt.Status, &receipt.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil, ErrReceiptNotFound
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query receipt: %w", err)
	}

	items, err := r.getItems(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	return &receipt, items, nil
}

func (r *ReceiptRepository) getItems(ctx context.Context, receiptID string) ([]models.LineItem, error) {
	query := squirrel.Select("receipt_id", "line_index", "item_name", "quantity", "price").
		From("receipt_items").
		Where(squirrel.Eq{"receipt_id": receiptID}).
		OrderBy("line_index ASC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query receipt items: %w", err)
	}
	defer rows.Close()

	var items []models.LineItem
	for rows.Next() {
		var item models.LineItem
		if err := rows.Scan(&item.ReceiptID, &item.LineIndex, &item.ItemName, &item.Quantity, &item.Price); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// Ping runs a trivial round-trip query. Callers bound it with their own
// timeout context.
func (r *ReceiptRepository) Ping(ctx context.Context) error {
	if r.db == nil {
		return ErrStorageUnavailable
	}

	var one int
	if err := r.db.QueryRow(ctx, "SELECT 1").Scan(&one); err != nil {
		return err
	}
	return nil
}

// ActiveConns reports the number of currently acquired pool connections.
func (r *ReceiptRepository) ActiveConns() int32 {
	if r.db == nil {
		return 0
	}
	return r.db.Stat().AcquiredConns()
}
