package order

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"orderhub/internal/entities"
	"orderhub/internal/repository"
	"orderhub/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const orderColumns = `id, order_number, items, subtotal, discount, tax, delivery_charge,
		total_amount, approval_status, order_status, rejection_reason, approved_at,
		payment_method, payment_status, version, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, orderEntity entities.Order) error {
	itemsJSON, err := itemsFromDomain(orderEntity.Items)
	if err != nil {
		return fmt.Errorf("encode order items: %w", err)
	}

	query := `INSERT INTO orders (id, order_number, items, subtotal, discount, tax,
			delivery_charge, total_amount, approval_status, order_status,
			payment_method, payment_status, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	_, err = r.querier.Exec(
		ctx,
		query,
		orderEntity.ID,
		orderEntity.OrderNumber,
		itemsJSON,
		orderEntity.Subtotal,
		orderEntity.Discount,
		orderEntity.Tax,
		orderEntity.DeliveryCharge,
		orderEntity.TotalAmount,
		orderEntity.ApprovalStatus.String(),
		orderEntity.OrderStatus.String(),
		orderEntity.PaymentMethod,
		orderEntity.PaymentStatus,
		orderEntity.Version,
		orderEntity.CreatedAt,
		orderEntity.UpdatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return order.ErrOrderExists
		}
		return fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return nil
}

func (r *Repository) GetByID(ctx context.Context, orderID string) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	var orderModel OrderDB
	err := r.querier.QueryRow(ctx, query, orderID).Scan(
		&orderModel.ID,
		&orderModel.OrderNumber,
		&orderModel.ItemsJSON,
		&orderModel.Subtotal,
		&orderModel.Discount,
		&orderModel.Tax,
		&orderModel.DeliveryCharge,
		&orderModel.TotalAmount,
		&orderModel.ApprovalStatus,
		&orderModel.OrderStatus,
		&orderModel.RejectionReason,
		&orderModel.ApprovedAt,
		&orderModel.PaymentMethod,
		&orderModel.PaymentStatus,
		&orderModel.Version,
		&orderModel.CreatedAt,
		&orderModel.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	orderEntity, err := ToDomain(&orderModel)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	history, err := r.GetHistory(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}
	orderEntity.History = history

	return orderEntity, nil
}

func (r *Repository) List(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	builder := qb.
		Select(orderColumns).
		From("orders")

	if filter.Since != nil {
		builder = builder.Where(sq.GtOrEq{"updated_at": *filter.Since})
	}
	if filter.OrderStatus != nil {
		builder = builder.Where(sq.Eq{"order_status": filter.OrderStatus.String()})
	}
	if filter.ApprovalStatus != nil {
		builder = builder.Where(sq.Eq{"approval_status": filter.ApprovalStatus.String()})
	}

	builder = builder.OrderBy("created_at DESC")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}
	defer rows.Close()

	orderEntities := make([]entities.Order, 0, 16)
	for rows.Next() {
		var orderModel OrderDB
		err := rows.Scan(
			&orderModel.ID,
			&orderModel.OrderNumber,
			&orderModel.ItemsJSON,
			&orderModel.Subtotal,
			&orderModel.Discount,
			&orderModel.Tax,
			&orderModel.DeliveryCharge,
			&orderModel.TotalAmount,
			&orderModel.ApprovalStatus,
			&orderModel.OrderStatus,
			&orderModel.RejectionReason,
			&orderModel.ApprovedAt,
			&orderModel.PaymentMethod,
			&orderModel.PaymentStatus,
			&orderModel.Version,
			&orderModel.CreatedAt,
			&orderModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository list error: %w", err)
		}

		orderEntity, err := ToDomain(&orderModel)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository list error: %w", err)
		}
		orderEntities = append(orderEntities, *orderEntity)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	return orderEntities, nil
}

// Update применяет частичное обновление с инкрементом версии. Запрос попадает
// только в строку с ожидаемой версией: проигравший гонку получает ErrVersionConflict.
func (r *Repository) Update(ctx context.Context, orderID string, expectedVersion int64, modify entities.OrderModify) (*entities.Order, error) {
	builder := qb.
		Update("orders")

	// опциональные поля
	if modify.ApprovalStatus != nil {
		builder = builder.Set("approval_status", modify.ApprovalStatus.String())
	}
	if modify.OrderStatus != nil {
		builder = builder.Set("order_status", modify.OrderStatus.String())
	}
	if modify.RejectionReason != nil {
		builder = builder.Set("rejection_reason", *modify.RejectionReason)
	}
	if modify.ApprovedAt != nil {
		builder = builder.Set("approved_at", *modify.ApprovedAt)
	}
	if modify.DeliveryCharge != nil {
		builder = builder.Set("delivery_charge", *modify.DeliveryCharge)
	}
	if modify.TotalAmount != nil {
		builder = builder.Set("total_amount", *modify.TotalAmount)
	}

	builder = builder.
		Set("version", sq.Expr("version + 1")).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": orderID, "version": expectedVersion}).
		Suffix("RETURNING " + orderColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	var orderModel OrderDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(
		&orderModel.ID,
		&orderModel.OrderNumber,
		&orderModel.ItemsJSON,
		&orderModel.Subtotal,
		&orderModel.Discount,
		&orderModel.Tax,
		&orderModel.DeliveryCharge,
		&orderModel.TotalAmount,
		&orderModel.ApprovalStatus,
		&orderModel.OrderStatus,
		&orderModel.RejectionReason,
		&orderModel.ApprovedAt,
		&orderModel.PaymentMethod,
		&orderModel.PaymentStatus,
		&orderModel.Version,
		&orderModel.CreatedAt,
		&orderModel.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.resolveUpdateMiss(ctx, orderID)
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrSerializationFailure) {
			return nil, order.ErrVersionConflict
		}
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	return ToDomain(&orderModel)
}

// resolveUpdateMiss различает отсутствующий заказ и проигранную гонку версий.
func (r *Repository) resolveUpdateMiss(ctx context.Context, orderID string) error {
	var exists bool
	err := r.querier.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM orders WHERE id = $1)`, orderID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("unexpected order repository update error: %w", err)
	}
	if exists {
		return order.ErrVersionConflict
	}
	return order.ErrOrderNotFound
}

func (r *Repository) AppendHistory(ctx context.Context, orderID string, entry entities.HistoryEntry) error {
	query := `INSERT INTO order_history (order_id, status, note, created_at)
		VALUES ($1, $2, $3, $4)`

	_, err := r.querier.Exec(ctx, query, orderID, entry.Status, entry.Note, entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("unexpected order repository appendhistory error: %w", err)
	}

	return nil
}

func (r *Repository) GetHistory(ctx context.Context, orderID string) ([]entities.HistoryEntry, error) {
	// порядок строго по id: это порядок фиксации, записи никогда не правятся
	query := `SELECT id, order_id, status, note, created_at
		FROM order_history
		WHERE order_id = $1
		ORDER BY id`

	rows, err := r.querier.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository gethistory error: %w", err)
	}
	defer rows.Close()

	entryModels := make([]HistoryEntryDB, 0, 8)
	for rows.Next() {
		var entryModel HistoryEntryDB
		err := rows.Scan(
			&entryModel.ID,
			&entryModel.OrderID,
			&entryModel.Status,
			&entryModel.Note,
			&entryModel.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository gethistory error: %w", err)
		}
		entryModels = append(entryModels, entryModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository gethistory error: %w", err)
	}

	return historyToDomain(entryModels), nil
}
