package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Radithya02/Catering-Food/internal/entity"
	"github.com/Radithya02/Catering-Food/internal/usecase"
)

// MySQLUserRepo persists the account aggregate: the users row carries the
// balance, settled orders land in orders/order_items. History rows are
// insert-only, so Save can replay the whole aggregate with INSERT IGNORE.
type MySQLUserRepo struct{ db *sql.DB }

func NewMySQLUserRepo(db *sql.DB) *MySQLUserRepo { return &MySQLUserRepo{db: db} }

func (r *MySQLUserRepo) Save(ctx context.Context, u *entity.User) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
INSERT INTO users (username, password, balance)
VALUES (?,?,?)
ON DUPLICATE KEY UPDATE balance = VALUES(balance)`,
		u.Username(), u.Password(), u.Balance().Amount().String())
	if err != nil {
		return fmt.Errorf("save user: %w", err)
	}

	for _, o := range u.OrderHistory() {
		res, err := tx.ExecContext(ctx, `
INSERT IGNORE INTO orders (id, username, total, created_at)
VALUES (?,?,?,?)`,
			o.ID(), o.Username(), o.TotalPrice().Amount().String(), o.CreatedAt())
		if err != nil {
			return fmt.Errorf("save order: %w", err)
		}
		rows, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if rows == 0 {
			continue // already persisted
		}
		for n, item := range o.Items() {
			_, err := tx.ExecContext(ctx, `
INSERT INTO order_items (order_id, line_no, food_id, name, description, unit_price, quantity)
VALUES (?,?,?,?,?,?,?)`,
				o.ID(), n, item.Food().ID, item.Food().Name, item.Food().Description,
				item.Food().Price.Amount().String(), item.Quantity())
			if err != nil {
				return fmt.Errorf("save order item: %w", err)
			}
		}
	}

	return tx.Commit()
}

func (r *MySQLUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT username, password, balance FROM users WHERE username = ?`, username)

	var name, password, balanceStr string
	if err := row.Scan(&name, &password, &balanceStr); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}

	balance, err := entity.NewMoneyFromString(balanceStr)
	if err != nil {
		return nil, fmt.Errorf("stored balance for %s: %w", name, err)
	}

	history, err := r.loadHistory(ctx, name)
	if err != nil {
		return nil, err
	}

	return entity.RestoreUser(name, password, balance, history), nil
}

func (r *MySQLUserRepo) loadHistory(ctx context.Context, username string) ([]*entity.Order, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT o.id, o.created_at, i.food_id, i.name, i.description, i.unit_price, i.quantity
FROM orders o
JOIN order_items i ON i.order_id = o.id
WHERE o.username = ?
ORDER BY o.created_at, o.id, i.line_no`, username)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var (
		history []*entity.Order
		current *orderRows
	)
	flush := func() error {
		if current == nil {
			return nil
		}
		o, err := current.restore(username)
		if err != nil {
			return err
		}
		history = append(history, o)
		current = nil
		return nil
	}

	for rows.Next() {
		var rec orderItemRow
		if err := rows.Scan(&rec.orderID, &rec.createdAt, &rec.foodID, &rec.name,
			&rec.description, &rec.unitPrice, &rec.quantity); err != nil {
			return nil, err
		}
		if current == nil || current.id != rec.orderID {
			if err := flush(); err != nil {
				return nil, err
			}
			current = &orderRows{id: rec.orderID, createdAt: rec.createdAt}
		}
		current.items = append(current.items, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return history, nil
}

type orderItemRow struct {
	orderID     string
	createdAt   sql.NullTime
	foodID      string
	name        string
	description string
	unitPrice   string
	quantity    int
}

type orderRows struct {
	id        string
	createdAt sql.NullTime
	items     []orderItemRow
}

func (g *orderRows) restore(username string) (*entity.Order, error) {
	items := make([]entity.OrderItem, 0, len(g.items))
	for _, rec := range g.items {
		price, err := entity.NewMoneyFromString(rec.unitPrice)
		if err != nil {
			return nil, fmt.Errorf("stored price on order %s: %w", g.id, err)
		}
		item, err := entity.NewOrderItem(entity.Food{
			ID:          rec.foodID,
			Name:        rec.name,
			Description: rec.description,
			Price:       price,
		}, rec.quantity)
		if err != nil {
			return nil, fmt.Errorf("stored line on order %s: %w", g.id, err)
		}
		items = append(items, item)
	}
	return entity.RestoreOrder(g.id, username, g.createdAt.Time, items, true), nil
}

var _ usecase.UserRepo = (*MySQLUserRepo)(nil)
