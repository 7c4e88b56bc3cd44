package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Radithya02/Catering-Food/internal/entity"
)

var (
	ErrDuplicate           = errors.New("duplicate idempotency key")
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// InsufficientBalanceError carries the computed total and the balance it was
// checked against so handlers can show the shortfall. errors.Is matches it
// against ErrInsufficientBalance.
type InsufficientBalanceError struct {
	Total   entity.Money
	Balance entity.Money
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance: order total %s, balance %s", e.Total, e.Balance)
}

func (e *InsufficientBalanceError) Unwrap() error { return ErrInsufficientBalance }

type OrderLineInput struct {
	FoodID   string
	Quantity int
}

type PlaceOrderInput struct {
	Username       string
	IdempotencyKey string
	Lines          []OrderLineInput
}

type PlaceOrderOutput struct {
	OrderID   string
	Total     entity.Money
	CreatedAt time.Time
	Replayed  bool
}

// PlaceOrder runs the whole placement: build the order from catalog lookups,
// settle it against the account, persist and publish. A rejected order is
// discarded; nothing about the account changes.
type PlaceOrder struct {
	users  UserRepo
	menu   FoodRepo
	cache  CatalogCache     // optional
	idem   IdempotencyStore // optional
	events OrderEvents      // optional, best-effort
	locks  *AccountLocks

	newID func() string
	now   func() time.Time
}

// NewPlaceOrder wires the placement workflow. Pass the same locks instance to
// every usecase that shares the store; nil allocates a private registry.
func NewPlaceOrder(users UserRepo, menu FoodRepo, cache CatalogCache, idem IdempotencyStore, events OrderEvents, locks *AccountLocks) *PlaceOrder {
	if locks == nil {
		locks = NewAccountLocks()
	}
	return &PlaceOrder{
		users:  users,
		menu:   menu,
		cache:  cache,
		idem:   idem,
		events: events,
		locks:  locks,
		newID:  uuid.NewString,
		now:    time.Now,
	}
}

func (uc *PlaceOrder) Execute(ctx context.Context, in PlaceOrderInput) (PlaceOrderOutput, error) {
	locked := false
	if uc.idem != nil && in.IdempotencyKey != "" {
		// Fast path: a replayed request returns the order it already produced.
		if id, ok, _ := uc.idem.Recall(ctx, in.Username, in.IdempotencyKey); ok {
			return PlaceOrderOutput{OrderID: id, Replayed: true}, nil
		}
		ok, err := uc.idem.TryLock(ctx, in.Username, in.IdempotencyKey)
		if err != nil {
			return PlaceOrderOutput{}, err
		}
		if !ok {
			return PlaceOrderOutput{}, ErrDuplicate
		}
		locked = true
	}

	out, err := uc.place(ctx, in)
	if err != nil {
		// A failed attempt frees the key; the client may retry it.
		if locked {
			_ = uc.idem.Release(ctx, in.Username, in.IdempotencyKey)
		}
		return PlaceOrderOutput{}, err
	}

	if locked {
		_ = uc.idem.Remember(ctx, in.Username, in.IdempotencyKey, out.OrderID)
	}
	return out, nil
}

func (uc *PlaceOrder) place(ctx context.Context, in PlaceOrderInput) (PlaceOrderOutput, error) {
	order := entity.NewOrder(uc.newID(), in.Username, uc.now())
	for _, line := range in.Lines {
		food, err := uc.lookupFood(ctx, line.FoodID)
		if err != nil {
			return PlaceOrderOutput{}, err
		}
		if err := order.AddItem(food, line.Quantity); err != nil {
			return PlaceOrderOutput{}, err
		}
	}

	// Load, settle and save hold the account lock as one critical section;
	// the store may restore a fresh aggregate on every load.
	release := uc.locks.Acquire(in.Username)
	defer release()

	user, err := uc.users.FindByUsername(ctx, in.Username)
	if err != nil {
		return PlaceOrderOutput{}, err
	}

	total, ok := user.Settle(order)
	if !ok {
		return PlaceOrderOutput{}, &InsufficientBalanceError{Total: total, Balance: user.Balance()}
	}

	if err := uc.users.Save(ctx, user); err != nil {
		return PlaceOrderOutput{}, err
	}

	if uc.events != nil {
		_ = uc.events.PublishSettled(ctx, settledMsg(order, total))
	}

	return PlaceOrderOutput{OrderID: order.ID(), Total: total, CreatedAt: order.CreatedAt()}, nil
}

func (uc *PlaceOrder) lookupFood(ctx context.Context, id string) (entity.Food, error) {
	if uc.cache != nil {
		if food, ok, err := uc.cache.GetFood(ctx, id); err == nil && ok {
			return food, nil
		}
	}
	food, err := uc.menu.FindByID(ctx, id)
	if err != nil {
		return entity.Food{}, err
	}
	if uc.cache != nil {
		_ = uc.cache.SetFood(ctx, food)
	}
	return food, nil
}

func settledMsg(order *entity.Order, total entity.Money) SettledMsg {
	msg := SettledMsg{
		OrderID:   order.ID(),
		Username:  order.Username(),
		Total:     total.Amount().String(),
		CreatedAt: order.CreatedAt().UTC().Format(time.RFC3339),
	}
	for _, item := range order.Items() {
		msg.Lines = append(msg.Lines, SettledLine{
			FoodID:   item.Food().ID,
			Name:     item.Food().Name,
			Quantity: item.Quantity(),
			Subtotal: item.Subtotal().Amount().String(),
		})
	}
	return msg
}
