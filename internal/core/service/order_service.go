package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/pizzahub/ordering-system/internal/core/domain"
	"github.com/pizzahub/ordering-system/internal/core/ports"
)

// DedupChecker abstracts the short-lived double-submit store (Redis). Claim
// must be atomic so two concurrent identical checkouts cannot both succeed.
type DedupChecker interface {
	// Claim records the fingerprint and reports whether this caller won it.
	// A false result means an identical checkout already holds the claim.
	Claim(ctx context.Context, fingerprint string) (bool, error)
	// Release frees a claimed fingerprint after a failed insert so a retry
	// is not counted as a duplicate.
	Release(ctx context.Context, fingerprint string) error
}

type orderService struct {
	orders ports.OrderRepository
	menu   ports.MenuRepository
	dedup  DedupChecker
	log    zerolog.Logger
}

// NewOrderService returns an OrderService implementation.
func NewOrderService(orders ports.OrderRepository, menu ports.MenuRepository, dedup DedupChecker, log zerolog.Logger) ports.OrderService {
	return &orderService{orders: orders, menu: menu, dedup: dedup, log: log}
}

// PlaceOrder validates the submitted lines, recomputes the total from
// authoritative catalog prices, and persists the order atomically. Client
// prices and totals are never trusted; the catalog price at order time is
// captured on each line so later menu changes cannot alter history.
func (s *orderService) PlaceOrder(ctx context.Context, input ports.PlaceOrderInput) (*ports.PlaceOrderResult, error) {
	if len(input.Lines) == 0 {
		return nil, domain.ErrEmptyOrder
	}

	ids := make([]int64, 0, len(input.Lines))
	for _, line := range input.Lines {
		if line.Quantity < 1 {
			return nil, domain.ErrInvalidQuantity
		}
		ids = append(ids, line.ItemID)
	}

	// Idempotency-Key replay: a repeated key returns the original order
	// without touching storage. The key is only honoured for its owner;
	// another user's key falls through and hits the unique index instead,
	// so no foreign order data ever leaks.
	if input.IdempotencyKey != "" {
		existing, err := s.orders.FindByIdempotencyKey(ctx, input.IdempotencyKey)
		if err == nil && existing != nil && existing.UserID == input.UserID {
			s.log.Info().
				Str("idempotency_key", input.IdempotencyKey).
				Int64("order_id", existing.ID).
				Msg("idempotent replay")
			return &ports.PlaceOrderResult{
				OrderID:        existing.ID,
				Total:          existing.Total,
				Status:         string(existing.Status),
				CreatedAt:      existing.CreatedAt,
				AlreadyExisted: true,
			}, nil
		}
	}

	items, err := s.menu.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("place order: load items: %w", err)
	}

	now := time.Now().UTC()
	order := &domain.Order{
		UserID:         input.UserID,
		Status:         domain.StatusPending,
		Address:        input.Delivery.Address,
		Phone:          input.Delivery.Phone,
		Comment:        input.Delivery.Comment,
		DeliveryTime:   input.Delivery.ScheduledTime,
		IdempotencyKey: input.IdempotencyKey,
		CreatedAt:      now,
	}

	var total int64
	for _, line := range input.Lines {
		item, ok := items[line.ItemID]
		if !ok {
			return nil, fmt.Errorf("place order: item %d: %w", line.ItemID, domain.ErrItemNotFound)
		}
		order.Lines = append(order.Lines, domain.OrderLine{
			ItemID:    item.ID,
			ItemName:  item.Name,
			Quantity:  line.Quantity,
			UnitPrice: item.Price,
		})
		total += item.Price * int64(line.Quantity)
	}
	if input.Extras.Cheese {
		total += domain.ExtraCheesePrice
	}
	if input.Extras.Meat {
		total += domain.ExtraMeatPrice
	}
	order.Total = total

	// Double-submit guard for clients that send no idempotency key: the
	// fingerprint is claimed atomically before the insert, so of two
	// concurrent identical checkouts exactly one commits.
	fingerprint := checkoutFingerprint(input)
	claimed := false
	if s.dedup != nil {
		won, err := s.dedup.Claim(ctx, fingerprint)
		if err != nil {
			s.log.Warn().Err(err).Msg("dedup claim failed, processing anyway")
		} else if !won {
			s.log.Info().Int64("user_id", input.UserID).Msg("duplicate checkout rejected")
			return nil, domain.ErrDuplicateOrder
		} else {
			claimed = true
		}
	}

	if err := s.orders.CreateWithLines(ctx, order); err != nil {
		if claimed {
			if relErr := s.dedup.Release(ctx, fingerprint); relErr != nil {
				s.log.Warn().Err(relErr).Msg("failed to release dedup claim")
			}
		}
		s.log.Error().Err(err).Int64("user_id", input.UserID).Msg("failed to create order")
		return nil, err
	}

	s.log.Info().
		Int64("order_id", order.ID).
		Int64("user_id", input.UserID).
		Int64("total", order.Total).
		Int("lines", len(order.Lines)).
		Msg("order placed")

	return &ports.PlaceOrderResult{
		OrderID:   order.ID,
		Total:     order.Total,
		Status:    string(order.Status),
		CreatedAt: order.CreatedAt,
	}, nil
}

// ListOrders returns the caller's orders newest-first with their lines.
func (s *orderService) ListOrders(ctx context.Context, userID int64) ([]ports.OrderView, error) {
	orders, err := s.orders.ListByUser(ctx, userID)
	if err != nil {
		s.log.Error().Err(err).Int64("user_id", userID).Msg("failed to list orders")
		return nil, err
	}

	views := make([]ports.OrderView, 0, len(orders))
	for _, o := range orders {
		view := ports.OrderView{
			ID:           o.ID,
			Total:        o.Total,
			Status:       string(o.Status),
			Address:      o.Address,
			Phone:        o.Phone,
			Comment:      o.Comment,
			DeliveryTime: o.DeliveryTime,
			CreatedAt:    o.CreatedAt,
		}
		for _, l := range o.Lines {
			view.Items = append(view.Items, ports.OrderLineView{
				ItemID:    l.ItemID,
				ItemName:  l.ItemName,
				Quantity:  l.Quantity,
				UnitPrice: l.UnitPrice,
			})
		}
		views = append(views, view)
	}
	return views, nil
}

// checkoutFingerprint hashes the parts of a checkout that make two submits
// "the same order": user, line set, extras and address.
func checkoutFingerprint(input ports.PlaceOrderInput) string {
	lines := make([]string, 0, len(input.Lines))
	for _, l := range input.Lines {
		lines = append(lines, fmt.Sprintf("%d:%d", l.ItemID, l.Quantity))
	}
	sort.Strings(lines)

	h := sha256.New()
	fmt.Fprintf(h, "%d|%s|%v|%v|%s",
		input.UserID, strings.Join(lines, ","), input.Extras.Cheese, input.Extras.Meat, input.Delivery.Address)
	return hex.EncodeToString(h.Sum(nil))
}
