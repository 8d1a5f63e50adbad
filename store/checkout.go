package store

import (
	"context"
	"fmt"

	"cafe-admin-api/apperr"
	"cafe-admin-api/gateway"
	"cafe-admin-api/models"
	"cafe-admin-api/persist"
)

// PaymentPaid is the only check-payment status that completes a checkout
const PaymentPaid = "PAID"

// Checkout is a pending order waiting for its payment link to be paid
type Checkout struct {
	LinkID      string       `json:"linkId"`
	RedirectURL string       `json:"redirectUrl"`
	Order       models.Order `json:"order"`
}

// StartCheckout creates a payment link for a new order. The order is kept
// under checkout:<id> until CompleteCheckout confirms the payment.
func (s *Store) StartCheckout(ctx context.Context, order models.Order) (Checkout, error) {
	const title = "Checkout Failed"
	order.ID = ""
	order, err := s.prepareOrder(title, order)
	if err != nil {
		return Checkout{}, err
	}

	url, err := s.gw.CreatePaymentLink(ctx, gateway.PaymentRequest{
		ID:                  order.ID,
		CustomerName:        order.CustomerName,
		CustomerEmail:       order.CustomerEmail,
		CustomerPhoneNumber: order.CustomerPhoneNumber,
		TotalAmount:         order.TotalAmount,
		From:                OrderSource,
	})
	if err != nil {
		return Checkout{}, apperr.Network(title, "Failed to create the payment link. Please try again.", err)
	}
	if err := persist.SaveWithTTL(ctx, s.kv, persist.CheckoutKey(order.ID), order, persist.CheckoutTTL); err != nil {
		return Checkout{}, apperr.Storage(title, err)
	}

	s.log.LogPayment(order.ID, "link created")
	return Checkout{LinkID: order.ID, RedirectURL: url, Order: order}, nil
}

// CompleteCheckout checks the payment behind linkID and, once it is paid,
// adds the pending order with the link id as its id.
func (s *Store) CompleteCheckout(ctx context.Context, linkID string) (models.Order, error) {
	const title = "Payment Failed"

	var order models.Order
	found, err := s.kv.Load(ctx, persist.CheckoutKey(linkID), &order)
	if err != nil {
		return models.Order{}, apperr.Storage(title, err)
	}
	if !found {
		return models.Order{}, apperr.NotFound("Checkout", linkID)
	}

	status, err := s.gw.CheckPayment(ctx, linkID)
	if err != nil {
		return models.Order{}, apperr.Network(title, "Failed to verify the payment. Please try again.", err)
	}
	s.log.LogPayment(linkID, status)
	if status != PaymentPaid {
		return models.Order{}, apperr.Domain(title,
			fmt.Sprintf("Payment is %s. The order was not placed.", status),
			apperr.ErrPaymentNotPaid)
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if _, exists := find(s.Orders(), linkID, orderID); exists {
		return models.Order{}, apperr.Domain(title, "This payment has already been used to place an order.", nil)
	}
	order.ID = linkID
	if err := s.insertOrder(ctx, title, order); err != nil {
		return models.Order{}, err
	}
	if err := s.kv.Delete(ctx, persist.CheckoutKey(linkID)); err != nil {
		s.log.Warn("STORE", fmt.Sprintf("removing checkout %s: %v", linkID, err))
	}
	return order, nil
}

// Reorder sends a copy of an existing order through checkout as pending
func (s *Store) Reorder(ctx context.Context, id string) (Checkout, error) {
	original, err := s.Order(id)
	if err != nil {
		return Checkout{}, err
	}
	cp := original
	cp.Items = append([]models.OrderItem(nil), original.Items...)
	return s.StartCheckout(ctx, cp)
}
