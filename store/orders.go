package store

import (
	"context"
	"fmt"

	"cafe-admin-api/apperr"
	"cafe-admin-api/models"
	"cafe-admin-api/persist"
	"cafe-admin-api/statemachine"
)

// OrderSource marks orders created from the admin dashboard
const OrderSource = "admin"

func orderID(o models.Order) string { return o.ID }

func (s *Store) reloadOrders(ctx context.Context) {
	reload(ctx, s, "orders", s.gw.ListOrders, func(items []models.Order) { s.orders = items })
}

// resolveItems snapshots name and price from the menu for every line that
// has no snapshot in prev. Unknown food ids are reported per line.
func (s *Store) resolveItems(title string, items []models.OrderItem, prev []models.OrderItem) ([]models.OrderItem, error) {
	menu := s.FoodItems()
	kept := make(map[string]models.OrderItem, len(prev))
	for _, p := range prev {
		kept[p.FoodID] = p
	}

	out := make([]models.OrderItem, len(items))
	fields := map[string]string{}
	for i, item := range items {
		if p, ok := kept[item.FoodID]; ok {
			item.Name, item.Price = p.Name, p.Price
			out[i] = item
			continue
		}
		j, ok := find(menu, item.FoodID, foodID)
		if !ok {
			fields[fmt.Sprintf("items[%d].foodId", i)] = "Select an item from the menu"
			continue
		}
		item.Name, item.Price = menu[j].Name, menu[j].Price
		out[i] = item
	}
	if len(fields) > 0 {
		return nil, apperr.Validation(title, fields)
	}
	return out, nil
}

// prepareOrder validates a new order and fills in everything the server
// owns: id, snapshots, total, status, source and timestamps.
func (s *Store) prepareOrder(title string, order models.Order) (models.Order, error) {
	if err := s.validate.Struct(title, order); err != nil {
		return models.Order{}, err
	}
	items, err := s.resolveItems(title, order.Items, nil)
	if err != nil {
		return models.Order{}, err
	}
	now := s.stamp()
	order.Items = items
	order.TotalAmount = order.ItemsTotal()
	order.Status = models.StatusPending
	order.From = OrderSource
	order.CreatedAt, order.UpdatedAt = now, now
	if order.ID == "" {
		order.ID = s.newID()
	}
	return order, nil
}

func (s *Store) AddOrder(ctx context.Context, order models.Order) (models.Order, error) {
	const title = "Add Failed"
	order.ID = ""
	order, err := s.prepareOrder(title, order)
	if err != nil {
		return models.Order{}, err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if err := s.insertOrder(ctx, title, order); err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// insertOrder stores a prepared order; callers hold writeMu
func (s *Store) insertOrder(ctx context.Context, title string, order models.Order) error {
	if s.remote() {
		if err := s.gw.AddOrder(ctx, order); err != nil {
			return apperr.Network(title, "Failed to add the order. Please try again.", err)
		}
		s.reloadOrders(ctx)
	} else if err := commitLocal(ctx, s, persist.KeyOrders, title, &s.orders, appended(s.Orders(), order)); err != nil {
		return err
	}
	s.log.Info("ORDER", fmt.Sprintf("created %s for table %s (%.2f)", order.ID, order.TableNumber, order.TotalAmount))
	return nil
}

// EditOrder replaces the customer details and line items of an order that
// is still pending or preparing. Status changes go through UpdateOrderStatus.
func (s *Store) EditOrder(ctx context.Context, order models.Order) (models.Order, error) {
	const title = "Update Failed"
	if err := s.validate.Struct(title, order); err != nil {
		return models.Order{}, err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	current := s.Orders()
	i, ok := find(current, order.ID, orderID)
	if !ok {
		return models.Order{}, apperr.NotFound("Order", order.ID)
	}
	existing := current[i]
	if !existing.Status.Editable() {
		return models.Order{}, apperr.Domain(title,
			fmt.Sprintf("Order %s is %s and can no longer be edited.", existing.ID, existing.Status),
			apperr.ErrOrderLocked)
	}

	items, err := s.resolveItems(title, order.Items, existing.Items)
	if err != nil {
		return models.Order{}, err
	}
	next := existing
	next.CustomerName = order.CustomerName
	next.TableNumber = order.TableNumber
	next.CustomerEmail = order.CustomerEmail
	next.CustomerPhoneNumber = order.CustomerPhoneNumber
	next.Items = items
	next.TotalAmount = next.ItemsTotal()
	next.UpdatedAt = s.stamp()

	if s.remote() {
		if err := s.gw.EditOrder(ctx, next); err != nil {
			return models.Order{}, apperr.Network(title, "Failed to update the order. Please try again.", err)
		}
		s.reloadOrders(ctx)
	} else if err := commitLocal(ctx, s, persist.KeyOrders, title, &s.orders, replaced(current, i, next)); err != nil {
		return models.Order{}, err
	}
	s.log.Info("ORDER", fmt.Sprintf("edited %s", next.ID))
	return next, nil
}

// UpdateOrderStatus moves an order along the lifecycle. Cancellation uses
// the dedicated cancel endpoint; every other move is an edit.
func (s *Store) UpdateOrderStatus(ctx context.Context, id string, to models.OrderStatus, changedBy string) (models.Order, error) {
	title := "Update Failed"
	if to == models.StatusCancelled {
		title = "Cancel Order Failed"
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	current := s.Orders()
	i, ok := find(current, id, orderID)
	if !ok {
		return models.Order{}, apperr.NotFound("Order", id)
	}
	from := current[i].Status
	if err := statemachine.CanTransition(from, to); err != nil {
		return models.Order{}, apperr.Domain(title, err.Error(), err)
	}

	next := current[i]
	next.Status = to
	next.UpdatedAt = s.stamp()

	if s.remote() {
		var err error
		if to == models.StatusCancelled {
			err = s.gw.CancelOrder(ctx, id)
		} else {
			err = s.gw.EditOrder(ctx, next)
		}
		if err != nil {
			return models.Order{}, apperr.Network(title, "Failed to update the order. Please try again.", err)
		}
		s.reloadOrders(ctx)
	} else if err := commitLocal(ctx, s, persist.KeyOrders, title, &s.orders, replaced(current, i, next)); err != nil {
		return models.Order{}, err
	}

	s.recordTransition(ctx, id, from, to, changedBy)
	s.log.Info("ORDER", fmt.Sprintf("%s: %s → %s", id, from, to))
	return next, nil
}

func (s *Store) CancelOrder(ctx context.Context, id, changedBy string) (models.Order, error) {
	return s.UpdateOrderStatus(ctx, id, models.StatusCancelled, changedBy)
}

// recordTransition writes the audit entry. The status change has already
// been applied, so a failed write is only logged.
func (s *Store) recordTransition(ctx context.Context, id string, from, to models.OrderStatus, changedBy string) {
	if s.audit == nil {
		return
	}
	h := &models.OrderStatusHistory{
		OrderID:    id,
		FromStatus: from,
		ToStatus:   to,
		ChangedBy:  changedBy,
		CreatedAt:  s.now(),
	}
	if err := s.audit.RecordStatusChange(ctx, h); err != nil {
		s.log.Warn("DATABASE", fmt.Sprintf("recording status change of %s: %v", id, err))
	}
}

func (s *Store) DeleteOrder(ctx context.Context, id string) error {
	const title = "Delete Failed"

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	current := s.Orders()
	i, ok := find(current, id, orderID)
	if !ok {
		return apperr.NotFound("Order", id)
	}
	if s.remote() {
		if err := s.gw.DeleteOrder(ctx, id); err != nil {
			return apperr.Network(title, "Failed to delete the order. Please try again.", err)
		}
		s.reloadOrders(ctx)
	} else if err := commitLocal(ctx, s, persist.KeyOrders, title, &s.orders, removed(current, i)); err != nil {
		return err
	}
	s.log.Info("ORDER", fmt.Sprintf("deleted %s", id))
	return nil
}
