package store

import (
	"context"
	"fmt"
	"strings"

	"cafe-admin-api/apperr"
	"cafe-admin-api/models"
	"cafe-admin-api/persist"
)

func foodID(f models.FoodItem) string { return f.ID }

func (s *Store) reloadFood(ctx context.Context) {
	reload(ctx, s, "food items", s.gw.ListFood, func(items []models.FoodItem) { s.food = items })
}

// nameTaken reports whether another item already uses name, ignoring case
func nameTaken(items []models.FoodItem, name, exceptID string) bool {
	for _, f := range items {
		if f.ID != exceptID && strings.EqualFold(strings.TrimSpace(f.Name), strings.TrimSpace(name)) {
			return true
		}
	}
	return false
}

func (s *Store) AddFood(ctx context.Context, item models.FoodItem) (models.FoodItem, error) {
	const title = "Add Failed"
	if err := s.validate.Struct(title, item); err != nil {
		return models.FoodItem{}, err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if nameTaken(s.FoodItems(), item.Name, "") {
		return models.FoodItem{}, apperr.Domain(title, fmt.Sprintf("A menu item named %q already exists.", item.Name), apperr.ErrDuplicateName)
	}
	item.ID = s.newID()
	item = item.WithDefaults()

	if s.remote() {
		if err := s.gw.AddFood(ctx, item); err != nil {
			return models.FoodItem{}, apperr.Network(title, "Failed to add the menu item. Please try again.", err)
		}
		s.reloadFood(ctx)
	} else if err := commitLocal(ctx, s, persist.KeyFoodItems, title, &s.food, appended(s.FoodItems(), item)); err != nil {
		return models.FoodItem{}, err
	}
	s.log.Info("FOOD", fmt.Sprintf("added %s (%s)", item.Name, item.ID))
	return item, nil
}

func (s *Store) UpdateFood(ctx context.Context, item models.FoodItem) (models.FoodItem, error) {
	const title = "Update Failed"
	if err := s.validate.Struct(title, item); err != nil {
		return models.FoodItem{}, err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	current := s.FoodItems()
	i, ok := find(current, item.ID, foodID)
	if !ok {
		return models.FoodItem{}, apperr.NotFound("Food Item", item.ID)
	}
	if nameTaken(current, item.Name, item.ID) {
		return models.FoodItem{}, apperr.Domain(title, fmt.Sprintf("A menu item named %q already exists.", item.Name), apperr.ErrDuplicateName)
	}
	item = item.WithDefaults()

	if s.remote() {
		if err := s.gw.UpdateFood(ctx, item); err != nil {
			return models.FoodItem{}, apperr.Network(title, "Failed to update the menu item. Please try again.", err)
		}
		s.reloadFood(ctx)
	} else if err := commitLocal(ctx, s, persist.KeyFoodItems, title, &s.food, replaced(current, i, item)); err != nil {
		return models.FoodItem{}, err
	}
	s.log.Info("FOOD", fmt.Sprintf("updated %s", item.ID))
	return item, nil
}

// DeleteFood refuses to remove an item that any current order references
func (s *Store) DeleteFood(ctx context.Context, id string) error {
	const title = "Delete Failed"

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	current := s.FoodItems()
	i, ok := find(current, id, foodID)
	if !ok {
		return apperr.NotFound("Food Item", id)
	}
	for _, o := range s.Orders() {
		if o.References(id) {
			return apperr.Domain(title,
				fmt.Sprintf("%s is part of order %s and cannot be deleted.", current[i].Name, o.ID),
				apperr.ErrFoodReferenced)
		}
	}

	if s.remote() {
		if err := s.gw.DeleteFood(ctx, id); err != nil {
			return apperr.Network(title, "Failed to delete the menu item. Please try again.", err)
		}
		s.reloadFood(ctx)
	} else if err := commitLocal(ctx, s, persist.KeyFoodItems, title, &s.food, removed(current, i)); err != nil {
		return err
	}
	s.log.Info("FOOD", fmt.Sprintf("deleted %s", id))
	return nil
}
