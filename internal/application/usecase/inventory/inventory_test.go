package inventory

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dukan-ledger/backend/internal/domain/entity"
	domainerror "github.com/dukan-ledger/backend/internal/domain/error"
)

type fakeInventoryRepo struct {
	items   map[uuid.UUID]*entity.InventoryItem
	created []*entity.InventoryItem
	updated []*entity.InventoryItem
	deleted []uuid.UUID
	findErr error
}

func (r *fakeInventoryRepo) Create(ctx context.Context, item *entity.InventoryItem) error {
	r.created = append(r.created, item)
	return nil
}
func (r *fakeInventoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.InventoryItem, error) {
	if item, ok := r.items[id]; ok {
		return item, nil
	}
	return nil, errors.New("record not found")
}
func (r *fakeInventoryRepo) FindAll(ctx context.Context) ([]*entity.InventoryItem, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	out := make([]*entity.InventoryItem, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, item)
	}
	return out, nil
}
func (r *fakeInventoryRepo) Update(ctx context.Context, item *entity.InventoryItem) error {
	r.updated = append(r.updated, item)
	return nil
}
func (r *fakeInventoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.deleted = append(r.deleted, id)
	return nil
}

func item(name string, quantity, minLevel int, price, cost int64) *entity.InventoryItem {
	return entity.NewInventoryItem(name, "General", quantity, minLevel, decimal.NewFromInt(price), decimal.NewFromInt(cost))
}

func TestCreateItemUseCase(t *testing.T) {
	t.Run("persists a valid item", func(t *testing.T) {
		repo := &fakeInventoryRepo{}
		uc := NewCreateItemUseCase(repo)
		out, err := uc.Execute(context.Background(), CreateItemInput{
			Name:     "Green Tea",
			Category: "Drinks",
			Quantity: 10,
			MinLevel: 2,
			Price:    decimal.NewFromInt(5000),
			Cost:     decimal.NewFromInt(3000),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Item.Name != "Green Tea" || out.Item.Quantity != 10 {
			t.Fatalf("unexpected item: %+v", out.Item)
		}
		if len(repo.created) != 1 {
			t.Fatalf("expected one create, got %d", len(repo.created))
		}
	})

	t.Run("rejects a blank name", func(t *testing.T) {
		uc := NewCreateItemUseCase(&fakeInventoryRepo{})
		_, err := uc.Execute(context.Background(), CreateItemInput{Name: "  "})
		if !errors.Is(err, domainerror.ErrEmptyItemName) {
			t.Fatalf("expected ErrEmptyItemName, got %v", err)
		}
	})

	t.Run("rejects negative pricing", func(t *testing.T) {
		uc := NewCreateItemUseCase(&fakeInventoryRepo{})
		_, err := uc.Execute(context.Background(), CreateItemInput{Name: "Tea", Price: decimal.NewFromInt(-1)})
		if !errors.Is(err, domainerror.ErrNegativeItemPrice) {
			t.Fatalf("expected ErrNegativeItemPrice, got %v", err)
		}
	})
}

func TestUpdateItemUseCase(t *testing.T) {
	t.Run("applies only the provided fields", func(t *testing.T) {
		existing := item("Green Tea", 10, 2, 5000, 3000)
		repo := &fakeInventoryRepo{items: map[uuid.UUID]*entity.InventoryItem{existing.ID: existing}}
		uc := NewUpdateItemUseCase(repo)

		qty := 4
		out, err := uc.Execute(context.Background(), UpdateItemInput{ID: existing.ID, Quantity: &qty})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Item.Quantity != 4 {
			t.Fatalf("expected quantity 4, got %d", out.Item.Quantity)
		}
		if out.Item.Name != "Green Tea" {
			t.Fatalf("untouched field changed: %+v", out.Item)
		}
	})

	t.Run("allows a negative absolute quantity", func(t *testing.T) {
		existing := item("Green Tea", 1, 0, 5000, 3000)
		repo := &fakeInventoryRepo{items: map[uuid.UUID]*entity.InventoryItem{existing.ID: existing}}
		uc := NewUpdateItemUseCase(repo)

		qty := -2
		out, err := uc.Execute(context.Background(), UpdateItemInput{ID: existing.ID, Quantity: &qty})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Item.Quantity != -2 {
			t.Fatalf("expected quantity -2, got %d", out.Item.Quantity)
		}
	})

	t.Run("updating a missing item fails with not found", func(t *testing.T) {
		uc := NewUpdateItemUseCase(&fakeInventoryRepo{})
		_, err := uc.Execute(context.Background(), UpdateItemInput{ID: uuid.New()})
		if !errors.Is(err, domainerror.ErrInventoryItemNotFound) {
			t.Fatalf("expected ErrInventoryItemNotFound, got %v", err)
		}
	})
}

func TestDeleteItemUseCase(t *testing.T) {
	t.Run("deletes an existing item", func(t *testing.T) {
		existing := item("Green Tea", 10, 2, 5000, 3000)
		repo := &fakeInventoryRepo{items: map[uuid.UUID]*entity.InventoryItem{existing.ID: existing}}
		uc := NewDeleteItemUseCase(repo)
		if err := uc.Execute(context.Background(), DeleteItemInput{ID: existing.ID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(repo.deleted) != 1 {
			t.Fatalf("expected one delete, got %d", len(repo.deleted))
		}
	})

	t.Run("deleting a missing item fails with not found", func(t *testing.T) {
		uc := NewDeleteItemUseCase(&fakeInventoryRepo{})
		err := uc.Execute(context.Background(), DeleteItemInput{ID: uuid.New()})
		if !errors.Is(err, domainerror.ErrInventoryItemNotFound) {
			t.Fatalf("expected ErrInventoryItemNotFound, got %v", err)
		}
	})
}

func TestListItemsUseCase(t *testing.T) {
	t.Run("sums stock value at cost and counts low stock", func(t *testing.T) {
		a := item("Tea", 10, 2, 5000, 3000)   // value 30000
		b := item("Coffee", 1, 2, 8000, 6000) // value 6000, low
		repo := &fakeInventoryRepo{items: map[uuid.UUID]*entity.InventoryItem{a.ID: a, b.ID: b}}
		uc := NewListItemsUseCase(repo)

		out, err := uc.Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Items) != 2 {
			t.Fatalf("expected 2 items, got %d", len(out.Items))
		}
		if !out.TotalValue.Equal(decimal.NewFromInt(36000)) {
			t.Fatalf("expected total value 36000, got %s", out.TotalValue)
		}
		if out.LowStockCount != 1 {
			t.Fatalf("expected 1 low stock item, got %d", out.LowStockCount)
		}
	})

	t.Run("propagates repository failures", func(t *testing.T) {
		uc := NewListItemsUseCase(&fakeInventoryRepo{findErr: errors.New("db down")})
		if _, err := uc.Execute(context.Background()); err == nil {
			t.Fatal("expected an error")
		}
	})
}
