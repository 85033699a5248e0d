package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Zhouyuxin4/Scalor/internal/domain"
)

func TestProductsAreUserScoped(t *testing.T) {
	db := New()
	ctx := context.Background()

	p, err := db.CreateProduct(ctx, domain.Product{UserID: 1, Name: "Banana"})
	if err != nil {
		t.Fatal(err)
	}

	got, err := db.GetProductByID(ctx, 2, p.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Fatal("another user's product must not be visible")
	}

	byName, err := db.FindProductByName(ctx, 2, "Banana")
	if err != nil {
		t.Fatal(err)
	}
	if byName != nil {
		t.Fatal("name lookup must not cross users")
	}
}

func TestFindProductByNameIsCaseInsensitive(t *testing.T) {
	db := New()
	ctx := context.Background()

	p, err := db.CreateProduct(ctx, domain.Product{UserID: 1, Name: "Fuji Apple"})
	if err != nil {
		t.Fatal(err)
	}

	got, err := db.FindProductByName(ctx, 1, "fuji apple")
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || got.ID != p.ID {
		t.Fatalf("expected a case-insensitive hit, got %+v", got)
	}
}

func TestFindProductByLibraryRefIgnoresEmptyRef(t *testing.T) {
	db := New()
	ctx := context.Background()

	if _, err := db.CreateProduct(ctx, domain.Product{UserID: 1, Name: "Banana"}); err != nil {
		t.Fatal(err)
	}

	got, err := db.FindProductByLibraryRef(ctx, 1, "")
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Fatal("empty ref must never match a product without a catalog link")
	}
}

func TestUpdateProductAggregatesIsAtomic(t *testing.T) {
	db := New()
	ctx := context.Background()

	p, err := db.CreateProduct(ctx, domain.Product{UserID: 1, Name: "Banana"})
	if err != nil {
		t.Fatal(err)
	}

	const n = 50
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			_, _ = db.UpdateProductAggregates(ctx, 1, p.ID, func(p *domain.Product) error {
				p.TotalPriceRecords++
				return nil
			})
		}()
	}
	wg.Wait()

	got, err := db.GetProductByID(ctx, 1, p.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.TotalPriceRecords != n {
		t.Fatalf("lost updates: expected %d, got %d", n, got.TotalPriceRecords)
	}
}

func TestUpdateProductAggregatesRollsBackOnError(t *testing.T) {
	db := New()
	ctx := context.Background()

	p, err := db.CreateProduct(ctx, domain.Product{UserID: 1, Name: "Banana"})
	if err != nil {
		t.Fatal(err)
	}

	_, err = db.UpdateProductAggregates(ctx, 1, p.ID, func(p *domain.Product) error {
		p.TotalPriceRecords = 99
		return context.Canceled
	})
	if err == nil {
		t.Fatal("expected the callback error")
	}

	got, _ := db.GetProductByID(ctx, 1, p.ID)
	if got.TotalPriceRecords != 0 {
		t.Fatalf("failed update must not be persisted, got %d", got.TotalPriceRecords)
	}
}

func TestListPriceRecordsByProductOrderAndLimit(t *testing.T) {
	db := New()
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		_, err := db.CreatePriceRecord(ctx, domain.PriceRecord{
			UserID:        1,
			UserProductID: "prod-1",
			RecordedAt:    base.Add(time.Duration(i) * time.Hour),
		})
		if err != nil {
			t.Fatal(err)
		}
	}

	recs, err := db.ListPriceRecordsByProduct(ctx, 1, "prod-1", 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected limit 2, got %d", len(recs))
	}
	if !recs[0].RecordedAt.After(recs[1].RecordedAt) {
		t.Fatalf("expected most recent first, got %v then %v", recs[0].RecordedAt, recs[1].RecordedAt)
	}
}

func TestDeletePriceRecordsByProduct(t *testing.T) {
	db := New()
	ctx := context.Background()

	for _, productID := range []string{"prod-1", "prod-1", "prod-2"} {
		if _, err := db.CreatePriceRecord(ctx, domain.PriceRecord{UserID: 1, UserProductID: productID}); err != nil {
			t.Fatal(err)
		}
	}

	if err := db.DeletePriceRecordsByProduct(ctx, 1, "prod-1"); err != nil {
		t.Fatal(err)
	}

	gone, _ := db.ListPriceRecordsByProduct(ctx, 1, "prod-1", 0)
	if len(gone) != 0 {
		t.Fatalf("expected prod-1 records gone, got %d", len(gone))
	}
	kept, _ := db.ListPriceRecordsByProduct(ctx, 1, "prod-2", 0)
	if len(kept) != 1 {
		t.Fatalf("expected prod-2 records kept, got %d", len(kept))
	}
}

func TestUserAndSessionLifecycle(t *testing.T) {
	db := New()
	ctx := context.Background()

	u, err := db.CreateUser(ctx, "alice", "hash")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.CreateUser(ctx, "alice", "hash"); err == nil {
		t.Fatal("duplicate username must be rejected")
	}
	if n, _ := db.CountUsers(ctx); n != 1 {
		t.Fatalf("expected 1 user, got %d", n)
	}

	sessions := NewSessionRepo(db)
	if err := sessions.Create(ctx, u.ID, "tok", "agent", "127.0.0.1", time.Now().Add(time.Hour)); err != nil {
		t.Fatal(err)
	}
	s, err := sessions.GetByToken(ctx, "tok")
	if err != nil {
		t.Fatal(err)
	}
	if s == nil || s.UserID != u.ID || s.UserAgent != "agent" {
		t.Fatalf("unexpected session: %+v", s)
	}

	if err := sessions.Create(ctx, u.ID, "old", "agent", "127.0.0.1", time.Now().Add(-time.Minute)); err != nil {
		t.Fatal(err)
	}
	if err := sessions.DeleteExpired(ctx); err != nil {
		t.Fatal(err)
	}
	if s, _ := sessions.GetByToken(ctx, "old"); s != nil {
		t.Fatal("expired session must be purged")
	}
	if s, _ := sessions.GetByToken(ctx, "tok"); s == nil {
		t.Fatal("live session must survive the purge")
	}
}

func TestShoppingListItemsAreIsolated(t *testing.T) {
	db := New()
	ctx := context.Background()

	items := []domain.ShoppingItem{{Name: "Eggs", Quantity: 2}}
	l, err := db.CreateShoppingList(ctx, domain.ShoppingList{UserID: 1, Name: "Weekly run", Items: items})
	if err != nil {
		t.Fatal(err)
	}

	// Mutating the caller's slices must not reach into the store.
	items[0].Name = "changed"
	l.Items[0].Quantity = 99

	got, err := db.GetShoppingListByID(ctx, 1, l.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Items[0].Name != "Eggs" || got.Items[0].Quantity != 2 {
		t.Fatalf("stored items aliased caller memory: %+v", got.Items)
	}

	if err := db.UpdateShoppingListItems(ctx, 1, l.ID, []domain.ShoppingItem{{Name: "Eggs", Quantity: 2, Checked: true}}); err != nil {
		t.Fatal(err)
	}
	got, err = db.GetShoppingListByID(ctx, 1, l.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Items[0].Checked {
		t.Fatal("item update must persist")
	}

	if got, _ := db.GetShoppingListByID(ctx, 2, l.ID); got != nil {
		t.Fatal("lists must be user scoped")
	}
}
