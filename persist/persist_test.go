package persist

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cafe-admin-api/logger"
	"cafe-admin-api/models"
)

func openTestSQL(t *testing.T) *SQLStore {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	s, err := OpenSQLite(fmt.Sprintf("file:%s?mode=memory&cache=shared", name), logger.Discard())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

// exerciseKV runs the same contract against every backend
func exerciseKV(t *testing.T, kv KV) {
	ctx := context.Background()

	var missing []models.FoodItem
	found, err := kv.Load(ctx, KeyFoodItems, &missing)
	require.NoError(t, err)
	assert.False(t, found)

	items := []models.FoodItem{{ID: "f1", Name: "Latte", Price: 3.5, Category: models.CategoryBeverages}}
	require.NoError(t, kv.Save(ctx, KeyFoodItems, items))

	var loaded []models.FoodItem
	found, err = kv.Load(ctx, KeyFoodItems, &loaded)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, items, loaded)

	items[0].Price = 4
	require.NoError(t, kv.Save(ctx, KeyFoodItems, items), "second save must overwrite")
	_, err = kv.Load(ctx, KeyFoodItems, &loaded)
	require.NoError(t, err)
	assert.Equal(t, 4.0, loaded[0].Price)

	require.NoError(t, kv.Delete(ctx, KeyFoodItems))
	found, err = kv.Load(ctx, KeyFoodItems, &loaded)
	require.NoError(t, err)
	assert.False(t, found)
}

func exerciseAudit(t *testing.T, audit Audit) {
	ctx := context.Background()
	require.NoError(t, audit.RecordStatusChange(ctx, &models.OrderStatusHistory{
		OrderID: "o1", FromStatus: models.StatusPending, ToStatus: models.StatusPreparing, ChangedBy: "admin@cafe.io",
	}))
	require.NoError(t, audit.RecordStatusChange(ctx, &models.OrderStatusHistory{
		OrderID: "o2", FromStatus: models.StatusPending, ToStatus: models.StatusCancelled,
	}))
	require.NoError(t, audit.RecordStatusChange(ctx, &models.OrderStatusHistory{
		OrderID: "o1", FromStatus: models.StatusPreparing, ToStatus: models.StatusReady,
	}))

	history, err := audit.StatusHistory(ctx, "o1")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, models.StatusPreparing, history[0].ToStatus)
	assert.Equal(t, models.StatusReady, history[1].ToStatus)

	none, err := audit.StatusHistory(ctx, "nope")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSQLStore(t *testing.T) {
	s := openTestSQL(t)
	exerciseKV(t, s)
	exerciseAudit(t, s)
}

func TestMemoryStore(t *testing.T) {
	m := NewMemoryStore()
	exerciseKV(t, m)
	exerciseAudit(t, m)
}

func TestSaveWithTTLFallsBack(t *testing.T) {
	m := NewMemoryStore()
	require.NoError(t, SaveWithTTL(context.Background(), m, CheckoutKey("abc"), map[string]int{"n": 1}, time.Minute))
	assert.Equal(t, []string{"checkout:abc"}, m.Keys())
}

// TestRedisStore requires a running Redis; set REDIS_ADDR to enable it
func TestRedisStore(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	r, err := OpenRedis(ctx, addr, "", 0, "cafe-test:")
	require.NoError(t, err)
	defer r.Close()

	exerciseKV(t, r)

	require.NoError(t, r.SaveFor(ctx, CheckoutKey("ttl"), "x", time.Minute))
	ttl, err := r.Client.TTL(ctx, "cafe-test:checkout:ttl").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
	require.NoError(t, r.Delete(ctx, CheckoutKey("ttl")))
}
