package lock_test

import (
	"context"
	"testing"
	"time"

	"github.com/muhammadheryan/rental-shop/repository/lock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStockKey(t *testing.T) {
	assert.Equal(t, "lock:stock:5:2", lock.StockKey(5, 2))
	assert.NotEqual(t, lock.StockKey(5, 2), lock.StockKey(2, 5))
}

func TestObtain_WithoutRedis(t *testing.T) {
	l, err := lock.NewLocker(time.Millisecond, 1).Obtain(context.Background(), lock.StockKey(1, 1), time.Second)
	require.NoError(t, err)
	assert.NoError(t, l.Release(context.Background()))
}
