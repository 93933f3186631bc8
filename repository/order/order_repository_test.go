package order

import (
	"testing"
	"time"

	"github.com/muhammadheryan/rental-shop/constant"
	"github.com/muhammadheryan/rental-shop/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActiveRentalsQuery(t *testing.T) {
	start := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)

	query, args, err := activeRentalsQuery(&model.ActiveRentalFilter{
		ProductID: 7,
		OutletID:  3,
		Start:     start,
		End:       end,
	})
	require.NoError(t, err)

	assert.Contains(t, query, "o.status IN (?, ?)")
	assert.Contains(t, query, "o.pickup_at <= ? AND o.return_at >= ?")
	assert.Equal(t, []interface{}{
		uint64(7),
		uint64(3),
		constant.OrderTypeRent,
		constant.OrderStatusReserved,
		constant.OrderStatusPickuped,
		end,
		start,
		uint64(0),
	}, args)
}
