package checkout

import (
	"context"
	"errors"
	"sync"
	"testing"

	"courtside/models"

	"github.com/stretchr/testify/assert"
)

func TestPaymentLauncher_HandsOffRegardlessOfVerdict(t *testing.T) {
	cases := []struct {
		name    string
		verdict models.GatewayResult
		err     error
	}{
		{name: "completed", verdict: models.GatewayCompleted},
		{name: "cancelled", verdict: models.GatewayCancelled},
		{name: "errored", err: errors.New("sdk exploded")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gw := &fakeGateway{verdict: tc.verdict, err: tc.err}

			var mu sync.Mutex
			var handoffs []int64
			l := NewPaymentLauncher(gw, func(bookingID int64) {
				mu.Lock()
				defer mu.Unlock()
				handoffs = append(handoffs, bookingID)
			})

			order := models.PaymentOrder{OrderID: "o1", Amount: 500, Currency: "INR"}
			l.Launch(context.Background(), 42, order)

			mu.Lock()
			defer mu.Unlock()
			assert.Equal(t, []int64{42}, handoffs)
		})
	}
}

func TestPaymentLauncher_OneShotLatch(t *testing.T) {
	gw := &fakeGateway{verdict: models.GatewayCompleted}

	var mu sync.Mutex
	handoffs := 0
	l := NewPaymentLauncher(gw, func(bookingID int64) {
		mu.Lock()
		defer mu.Unlock()
		handoffs++
	})

	order := models.PaymentOrder{OrderID: "o1"}

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.Launch(context.Background(), 42, order)
		}()
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, handoffs)
	gw.mu.Lock()
	defer gw.mu.Unlock()
	assert.Equal(t, 1, gw.calls)
}
