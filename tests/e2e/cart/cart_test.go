//go:build e2e

package cart_test

import (
	"net/http"
	"sync"
	"testing"

	"storefront/internal/domain/user"
	"storefront/internal/handler/dto/request"
	"storefront/internal/handler/dto/response"
	"storefront/tests/common/authtest"
	"storefront/tests/common/dbtest"
	"storefront/tests/common/httptest"
	"storefront/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const cartURL = "/api/cart"

type CartSuite struct {
	e2e.SharedSuite
}

func TestCartSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(CartSuite))
}

func (s *CartSuite) customerToken(t *testing.T) string {
	t.Helper()
	return authtest.NewJWTHelper(s.Config.JWT).GenerateToken(t, uuid.New(), user.RoleCustomer)
}

func (s *CartSuite) addLine(t *testing.T, token string, productID uuid.UUID, quantity int32) *response.CartResponse {
	t.Helper()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, cartURL, request.AddCartLineRequest{
		ProductID: productID,
		Quantity:  quantity,
	}, token)
	require.Equal(t, http.StatusCreated, w.Code)

	var cart response.CartResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &cart))
	return &cart
}

func (s *CartSuite) TestAddLine() {
	s.Run("Normal case: adding the same product merges quantities", func() {
		t := s.T()

		token := s.customerToken(t)
		productID := dbtest.CreateTestProduct(t, s.DB, "Mechanical Keyboard", 12000, 50)

		cart := s.addLine(t, token, productID, 2)
		require.Len(t, cart.Lines, 1)
		require.Equal(t, int32(2), cart.Lines[0].Quantity)

		cart = s.addLine(t, token, productID, 3)
		require.Len(t, cart.Lines, 1)
		require.Equal(t, int32(5), cart.Lines[0].Quantity)
		require.Equal(t, int64(12000), cart.Lines[0].UnitPriceCents)
	})

	s.Run("Normal case: carts are isolated per customer", func() {
		t := s.T()

		productID := dbtest.CreateTestProduct(t, s.DB, "USB-C Cable", 1500, 100)

		tokenA := s.customerToken(t)
		tokenB := s.customerToken(t)
		s.addLine(t, tokenA, productID, 1)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, cartURL, nil, tokenB)
		require.Equal(t, http.StatusOK, w.Code)
		var cart response.CartResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &cart))
		require.Empty(t, cart.Lines)
	})

	s.Run("Error case: unknown product is rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, cartURL, request.AddCartLineRequest{
			ProductID: uuid.New(),
			Quantity:  1,
		}, s.customerToken(t))
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	s.Run("Error case: zero quantity is rejected", func() {
		t := s.T()

		productID := dbtest.CreateTestProduct(t, s.DB, "Desk Mat", 3500, 10)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, cartURL, request.AddCartLineRequest{
			ProductID: productID,
			Quantity:  0,
		}, s.customerToken(t))
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func (s *CartSuite) TestUpdateLine() {
	s.Run("Normal case: quantity is replaced, not merged", func() {
		t := s.T()

		token := s.customerToken(t)
		productID := dbtest.CreateTestProduct(t, s.DB, "Monitor Arm", 9990, 20)
		s.addLine(t, token, productID, 5)

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, cartURL+"/"+productID.String(),
			request.UpdateCartLineRequest{Quantity: 2}, token)
		require.Equal(t, http.StatusOK, w.Code)

		var cart response.CartResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &cart))
		require.Len(t, cart.Lines, 1)
		require.Equal(t, int32(2), cart.Lines[0].Quantity)
	})

	s.Run("Error case: updating a line that is not in the cart", func() {
		t := s.T()

		productID := dbtest.CreateTestProduct(t, s.DB, "Webcam", 7000, 5)
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, cartURL+"/"+productID.String(),
			request.UpdateCartLineRequest{Quantity: 1}, s.customerToken(t))
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func (s *CartSuite) TestRemoveAndClear() {
	s.Run("Normal case: removing a line is idempotent", func() {
		t := s.T()

		token := s.customerToken(t)
		productID := dbtest.CreateTestProduct(t, s.DB, "Trackball", 6800, 15)
		s.addLine(t, token, productID, 1)

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, cartURL+"/"+productID.String(), nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		var cart response.CartResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &cart))
		require.Empty(t, cart.Lines)

		// Removing again still succeeds.
		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, cartURL+"/"+productID.String(), nil, token)
		require.Equal(t, http.StatusOK, w.Code)
	})

	s.Run("Normal case: clearing the cart removes every line", func() {
		t := s.T()

		token := s.customerToken(t)
		s.addLine(t, token, dbtest.CreateTestProduct(t, s.DB, "Speaker", 8000, 6), 1)
		s.addLine(t, token, dbtest.CreateTestProduct(t, s.DB, "Microphone", 15000, 12), 2)

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, cartURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		gw := httptest.PerformRequest(t, s.Router, http.MethodGet, cartURL, nil, token)
		require.Equal(t, http.StatusOK, gw.Code)
		var cart response.CartResponse
		require.NoError(t, httptest.DecodeResponseBody(t, gw.Body, &cart))
		require.Empty(t, cart.Lines)
	})
}

func (s *CartSuite) TestConcurrentAddLine() {
	s.Run("Normal case: concurrent adds of the same product lose no update", func() {
		t := s.T()

		token := s.customerToken(t)
		productID := dbtest.CreateTestProduct(t, s.DB, "Ergonomic Mouse", 5400, 100)

		const adders = 8
		codes := make(chan int, adders)
		var wg sync.WaitGroup
		for i := 0; i < adders; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, cartURL, request.AddCartLineRequest{
					ProductID: productID,
					Quantity:  1,
				}, token)
				codes <- w.Code
			}()
		}
		wg.Wait()
		close(codes)

		for code := range codes {
			require.Equal(t, http.StatusCreated, code)
		}

		gw := httptest.PerformRequest(t, s.Router, http.MethodGet, cartURL, nil, token)
		require.Equal(t, http.StatusOK, gw.Code)
		var cart response.CartResponse
		require.NoError(t, httptest.DecodeResponseBody(t, gw.Body, &cart))
		require.Len(t, cart.Lines, 1)
		require.Equal(t, int32(adders), cart.Lines[0].Quantity, "every concurrent add must land in the merged quantity")
	})
}
