package services

import (
	"context"
	"testing"
	"time"

	"github.com/Kariqs/storefront-api/models"
	"github.com/Kariqs/storefront-api/testutils"
	"github.com/Kariqs/storefront-api/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderRequest(userID uint, items ...models.CreateOrderItemData) models.CreateOrderData {
	return models.CreateOrderData{
		UserID:           userID,
		Items:            items,
		ShippingAddress:  "123 Main St",
		PaymentReference: "r1",
		PaymentIntentID:  "i1",
	}
}

func orderItem(productID uint, quantity int, price string) models.CreateOrderItemData {
	return models.CreateOrderItemData{ProductID: productID, Quantity: quantity, Price: decimal.RequireFromString(price)}
}

func TestPlaceOrder(t *testing.T) {
	db := testutils.NewTestDB(t)
	alice := testutils.CreateUser(t, db, "Alice", "alice@x.com", models.RoleCustomer)
	svc := NewOrderService(db)
	placedAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return placedAt }

	order, err := svc.PlaceOrder(context.Background(), testutils.Identity(alice), orderRequest(alice.ID, orderItem(5, 2, "10.00")))
	require.NoError(t, err)

	assert.NotZero(t, order.ID)
	assert.Equal(t, alice.ID, order.UserID)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, placedAt, order.OrderDate)
	assert.True(t, decimal.RequireFromString("20.00").Equal(order.TotalAmount), order.TotalAmount.String())
	require.Len(t, order.OrderItems, 1)
	assert.Equal(t, uint(5), order.OrderItems[0].ProductID)
	assert.Equal(t, "", order.OrderItems[0].ProductName)

	stored, err := svc.GetOrderByID(context.Background(), testutils.Identity(alice), order.ID)
	require.NoError(t, err)
	assert.True(t, order.TotalAmount.Equal(stored.TotalAmount))
	require.Len(t, stored.OrderItems, 1)
	assert.True(t, decimal.RequireFromString("10").Equal(stored.OrderItems[0].Price))
}

func TestPlaceOrderTotalIsExact(t *testing.T) {
	db := testutils.NewTestDB(t)
	alice := testutils.CreateUser(t, db, "Alice", "alice@x.com", models.RoleCustomer)
	svc := NewOrderService(db)

	order, err := svc.PlaceOrder(context.Background(), testutils.Identity(alice), orderRequest(alice.ID,
		orderItem(1, 3, "0.10"),
		orderItem(2, 7, "19.99"),
		orderItem(3, 1, "0.01"),
	))
	require.NoError(t, err)
	assert.Equal(t, "140.24", order.TotalAmount.StringFixed(2))
}

func TestPlaceOrderForAnotherUser(t *testing.T) {
	db := testutils.NewTestDB(t)
	alice := testutils.CreateUser(t, db, "Alice", "alice@x.com", models.RoleCustomer)
	bob := testutils.CreateUser(t, db, "Bob", "bob@x.com", models.RoleCustomer)
	svc := NewOrderService(db)

	_, err := svc.PlaceOrder(context.Background(), testutils.Identity(bob), orderRequest(alice.ID, orderItem(5, 2, "10.00")))
	assert.ErrorIs(t, err, utils.ErrForbidden)

	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestPlaceOrderValidation(t *testing.T) {
	db := testutils.NewTestDB(t)
	alice := testutils.CreateUser(t, db, "Alice", "alice@x.com", models.RoleCustomer)
	svc := NewOrderService(db)

	req := orderRequest(alice.ID, orderItem(0, 0, "0"))
	req.ShippingAddress = "abc"
	req.PaymentReference = " "
	req.PaymentIntentID = ""

	_, err := svc.PlaceOrder(context.Background(), testutils.Identity(alice), req)
	var verr *utils.ValidationError
	require.ErrorAs(t, err, &verr)
	for _, field := range []string{
		"items[0].productId", "items[0].quantity", "items[0].price",
		"shippingAddress", "paymentReference", "paymentIntentId",
	} {
		assert.Contains(t, verr.Fields, field)
	}

	_, err = svc.PlaceOrder(context.Background(), testutils.Identity(alice), orderRequest(alice.ID))
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "items")

	_, err = svc.PlaceOrder(context.Background(), testutils.Identity(alice), orderRequest(alice.ID, orderItem(5, 3, "0.004")))
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "items[0].price")

	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestPlaceOrderRoundsPricesToCents(t *testing.T) {
	db := testutils.NewTestDB(t)
	alice := testutils.CreateUser(t, db, "Alice", "alice@x.com", models.RoleCustomer)
	svc := NewOrderService(db)

	order, err := svc.PlaceOrder(context.Background(), testutils.Identity(alice), orderRequest(alice.ID, orderItem(5, 3, "0.005")))
	require.NoError(t, err)
	assert.Equal(t, "0.01", order.OrderItems[0].Price.StringFixed(2))
	assert.Equal(t, "0.03", order.TotalAmount.StringFixed(2))
}

func TestPlaceOrderRollsBackOnItemFailure(t *testing.T) {
	db := testutils.NewTestDB(t)
	alice := testutils.CreateUser(t, db, "Alice", "alice@x.com", models.RoleCustomer)
	svc := NewOrderService(db)
	require.NoError(t, db.Migrator().DropTable(&models.OrderItem{}))

	_, err := svc.PlaceOrder(context.Background(), testutils.Identity(alice), orderRequest(alice.ID, orderItem(5, 2, "10.00")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create order items")

	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestGetOrderByIDChecksExistenceBeforeOwnership(t *testing.T) {
	db := testutils.NewTestDB(t)
	alice := testutils.CreateUser(t, db, "Alice", "alice@x.com", models.RoleCustomer)
	bob := testutils.CreateUser(t, db, "Bob", "bob@x.com", models.RoleCustomer)
	admin := testutils.CreateUser(t, db, "Admin", "admin@x.com", models.RoleAdmin)
	svc := NewOrderService(db)

	order, err := svc.PlaceOrder(context.Background(), testutils.Identity(alice), orderRequest(alice.ID, orderItem(5, 1, "3.50")))
	require.NoError(t, err)

	_, err = svc.GetOrderByID(context.Background(), testutils.Identity(bob), order.ID+100)
	assert.ErrorIs(t, err, utils.ErrNotFound)

	_, err = svc.GetOrderByID(context.Background(), testutils.Identity(bob), order.ID)
	assert.ErrorIs(t, err, utils.ErrForbidden)

	got, err := svc.GetOrderByID(context.Background(), testutils.Identity(admin), order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)
}

func TestListOrders(t *testing.T) {
	db := testutils.NewTestDB(t)
	alice := testutils.CreateUser(t, db, "Alice", "alice@x.com", models.RoleCustomer)
	bob := testutils.CreateUser(t, db, "Bob", "bob@x.com", models.RoleCustomer)
	svc := NewOrderService(db)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := svc.PlaceOrder(ctx, testutils.Identity(alice), orderRequest(alice.ID, orderItem(1, 1, "1.00"), orderItem(2, 1, "2.00")))
		require.NoError(t, err)
	}
	_, err := svc.PlaceOrder(ctx, testutils.Identity(bob), orderRequest(bob.ID, orderItem(1, 1, "1.00")))
	require.NoError(t, err)

	mine, err := svc.GetOrdersByUser(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Less(t, mine[0].ID, mine[1].ID)
	require.Len(t, mine[0].OrderItems, 2)
	assert.Less(t, mine[0].OrderItems[0].ID, mine[0].OrderItems[1].ID)

	all, err := svc.GetAllOrders(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	none, err := svc.GetOrdersByUser(ctx, 999)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestOrderTotal(t *testing.T) {
	total := OrderTotal([]models.OrderItem{
		{Quantity: 2, Price: decimal.RequireFromString("10.00")},
		{Quantity: 3, Price: decimal.RequireFromString("0.35")},
	})
	assert.Equal(t, "21.05", total.StringFixed(2))
	assert.True(t, OrderTotal(nil).IsZero())
}
