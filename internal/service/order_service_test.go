package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/velora-shop/velora/internal/constants"
	"github.com/velora-shop/velora/internal/models"
	"github.com/velora-shop/velora/internal/repository"

	"gorm.io/gorm"
)

type fakeGateway struct {
	sessions map[string]bool // session id -> paid
	seq      int
	failNext bool
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{sessions: map[string]bool{}}
}

func (g *fakeGateway) CreateCheckoutSession(_ context.Context, orderNo string, lines []CheckoutLine) (*CheckoutSession, error) {
	if g.failNext {
		g.failNext = false
		return nil, errors.New("gateway down")
	}
	g.seq++
	id := fmt.Sprintf("cs_test_%d", g.seq)
	g.sessions[id] = false
	return &CheckoutSession{ID: id, URL: "https://pay.example/" + id}, nil
}

func (g *fakeGateway) RetrieveSession(_ context.Context, sessionID string) (*SessionStatus, error) {
	paid, ok := g.sessions[sessionID]
	if !ok {
		return nil, errors.New("no such session")
	}
	return &SessionStatus{ID: sessionID, Paid: paid}, nil
}

func (g *fakeGateway) markPaid(sessionID string) {
	g.sessions[sessionID] = true
}

func newOrderServiceForTest(t *testing.T) (*OrderService, *CartService, *fakeGateway, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	gateway := newFakeGateway()
	orderSvc := NewOrderService(
		repository.NewOrderRepository(db),
		repository.NewProductRepository(db),
		repository.NewCartRepository(db),
		gateway,
	)
	return orderSvc, newCartServiceForTest(t, db), gateway, db
}

func testAddress() models.ShippingAddress {
	return models.ShippingAddress{
		Street:  "1 Main St",
		City:    "Springfield",
		State:   "IL",
		ZipCode: "62701",
		Country: "US",
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	orderSvc, _, _, db := newOrderServiceForTest(t)
	user := createTestUser(t, db, "checkout-empty@example.com")

	_, err := orderSvc.Checkout(context.Background(), user.ID, CheckoutInput{
		ShippingAddress: testAddress(),
		PaymentMethod:   "card",
	})
	if !errors.Is(err, ErrCartEmpty) {
		t.Fatalf("want ErrCartEmpty, got %v", err)
	}
}

func TestCheckoutValidatesEveryLineFirst(t *testing.T) {
	orderSvc, cartSvc, gateway, db := newOrderServiceForTest(t)
	user := createTestUser(t, db, "checkout-lines@example.com")
	good := createTestProduct(t, db, "line-good", 10, 5)
	scarce := createTestProduct(t, db, "line-scarce", 10, 5)

	if _, err := cartSvc.AddItem(user.ID, AddItemInput{ProductID: good.ID, Quantity: 2}); err != nil {
		t.Fatalf("add good failed: %v", err)
	}
	if _, err := cartSvc.AddItem(user.ID, AddItemInput{ProductID: scarce.ID, Quantity: 4}); err != nil {
		t.Fatalf("add scarce failed: %v", err)
	}

	// Stock drops after the cart was built but before checkout.
	if err := db.Model(scarce).Update("total_stock", 1).Error; err != nil {
		t.Fatalf("shrink stock failed: %v", err)
	}

	_, err := orderSvc.Checkout(context.Background(), user.ID, CheckoutInput{
		ShippingAddress: testAddress(),
		PaymentMethod:   "card",
	})
	if !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("want ErrInsufficientStock, got %v", err)
	}
	if len(gateway.sessions) != 0 {
		t.Fatalf("failed checkout must not open a gateway session")
	}

	var orders int64
	db.Model(&models.Order{}).Count(&orders)
	if orders != 0 {
		t.Fatalf("failed checkout must not persist an order, got %d", orders)
	}
}

func TestCheckoutCreatesPendingOrderWithSnapshots(t *testing.T) {
	orderSvc, cartSvc, _, db := newOrderServiceForTest(t)
	user := createTestUser(t, db, "checkout-ok@example.com")
	product := createTestProduct(t, db, "snapshot-tee", 40, 10)

	if _, err := cartSvc.AddItem(user.ID, AddItemInput{ProductID: product.ID, Quantity: 2, Colour: "black", Size: "lg"}); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	result, err := orderSvc.Checkout(context.Background(), user.ID, CheckoutInput{
		ShippingAddress: testAddress(),
		PaymentMethod:   "card",
	})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	order := result.Order
	if order.Status != constants.OrderStatusPending || order.PaymentStatus != constants.PaymentStatusPending {
		t.Fatalf("new order must be pending, got %s/%s", order.Status, order.PaymentStatus)
	}
	if order.TotalAmount.String() != "80.00" {
		t.Fatalf("total want 80.00 got %s", order.TotalAmount)
	}
	if result.PaymentURL == "" || order.CheckoutSessionID == "" {
		t.Fatalf("checkout must carry the gateway session")
	}
	if len(order.Items) != 1 {
		t.Fatalf("order line count want 1 got %d", len(order.Items))
	}
	line := order.Items[0]
	if line.UnitPrice.String() != "40.00" || line.TotalPrice.String() != "80.00" {
		t.Fatalf("price snapshot wrong: unit=%s total=%s", line.UnitPrice, line.TotalPrice)
	}
	if line.Name != product.Name || line.Colour != "black" || line.Size != "lg" {
		t.Fatalf("line snapshot wrong: %+v", line)
	}

	// Checkout never touches stock.
	got, _ := repository.NewProductRepository(db).GetByID(product.ID)
	if got.TotalStock != 10 || got.SoldCount != 0 {
		t.Fatalf("checkout must not move stock, got stock=%d sold=%d", got.TotalStock, got.SoldCount)
	}

	// Catalog price changes do not rewrite the snapshot.
	if err := db.Model(product).Update("price", "99").Error; err != nil {
		t.Fatalf("reprice failed: %v", err)
	}
	reloaded, err := orderSvc.GetMine(user.ID, order.ID)
	if err != nil {
		t.Fatalf("get order failed: %v", err)
	}
	if reloaded.Items[0].UnitPrice.String() != "40.00" {
		t.Fatalf("snapshot must survive reprice, got %s", reloaded.Items[0].UnitPrice)
	}
}

func TestConfirmPaymentAppliesSideEffects(t *testing.T) {
	orderSvc, cartSvc, gateway, db := newOrderServiceForTest(t)
	user := createTestUser(t, db, "confirm@example.com")
	product := createTestProduct(t, db, "confirm-tee", 25, 10)

	if _, err := cartSvc.AddItem(user.ID, AddItemInput{ProductID: product.ID, Quantity: 3}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	result, err := orderSvc.Checkout(context.Background(), user.ID, CheckoutInput{
		ShippingAddress: testAddress(),
		PaymentMethod:   "card",
	})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	sessionID := result.Order.CheckoutSessionID

	// Unpaid session is rejected.
	if _, err := orderSvc.ConfirmPayment(context.Background(), sessionID); !errors.Is(err, ErrPaymentNotPaid) {
		t.Fatalf("unpaid session want ErrPaymentNotPaid, got %v", err)
	}

	gateway.markPaid(sessionID)
	order, err := orderSvc.ConfirmPayment(context.Background(), sessionID)
	if err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	if order.PaymentStatus != constants.PaymentStatusCompleted || order.Status != constants.OrderStatusProcessing {
		t.Fatalf("paid order state wrong: %s/%s", order.PaymentStatus, order.Status)
	}
	if order.PaidAt == nil {
		t.Fatalf("paid order must carry PaidAt")
	}

	got, _ := repository.NewProductRepository(db).GetByID(product.ID)
	if got.TotalStock != 7 || got.SoldCount != 3 {
		t.Fatalf("stock after payment want 7/3 got %d/%d", got.TotalStock, got.SoldCount)
	}

	cart, err := cartSvc.GetCart(user.ID)
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if len(cart.Items) != 0 {
		t.Fatalf("cart must be cleared after payment, got %d lines", len(cart.Items))
	}

	// Replayed redirect must not double the side effects.
	if _, err := orderSvc.ConfirmPayment(context.Background(), sessionID); err != nil {
		t.Fatalf("replay confirm failed: %v", err)
	}
	got, _ = repository.NewProductRepository(db).GetByID(product.ID)
	if got.TotalStock != 7 || got.SoldCount != 3 {
		t.Fatalf("replay must not move stock again, got %d/%d", got.TotalStock, got.SoldCount)
	}
}

func TestConfirmPaymentUnknownSession(t *testing.T) {
	orderSvc, _, gateway, _ := newOrderServiceForTest(t)
	gateway.sessions["cs_orphan"] = true

	_, err := orderSvc.ConfirmPayment(context.Background(), "cs_orphan")
	if !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("paid session without an order want ErrOrderNotFound, got %v", err)
	}
}

func TestOrderListingAndStatus(t *testing.T) {
	orderSvc, cartSvc, _, db := newOrderServiceForTest(t)
	user := createTestUser(t, db, "orders-list@example.com")
	other := createTestUser(t, db, "orders-other@example.com")
	product := createTestProduct(t, db, "list-tee", 10, 50)

	for i := 0; i < 3; i++ {
		if _, err := cartSvc.AddItem(user.ID, AddItemInput{ProductID: product.ID, Quantity: 1}); err != nil {
			t.Fatalf("add failed: %v", err)
		}
		if _, err := orderSvc.Checkout(context.Background(), user.ID, CheckoutInput{
			ShippingAddress: testAddress(),
			PaymentMethod:   "card",
		}); err != nil {
			t.Fatalf("checkout %d failed: %v", i, err)
		}
		if _, err := cartSvc.Clear(user.ID); err != nil {
			t.Fatalf("clear failed: %v", err)
		}
	}

	mine, total, err := orderSvc.ListMine(user.ID, 1, 10)
	if err != nil {
		t.Fatalf("list mine failed: %v", err)
	}
	if total != 3 || len(mine) != 3 {
		t.Fatalf("list mine want 3 got total=%d len=%d", total, len(mine))
	}

	// Another user cannot see the order.
	if _, err := orderSvc.GetMine(other.ID, mine[0].ID); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("foreign order must look missing, got %v", err)
	}

	updated, err := orderSvc.UpdateStatus(mine[0].ID, constants.OrderStatusShipped)
	if err != nil {
		t.Fatalf("update status failed: %v", err)
	}
	if updated.Status != constants.OrderStatusShipped {
		t.Fatalf("status want shipped got %s", updated.Status)
	}

	if _, err := orderSvc.UpdateStatus(mine[0].ID, "teleported"); err == nil {
		t.Fatalf("invalid status must be rejected")
	}
	if _, err := orderSvc.UpdateStatus(99999, constants.OrderStatusShipped); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("missing order want ErrOrderNotFound, got %v", err)
	}

	shipped, total, err := orderSvc.ListAll(constants.OrderStatusShipped, 1, 10)
	if err != nil {
		t.Fatalf("list all failed: %v", err)
	}
	if total != 1 || len(shipped) != 1 {
		t.Fatalf("status filter want 1 got total=%d len=%d", total, len(shipped))
	}
}

func TestCheckoutWithoutGateway(t *testing.T) {
	db := setupTestDB(t)
	orderSvc := NewOrderService(
		repository.NewOrderRepository(db),
		repository.NewProductRepository(db),
		repository.NewCartRepository(db),
		nil,
	)
	user := createTestUser(t, db, "no-gateway@example.com")

	_, err := orderSvc.Checkout(context.Background(), user.ID, CheckoutInput{
		ShippingAddress: testAddress(),
		PaymentMethod:   "card",
	})
	if !errors.Is(err, ErrGatewayUnavailable) {
		t.Fatalf("want ErrGatewayUnavailable, got %v", err)
	}
}
