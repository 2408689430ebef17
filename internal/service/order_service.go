package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/velora-shop/velora/internal/constants"
	"github.com/velora-shop/velora/internal/logger"
	"github.com/velora-shop/velora/internal/models"
	"github.com/velora-shop/velora/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CheckoutLine is one line sent to the payment gateway.
type CheckoutLine struct {
	Name      string
	UnitPrice models.Money
	Quantity  int
	Image     string
}

// CheckoutSession is the gateway session created for an order.
type CheckoutSession struct {
	ID  string
	URL string
}

// SessionStatus is the gateway's view of a session after redirect.
type SessionStatus struct {
	ID   string
	Paid bool
}

// PaymentGateway abstracts the external payment provider. A nil gateway
// means checkout is not configured.
type PaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, orderNo string, lines []CheckoutLine) (*CheckoutSession, error)
	RetrieveSession(ctx context.Context, sessionID string) (*SessionStatus, error)
}

// OrderService handles checkout, payment confirmation and order queries.
type OrderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	cartRepo    repository.CartRepository
	gateway     PaymentGateway
}

// NewOrderService creates the order service. gateway may be nil when no
// payment provider is configured.
func NewOrderService(orderRepo repository.OrderRepository, productRepo repository.ProductRepository, cartRepo repository.CartRepository, gateway PaymentGateway) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		cartRepo:    cartRepo,
		gateway:     gateway,
	}
}

// CheckoutInput is the checkout payload.
type CheckoutInput struct {
	ShippingAddress models.ShippingAddress
	PaymentMethod   string
}

// CheckoutResult carries the pending order and the gateway redirect URL.
type CheckoutResult struct {
	Order      *models.Order `json:"order"`
	PaymentURL string        `json:"paymentUrl"`
}

func validateShippingAddress(addr models.ShippingAddress) error {
	fieldErrs := FieldErrors{}
	check := func(field, value string) {
		if strings.TrimSpace(value) == "" {
			fieldErrs.Add(field, field+" is required")
		}
	}
	check("street", addr.Street)
	check("city", addr.City)
	check("state", addr.State)
	check("zipCode", addr.ZipCode)
	check("country", addr.Country)
	return fieldErrs.OrNil()
}

// Checkout turns the user's cart into a pending order with price
// snapshots and a gateway checkout session. Every line is validated
// against live stock first; any failure aborts the whole checkout. Stock
// is not decremented here.
func (s *OrderService) Checkout(ctx context.Context, userID uint, input CheckoutInput) (*CheckoutResult, error) {
	if s.gateway == nil {
		return nil, ErrGatewayUnavailable
	}
	if err := validateShippingAddress(input.ShippingAddress); err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.PaymentMethod) == "" {
		return nil, FieldErrors{"paymentMethod": "paymentMethod is required"}
	}

	cart, err := s.cartRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if cart == nil || len(cart.Items) == 0 {
		return nil, ErrCartEmpty
	}

	items := make([]models.OrderItem, 0, len(cart.Items))
	lines := make([]CheckoutLine, 0, len(cart.Items))
	total := decimal.Zero
	for _, cartItem := range cart.Items {
		product, err := s.productRepo.GetByID(cartItem.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, ErrProductNotFound
		}
		if !product.InStock || product.TotalStock < cartItem.Quantity {
			return nil, ErrInsufficientStock
		}

		unitPrice := product.Price
		linePrice := unitPrice.Decimal.Mul(decimal.NewFromInt(int64(cartItem.Quantity)))
		total = total.Add(linePrice)

		image := ""
		if len(product.Images) > 0 {
			image = product.Images[0]
		}
		items = append(items, models.OrderItem{
			ProductID:  product.ID,
			Name:       product.Name,
			Image:      image,
			Colour:     cartItem.Colour,
			Size:       cartItem.Size,
			Quantity:   cartItem.Quantity,
			UnitPrice:  unitPrice,
			TotalPrice: models.NewMoneyFromDecimal(linePrice),
		})
		lines = append(lines, CheckoutLine{
			Name:      product.Name,
			UnitPrice: unitPrice,
			Quantity:  cartItem.Quantity,
			Image:     image,
		})
	}

	orderNo := newOrderNo()
	session, err := s.gateway.CreateCheckoutSession(ctx, orderNo, lines)
	if err != nil {
		logger.Errorw("checkout_session_create_failed", "order_no", orderNo, "error", err)
		return nil, fmt.Errorf("create checkout session: %w", err)
	}

	order := &models.Order{
		OrderNo:           orderNo,
		UserID:            userID,
		TotalAmount:       models.NewMoneyFromDecimal(total),
		ShippingAddress:   input.ShippingAddress,
		PaymentMethod:     strings.TrimSpace(input.PaymentMethod),
		PaymentStatus:     constants.PaymentStatusPending,
		Status:            constants.OrderStatusPending,
		CheckoutSessionID: session.ID,
		Items:             items,
	}
	if err := s.orderRepo.Create(order); err != nil {
		return nil, err
	}

	logger.Infow("order_created",
		"order_no", order.OrderNo,
		"user_id", userID,
		"total", order.TotalAmount.String(),
		"session_id", session.ID,
	)
	return &CheckoutResult{Order: order, PaymentURL: session.URL}, nil
}

// ConfirmPayment handles the return from the gateway: the session is
// re-queried as the source of truth, never trusted from the redirect. On
// a paid session the order is marked completed/processing, stock is
// consumed per line with conditional updates, and the cart is cleared.
// The three steps run without a surrounding transaction; a crash between
// them leaves the order paid and is reconciled manually.
func (s *OrderService) ConfirmPayment(ctx context.Context, sessionID string) (*models.Order, error) {
	if s.gateway == nil {
		return nil, ErrGatewayUnavailable
	}
	if strings.TrimSpace(sessionID) == "" {
		return nil, FieldErrors{"session_id": "session_id is required"}
	}

	status, err := s.gateway.RetrieveSession(ctx, sessionID)
	if err != nil {
		logger.Errorw("payment_session_retrieve_failed", "session_id", sessionID, "error", err)
		return nil, fmt.Errorf("retrieve checkout session: %w", err)
	}
	if !status.Paid {
		return nil, ErrPaymentNotPaid
	}

	order, err := s.orderRepo.GetBySessionID(sessionID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if order.PaymentStatus == constants.PaymentStatusCompleted {
		// Replayed redirect; the side effects already ran.
		return order, nil
	}

	now := time.Now()
	order.PaymentStatus = constants.PaymentStatusCompleted
	order.Status = constants.OrderStatusProcessing
	order.PaidAt = &now
	if err := s.orderRepo.Update(order); err != nil {
		return nil, err
	}

	for _, item := range order.Items {
		affected, err := s.productRepo.RecordSale(item.ProductID, item.Quantity)
		if err != nil {
			logger.Errorw("order_stock_update_failed",
				"order_no", order.OrderNo,
				"product_id", item.ProductID,
				"error", err,
			)
			continue
		}
		if affected == 0 {
			// Paid order raced another sale below remaining stock. The
			// payment stands; flag the line for manual follow-up.
			logger.Warnw("order_stock_oversold",
				"order_no", order.OrderNo,
				"product_id", item.ProductID,
				"quantity", item.Quantity,
			)
		}
	}

	cart, err := s.cartRepo.GetByUserID(order.UserID)
	if err == nil && cart != nil {
		if err := s.cartRepo.ClearItems(cart.ID); err != nil {
			logger.Errorw("order_cart_clear_failed", "order_no", order.OrderNo, "error", err)
		} else if err := s.cartRepo.UpdateTotal(cart.ID, models.NewMoneyFromDecimal(decimal.Zero)); err != nil {
			logger.Errorw("order_cart_total_reset_failed", "order_no", order.OrderNo, "error", err)
		}
	}

	logger.Infow("order_paid", "order_no", order.OrderNo, "session_id", sessionID)
	return order, nil
}

// ListMine pages through the user's own orders.
func (s *OrderService) ListMine(userID uint, page, pageSize int) ([]models.Order, int64, error) {
	page, pageSize = NormalizePagination(page, pageSize)
	return s.orderRepo.List(repository.OrderListFilter{
		Page:     page,
		PageSize: pageSize,
		UserID:   userID,
	})
}

// GetMine fetches one order scoped to its owner. Another user's order is
// indistinguishable from a missing one.
func (s *OrderService) GetMine(userID, orderID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil || order.UserID != userID {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// ListAll pages through every order, optionally filtered by status.
func (s *OrderService) ListAll(status string, page, pageSize int) ([]models.Order, int64, error) {
	if status != "" && !constants.IsValidOrderStatus(status) {
		return nil, 0, FieldErrors{"status": "invalid order status"}
	}
	page, pageSize = NormalizePagination(page, pageSize)
	return s.orderRepo.List(repository.OrderListFilter{
		Page:     page,
		PageSize: pageSize,
		Status:   status,
	})
}

// UpdateStatus moves an order to a new fulfillment status. Statuses only
// change through this explicit call or payment confirmation.
func (s *OrderService) UpdateStatus(orderID uint, status string) (*models.Order, error) {
	if !constants.IsValidOrderStatus(status) {
		return nil, FieldErrors{"status": "invalid order status"}
	}
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	order.Status = status
	if err := s.orderRepo.Update(order); err != nil {
		return nil, err
	}
	logger.Infow("order_status_updated", "order_no", order.OrderNo, "status", status)
	return order, nil
}

func newOrderNo() string {
	return fmt.Sprintf("VL%s%s",
		time.Now().Format("20060102"),
		strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:10]),
	)
}
