package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/minishop/internal/constants"
	"github.com/minishop/internal/logger"
	"github.com/minishop/internal/models"
	"github.com/minishop/internal/queue"
	"github.com/minishop/internal/repository"

	"github.com/hibiken/asynq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// 结算存储失败时最多尝试的次数，事务回滚后重试不会产生可见的部分写入
const checkoutMaxAttempts = 2

// 结算结果，用于指标标签
const (
	CheckoutResultSuccess  = "success"
	CheckoutResultRejected = "rejected"
	CheckoutResultFailed   = "failed"
)

// OrderTaskEnqueuer 订单异步任务投递
type OrderTaskEnqueuer interface {
	EnqueueOrderCreated(ctx context.Context, payload queue.OrderCreatedPayload, opts ...asynq.Option) error
}

// CheckoutRecorder 结算指标记录
type CheckoutRecorder interface {
	ObserveCheckout(result string, duration time.Duration)
}

// OrderService 订单服务
type OrderService struct {
	tx          repository.Transactor
	orderRepo   repository.OrderRepository
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	tasks       OrderTaskEnqueuer
	recorder    CheckoutRecorder
	now         func() time.Time
}

// NewOrderService 创建订单服务，tasks 与 recorder 可为 nil
func NewOrderService(
	tx repository.Transactor,
	orderRepo repository.OrderRepository,
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	tasks OrderTaskEnqueuer,
	recorder CheckoutRecorder,
) *OrderService {
	return &OrderService{
		tx:          tx,
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		productRepo: productRepo,
		tasks:       tasks,
		recorder:    recorder,
		now:         time.Now,
	}
}

// Checkout 将用户购物车结算为订单并清空已结算的购物车行
// 空购物车同样生成金额为 0 的订单
func (s *OrderService) Checkout(ctx context.Context, userID uint) (*models.Order, error) {
	if userID == 0 {
		return nil, ErrUserIDInvalid
	}
	startedAt := time.Now()

	var (
		order *models.Order
		err   error
	)
	for attempt := 1; attempt <= checkoutMaxAttempts; attempt++ {
		order, err = s.checkoutOnce(ctx, userID)
		if err == nil || isServiceError(err) || ctx.Err() != nil {
			break
		}
		// 提交阶段失败时服务端可能已提交，重试会生成重复订单
		var commitErr *commitError
		if errors.As(err, &commitErr) {
			logger.Errorw("order_checkout_commit_outcome_unknown",
				"user_id", userID,
				"order_no", commitErr.orderNo,
				"error", commitErr.err,
			)
			break
		}
		logger.Warnw("order_checkout_attempt_failed",
			"user_id", userID,
			"attempt", attempt,
			"error", err,
		)
	}
	if err != nil {
		if isServiceError(err) {
			s.observe(CheckoutResultRejected, startedAt)
			return nil, err
		}
		s.observe(CheckoutResultFailed, startedAt)
		logger.Errorw("order_checkout_failed", "user_id", userID, "error", err)
		return nil, ErrCheckoutFailed.wrap(err)
	}

	s.observe(CheckoutResultSuccess, startedAt)
	logger.Infow("order_checkout_committed",
		"order_id", order.ID,
		"order_no", order.OrderNo,
		"user_id", userID,
		"total_amount", order.TotalAmount.String(),
		"item_count", order.ItemCount,
	)
	s.enqueueOrderCreated(ctx, order)
	return order, nil
}

func (s *OrderService) checkoutOnce(ctx context.Context, userID uint) (*models.Order, error) {
	var created *models.Order
	err := s.tx.Transaction(ctx, func(tx *gorm.DB) error {
		cartRepo := s.cartRepo.WithTx(tx)
		productRepo := s.productRepo.WithTx(tx)
		orderRepo := s.orderRepo.WithTx(tx)

		items, err := cartRepo.ListByUserForUpdate(ctx, userID)
		if err != nil {
			return err
		}

		total, err := priceCartItems(ctx, productRepo, items)
		if err != nil {
			return err
		}

		order := &models.Order{
			OrderNo:     generateOrderNo(s.now()),
			UserID:      userID,
			Status:      constants.OrderStatusCreated,
			TotalAmount: models.NewMoneyFromDecimal(total),
			ItemCount:   len(items),
		}
		if err := orderRepo.Create(ctx, order); err != nil {
			return err
		}

		if len(items) > 0 {
			ids := make([]uint, 0, len(items))
			for _, item := range items {
				ids = append(ids, item.ID)
			}
			affected, err := cartRepo.DeleteByIDs(ctx, userID, ids)
			if err != nil {
				return err
			}
			// 快照中的行已被其他结算消费
			if affected != int64(len(ids)) {
				return ErrCartChanged
			}
		}
		created = order
		return nil
	})
	if err != nil {
		if created != nil {
			return nil, &commitError{orderNo: created.OrderNo, err: err}
		}
		return nil, err
	}
	return created, nil
}

// commitError 事务回调已成功、提交阶段出错，结果未知，不可重试
type commitError struct {
	orderNo string
	err     error
}

func (e *commitError) Error() string {
	return "commit checkout " + e.orderNo + ": " + e.err.Error()
}

func (e *commitError) Unwrap() error {
	return e.err
}

// priceCartItems 按当前商品价格计算购物车总额，任一商品缺失即失败
func priceCartItems(ctx context.Context, productRepo repository.ProductRepository, items []models.CartItem) (decimal.Decimal, error) {
	total := decimal.Zero
	if len(items) == 0 {
		return total, nil
	}

	seen := make(map[uint]struct{}, len(items))
	productIDs := make([]uint, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item.ProductID]; ok {
			continue
		}
		seen[item.ProductID] = struct{}{}
		productIDs = append(productIDs, item.ProductID)
	}
	products, err := productRepo.ListByIDs(ctx, productIDs)
	if err != nil {
		return decimal.Zero, err
	}
	prices := make(map[uint]decimal.Decimal, len(products))
	for _, product := range products {
		prices[product.ID] = product.Price.Decimal
	}

	for _, item := range items {
		price, ok := prices[item.ProductID]
		if !ok {
			logger.Warnw("order_checkout_product_missing",
				"cart_item_id", item.ID,
				"product_id", item.ProductID,
			)
			return decimal.Zero, ErrProductNotFound
		}
		total = total.Add(price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total, nil
}

// ListOrders 获取用户订单，最新的在前
func (s *OrderService) ListOrders(ctx context.Context, userID uint) ([]models.Order, error) {
	if userID == 0 {
		return nil, ErrUserIDInvalid
	}
	return s.orderRepo.ListByUser(ctx, userID)
}

// GetOrder 获取订单
func (s *OrderService) GetOrder(ctx context.Context, id uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// enqueueOrderCreated 提交后投递异步任务，失败只记录日志
func (s *OrderService) enqueueOrderCreated(ctx context.Context, order *models.Order) {
	if s.tasks == nil || order == nil {
		return
	}
	payload := queue.OrderCreatedPayload{
		OrderID: order.ID,
		OrderNo: order.OrderNo,
		UserID:  order.UserID,
	}
	if err := s.tasks.EnqueueOrderCreated(context.WithoutCancel(ctx), payload); err != nil {
		logger.Warnw("order_created_enqueue_failed",
			"order_id", order.ID,
			"order_no", order.OrderNo,
			"error", err,
		)
	}
}

func (s *OrderService) observe(result string, startedAt time.Time) {
	if s.recorder == nil {
		return
	}
	s.recorder.ObserveCheckout(result, time.Since(startedAt))
}

func isServiceError(err error) bool {
	var svcErr *serviceError
	return errors.As(err, &svcErr)
}

func generateOrderNo(now time.Time) string {
	return fmt.Sprintf("%s%s%s", constants.OrderNoPrefix, now.Format("20060102150405"), randNumeric(6))
}

func randNumeric(length int) string {
	var b strings.Builder
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			b.WriteString("0")
			continue
		}
		b.WriteString(fmt.Sprintf("%d", n.Int64()))
	}
	return b.String()
}
