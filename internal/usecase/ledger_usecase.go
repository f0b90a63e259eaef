package usecase

import (
	"context"
	"errors"
	"math"
	"strings"
	"sync"
	"time"

	"mecanica_ledger/internal/domain/entities"
	"mecanica_ledger/internal/usecase/interfaces"
	"mecanica_ledger/internal/usecase/recordstore"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Collection keys of the persisted layout.
const (
	CollectionServiceOrders = "osList"
	CollectionInvoices      = "faturas"
	CollectionCommissions   = "comissoes"
	CollectionPayments      = "pagamentos"
)

// DefaultCommissionRate is the percentage applied to a paid invoice.
var DefaultCommissionRate = decimal.NewFromInt(10)

var (
	ErrInvalidClient         = errors.New("invalid client")
	ErrInvalidServiceType    = errors.New("invalid service type")
	ErrInvalidAmount         = errors.New("invalid amount")
	ErrInvalidServiceOrderID = errors.New("invalid service order id")
	ErrInvalidInvoiceID      = errors.New("invalid invoice id")
	ErrServiceOrderNotFound  = errors.New("service order not found")
	ErrInvoiceNotFound       = errors.New("invoice not found")
	ErrInvalidCommissionRate = errors.New("invalid commission rate")
)

// PaymentOutcome tells what MarkInvoicePaid actually did.
type PaymentOutcome string

const (
	PaymentOutcomeNotFound    PaymentOutcome = "not_found"
	PaymentOutcomeNewlyPaid   PaymentOutcome = "newly_paid"
	PaymentOutcomeAlreadyPaid PaymentOutcome = "already_paid"
)

type CreateServiceOrderInput struct {
	Client      string
	ServiceType string
	Amount      float64
}

// ServiceOrderCreation is the pair written by CreateServiceOrder.
type ServiceOrderCreation struct {
	ServiceOrder entities.ServiceOrder
	Invoice      entities.Invoice
}

// InvoicePayment is the result of MarkInvoicePaid. Invoice and Commission are
// nil when the invoice id did not resolve.
type InvoicePayment struct {
	Invoice    *entities.Invoice
	Commission *entities.Commission
	Outcome    PaymentOutcome
}

// ILedgerUseCase exposes the ledger cascade:
//   - creating a service order always creates its pending invoice
//   - an invoice becoming paid records exactly one commission
type ILedgerUseCase interface {
	CreateServiceOrder(ctx context.Context, in CreateServiceOrderInput) (ServiceOrderCreation, error)
	MarkInvoicePaid(ctx context.Context, invoiceID string) (InvoicePayment, error)
	ListServiceOrders(ctx context.Context) ([]entities.ServiceOrder, error)
	ListInvoices(ctx context.Context) ([]entities.Invoice, error)
	ListCommissions(ctx context.Context) ([]entities.Commission, error)
	GetInvoice(ctx context.Context, invoiceID string) (entities.Invoice, error)
	ListInvoicesByServiceOrder(ctx context.Context, serviceOrderID string) ([]entities.Invoice, error)
}

type LedgerUseCase struct {
	// mu serializes read-modify-write cycles; the storage discipline has no
	// row-level concurrency control of its own.
	mu sync.Mutex

	storage     interfaces.ICollectionStorage
	orders      *recordstore.RecordStore[entities.ServiceOrder]
	invoices    *recordstore.RecordStore[entities.Invoice]
	commissions *recordstore.RecordStore[entities.Commission]

	ids     interfaces.IIDGenerator
	clock   interfaces.IClock
	rate    decimal.Decimal
	metrics interfaces.ILedgerMetrics
	log     *zap.Logger
}

var _ ILedgerUseCase = (*LedgerUseCase)(nil)

type LedgerOption func(*LedgerUseCase)

func WithCommissionRate(rate decimal.Decimal) LedgerOption {
	return func(u *LedgerUseCase) { u.rate = rate }
}

func WithLedgerMetrics(m interfaces.ILedgerMetrics) LedgerOption {
	return func(u *LedgerUseCase) { u.metrics = m }
}

func WithLedgerLogger(log *zap.Logger) LedgerOption {
	return func(u *LedgerUseCase) { u.log = log }
}

// NewLedgerUseCase wires the cascade over storage. A nil storage degrades the
// ledger to non-persistent behavior instead of failing.
func NewLedgerUseCase(storage interfaces.ICollectionStorage, ids interfaces.IIDGenerator, clock interfaces.IClock, opts ...LedgerOption) *LedgerUseCase {
	u := &LedgerUseCase{
		storage: storage,
		ids:     ids,
		clock:   clock,
		rate:    DefaultCommissionRate,
		metrics: noopLedgerMetrics{},
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(u)
	}
	if u.metrics == nil {
		u.metrics = noopLedgerMetrics{}
	}
	if u.log == nil {
		u.log = zap.NewNop()
	}
	u.log = u.log.Named("ledger.usecase")
	u.orders = recordstore.New[entities.ServiceOrder](storage, u.log)
	u.invoices = recordstore.New[entities.Invoice](storage, u.log)
	u.commissions = recordstore.New[entities.Commission](storage, u.log)
	return u
}

// ValidateCommissionRate accepts percentages in [0, 100].
func ValidateCommissionRate(rate decimal.Decimal) error {
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(100)) {
		return ErrInvalidCommissionRate
	}
	return nil
}

func (u *LedgerUseCase) CreateServiceOrder(ctx context.Context, in CreateServiceOrderInput) (ServiceOrderCreation, error) {
	client := strings.TrimSpace(in.Client)
	if client == "" {
		return ServiceOrderCreation{}, ErrInvalidClient
	}
	serviceType := strings.TrimSpace(in.ServiceType)
	if serviceType == "" {
		return ServiceOrderCreation{}, ErrInvalidServiceType
	}
	if in.Amount < 0 || math.IsNaN(in.Amount) || math.IsInf(in.Amount, 0) {
		return ServiceOrderCreation{}, ErrInvalidAmount
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	// One instant for both records: the invoice is never older than its order.
	now := u.clock.Now()
	order := entities.ServiceOrder{
		ID:          u.ids.NewID(interfaces.IDPrefixServiceOrder),
		Client:      client,
		ServiceType: serviceType,
		Amount:      in.Amount,
		Status:      entities.ServiceOrderStatusOpen,
		CreatedAt:   now,
	}
	invoice := entities.Invoice{
		ID:             u.ids.NewID(interfaces.IDPrefixInvoice),
		ServiceOrderID: order.ID,
		Amount:         order.Amount,
		Status:         entities.InvoiceStatusPending,
		CreatedAt:      now,
	}

	b := recordstore.NewBatch(u.storage)
	if _, err := u.orders.StageAppend(ctx, b, CollectionServiceOrders, order); err != nil {
		return ServiceOrderCreation{}, err
	}
	if _, err := u.invoices.StageAppend(ctx, b, CollectionInvoices, invoice); err != nil {
		return ServiceOrderCreation{}, err
	}
	if err := b.Commit(ctx); err != nil {
		u.log.Error("create-service-order commit failed", zap.String("service_order_id", order.ID), zap.Error(err))
		return ServiceOrderCreation{}, err
	}

	u.metrics.IncServiceOrderCreated()
	u.log.Info("create-service-order success",
		zap.String("service_order_id", order.ID),
		zap.String("invoice_id", invoice.ID),
		zap.Float64("amount", order.Amount),
	)
	return ServiceOrderCreation{ServiceOrder: order, Invoice: invoice}, nil
}

// MarkInvoicePaid moves an invoice from pending to paid and records its
// commission in the same commit. Repeated calls report already_paid and write
// nothing, so paidAt keeps the time of the first call.
func (u *LedgerUseCase) MarkInvoicePaid(ctx context.Context, invoiceID string) (InvoicePayment, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		u.metrics.IncInvoicePaid(string(PaymentOutcomeNotFound))
		return InvoicePayment{Outcome: PaymentOutcomeNotFound}, nil
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	now := u.clock.Now()
	b := recordstore.NewBatch(u.storage)

	// Duplicate ids are all marked paid; the outcome follows the first match,
	// the same record GetInvoice returns.
	var before, after *entities.Invoice
	_, err := u.invoices.StageUpdateByID(ctx, b, CollectionInvoices, invoiceID, func(inv entities.Invoice) entities.Invoice {
		next := inv.MarkPaid(now)
		if after == nil {
			prev := inv
			before, after = &prev, &next
		}
		return next
	})
	if err != nil {
		return InvoicePayment{}, err
	}
	if after == nil || !after.IsPaid() {
		u.metrics.IncInvoicePaid(string(PaymentOutcomeNotFound))
		u.log.Info("mark-invoice-paid not-found", zap.String("invoice_id", invoiceID))
		return InvoicePayment{Outcome: PaymentOutcomeNotFound}, nil
	}

	commissions, err := u.commissions.ReadAll(ctx, CollectionCommissions)
	if err != nil {
		return InvoicePayment{}, err
	}
	existing := findCommissionByInvoice(commissions, invoiceID)

	if before.IsPaid() {
		u.metrics.IncInvoicePaid(string(PaymentOutcomeAlreadyPaid))
		u.log.Info("mark-invoice-paid already-paid", zap.String("invoice_id", invoiceID))
		return InvoicePayment{Invoice: after, Commission: existing, Outcome: PaymentOutcomeAlreadyPaid}, nil
	}

	commission := existing
	if commission == nil {
		c := u.newCommission(*after, now)
		commission = &c
		if err := u.commissions.Stage(b, CollectionCommissions, append(commissions, c)); err != nil {
			return InvoicePayment{}, err
		}
	} else {
		u.log.Warn("pending invoice already had a commission; not duplicating",
			zap.String("invoice_id", invoiceID),
			zap.String("commission_id", commission.ID),
		)
	}

	if err := b.Commit(ctx); err != nil {
		u.log.Error("mark-invoice-paid commit failed", zap.String("invoice_id", invoiceID), zap.Error(err))
		return InvoicePayment{}, err
	}

	u.metrics.IncInvoicePaid(string(PaymentOutcomeNewlyPaid))
	if existing == nil {
		u.metrics.IncCommissionCreated()
	}
	u.log.Info("mark-invoice-paid success",
		zap.String("invoice_id", invoiceID),
		zap.String("commission_id", commission.ID),
		zap.Float64("commission_amount", commission.CommissionAmount),
	)
	return InvoicePayment{Invoice: after, Commission: commission, Outcome: PaymentOutcomeNewlyPaid}, nil
}

func (u *LedgerUseCase) newCommission(inv entities.Invoice, now time.Time) entities.Commission {
	base := decimal.NewFromFloat(inv.Amount)
	amount := base.Mul(u.rate).Div(decimal.NewFromInt(100))
	return entities.Commission{
		ID:               u.ids.NewID(interfaces.IDPrefixCommission),
		InvoiceID:        inv.ID,
		BaseAmount:       inv.Amount,
		Rate:             u.rate.InexactFloat64(),
		CommissionAmount: amount.InexactFloat64(),
		CreatedAt:        now,
	}
}

func findCommissionByInvoice(commissions []entities.Commission, invoiceID string) *entities.Commission {
	for i := range commissions {
		if commissions[i].InvoiceID == invoiceID {
			c := commissions[i]
			return &c
		}
	}
	return nil
}

func (u *LedgerUseCase) ListServiceOrders(ctx context.Context) ([]entities.ServiceOrder, error) {
	return u.orders.ReadAll(ctx, CollectionServiceOrders)
}

func (u *LedgerUseCase) ListInvoices(ctx context.Context) ([]entities.Invoice, error) {
	return u.invoices.ReadAll(ctx, CollectionInvoices)
}

func (u *LedgerUseCase) ListCommissions(ctx context.Context) ([]entities.Commission, error) {
	return u.commissions.ReadAll(ctx, CollectionCommissions)
}

func (u *LedgerUseCase) GetInvoice(ctx context.Context, invoiceID string) (entities.Invoice, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}

	invoices, err := u.invoices.ReadAll(ctx, CollectionInvoices)
	if err != nil {
		return entities.Invoice{}, err
	}
	inv, ok := recordstore.FindByID(invoices, invoiceID)
	if !ok {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return inv, nil
}

func (u *LedgerUseCase) ListInvoicesByServiceOrder(ctx context.Context, serviceOrderID string) ([]entities.Invoice, error) {
	serviceOrderID = strings.TrimSpace(serviceOrderID)
	if serviceOrderID == "" {
		return nil, ErrInvalidServiceOrderID
	}

	orders, err := u.orders.ReadAll(ctx, CollectionServiceOrders)
	if err != nil {
		return nil, err
	}
	if _, ok := recordstore.FindByID(orders, serviceOrderID); !ok {
		return nil, ErrServiceOrderNotFound
	}

	invoices, err := u.invoices.ReadAll(ctx, CollectionInvoices)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Invoice, 0, 1)
	for _, inv := range invoices {
		if inv.ServiceOrderID == serviceOrderID {
			out = append(out, inv)
		}
	}
	return out, nil
}

type noopLedgerMetrics struct{}

func (noopLedgerMetrics) IncServiceOrderCreated() {}
func (noopLedgerMetrics) IncInvoicePaid(string) {}
func (noopLedgerMetrics) IncCommissionCreated() {}
func (noopLedgerMetrics) IncSettlement(string) {}
