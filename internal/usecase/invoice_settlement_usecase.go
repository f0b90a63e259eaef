package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"mecanica_ledger/internal/domain/entities"
	"mecanica_ledger/internal/usecase/interfaces"
	"mecanica_ledger/internal/usecase/recordstore"

	"go.uber.org/zap"
)

var (
	ErrInvalidPaymentPayload          = errors.New("invalid payment payload")
	ErrInvoiceAlreadyPaid             = errors.New("invoice already paid")
	ErrSettlementInProgress           = errors.New("invoice settlement already in progress")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

const providerStatusApproved = "approved"

// InvoiceSettlement is the result of charging an invoice. Ledger is nil when
// the provider did not approve the payment, in which case the invoice stays
// pending.
type InvoiceSettlement struct {
	Payment entities.PaymentRecord
	Ledger  *InvoicePayment
}

// IInvoiceSettlementUseCase charges a pending invoice through the payment
// gateway and, once approved, runs the paid cascade on it.
type IInvoiceSettlementUseCase interface {
	Settle(ctx context.Context, invoiceID string, payload json.RawMessage) (InvoiceSettlement, error)
	ListPayments(ctx context.Context, invoiceID string) ([]entities.PaymentRecord, error)
}

type InvoiceSettlementUseCase struct {
	ledger   ILedgerUseCase
	payments *recordstore.RecordStore[entities.PaymentRecord]
	gateway  interfaces.IPaymentGateway
	ids      interfaces.IIDGenerator
	clock    interfaces.IClock
	metrics  interfaces.ILedgerMetrics
	log      *zap.Logger

	mockMode       bool
	testPayerEmail string

	// settling holds the invoices with a provider charge in flight. A second
	// Settle on the same invoice is rejected instead of charging twice.
	settleMu sync.Mutex
	settling map[string]struct{}

	// writeMu serializes the read-modify-write of the payments collection.
	writeMu sync.Mutex
}

var _ IInvoiceSettlementUseCase = (*InvoiceSettlementUseCase)(nil)

type SettlementOption func(*InvoiceSettlementUseCase)

// WithGatewayMock approves every payment locally without calling the provider.
func WithGatewayMock(enabled bool) SettlementOption {
	return func(u *InvoiceSettlementUseCase) { u.mockMode = enabled }
}

// WithSandboxPayer fills payer.email with email when the request carries no
// payer identification (Mercado Pago test credentials).
func WithSandboxPayer(email string) SettlementOption {
	return func(u *InvoiceSettlementUseCase) { u.testPayerEmail = strings.TrimSpace(email) }
}

func WithSettlementMetrics(m interfaces.ILedgerMetrics) SettlementOption {
	return func(u *InvoiceSettlementUseCase) { u.metrics = m }
}

func WithSettlementLogger(log *zap.Logger) SettlementOption {
	return func(u *InvoiceSettlementUseCase) { u.log = log }
}

func NewInvoiceSettlementUseCase(
	ledger ILedgerUseCase,
	storage interfaces.ICollectionStorage,
	gateway interfaces.IPaymentGateway,
	ids interfaces.IIDGenerator,
	clock interfaces.IClock,
	opts ...SettlementOption,
) *InvoiceSettlementUseCase {
	u := &InvoiceSettlementUseCase{
		ledger:   ledger,
		gateway:  gateway,
		ids:      ids,
		clock:    clock,
		metrics:  noopLedgerMetrics{},
		log:      zap.NewNop(),
		settling: map[string]struct{}{},
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
	u.log = u.log.Named("settlement.usecase")
	u.payments = recordstore.New[entities.PaymentRecord](storage, u.log)
	return u
}

func (u *InvoiceSettlementUseCase) Settle(ctx context.Context, invoiceID string, payload json.RawMessage) (InvoiceSettlement, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	log := u.log.With(zap.String("invoice_id", invoiceID))
	log.Info("settle start", zap.Int("payload_len", len(payload)), zap.Bool("mock", u.mockMode))

	if invoiceID == "" {
		return InvoiceSettlement{}, ErrInvalidInvoiceID
	}
	if len(payload) == 0 || !json.Valid(payload) {
		if !u.mockMode {
			log.Warn("invalid payload")
			return InvoiceSettlement{}, ErrInvalidPaymentPayload
		}
		payload = json.RawMessage("{}")
	}

	if !u.beginSettlement(invoiceID) {
		log.Warn("settlement already in progress")
		return InvoiceSettlement{}, ErrSettlementInProgress
	}
	defer u.endSettlement(invoiceID)

	inv, err := u.ledger.GetInvoice(ctx, invoiceID)
	if err != nil {
		log.Warn("failed loading invoice", zap.Error(err))
		return InvoiceSettlement{}, err
	}
	if inv.IsPaid() {
		log.Info("invoice already paid")
		return InvoiceSettlement{}, ErrInvoiceAlreadyPaid
	}

	// An approved charge is already stored but the cascade did not run
	// (e.g. the ledger commit failed). Finish it without charging again.
	approved, err := u.findApprovedPayment(ctx, inv.ID)
	if err != nil {
		return InvoiceSettlement{}, err
	}
	if approved != nil {
		log.Warn("approved payment found for pending invoice; resuming cascade", zap.String("payment_id", approved.ID))
		return u.completeCascade(ctx, log, *approved)
	}

	request, err := u.buildProviderRequest(inv, payload)
	if err != nil {
		log.Warn("invalid payload", zap.Error(err))
		return InvoiceSettlement{}, err
	}

	var (
		providerPaymentID string
		providerStatus    string
		providerResp      json.RawMessage
	)
	if u.mockMode {
		providerPaymentID, providerStatus, providerResp, err = u.mockPayment(request)
		if err != nil {
			return InvoiceSettlement{}, err
		}
	} else {
		if u.gateway == nil {
			log.Error("gateway not configured")
			return InvoiceSettlement{}, ErrPaymentGatewayNotConfigured
		}
		providerPaymentID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, request)
		if err != nil {
			log.Warn("payment gateway failed", zap.Error(err))
			return InvoiceSettlement{}, classifyGatewayError(err)
		}
	}
	log.Info("payment gateway answered", zap.String("provider_payment_id", providerPaymentID), zap.String("provider_status", providerStatus))

	record, err := u.storePayment(ctx, inv.ID, providerPaymentID, providerStatus, providerResp)
	if err != nil {
		log.Error("payment record append failed", zap.Error(err))
		return InvoiceSettlement{}, err
	}
	u.metrics.IncSettlement(providerStatus)

	if !record.Approved() {
		log.Info("payment not approved; invoice stays pending", zap.String("provider_status", providerStatus))
		return InvoiceSettlement{Payment: record}, nil
	}
	return u.completeCascade(ctx, log, record)
}

func (u *InvoiceSettlementUseCase) beginSettlement(invoiceID string) bool {
	u.settleMu.Lock()
	defer u.settleMu.Unlock()
	if _, busy := u.settling[invoiceID]; busy {
		return false
	}
	u.settling[invoiceID] = struct{}{}
	return true
}

func (u *InvoiceSettlementUseCase) endSettlement(invoiceID string) {
	u.settleMu.Lock()
	delete(u.settling, invoiceID)
	u.settleMu.Unlock()
}

func (u *InvoiceSettlementUseCase) findApprovedPayment(ctx context.Context, invoiceID string) (*entities.PaymentRecord, error) {
	all, err := u.payments.ReadAll(ctx, CollectionPayments)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].InvoiceID == invoiceID && all[i].Approved() {
			p := all[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (u *InvoiceSettlementUseCase) storePayment(ctx context.Context, invoiceID, providerPaymentID, providerStatus string, providerResp json.RawMessage) (entities.PaymentRecord, error) {
	u.writeMu.Lock()
	defer u.writeMu.Unlock()

	record := entities.PaymentRecord{
		ID:                u.ids.NewID(interfaces.IDPrefixPayment),
		InvoiceID:         invoiceID,
		ProviderPaymentID: providerPaymentID,
		ProviderStatus:    providerStatus,
		Date:              u.clock.Now(),
		PayloadRaw:        providerResp,
	}
	if _, err := u.payments.Append(ctx, CollectionPayments, record); err != nil {
		return entities.PaymentRecord{}, err
	}
	return record, nil
}

func (u *InvoiceSettlementUseCase) completeCascade(ctx context.Context, log *zap.Logger, record entities.PaymentRecord) (InvoiceSettlement, error) {
	paid, err := u.ledger.MarkInvoicePaid(ctx, record.InvoiceID)
	if err != nil {
		log.Error("mark invoice paid failed after approved payment", zap.String("payment_id", record.ID), zap.Error(err))
		return InvoiceSettlement{}, err
	}
	log.Info("settle success", zap.String("payment_id", record.ID), zap.String("outcome", string(paid.Outcome)))
	return InvoiceSettlement{Payment: record, Ledger: &paid}, nil
}

func (u *InvoiceSettlementUseCase) ListPayments(ctx context.Context, invoiceID string) ([]entities.PaymentRecord, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return nil, ErrInvalidInvoiceID
	}

	all, err := u.payments.ReadAll(ctx, CollectionPayments)
	if err != nil {
		return nil, err
	}
	out := make([]entities.PaymentRecord, 0)
	for _, p := range all {
		if p.InvoiceID == invoiceID {
			out = append(out, p)
		}
	}
	return out, nil
}

// buildProviderRequest links the provider request to the invoice. The amount
// always comes from the stored invoice, never from the caller.
func (u *InvoiceSettlementUseCase) buildProviderRequest(inv entities.Invoice, payload json.RawMessage) (json.RawMessage, error) {
	var req map[string]any
	if err := json.Unmarshal(payload, &req); err != nil || req == nil {
		if !u.mockMode {
			return nil, ErrInvalidPaymentPayload
		}
		req = map[string]any{}
	}

	if !u.mockMode {
		if !hasNonEmptyString(req, "payment_method_id") {
			return nil, ErrInvalidPaymentPayload
		}
		u.ensurePayerDefaults(req)
		if !hasPayer(req) {
			return nil, ErrInvalidPaymentPayload
		}
	}

	req["external_reference"] = inv.ID
	if _, ok := req["description"]; !ok {
		req["description"] = fmt.Sprintf("Fatura %s (OS %s)", inv.ID, inv.ServiceOrderID)
	}
	req["transaction_amount"] = inv.Amount

	b, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (u *InvoiceSettlementUseCase) mockPayment(request json.RawMessage) (string, string, json.RawMessage, error) {
	now := u.clock.Now()
	id := strconv.FormatInt(now.UnixNano(), 10)

	resp := map[string]any{}
	_ = json.Unmarshal(request, &resp)
	resp["id"] = id
	resp["status"] = providerStatusApproved
	resp["status_detail"] = "accredited"
	resp["date_created"] = now.Format(time.RFC3339Nano)
	resp["date_approved"] = now.Format(time.RFC3339Nano)

	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	return id, providerStatusApproved, b, nil
}

func (u *InvoiceSettlementUseCase) ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if u.testPayerEmail != "" && !hasPayerID(payer) && !hasNonEmptyString(payer, "email") {
		payer["email"] = u.testPayerEmail
	}
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

// classifyGatewayError maps provider error bodies to sentinel errors.
func classifyGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002"):
		return ErrPaymentGatewayCustomerNotFound
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034"):
		return ErrPaymentGatewayInvalidUsers
	case strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401"):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400"):
		return ErrPaymentGatewayBadRequest
	default:
		return err
	}
}
