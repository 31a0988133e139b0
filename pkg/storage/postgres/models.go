package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"shopapi/pkg/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func optionsToJSON(o domain.Options) (json.RawMessage, error) {
	if len(o) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(o)
	if err != nil {
		return nil, fmt.Errorf("could not marshal options: %w", err)
	}

	return b, nil
}

func optionsFromJSON(raw json.RawMessage) (domain.Options, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var o domain.Options
	if err := json.Unmarshal(raw, &o); err != nil {
		return nil, fmt.Errorf("could not unmarshal options: %w", err)
	}

	return o, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}

type PgUser struct {
	ID uuid.UUID `db:"id" goqu:"skipinsert"`

	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`

	Nickname    sql.NullString `db:"nickname"`
	PhoneNumber sql.NullString `db:"phone_number"`

	Role   string `db:"role"`
	Status string `db:"status"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgUser) ToDomain() *domain.User {
	return &domain.User{
		ID:           domain.UserID(p.ID),
		Email:        p.Email,
		PasswordHash: p.PasswordHash,
		Nickname:     p.Nickname.String,
		PhoneNumber:  p.PhoneNumber.String,
		Role:         domain.UserRole(p.Role),
		Status:       domain.UserStatus(p.Status),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt.Time,
	}
}

func (p *PgUser) FromDomain(user domain.User) {
	*p = PgUser{
		ID:           uuid.UUID(user.ID),
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Nickname:     nullString(user.Nickname),
		PhoneNumber:  nullString(user.PhoneNumber),
		Role:         string(user.Role),
		Status:       string(user.Status),
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    nullTime(user.UpdatedAt),
	}
}

type PgCategory struct {
	ID   uuid.UUID `db:"id" goqu:"skipinsert"`
	Name string    `db:"name"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgCategory) ToDomain() *domain.Category {
	return &domain.Category{
		ID:        domain.CategoryID(p.ID),
		Name:      p.Name,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt.Time,
	}
}

type PgProduct struct {
	ID uuid.UUID `db:"id" goqu:"skipinsert"`

	Name        string          `db:"name"`
	Description sql.NullString  `db:"description"`
	Price       decimal.Decimal `db:"price"`

	CategoryID uuid.NullUUID   `db:"category_id"`
	Options    json.RawMessage `db:"options"`
	IsActive   bool            `db:"is_active"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgProduct) ToDomain() (*domain.Product, error) {
	opts, err := optionsFromJSON(p.Options)
	if err != nil {
		return nil, err
	}

	var categoryID *domain.CategoryID
	if p.CategoryID.Valid {
		id := domain.CategoryID(p.CategoryID.UUID)
		categoryID = &id
	}

	return &domain.Product{
		ID:          domain.ProductID(p.ID),
		Name:        p.Name,
		Description: p.Description.String,
		Price:       p.Price,
		CategoryID:  categoryID,
		Options:     opts,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt.Time,
	}, nil
}

func (p *PgProduct) FromDomain(product domain.Product) error {
	opts, err := optionsToJSON(product.Options)
	if err != nil {
		return err
	}

	var categoryID uuid.NullUUID
	if product.CategoryID != nil {
		categoryID = uuid.NullUUID{UUID: uuid.UUID(*product.CategoryID), Valid: true}
	}

	*p = PgProduct{
		ID:          uuid.UUID(product.ID),
		Name:        product.Name,
		Description: nullString(product.Description),
		Price:       product.Price,
		CategoryID:  categoryID,
		Options:     opts,
		IsActive:    product.IsActive,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   nullTime(product.UpdatedAt),
	}

	return nil
}

func pgProductsToDomain(products []PgProduct) ([]domain.Product, error) {
	out := make([]domain.Product, 0, len(products))
	for i := range products {
		d, err := products[i].ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}

type PgStock struct {
	ID        uuid.UUID `db:"id" goqu:"skipinsert"`
	ProductID uuid.UUID `db:"product_id"`

	OptionKey string          `db:"option_key"`
	Options   json.RawMessage `db:"options"`
	Quantity  int             `db:"quantity"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgStock) ToDomain() (*domain.ProductStock, error) {
	opts, err := optionsFromJSON(p.Options)
	if err != nil {
		return nil, err
	}

	return &domain.ProductStock{
		ID:        domain.StockID(p.ID),
		ProductID: domain.ProductID(p.ProductID),
		OptionKey: p.OptionKey,
		Options:   opts,
		Quantity:  p.Quantity,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt.Time,
	}, nil
}

func (p *PgStock) FromDomain(stock domain.ProductStock) error {
	opts, err := optionsToJSON(stock.Options)
	if err != nil {
		return err
	}

	*p = PgStock{
		ID:        uuid.UUID(stock.ID),
		ProductID: uuid.UUID(stock.ProductID),
		OptionKey: stock.OptionKey,
		Options:   opts,
		Quantity:  stock.Quantity,
		CreatedAt: stock.CreatedAt,
		UpdatedAt: nullTime(stock.UpdatedAt),
	}

	return nil
}

type PgCart struct {
	ID     uuid.UUID `db:"id" goqu:"skipinsert"`
	UserID uuid.UUID `db:"user_id"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	ExpiresAt time.Time    `db:"expires_at"`
}

func (p *PgCart) ToDomain() *domain.Cart {
	return &domain.Cart{
		ID:        domain.CartID(p.ID),
		UserID:    domain.UserID(p.UserID),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt.Time,
		ExpiresAt: p.ExpiresAt,
	}
}

type PgCartItem struct {
	ID     uuid.UUID `db:"id" goqu:"skipinsert"`
	CartID uuid.UUID `db:"cart_id"`

	ProductID uuid.UUID       `db:"product_id"`
	OptionKey string          `db:"option_key"`
	Options   json.RawMessage `db:"options"`

	Quantity  int             `db:"quantity"`
	UnitPrice decimal.Decimal `db:"unit_price"`

	AddedAt time.Time `db:"added_at" goqu:"skipinsert"`
}

func (p *PgCartItem) ToDomain() (*domain.CartItem, error) {
	opts, err := optionsFromJSON(p.Options)
	if err != nil {
		return nil, err
	}

	return &domain.CartItem{
		ID:        domain.CartItemID(p.ID),
		CartID:    domain.CartID(p.CartID),
		ProductID: domain.ProductID(p.ProductID),
		OptionKey: p.OptionKey,
		Options:   opts,
		Quantity:  p.Quantity,
		UnitPrice: p.UnitPrice,
		AddedAt:   p.AddedAt,
	}, nil
}

func (p *PgCartItem) FromDomain(item domain.CartItem) error {
	opts, err := optionsToJSON(item.Options)
	if err != nil {
		return err
	}

	*p = PgCartItem{
		ID:        uuid.UUID(item.ID),
		CartID:    uuid.UUID(item.CartID),
		ProductID: uuid.UUID(item.ProductID),
		OptionKey: item.OptionKey,
		Options:   opts,
		Quantity:  item.Quantity,
		UnitPrice: item.UnitPrice,
		AddedAt:   item.AddedAt,
	}

	return nil
}

func pgCartItemsToDomain(items []PgCartItem) ([]domain.CartItem, error) {
	out := make([]domain.CartItem, 0, len(items))
	for i := range items {
		d, err := items[i].ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}

type PgPurchase struct {
	ID     uuid.UUID `db:"id" goqu:"skipinsert"`
	UserID uuid.UUID `db:"user_id"`

	ProductID uuid.UUID       `db:"product_id"`
	Quantity  int             `db:"quantity"`
	UnitPrice decimal.Decimal `db:"unit_price"`
	Options   json.RawMessage `db:"options"`
	OptionKey string          `db:"option_key"`

	Status      string    `db:"status"`
	PurchasedAt time.Time `db:"purchased_at" goqu:"skipinsert"`

	PG              sql.NullString `db:"pg"`
	PGTransactionID sql.NullString `db:"pg_tid"`
}

func (p *PgPurchase) ToDomain() (*domain.Purchase, error) {
	opts, err := optionsFromJSON(p.Options)
	if err != nil {
		return nil, err
	}

	return &domain.Purchase{
		ID:              domain.PurchaseID(p.ID),
		UserID:          domain.UserID(p.UserID),
		ProductID:       domain.ProductID(p.ProductID),
		Quantity:        p.Quantity,
		UnitPrice:       p.UnitPrice,
		Options:         opts,
		OptionKey:       p.OptionKey,
		Status:          domain.PurchaseStatus(p.Status),
		PurchasedAt:     p.PurchasedAt,
		PG:              p.PG.String,
		PGTransactionID: p.PGTransactionID.String,
	}, nil
}

func (p *PgPurchase) FromDomain(purchase domain.Purchase) error {
	opts, err := optionsToJSON(purchase.Options)
	if err != nil {
		return err
	}

	*p = PgPurchase{
		ID:              uuid.UUID(purchase.ID),
		UserID:          uuid.UUID(purchase.UserID),
		ProductID:       uuid.UUID(purchase.ProductID),
		Quantity:        purchase.Quantity,
		UnitPrice:       purchase.UnitPrice,
		Options:         opts,
		OptionKey:       purchase.OptionKey,
		Status:          string(purchase.Status),
		PurchasedAt:     purchase.PurchasedAt,
		PG:              nullString(purchase.PG),
		PGTransactionID: nullString(purchase.PGTransactionID),
	}

	return nil
}

func domainPurchasesToPg(purchases []domain.Purchase) ([]PgPurchase, error) {
	out := make([]PgPurchase, len(purchases))
	for i := range out {
		if err := out[i].FromDomain(purchases[i]); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func pgPurchasesToDomain(purchases []PgPurchase) ([]domain.Purchase, error) {
	out := make([]domain.Purchase, 0, len(purchases))
	for i := range purchases {
		d, err := purchases[i].ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}

type PgPayment struct {
	ID      uuid.UUID `db:"id" goqu:"skipinsert"`
	OrderID uuid.UUID `db:"order_id"`

	Provider           string         `db:"provider"`
	ProviderPaymentKey sql.NullString `db:"provider_payment_key"`
	OrderNumber        sql.NullString `db:"order_number"`

	Method sql.NullString `db:"method"`
	Status string         `db:"status"`

	Currency      string          `db:"currency"`
	AmountTotal   decimal.Decimal `db:"amount_total"`
	AmountTaxFree decimal.Decimal `db:"amount_tax_free"`
	VAT           decimal.Decimal `db:"vat"`

	RequestedAt sql.NullTime `db:"requested_at"`
	ApprovedAt  sql.NullTime `db:"approved_at"`
	CanceledAt  sql.NullTime `db:"canceled_at"`

	FailureCode    sql.NullString `db:"failure_code"`
	FailureMessage sql.NullString `db:"failure_message"`
	ReceiptURL     sql.NullString `db:"receipt_url"`

	CardInfo       json.RawMessage `db:"card_info"`
	VirtualAccount json.RawMessage `db:"virtual_account"`
	EasyPay        json.RawMessage `db:"easy_pay"`

	LastSyncedAt sql.NullTime `db:"last_synced_at"`
	CreatedAt    time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt    sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgPayment) ToDomain() *domain.Payment {
	return &domain.Payment{
		ID:                 domain.PaymentID(p.ID),
		OrderID:            domain.PurchaseID(p.OrderID),
		Provider:           domain.PaymentProvider(p.Provider),
		ProviderPaymentKey: p.ProviderPaymentKey.String,
		OrderNumber:        p.OrderNumber.String,
		Method:             domain.PaymentMethod(p.Method.String),
		Status:             domain.PaymentStatus(p.Status),
		Currency:           p.Currency,
		AmountTotal:        p.AmountTotal,
		AmountTaxFree:      p.AmountTaxFree,
		VAT:                p.VAT,
		RequestedAt:        p.RequestedAt.Time,
		ApprovedAt:         p.ApprovedAt.Time,
		CanceledAt:         p.CanceledAt.Time,
		FailureCode:        p.FailureCode.String,
		FailureMessage:     p.FailureMessage.String,
		ReceiptURL:         p.ReceiptURL.String,
		CardInfo:           p.CardInfo,
		VirtualAccount:     p.VirtualAccount,
		EasyPay:            p.EasyPay,
		LastSyncedAt:       p.LastSyncedAt.Time,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt.Time,
	}
}

func (p *PgPayment) FromDomain(payment domain.Payment) {
	*p = PgPayment{
		ID:                 uuid.UUID(payment.ID),
		OrderID:            uuid.UUID(payment.OrderID),
		Provider:           string(payment.Provider),
		ProviderPaymentKey: nullString(payment.ProviderPaymentKey),
		OrderNumber:        nullString(payment.OrderNumber),
		Method:             nullString(string(payment.Method)),
		Status:             string(payment.Status),
		Currency:           payment.Currency,
		AmountTotal:        payment.AmountTotal,
		AmountTaxFree:      payment.AmountTaxFree,
		VAT:                payment.VAT,
		RequestedAt:        nullTime(payment.RequestedAt),
		ApprovedAt:         nullTime(payment.ApprovedAt),
		CanceledAt:         nullTime(payment.CanceledAt),
		FailureCode:        nullString(payment.FailureCode),
		FailureMessage:     nullString(payment.FailureMessage),
		ReceiptURL:         nullString(payment.ReceiptURL),
		CardInfo:           payment.CardInfo,
		VirtualAccount:     payment.VirtualAccount,
		EasyPay:            payment.EasyPay,
		LastSyncedAt:       nullTime(payment.LastSyncedAt),
		CreatedAt:          payment.CreatedAt,
		UpdatedAt:          nullTime(payment.UpdatedAt),
	}
}

type PgPaymentEvent struct {
	ID        uuid.UUID `db:"id" goqu:"skipinsert"`
	PaymentID uuid.UUID `db:"payment_id"`

	Source         string          `db:"source"`
	EventType      string          `db:"event_type"`
	ProviderStatus sql.NullString  `db:"provider_status"`
	Payload        json.RawMessage `db:"payload"`
	DedupeKey      sql.NullString  `db:"dedupe_key"`

	OccurredAt sql.NullTime `db:"occurred_at"`
	CreatedAt  time.Time    `db:"created_at" goqu:"skipinsert"`
}

func (p *PgPaymentEvent) ToDomain() *domain.PaymentEvent {
	return &domain.PaymentEvent{
		ID:             domain.PaymentEventID(p.ID),
		PaymentID:      domain.PaymentID(p.PaymentID),
		Source:         p.Source,
		EventType:      p.EventType,
		ProviderStatus: domain.PaymentStatus(p.ProviderStatus.String),
		Payload:        p.Payload,
		DedupeKey:      p.DedupeKey.String,
		OccurredAt:     p.OccurredAt.Time,
		CreatedAt:      p.CreatedAt,
	}
}

func (p *PgPaymentEvent) FromDomain(event domain.PaymentEvent) {
	*p = PgPaymentEvent{
		ID:             uuid.UUID(event.ID),
		PaymentID:      uuid.UUID(event.PaymentID),
		Source:         event.Source,
		EventType:      event.EventType,
		ProviderStatus: nullString(string(event.ProviderStatus)),
		Payload:        event.Payload,
		DedupeKey:      nullString(event.DedupeKey),
		OccurredAt:     nullTime(event.OccurredAt),
		CreatedAt:      event.CreatedAt,
	}
}

type PgPaymentCancel struct {
	ID        uuid.UUID `db:"id" goqu:"skipinsert"`
	PaymentID uuid.UUID `db:"payment_id"`

	Status string         `db:"status"`
	Reason sql.NullString `db:"reason"`

	CancelAmount  decimal.Decimal `db:"cancel_amount"`
	TaxFreeAmount decimal.Decimal `db:"tax_free_amount"`

	RequestedAt time.Time    `db:"requested_at"`
	ApprovedAt  sql.NullTime `db:"approved_at"`

	ProviderCancelKey sql.NullString `db:"provider_cancel_key"`
	ErrorCode         sql.NullString `db:"error_code"`
	ErrorMessage      sql.NullString `db:"error_message"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgPaymentCancel) ToDomain() *domain.PaymentCancel {
	return &domain.PaymentCancel{
		ID:                domain.PaymentCancelID(p.ID),
		PaymentID:         domain.PaymentID(p.PaymentID),
		Status:            domain.CancelStatus(p.Status),
		Reason:            p.Reason.String,
		CancelAmount:      p.CancelAmount,
		TaxFreeAmount:     p.TaxFreeAmount,
		RequestedAt:       p.RequestedAt,
		ApprovedAt:        p.ApprovedAt.Time,
		ProviderCancelKey: p.ProviderCancelKey.String,
		ErrorCode:         p.ErrorCode.String,
		ErrorMessage:      p.ErrorMessage.String,
		CreatedAt:         p.CreatedAt,
	}
}

func (p *PgPaymentCancel) FromDomain(cancel domain.PaymentCancel) {
	*p = PgPaymentCancel{
		ID:                uuid.UUID(cancel.ID),
		PaymentID:         uuid.UUID(cancel.PaymentID),
		Status:            string(cancel.Status),
		Reason:            nullString(cancel.Reason),
		CancelAmount:      cancel.CancelAmount,
		TaxFreeAmount:     cancel.TaxFreeAmount,
		RequestedAt:       cancel.RequestedAt,
		ApprovedAt:        nullTime(cancel.ApprovedAt),
		ProviderCancelKey: nullString(cancel.ProviderCancelKey),
		ErrorCode:         nullString(cancel.ErrorCode),
		ErrorMessage:      nullString(cancel.ErrorMessage),
		CreatedAt:         cancel.CreatedAt,
	}
}

type PgShipment struct {
	ID uuid.UUID `db:"id" goqu:"skipinsert"`

	Carrier        string `db:"carrier"`
	TrackingNumber string `db:"tracking_number"`

	Status string `db:"status"`

	ShippedAt   sql.NullTime `db:"shipped_at"`
	DeliveredAt sql.NullTime `db:"delivered_at"`
	CanceledAt  sql.NullTime `db:"canceled_at"`

	LastEventAt     sql.NullTime   `db:"last_event_at"`
	LastEventStatus sql.NullString `db:"last_event_status"`
	LastEventLoc    sql.NullString `db:"last_event_loc"`
	LastEventDesc   sql.NullString `db:"last_event_desc"`

	LastSyncedAt sql.NullTime `db:"last_synced_at"`

	OrderID uuid.UUID `db:"order_id"`
	UserID  uuid.UUID `db:"user_id"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgShipment) ToDomain() *domain.Shipment {
	return &domain.Shipment{
		ID:              domain.ShipmentID(p.ID),
		Carrier:         p.Carrier,
		TrackingNumber:  p.TrackingNumber,
		Status:          domain.ShipmentStatus(p.Status),
		ShippedAt:       p.ShippedAt.Time,
		DeliveredAt:     p.DeliveredAt.Time,
		CanceledAt:      p.CanceledAt.Time,
		LastEventAt:     p.LastEventAt.Time,
		LastEventStatus: domain.ShipmentStatus(p.LastEventStatus.String),
		LastEventLoc:    p.LastEventLoc.String,
		LastEventDesc:   p.LastEventDesc.String,
		LastSyncedAt:    p.LastSyncedAt.Time,
		OrderID:         domain.PurchaseID(p.OrderID),
		UserID:          domain.UserID(p.UserID),
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt.Time,
	}
}

func (p *PgShipment) FromDomain(shipment domain.Shipment) {
	*p = PgShipment{
		ID:              uuid.UUID(shipment.ID),
		Carrier:         shipment.Carrier,
		TrackingNumber:  shipment.TrackingNumber,
		Status:          string(shipment.Status),
		ShippedAt:       nullTime(shipment.ShippedAt),
		DeliveredAt:     nullTime(shipment.DeliveredAt),
		CanceledAt:      nullTime(shipment.CanceledAt),
		LastEventAt:     nullTime(shipment.LastEventAt),
		LastEventStatus: nullString(string(shipment.LastEventStatus)),
		LastEventLoc:    nullString(shipment.LastEventLoc),
		LastEventDesc:   nullString(shipment.LastEventDesc),
		LastSyncedAt:    nullTime(shipment.LastSyncedAt),
		OrderID:         uuid.UUID(shipment.OrderID),
		UserID:          uuid.UUID(shipment.UserID),
		CreatedAt:       shipment.CreatedAt,
		UpdatedAt:       nullTime(shipment.UpdatedAt),
	}
}

func pgShipmentsToDomain(shipments []PgShipment) []domain.Shipment {
	out := make([]domain.Shipment, 0, len(shipments))
	for i := range shipments {
		out = append(out, *shipments[i].ToDomain())
	}

	return out
}

type PgShipmentEvent struct {
	ID         uuid.UUID `db:"id" goqu:"skipinsert"`
	ShipmentID uuid.UUID `db:"shipment_id"`

	OccurredAt  time.Time      `db:"occurred_at"`
	Status      string         `db:"status"`
	Location    sql.NullString `db:"location"`
	Description sql.NullString `db:"description"`

	ProviderCode sql.NullString  `db:"provider_code"`
	RawPayload   json.RawMessage `db:"raw_payload"`
	Source       string          `db:"source"`
	DedupeKey    string          `db:"dedupe_key"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgShipmentEvent) ToDomain() *domain.ShipmentEvent {
	return &domain.ShipmentEvent{
		ID:           domain.ShipmentEventID(p.ID),
		ShipmentID:   domain.ShipmentID(p.ShipmentID),
		OccurredAt:   p.OccurredAt,
		Status:       domain.ShipmentStatus(p.Status),
		Location:     p.Location.String,
		Description:  p.Description.String,
		ProviderCode: p.ProviderCode.String,
		RawPayload:   p.RawPayload,
		Source:       p.Source,
		DedupeKey:    p.DedupeKey,
		CreatedAt:    p.CreatedAt,
	}
}

func (p *PgShipmentEvent) FromDomain(event domain.ShipmentEvent) {
	*p = PgShipmentEvent{
		ID:           uuid.UUID(event.ID),
		ShipmentID:   uuid.UUID(event.ShipmentID),
		OccurredAt:   event.OccurredAt,
		Status:       string(event.Status),
		Location:     nullString(event.Location),
		Description:  nullString(event.Description),
		ProviderCode: nullString(event.ProviderCode),
		RawPayload:   event.RawPayload,
		Source:       event.Source,
		DedupeKey:    event.DedupeKey,
		CreatedAt:    event.CreatedAt,
	}
}

func pgShipmentEventsToDomain(events []PgShipmentEvent) []domain.ShipmentEvent {
	out := make([]domain.ShipmentEvent, 0, len(events))
	for i := range events {
		out = append(out, *events[i].ToDomain())
	}

	return out
}
