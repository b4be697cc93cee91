package orderControllers

import (
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/awais-ur-rehman/Farhat-Rena-backend/models"
	"github.com/awais-ur-rehman/Farhat-Rena-backend/notify"
)

var (
	// ErrNotFoundOrForbidden is the merged wrong-id/wrong-owner outcome, so
	// responses never reveal whether somebody else's order id exists.
	ErrNotFoundOrForbidden = errors.New("order not found or not owned by caller")
	ErrNotFound            = errors.New("order not found")
	ErrInvalidTransition   = errors.New("status transition not allowed")
)

// -------- Request Structs --------

type CartLine struct {
	ItemID            string  `json:"itemId"`
	SelectedSize      string  `json:"selectedSize"`
	SelectedFabric    string  `json:"selectedFabric"`
	SelectedQuantity  int     `json:"selectedQuantity"`
	SelectedPrice     float64 `json:"selectedPrice"`
	Product           string  `json:"product"`
	FitStyleSelection string  `json:"fitStyleSelection"`
}

type DeliveryForm struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
}

type PaymentDetails struct {
	Method      string  `json:"method"`
	PhoneNumber string  `json:"phoneNumber"`
	Amount      float64 `json:"amount"`
}

type AccountInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type PlaceOrderRequest struct {
	CartData         []CartLine      `json:"cartData"`
	DeliveryFormData *DeliveryForm   `json:"deliveryFormData"`
	PaymentDetails   *PaymentDetails `json:"paymentDetails"`
	Status           string          `json:"status"`
	Payment          bool            `json:"payment"`
	AccountInfo      *AccountInfo    `json:"accountInfo"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type VerifyOrderRequest struct {
	OrderID uint `json:"orderId" binding:"required"`
	Success bool `json:"success"`
}

// validate fails fast, naming the first missing piece, before any write.
func (req *PlaceOrderRequest) validate() error {
	if len(req.CartData) == 0 {
		return errors.New("cartData is required")
	}
	if req.DeliveryFormData == nil {
		return errors.New("deliveryFormData is required")
	}
	if req.PaymentDetails == nil || req.PaymentDetails.Method == "" {
		return errors.New("paymentDetails is required")
	}
	if req.AccountInfo == nil || req.AccountInfo.Name == "" || req.AccountInfo.Email == "" {
		return errors.New("accountInfo is required")
	}
	return nil
}

// -------- Core Logic --------

// PlaceOrder persists one immutable order snapshot. It never reads or
// mutates the live cart; clearing the cart after checkout is the caller's
// separate call. The confirmation mail is attempted after the insert and its
// failure is reported only through the returned flag.
func PlaceOrder(db *gorm.DB, mailer notify.Mailer, req PlaceOrderRequest) (*models.Order, bool, error) {
	if err := req.validate(); err != nil {
		return nil, false, err
	}

	status := models.OrderStatusProcessing
	if req.Status != "" {
		parsed, err := models.ParseOrderStatus(req.Status)
		if err != nil {
			return nil, false, err
		}
		status = parsed
	}

	items := make([]models.OrderItem, 0, len(req.CartData))
	for _, line := range req.CartData {
		items = append(items, models.OrderItem{
			ItemID:      line.ItemID,
			Size:        line.SelectedSize,
			Fabric:      line.SelectedFabric,
			Quantity:    line.SelectedQuantity,
			Price:       line.SelectedPrice,
			ProductName: line.Product,
			FitStyle:    line.FitStyleSelection,
		})
	}

	order := models.Order{
		OrderRef:        generateOrderRef(),
		Items:           items,
		DeliveryName:    req.DeliveryFormData.Name,
		DeliveryPhone:   req.DeliveryFormData.Phone,
		DeliveryAddress: req.DeliveryFormData.Address,
		DeliveryCity:    req.DeliveryFormData.City,
		PaymentMethod:   req.PaymentDetails.Method,
		PaymentPhone:    req.PaymentDetails.PhoneNumber,
		PaymentAmount:   req.PaymentDetails.Amount,
		Status:          status,
		Payment:         req.Payment,
		AccountName:     req.AccountInfo.Name,
		AccountEmail:    req.AccountInfo.Email,
		CreatedAt:       time.Now(),
	}

	if err := db.Create(&order).Error; err != nil {
		return nil, false, err
	}

	emailSent := false
	if mailer != nil {
		if err := mailer.SendOrderConfirmation(&order); err != nil {
			log.Printf("⚠️ Order %s confirmation mail failed: %v", order.OrderRef, err)
		} else {
			emailSent = true
		}
	}

	return &order, emailSent, nil
}

func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// ListUserOrders returns the caller's orders, newest first.
func ListUserOrders(db *gorm.DB, email string) ([]models.Order, error) {
	orders := make([]models.Order, 0)
	err := db.
		Where("account_email = ?", email).
		Preload("Items").
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

// CancelOrder deletes the order only when both the id and the stored account
// email match the caller.
func CancelOrder(db *gorm.DB, email string, orderID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND account_email = ?", orderID, email).
			Delete(&models.Order{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFoundOrForbidden
		}
		return tx.Where("order_id = ?", orderID).Delete(&models.OrderItem{}).Error
	})
}

// UpdateStatus writes a new status after checking the transition table. An
// empty ownerEmail skips the owner check (admin path); transitions are
// enforced for admins too. Writing the current status back is a no-op.
func UpdateStatus(db *gorm.DB, orderID uint, newStatus models.OrderStatus, ownerEmail string) error {
	query := db.Where("id = ?", orderID)
	if ownerEmail != "" {
		query = query.Where("account_email = ?", ownerEmail)
	}

	var order models.Order
	if err := query.First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFoundOrForbidden
		}
		return err
	}

	if !models.CanTransition(order.Status, newStatus) {
		return ErrInvalidTransition
	}
	if order.Status == newStatus {
		return nil
	}

	return applyTransition(db, orderID, order.Status, newStatus)
}

// applyTransition writes the new status only while the row still holds the
// status the caller validated against. A concurrent writer that moved the
// order first leaves zero rows matched, so a stale write can never regress
// an already-advanced order.
func applyTransition(db *gorm.DB, orderID uint, from, to models.OrderStatus) error {
	res := db.Model(&models.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInvalidTransition
	}
	return nil
}

// DeleteOrder removes an order and its snapshot items by id alone; callers
// are responsible for any ownership check.
func DeleteOrder(db *gorm.DB, orderID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ?", orderID).Delete(&models.Order{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Where("order_id = ?", orderID).Delete(&models.OrderItem{}).Error
	})
}

// VerifyPayment confirms or voids payment for an order: success marks the
// payment flag, failure deletes the order outright.
func VerifyPayment(db *gorm.DB, orderID uint, success bool) error {
	if success {
		res := db.Model(&models.Order{}).Where("id = ?", orderID).
			Update("payment", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	}

	return DeleteOrder(db, orderID)
}
