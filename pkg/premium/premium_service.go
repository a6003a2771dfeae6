package premium

import (
	"context"
	"errors"
	"fmt"

	"nutriscan-backend/domain"
	"nutriscan-backend/entities"
	"nutriscan-backend/internal/utils"
	"nutriscan-backend/pkg/user"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"
	"github.com/midtrans/midtrans-go/snap"
	"gorm.io/gorm"
)

// PremiumPriceIDR is the one-time price of the premium upgrade, which
// unlocks nutritionist consultations in the app.
const PremiumPriceIDR int64 = 49000

type (
	PremiumService interface {
		CreateTransaction(ctx context.Context, userID string) (domain.CreateTransactionResponse, error)
		HandleNotification(ctx context.Context, req domain.MidtransNotificationRequest) error
	}

	premiumService struct {
		premiumRepository PremiumRepository
		userRepository    user.UserRepository
		snapClient        snap.Client
		coreClient        coreapi.Client
	}
)

func NewPremiumService(premiumRepository PremiumRepository, userRepository user.UserRepository) PremiumService {
	env := midtrans.Sandbox
	if utils.GetConfig("IsProd") == "true" {
		env = midtrans.Production
	}
	serverKey := utils.GetConfig("SERVER_KEY")

	var snapClient snap.Client
	snapClient.New(serverKey, env)
	var coreClient coreapi.Client
	coreClient.New(serverKey, env)

	return &premiumService{
		premiumRepository: premiumRepository,
		userRepository:    userRepository,
		snapClient:        snapClient,
		coreClient:        coreClient,
	}
}

func (s *premiumService) CreateTransaction(ctx context.Context, userID string) (domain.CreateTransactionResponse, error) {
	u, err := s.userRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CreateTransactionResponse{}, domain.ErrUserNotFound
		}
		return domain.CreateTransactionResponse{}, err
	}
	if u.IsPremium {
		return domain.CreateTransactionResponse{}, domain.ErrAlreadyPremium
	}

	orderID := fmt.Sprintf("premium-%s", uuid.New().String())
	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: PremiumPriceIDR,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			Email: u.Email,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    "premium-upgrade",
				Name:  "NutriScan Premium",
				Price: PremiumPriceIDR,
				Qty:   1,
			},
		},
	}

	snapResp, snapErr := s.snapClient.CreateTransaction(snapReq)
	if snapErr != nil {
		return domain.CreateTransactionResponse{}, snapErr
	}

	transaction := &entities.Transaction{
		ID:      uuid.New(),
		UserID:  u.ID,
		OrderID: orderID,
		Amount:  PremiumPriceIDR,
		Status:  "Pending",
	}
	if err := s.premiumRepository.CreateTransaction(ctx, transaction); err != nil {
		return domain.CreateTransactionResponse{}, err
	}

	return domain.CreateTransactionResponse{
		OrderID:     orderID,
		Token:       snapResp.Token,
		RedirectURL: snapResp.RedirectURL,
	}, nil
}

// HandleNotification processes the midtrans webhook. The reported status is
// never trusted directly; the transaction is re-checked against the midtrans
// API before anything is persisted.
func (s *premiumService) HandleNotification(ctx context.Context, req domain.MidtransNotificationRequest) error {
	transaction, err := s.premiumRepository.GetTransactionByOrderID(ctx, req.OrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrTransactionNotFound
		}
		return err
	}

	statusResp, statusErr := s.coreClient.CheckTransaction(req.OrderID)
	if statusErr != nil {
		return statusErr
	}

	switch statusResp.TransactionStatus {
	case "capture":
		if statusResp.FraudStatus != "accept" {
			transaction.Status = "Pending"
			return s.premiumRepository.UpdateTransaction(ctx, transaction)
		}
		return s.settle(ctx, transaction)
	case "settlement":
		return s.settle(ctx, transaction)
	case "deny", "cancel", "expire", "failure":
		transaction.Status = "Failed"
		return s.premiumRepository.UpdateTransaction(ctx, transaction)
	default:
		return nil
	}
}

func (s *premiumService) settle(ctx context.Context, transaction *entities.Transaction) error {
	if transaction.Status == "Settlement" {
		return nil
	}

	transaction.Status = "Settlement"
	if err := s.premiumRepository.UpdateTransaction(ctx, transaction); err != nil {
		return err
	}

	u, err := s.userRepository.GetByID(ctx, transaction.UserID.String())
	if err != nil {
		return err
	}
	if u.IsPremium {
		return nil
	}
	u.IsPremium = true
	return s.userRepository.Update(ctx, u)
}
