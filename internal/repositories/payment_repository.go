package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"promarket.com/promarket/internal/constants"
	model "promarket.com/promarket/internal/models"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) WithTx(tx *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: tx}
}

func (r *PaymentRepository) Create(ctx context.Context, txn *model.PaymentTransaction) error {
	if txn.ID == "" {
		txn.ID = uuid.NewString()
	}
	if txn.TransactionID == "" {
		txn.TransactionID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(txn).Error
}

func (r *PaymentRepository) ListByJob(ctx context.Context, jobID string) ([]model.PaymentTransaction, error) {
	var txns []model.PaymentTransaction
	err := r.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order("created_at asc").
		Find(&txns).Error
	return txns, err
}

// PlatformRevenue sums completed COMMISSION transactions.
func (r *PaymentRepository) PlatformRevenue(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&model.PaymentTransaction{}).
		Where("type = ? AND status = ?", constants.PaymentTypeCommission, constants.PaymentCompleted).
		Select("COALESCE(SUM(amount), 0)").Scan(&total).Error
	return total, err
}

// TotalPaidBy sums completed PAYMENT rows only; commission rows are the
// platform's side of the ledger, not money paid for work.
func (r *PaymentRepository) TotalPaidBy(ctx context.Context, payerID string) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&model.PaymentTransaction{}).
		Where("payer_id = ? AND type = ? AND status = ?", payerID, constants.PaymentTypePayment, constants.PaymentCompleted).
		Select("COALESCE(SUM(amount), 0)").Scan(&total).Error
	return total, err
}

func (r *PaymentRepository) TotalReceivedBy(ctx context.Context, payeeID string) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&model.PaymentTransaction{}).
		Where("payee_id = ? AND type = ? AND status = ?", payeeID, constants.PaymentTypePayment, constants.PaymentCompleted).
		Select("COALESCE(SUM(amount), 0)").Scan(&total).Error
	return total, err
}
