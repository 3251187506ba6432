package service

import (
	"fmt"
	"log"
	"time"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"gorm.io/gorm"

	"rapatku_backend/internals/features/billing/payments/model"
)

var SnapClient snap.Client

var gatewayEnabled bool

// InitMidtrans menginisialisasi Midtrans Snap Client dengan server key.
// Server key kosong = checkout online dimatikan; submission manual dengan
// bukti transfer tetap jalan.
func InitMidtrans(serverKey string) {
	if serverKey == "" {
		log.Println("[INFO] MIDTRANS_SERVER_KEY kosong, checkout online nonaktif")
		gatewayEnabled = false
		return
	}
	SnapClient.New(serverKey, midtrans.Sandbox)
	gatewayEnabled = true
}

func GatewayEnabled() bool { return gatewayEnabled }

// GenerateSnapToken membuat sesi checkout Snap untuk payment pending.
// Order ID memakai payment_id supaya webhook bisa mencari baliknya.
func GenerateSnapToken(p *model.PaymentModel, clientName string) (token string, redirectURL string, err error) {
	if !gatewayEnabled {
		return "", "", ErrGatewayDisabled
	}

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  p.PaymentID.String(),
			GrossAmt: int64(p.PaymentAmountIDR),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: clientName,
		},
	}

	resp, errSnap := SnapClient.CreateTransaction(req)
	if errSnap != nil {
		return "", "", fmt.Errorf("gagal membuat transaksi midtrans: %w", errSnap)
	}

	return resp.Token, resp.RedirectURL, nil
}

// HandlePaymentStatusWebhook: update payment berdasarkan notifikasi Midtrans.
// Settlement gateway hanya menandai bukti pembayaran diterima — payment tetap
// pending sampai admin approve; yang gagal/expired ditolak otomatis.
func HandlePaymentStatusWebhook(db *gorm.DB, body map[string]interface{}) error {
	orderID, _ := body["order_id"].(string)
	transactionStatus, _ := body["transaction_status"].(string)
	if orderID == "" || transactionStatus == "" {
		return fmt.Errorf("payload webhook tidak lengkap")
	}

	var p model.PaymentModel
	if err := db.Where("payment_id = ? OR payment_external_id = ?", orderID, orderID).
		First(&p).Error; err != nil {
		return fmt.Errorf("payment tidak ditemukan untuk order %s: %w", orderID, err)
	}

	if !p.IsPending() {
		// Sudah diproses admin; notifikasi susulan diabaikan.
		return nil
	}

	switch transactionStatus {
	case "settlement", "capture", "success":
		proof := fmt.Sprintf("midtrans:%s", orderID)
		p.PaymentProofURL = &proof
		if p.PaymentMeta == nil {
			p.PaymentMeta = map[string]interface{}{}
		}
		p.PaymentMeta["gateway_status"] = transactionStatus
	case "deny", "cancel", "failure", "expire":
		now := time.Now()
		p.PaymentStatus = model.PaymentStatusRejected
		p.PaymentRejectedAt = &now
		reason := "Pembayaran gateway " + transactionStatus
		p.PaymentRejectReason = &reason
	default:
		// pending dan status antara lainnya: tidak ada perubahan
		return nil
	}

	if err := db.Save(&p).Error; err != nil {
		return fmt.Errorf("gagal memperbarui status payment: %w", err)
	}
	return nil
}
