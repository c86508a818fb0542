package gateway

import (
	"fmt"
	"time"

	"github.com/ariapay/ariapay-core/pkg/models"
)

// seedBalance is the demo account balance. The mock never moves money,
// so it stays fixed.
const seedBalance = 1250.75

var seedMerchants = []struct {
	name string
	id   string
}{
	{"Coffee House", "merchant_coffee"},
	{"Grocery Store", "merchant_grocery"},
	{"Gas Station", "merchant_gas"},
	{"Restaurant", "merchant_restaurant"},
}

// seedSampleData installs the demo user, two cards and ten historical
// transactions spread over the last ten days.
func (m *Mock) seedSampleData() {
	now := m.now()

	m.user = &models.User{
		Id:          "user_001",
		Email:       demoEmail,
		FirstName:   "John",
		LastName:    "Doe",
		PhoneNumber: "+1234567890",
		IsVerified:  true,
		CreatedAt:   now.Add(-30 * 24 * time.Hour),
	}

	m.cards = []models.PaymentCard{
		{
			Id:             "card_001",
			UserId:         "user_001",
			CardType:       models.VISA,
			LastFourDigits: "4242",
			ExpiryMonth:    12,
			ExpiryYear:     2027,
			CardholderName: "JOHN DOE",
			IsDefault:      true,
			NfcEnabled:     true,
			TokenId:        "nfc_token_visa_001",
		},
		{
			Id:             "card_002",
			UserId:         "user_001",
			CardType:       models.MASTERCARD,
			LastFourDigits: "5555",
			ExpiryMonth:    6,
			ExpiryYear:     2026,
			CardholderName: "JOHN DOE",
			IsDefault:      false,
			NfcEnabled:     true,
			TokenId:        "nfc_token_mc_002",
		},
	}

	// Appended oldest first so the newest sample ends up at the head.
	for i := 9; i >= 0; i-- {
		merchant := seedMerchants[m.rng.Intn(len(seedMerchants))]
		card := m.cards[m.rng.Intn(len(m.cards))]
		amount := float64(int64(m.rng.Float64()*14500+500)) / 100 // 5.00 - 150.00

		m.ledger.Append(models.Transaction{
			Id:           fmt.Sprintf("txn_sample_%d", i),
			Amount:       amount,
			Currency:     "USD",
			MerchantId:   merchant.id,
			MerchantName: merchant.name,
			CardLastFour: card.LastFourDigits,
			Status:       models.COMPLETED,
			Timestamp:    now.Add(-time.Duration(i) * 24 * time.Hour),
			NfcTokenId:   m.cards[0].TokenId,
		})
	}
}
