package enum

import "fmt"

// PaymentMethod represents how a payment was made
type PaymentMethod string

const (
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodCard         PaymentMethod = "card"
	PaymentMethodOther        PaymentMethod = "other"
)

func (m PaymentMethod) String() string {
	return string(m)
}

// Validate returns an error for methods outside the known set
func (m PaymentMethod) Validate() error {
	switch m {
	case PaymentMethodBankTransfer, PaymentMethodCash, PaymentMethodCard, PaymentMethodOther:
		return nil
	default:
		return fmt.Errorf("unknown payment method %q", string(m))
	}
}
