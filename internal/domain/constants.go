package domain

// Pricing constants
const (
	// PlatformFee фиксированный платёжный сбор платформы
	PlatformFee = 50.0

	// TaxRate ставка налога (18% GST), не конфигурируется
	TaxRate = 0.18

	// FallbackServiceCost базовая стоимость, когда не указана ни цена услуги,
	// ни ставка профессионала. Зафиксировано как бизнес-правило, не менять
	// без согласования с продуктом
	FallbackServiceCost = 500.0
)

// Business validation constants
const (
	MaxNotesLength      = 500
	ContactNumberLength = 10
	MaxAddressLabelLen  = 50
	PincodeLength       = 6
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// PaymentMethods допустимые способы оплаты
var PaymentMethods = []string{"upi", "card", "wallet", "cash"}

// IsValidPaymentMethod проверяет, что способ оплаты поддерживается
func IsValidPaymentMethod(method string) bool {
	for _, m := range PaymentMethods {
		if m == method {
			return true
		}
	}
	return false
}
