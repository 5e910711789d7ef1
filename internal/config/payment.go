package config

type PaymentConfig struct {
	Provider string `yaml:"provider"`
	Currency string `yaml:"currency"`
}

func loadPaymentConfig() *PaymentConfig {
	return &PaymentConfig{
		// "mock" is the only provider; the seam exists so a real gateway
		// could be dropped in without touching the booking flow.
		Provider: getEnv("PAYMENT_PROVIDER", "mock"),
		Currency: getEnv("PAYMENT_CURRENCY", "USD"),
	}
}
