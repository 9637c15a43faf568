package constants

// Redis key formats
const (
	KeyCardOTP     = "card:otp:%s"     // Format: card:otp:{card_id}
	KeyCardPinFail = "card:pinfail:%s" // Format: card:pinfail:{card_token}
	KeyCardPinLock = "card:pinlock:%s" // Format: card:pinlock:{card_token}

	// Rate Limiting
	KeyRateLimit = "rate:limit:%s:%s" // Format: rate:limit:{resource}:{ip}
)
