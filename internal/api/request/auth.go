package request

// SendOTPRequest represents the body of POST /api/auth/otp/send.
type SendOTPRequest struct {
	Email string `json:"email"`
}

// VerifyOTPRequest represents the body of POST /api/auth/otp/verify.
type VerifyOTPRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}
