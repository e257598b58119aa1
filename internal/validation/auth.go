package validation

import (
	"strings"

	"github.com/cryptoassets/portal/internal/api/request"
)

// ValidateSendOTPRequest validates an OTP send request.
func ValidateSendOTPRequest(req request.SendOTPRequest) error {
	errors := make(map[string]string)

	if err := ValidateEmail(strings.TrimSpace(req.Email)); err != nil {
		errors["email"] = err.Error()
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateVerifyOTPRequest validates an OTP verify request.
// The code must be all digits; length is checked against the issued code later.
func ValidateVerifyOTPRequest(req request.VerifyOTPRequest) error {
	errors := make(map[string]string)

	if err := ValidateEmail(strings.TrimSpace(req.Email)); err != nil {
		errors["email"] = err.Error()
	}

	code := strings.TrimSpace(req.Code)
	if code == "" {
		errors["code"] = "code is required"
	} else {
		for _, r := range code {
			if r < '0' || r > '9' {
				errors["code"] = "code must be numeric"
				break
			}
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
