package email

import "fmt"

const (
	verificationSubject = "Confirm Registration"
	resetSubject        = "Password Reset E-mail"
)

func verificationBody(baseURL, to string) string {
	return fmt.Sprintf(`Dear user,
Thank you for creating your account.
Please confirm your email address by visiting the link below:

%s/api/v1/auth/mail_verification/%s

If you have not requested a verification code, you can safely ignore this email.
`, baseURL, to)
}

func resetBody(code int) string {
	return fmt.Sprintf(`You received this email because
you or someone else has requested a password reset for your user account.

YOUR CODE
%d

If you did not request a password reset you can safely ignore this email.
`, code)
}
