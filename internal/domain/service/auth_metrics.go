package service

// Login outcomes recorded by AuthMetrics.
const (
	LoginOutcomeSuccess            = "success"
	LoginOutcomeInvalidCredentials = "invalid_credentials"
	LoginOutcomeError              = "error"
)

// AuthMetrics records authentication events. Implementations must be safe
// for concurrent use.
type AuthMetrics interface {
	RecordLogin(outcome string)
	RecordTokenValidation(valid bool)
	RecordUserCreated()
	RecordUserDeleted()
}
