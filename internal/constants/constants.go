package constants

type Role string

const (
	RoleRequester Role = "REQUESTER"
	RoleTasker    Role = "TASKER"
	RoleAdmin     Role = "ADMIN"
)

func (r Role) Valid() bool {
	switch r {
	case RoleRequester, RoleTasker, RoleAdmin:
		return true
	}
	return false
}

type UserStatus string

const (
	UserActive    UserStatus = "ACTIVE"
	UserSuspended UserStatus = "SUSPENDED"
)

func (s UserStatus) Valid() bool {
	return s == UserActive || s == UserSuspended
}

type JobStatus string

const (
	JobOpen       JobStatus = "OPEN"
	JobInProgress JobStatus = "IN_PROGRESS"
	JobCompleted  JobStatus = "COMPLETED"
	JobCancelled  JobStatus = "CANCELLED"
)

func (s JobStatus) Valid() bool {
	switch s {
	case JobOpen, JobInProgress, JobCompleted, JobCancelled:
		return true
	}
	return false
}

type ApplicationStatus string

const (
	ApplicationPending   ApplicationStatus = "PENDING"
	ApplicationAccepted  ApplicationStatus = "ACCEPTED"
	ApplicationRejected  ApplicationStatus = "REJECTED"
	ApplicationWithdrawn ApplicationStatus = "WITHDRAWN"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentCompleted PaymentStatus = "COMPLETED"
	PaymentFailed    PaymentStatus = "FAILED"
	PaymentRefunded  PaymentStatus = "REFUNDED"
)

type PaymentType string

const (
	PaymentTypePayment    PaymentType = "PAYMENT"
	PaymentTypeCommission PaymentType = "COMMISSION"
	PaymentTypeRefund     PaymentType = "REFUND"
)
