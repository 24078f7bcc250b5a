package model

import "time"

// Enquiry statuses, mutated only through the admin back-office.
const (
	EnquiryStatusNew        = "New"
	EnquiryStatusInProgress = "In Progress"
	EnquiryStatusClosed     = "Closed"
)

// EnquiryStatuses lists the valid enquiry workflow states.
var EnquiryStatuses = []string{EnquiryStatusNew, EnquiryStatusInProgress, EnquiryStatusClosed}

// Enquiry is a contact-form submission.
type Enquiry struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
