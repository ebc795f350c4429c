package domain

type AssociationRequestStatus string

const (
	AssociationRequestStatusPending  AssociationRequestStatus = "Pending"
	AssociationRequestStatusApproved AssociationRequestStatus = "Approved"
	AssociationRequestStatusDeclined AssociationRequestStatus = "Declined"
)

// AssociationRequest is a user's petition to register a new association.
// Rows are created by the app; this backend only reacts to status changes.
// Processed guards against duplicate webhook delivery: once true, the row
// must never be acted on again.
type AssociationRequest struct {
	ID         string                   `json:"id"`
	UserID     string                   `json:"user_id"`
	Name       string                   `json:"name"`
	WebsiteURL string                   `json:"website_url"`
	Status     AssociationRequestStatus `json:"status"`
	Processed  bool                     `json:"processed"`
}
