package dto

// SubscriberResponse echoes a registered subscriber.
type SubscriberResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
