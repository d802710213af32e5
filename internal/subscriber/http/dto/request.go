// Package dto provides data transfer objects for the subscriber HTTP layer.
package dto

// RegisterSubscriberRequest holds the fields pulled out of a registration body.
// Absent fields and fields that are not JSON strings are left empty.
type RegisterSubscriberRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ParseRegisterSubscriberRequest extracts name and email from a decoded body.
// A nil body is treated as empty.
func ParseRegisterSubscriberRequest(body map[string]any) RegisterSubscriberRequest {
	return RegisterSubscriberRequest{
		Name:  stringField(body, "name"),
		Email: stringField(body, "email"),
	}
}

func stringField(body map[string]any, key string) string {
	s, _ := body[key].(string)
	return s
}
