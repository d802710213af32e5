package dto

import (
	"github.com/allisson/mailinglist/internal/subscriber/domain"
)

// ToUserData converts a RegisterSubscriberRequest DTO to domain input.
func ToUserData(req RegisterSubscriberRequest) domain.UserData {
	return domain.UserData{
		Name:  req.Name,
		Email: req.Email,
	}
}

// ToSubscriberResponse converts registered domain data to the response DTO.
func ToSubscriberResponse(data domain.UserData) SubscriberResponse {
	return SubscriberResponse{
		Name:  data.Name,
		Email: data.Email,
	}
}
