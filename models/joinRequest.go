package models

import "time"

const (
	JoinRequestStatusPending  = "pending"
	JoinRequestStatusApproved = "approved"
	JoinRequestStatusRejected = "rejected"
)

func ValidJoinRequestStatus(s string) bool {
	return s == JoinRequestStatusPending || s == JoinRequestStatusApproved || s == JoinRequestStatusRejected
}

type MinistryJoinRequest struct {
	Join_Request_ID int       `json:"joinRequestId" db:"join_request_id" goqu:"skipinsert"`
	Ministry_ID     int       `json:"ministryId" db:"ministry_id"`
	Name            string    `json:"name" db:"name"`
	Email           string    `json:"email" db:"email"`
	Phone           string    `json:"phone" db:"phone"`
	Message         string    `json:"message" db:"message"`
	Status          string    `json:"status" db:"status"`
	Datetime_Create time.Time `json:"datetimeCreate" db:"datetime_create"`
	Datetime_Update time.Time `json:"datetimeUpdate" db:"datetime_update"`
}

type MinistryJoinRequestCreate struct {
	Ministry_ID FlexInt `json:"ministryId"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	Message     string  `json:"message"`
}

type MinistryJoinRequestResponse struct {
	Join_Request_ID int    `json:"id"`
	Ministry_ID     int    `json:"ministryId"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Message         string `json:"message"`
	Status          string `json:"status"`
	Created_At      string `json:"createdAt"`
	Updated_At      string `json:"updatedAt"`
}

func (j MinistryJoinRequest) Shape() MinistryJoinRequestResponse {
	return MinistryJoinRequestResponse{
		Join_Request_ID: j.Join_Request_ID,
		Ministry_ID:     j.Ministry_ID,
		Name:            j.Name,
		Email:           j.Email,
		Phone:           j.Phone,
		Message:         j.Message,
		Status:          j.Status,
		Created_At:      FormatTime(j.Datetime_Create),
		Updated_At:      FormatTime(j.Datetime_Update),
	}
}
