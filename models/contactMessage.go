package models

import "time"

const (
	ContactStatusNew      = "new"
	ContactStatusRead     = "read"
	ContactStatusArchived = "archived"
)

func ValidContactStatus(s string) bool {
	return s == ContactStatusNew || s == ContactStatusRead || s == ContactStatusArchived
}

type ContactMessage struct {
	Contact_Message_ID int       `json:"contactMessageId" db:"contact_message_id" goqu:"skipinsert"`
	Name               string    `json:"name" db:"name"`
	Email              string    `json:"email" db:"email"`
	Phone              string    `json:"phone" db:"phone"`
	Subject            string    `json:"subject" db:"subject"`
	Message            string    `json:"message" db:"message"`
	Status             string    `json:"status" db:"status"`
	Datetime_Create    time.Time `json:"datetimeCreate" db:"datetime_create"`
	Datetime_Update    time.Time `json:"datetimeUpdate" db:"datetime_update"`
}

type ContactMessageCreate struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type ContactMessageResponse struct {
	Contact_Message_ID int    `json:"id"`
	Name               string `json:"name"`
	Email              string `json:"email"`
	Phone              string `json:"phone"`
	Subject            string `json:"subject"`
	Message            string `json:"message"`
	Status             string `json:"status"`
	Created_At         string `json:"createdAt"`
	Updated_At         string `json:"updatedAt"`
}

func (m ContactMessage) Shape() ContactMessageResponse {
	return ContactMessageResponse{
		Contact_Message_ID: m.Contact_Message_ID,
		Name:               m.Name,
		Email:              m.Email,
		Phone:              m.Phone,
		Subject:            m.Subject,
		Message:            m.Message,
		Status:             m.Status,
		Created_At:         FormatTime(m.Datetime_Create),
		Updated_At:         FormatTime(m.Datetime_Update),
	}
}
