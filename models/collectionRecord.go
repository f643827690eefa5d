package models

import (
	"time"

	"github.com/doug-martin/goqu/v9"
)

type CollectionRecord struct {
	Collection_Record_ID int       `json:"collectionRecordId" db:"collection_record_id" goqu:"skipinsert"`
	Collection_Date      time.Time `json:"collectionDate" db:"collection_date"`
	Amount               float64   `json:"amount" db:"amount"`
	Currency             string    `json:"currency" db:"currency"`
	Fund                 string    `json:"fund" db:"fund"`
	Notes                string    `json:"notes" db:"notes"`
	Created_By           int       `json:"createdBy" db:"created_by"`
	Author_Name          string    `json:"authorName" db:"author_name"`
	Datetime_Create      time.Time `json:"datetimeCreate" db:"datetime_create"`
	Updated_By           int       `json:"updatedBy" db:"updated_by"`
	Datetime_Update      time.Time `json:"datetimeUpdate" db:"datetime_update"`
}

type CollectionRecordCreate struct {
	Collection_Date FlexDate  `json:"collectionDate"`
	Amount          FlexFloat `json:"amount"`
	Currency        string    `json:"currency"`
	Fund            string    `json:"fund"`
	Notes           string    `json:"notes"`
}

type CollectionRecordUpdate struct {
	Collection_Date *FlexDate  `json:"collectionDate"`
	Amount          *FlexFloat `json:"amount"`
	Currency        *string    `json:"currency"`
	Fund            *string    `json:"fund"`
	Notes           *string    `json:"notes"`
}

func (u CollectionRecordUpdate) Record() goqu.Record {
	r := goqu.Record{}
	if u.Collection_Date != nil {
		r["collection_date"] = u.Collection_Date.OrNow()
	}
	if u.Amount != nil {
		r["amount"] = float64(*u.Amount)
	}
	if u.Currency != nil {
		r["currency"] = *u.Currency
	}
	if u.Fund != nil {
		r["fund"] = *u.Fund
	}
	if u.Notes != nil {
		r["notes"] = *u.Notes
	}
	return r
}

type CollectionRecordResponse struct {
	Collection_Record_ID int     `json:"id"`
	Collection_Date      string  `json:"collectionDate"`
	Amount               float64 `json:"amount"`
	Currency             string  `json:"currency"`
	Fund                 string  `json:"fund"`
	Notes                string  `json:"notes"`
	Created_By           int     `json:"createdBy"`
	Author_Name          string  `json:"authorName"`
	Created_At           string  `json:"createdAt"`
	Updated_At           string  `json:"updatedAt"`
}

func (cr CollectionRecord) Shape() CollectionRecordResponse {
	return CollectionRecordResponse{
		Collection_Record_ID: cr.Collection_Record_ID,
		Collection_Date:      FormatTime(cr.Collection_Date),
		Amount:               cr.Amount,
		Currency:             cr.Currency,
		Fund:                 cr.Fund,
		Notes:                cr.Notes,
		Created_By:           cr.Created_By,
		Author_Name:          cr.Author_Name,
		Created_At:           FormatTime(cr.Datetime_Create),
		Updated_At:           FormatTime(cr.Datetime_Update),
	}
}
