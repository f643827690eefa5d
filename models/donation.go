package models

import (
	"time"

	"github.com/doug-martin/goqu/v9"
)

type Donation struct {
	Donation_ID     int       `json:"donationId" db:"donation_id" goqu:"skipinsert"`
	Donor_Name      string    `json:"donorName" db:"donor_name"`
	Amount          float64   `json:"amount" db:"amount"`
	Currency        string    `json:"currency" db:"currency"`
	Method          string    `json:"method" db:"method"`
	Fund            string    `json:"fund" db:"fund"`
	Reference       string    `json:"reference" db:"reference"`
	Donation_Date   time.Time `json:"donationDate" db:"donation_date"`
	Created_By      int       `json:"createdBy" db:"created_by"`
	Author_Name     string    `json:"authorName" db:"author_name"`
	Datetime_Create time.Time `json:"datetimeCreate" db:"datetime_create"`
	Updated_By      int       `json:"updatedBy" db:"updated_by"`
	Datetime_Update time.Time `json:"datetimeUpdate" db:"datetime_update"`
}

type DonationCreate struct {
	Donor_Name    string    `json:"donorName"`
	Amount        FlexFloat `json:"amount"`
	Currency      string    `json:"currency"`
	Method        string    `json:"method"`
	Fund          string    `json:"fund"`
	Reference     string    `json:"reference"`
	Donation_Date FlexDate  `json:"donationDate"`
}

type DonationUpdate struct {
	Donor_Name    *string    `json:"donorName"`
	Amount        *FlexFloat `json:"amount"`
	Currency      *string    `json:"currency"`
	Method        *string    `json:"method"`
	Fund          *string    `json:"fund"`
	Reference     *string    `json:"reference"`
	Donation_Date *FlexDate  `json:"donationDate"`
}

func (u DonationUpdate) Record() goqu.Record {
	r := goqu.Record{}
	if u.Donor_Name != nil {
		r["donor_name"] = *u.Donor_Name
	}
	if u.Amount != nil {
		r["amount"] = float64(*u.Amount)
	}
	if u.Currency != nil {
		r["currency"] = *u.Currency
	}
	if u.Method != nil {
		r["method"] = *u.Method
	}
	if u.Fund != nil {
		r["fund"] = *u.Fund
	}
	if u.Reference != nil {
		r["reference"] = *u.Reference
	}
	if u.Donation_Date != nil {
		r["donation_date"] = u.Donation_Date.OrNow()
	}
	return r
}

type DonationResponse struct {
	Donation_ID   int     `json:"id"`
	Donor_Name    string  `json:"donorName"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	Method        string  `json:"method"`
	Fund          string  `json:"fund"`
	Reference     string  `json:"reference"`
	Donation_Date string  `json:"donationDate"`
	Created_By    int     `json:"createdBy"`
	Author_Name   string  `json:"authorName"`
	Created_At    string  `json:"createdAt"`
	Updated_At    string  `json:"updatedAt"`
}

func (d Donation) Shape() DonationResponse {
	return DonationResponse{
		Donation_ID:   d.Donation_ID,
		Donor_Name:    d.Donor_Name,
		Amount:        d.Amount,
		Currency:      d.Currency,
		Method:        d.Method,
		Fund:          d.Fund,
		Reference:     d.Reference,
		Donation_Date: FormatTime(d.Donation_Date),
		Created_By:    d.Created_By,
		Author_Name:   d.Author_Name,
		Created_At:    FormatTime(d.Datetime_Create),
		Updated_At:    FormatTime(d.Datetime_Update),
	}
}
