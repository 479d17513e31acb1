package dto

import "time"

type ServiceSummary struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	DurationMin int     `json:"duration_min"`
}

type BarberSummary struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

type ClientSummary struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type BookingListDTO struct {
	ID     string    `json:"id"`
	Date   time.Time `json:"date"`
	Status string    `json:"status"`

	Service ServiceSummary `json:"service"`
	Barber  BarberSummary  `json:"barber"`
	Client  ClientSummary  `json:"client"`
}
