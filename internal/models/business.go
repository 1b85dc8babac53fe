package models

import "time"

// Business represents a salon or spa listing.
type Business struct {
	ID             string          `json:"id"`
	OwnerID        string          `json:"ownerId"`
	Name           string          `json:"name"`
	Description    string          `json:"description,omitempty"`
	Category       string          `json:"category,omitempty"`
	Address        string          `json:"address,omitempty"`
	City           string          `json:"city,omitempty"`
	Phone          string          `json:"phone,omitempty"`
	CoverImage     string          `json:"coverImage,omitempty"`
	Gallery        []string        `json:"gallery,omitempty"`
	OperatingHours []OperatingHour `json:"operatingHours,omitempty"`
	Services       []Service       `json:"services,omitempty"`
	Staff          []Staff         `json:"staff,omitempty"`
	Reviews        []Review        `json:"reviews,omitempty"`
	AverageRating  float64         `json:"averageRating,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// OperatingHour describes opening times for one weekday.
type OperatingHour struct {
	Day       string `json:"day"`
	OpenTime  string `json:"openTime"`
	CloseTime string `json:"closeTime"`
	Closed    bool   `json:"closed"`
}

// Service is a bookable offering with an optional percentage discount.
type Service struct {
	ID          string  `json:"id"`
	BusinessID  string  `json:"businessId"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Discount    float64 `json:"discount,omitempty"`
	Duration    int     `json:"duration"` // minutes
	Image       string  `json:"image,omitempty"`
	Active      bool    `json:"active"`
}

// DisplayPrice returns the price after applying the percentage discount.
func (s *Service) DisplayPrice() float64 {
	if s.Discount <= 0 {
		return s.Price
	}
	return s.Price * (1 - s.Discount/100)
}

// Discounted reports whether a discount badge should be shown.
func (s *Service) Discounted() bool {
	return s.Discount > 0
}

// StaffStatus distinguishes accepted members from pending invitations.
type StaffStatus string

const (
	StaffActive  StaffStatus = "ACTIVE"
	StaffPending StaffStatus = "PENDING"
)

// Staff represents a member working at a business.
type Staff struct {
	ID              string      `json:"id"`
	BusinessID      string      `json:"businessId"`
	UserID          string      `json:"userId,omitempty"`
	Name            string      `json:"name"`
	Email           string      `json:"email"`
	Title           string      `json:"title,omitempty"`
	YearsExperience int         `json:"yearsExperience,omitempty"`
	Languages       []string    `json:"languages,omitempty"`
	Image           string      `json:"image,omitempty"`
	Status          StaffStatus `json:"status"`
	ServiceIDs      []string    `json:"serviceIds,omitempty"`
}

// CanPerform reports whether the member is assigned to the given service.
// An empty assignment list means the member covers everything.
func (st *Staff) CanPerform(serviceID string) bool {
	if len(st.ServiceIDs) == 0 {
		return true
	}
	for _, id := range st.ServiceIDs {
		if id == serviceID {
			return true
		}
	}
	return false
}

// Review is customer feedback left after a completed visit.
type Review struct {
	ID         string    `json:"id"`
	BusinessID string    `json:"businessId"`
	CustomerID string    `json:"customerId"`
	Customer   *User     `json:"customer,omitempty"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}
