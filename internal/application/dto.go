package application

import (
	"time"

	"github.com/Hosni10/boatify-server/internal/domain/boat"
	"github.com/Hosni10/boatify-server/internal/domain/booking"
	"github.com/Hosni10/boatify-server/internal/domain/company"
	"github.com/Hosni10/boatify-server/internal/domain/payment"
	"github.com/Hosni10/boatify-server/internal/domain/user"
	"github.com/google/uuid"
)

// BookingResponse is the API representation of a booking.
type BookingResponse struct {
	ID            uuid.UUID `json:"id"`
	BoatID        uuid.UUID `json:"boat_id"`
	CustomerID    uuid.UUID `json:"customer_id"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	CustomerPhone string    `json:"customer_phone"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	Guests        int       `json:"guests"`
	TotalPrice    float64   `json:"total_price"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewBookingResponse maps a booking aggregate to its API representation.
func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:            b.ID(),
		BoatID:        b.BoatID(),
		CustomerID:    b.CustomerID(),
		CustomerName:  b.CustomerName(),
		CustomerEmail: b.CustomerEmail(),
		CustomerPhone: b.CustomerPhone(),
		StartDate:     b.StartDate(),
		EndDate:       b.EndDate(),
		Guests:        b.Guests(),
		TotalPrice:    b.TotalPrice(),
		Status:        string(b.Status()),
		PaymentStatus: string(b.PaymentStatus()),
		CreatedAt:     b.CreatedAt(),
		UpdatedAt:     b.UpdatedAt(),
	}
}

// NewBookingResponses maps a slice of bookings.
func NewBookingResponses(bookings []*booking.Booking) []BookingResponse {
	out := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		out[i] = NewBookingResponse(b)
	}
	return out
}

// BoatResponse is the API representation of a boat listing.
type BoatResponse struct {
	ID          uuid.UUID `json:"id"`
	CompanyID   string    `json:"company_id"`
	Name        string    `json:"name"`
	BoatType    string    `json:"boat_type"`
	Capacity    int       `json:"capacity"`
	PricePerDay float64   `json:"price_per_day"`
	Location    string    `json:"location"`
	Status      string    `json:"status"`
	Features    []string  `json:"features"`
	ImageURL    string    `json:"image_url"`
	Rating      float64   `json:"rating"`
	ReviewCount int       `json:"review_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewBoatResponse maps a boat aggregate to its API representation.
func NewBoatResponse(b *boat.Boat) BoatResponse {
	return BoatResponse{
		ID:          b.ID(),
		CompanyID:   b.CompanyID(),
		Name:        b.Name(),
		BoatType:    b.BoatType(),
		Capacity:    b.Capacity(),
		PricePerDay: b.PricePerDay(),
		Location:    b.Location(),
		Status:      string(b.Status()),
		Features:    b.Features(),
		ImageURL:    b.ImageURL(),
		Rating:      b.Rating(),
		ReviewCount: b.ReviewCount(),
		CreatedAt:   b.CreatedAt(),
		UpdatedAt:   b.UpdatedAt(),
	}
}

// NewBoatResponses maps a slice of boats.
func NewBoatResponses(boats []*boat.Boat) []BoatResponse {
	out := make([]BoatResponse, len(boats))
	for i, b := range boats {
		out[i] = NewBoatResponse(b)
	}
	return out
}

// UserResponse is the API representation of an account. It never carries the
// password hash.
type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	CompanyName string    `json:"company_name"`
	CompanyID   string    `json:"company_id"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewUserResponse maps a user aggregate to its API representation.
func NewUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:          u.ID(),
		Email:       u.Email(),
		CompanyName: u.CompanyName(),
		CompanyID:   u.CompanyID(),
		Role:        string(u.Role()),
		CreatedAt:   u.CreatedAt(),
	}
}

// PaymentResponse is the API representation of a payment record.
type PaymentResponse struct {
	ID            uuid.UUID `json:"id"`
	BookingID     uuid.UUID `json:"booking_id"`
	Amount        float64   `json:"amount"`
	Currency      string    `json:"currency"`
	Status        string    `json:"status"`
	PaymentMethod string    `json:"payment_method"`
	TransactionID string    `json:"transaction_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewPaymentResponse maps a payment aggregate to its API representation.
func NewPaymentResponse(p *payment.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            p.ID(),
		BookingID:     p.BookingID(),
		Amount:        p.Amount(),
		Currency:      p.Currency(),
		Status:        string(p.State()),
		PaymentMethod: p.PaymentMethod(),
		TransactionID: p.TransactionID(),
		CreatedAt:     p.CreatedAt(),
		UpdatedAt:     p.UpdatedAt(),
	}
}

// NewPaymentResponses maps a slice of payments.
func NewPaymentResponses(payments []*payment.Payment) []PaymentResponse {
	out := make([]PaymentResponse, len(payments))
	for i, p := range payments {
		out[i] = NewPaymentResponse(p)
	}
	return out
}

// ProfileResponse is the API representation of a company profile.
type ProfileResponse struct {
	ID        uuid.UUID              `json:"id"`
	CompanyID string                 `json:"company_id"`
	Details   company.ProfileDetails `json:"details"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
}

// NewProfileResponse maps a profile aggregate to its API representation.
func NewProfileResponse(p *company.Profile) ProfileResponse {
	return ProfileResponse{
		ID:        p.ID(),
		CompanyID: p.CompanyID(),
		Details:   p.Details(),
		CreatedAt: p.CreatedAt(),
		UpdatedAt: p.UpdatedAt(),
	}
}
