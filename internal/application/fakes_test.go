package application

import (
	"context"
	"sync"

	"github.com/Hosni10/boatify-server/internal/domain"
	"github.com/Hosni10/boatify-server/internal/domain/boat"
	"github.com/Hosni10/boatify-server/internal/domain/booking"
	"github.com/Hosni10/boatify-server/internal/domain/company"
	"github.com/Hosni10/boatify-server/internal/domain/payment"
	"github.com/Hosni10/boatify-server/internal/domain/user"
	"github.com/Hosni10/boatify-server/internal/kafka"
	"github.com/google/uuid"
)

// fakeBookingRepo is an in-memory BookingRepository.
type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[uuid.UUID]*booking.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[uuid.UUID]*booking.Booking)}
}

func (r *fakeBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, domain.NewNotFoundError("Booking", id.String())
	}
	return b, nil
}

func (r *fakeBookingRepo) ListAll(_ context.Context, page, limit int) ([]*booking.Booking, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := make([]*booking.Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		all = append(all, b)
	}
	total := int64(len(all))

	start := (page - 1) * limit
	if start >= len(all) {
		return nil, total, nil
	}
	end := start + limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

func (r *fakeBookingRepo) Snapshot(_ context.Context) ([]*booking.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := make([]*booking.Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		all = append(all, b)
	}
	return all, nil
}

func (r *fakeBookingRepo) FindByBoatID(_ context.Context, boatID uuid.UUID) ([]*booking.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*booking.Booking
	for _, b := range r.bookings {
		if b.BoatID() == boatID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) Save(_ context.Context, b *booking.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bookings[b.ID()] = b
	return nil
}

func (r *fakeBookingRepo) SaveIfAvailable(_ context.Context, b *booking.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.bookings {
		if existing.BoatID() != b.BoatID() {
			continue
		}
		if existing.Status() == booking.StatusCancelled || existing.Status() == booking.StatusCompleted {
			continue
		}
		if b.StartDate().Before(existing.EndDate()) && b.EndDate().After(existing.StartDate()) {
			return booking.ErrBoatUnavailable
		}
	}
	r.bookings[b.ID()] = b
	return nil
}

func (r *fakeBookingRepo) Update(_ context.Context, b *booking.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.bookings[b.ID()]; !ok {
		return domain.NewNotFoundError("Booking", b.ID().String())
	}
	r.bookings[b.ID()] = b
	return nil
}

// fakeBoatRepo is an in-memory BoatRepository.
type fakeBoatRepo struct {
	mu    sync.Mutex
	boats map[uuid.UUID]*boat.Boat
	order []uuid.UUID
}

func newFakeBoatRepo() *fakeBoatRepo {
	return &fakeBoatRepo{boats: make(map[uuid.UUID]*boat.Boat)}
}

func (r *fakeBoatRepo) FindByID(_ context.Context, id uuid.UUID) (*boat.Boat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.boats[id]
	if !ok {
		return nil, domain.NewNotFoundError("Boat", id.String())
	}
	return b, nil
}

func (r *fakeBoatRepo) ListAll(_ context.Context) ([]*boat.Boat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*boat.Boat, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.boats[id])
	}
	return out, nil
}

func (r *fakeBoatRepo) FindByCompanyID(_ context.Context, companyID string) ([]*boat.Boat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*boat.Boat
	for _, id := range r.order {
		if r.boats[id].CompanyID() == companyID {
			out = append(out, r.boats[id])
		}
	}
	return out, nil
}

func (r *fakeBoatRepo) Save(_ context.Context, b *boat.Boat) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.boats[b.ID()] = b
	r.order = append(r.order, b.ID())
	return nil
}

func (r *fakeBoatRepo) Update(_ context.Context, b *boat.Boat) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.boats[b.ID()]; !ok {
		return domain.NewNotFoundError("Boat", b.ID().String())
	}
	r.boats[b.ID()] = b
	return nil
}

func (r *fakeBoatRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.boats[id]; !ok {
		return domain.NewNotFoundError("Boat", id.String())
	}
	delete(r.boats, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// fakeUserRepo is an in-memory UserRepository.
type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*user.User)}
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.NewNotFoundError("User", id.String())
	}
	return u, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email() == email {
			return u, nil
		}
	}
	return nil, domain.NewNotFoundError("User", email)
}

func (r *fakeUserRepo) Save(_ context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[u.ID()] = u
	return nil
}

// fakePaymentRepo is an in-memory PaymentRepository.
type fakePaymentRepo struct {
	mu       sync.Mutex
	payments map[uuid.UUID]*payment.Payment
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: make(map[uuid.UUID]*payment.Payment)}
}

func (r *fakePaymentRepo) FindByID(_ context.Context, id uuid.UUID) (*payment.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.payments[id]
	if !ok {
		return nil, domain.NewNotFoundError("Payment", id.String())
	}
	return p, nil
}

func (r *fakePaymentRepo) ListAll(_ context.Context, page, limit int) ([]*payment.Payment, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := make([]*payment.Payment, 0, len(r.payments))
	for _, p := range r.payments {
		all = append(all, p)
	}
	return all, int64(len(all)), nil
}

func (r *fakePaymentRepo) FindByBookingID(_ context.Context, bookingID uuid.UUID) ([]*payment.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*payment.Payment
	for _, p := range r.payments {
		if p.BookingID() == bookingID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePaymentRepo) Save(_ context.Context, p *payment.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payments[p.ID()] = p
	return nil
}

func (r *fakePaymentRepo) Update(_ context.Context, p *payment.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.payments[p.ID()]; !ok {
		return domain.NewNotFoundError("Payment", p.ID().String())
	}
	r.payments[p.ID()] = p
	return nil
}

// fakeProfileRepo is an in-memory ProfileRepository.
type fakeProfileRepo struct {
	mu       sync.Mutex
	profiles map[string]*company.Profile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[string]*company.Profile)}
}

func (r *fakeProfileRepo) FindByCompanyID(_ context.Context, companyID string) (*company.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.profiles[companyID]
	if !ok {
		return nil, domain.NewNotFoundError("CompanyProfile", companyID)
	}
	return p, nil
}

func (r *fakeProfileRepo) Save(_ context.Context, p *company.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[p.CompanyID()] = p
	return nil
}

func (r *fakeProfileRepo) Update(_ context.Context, p *company.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.profiles[p.CompanyID()]; !ok {
		return domain.NewNotFoundError("CompanyProfile", p.CompanyID())
	}
	r.profiles[p.CompanyID()] = p
	return nil
}

func (r *fakeProfileRepo) Delete(_ context.Context, companyID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.profiles[companyID]; !ok {
		return domain.NewNotFoundError("CompanyProfile", companyID)
	}
	delete(r.profiles, companyID)
	return nil
}

// publishedEvent captures one PublishEvent call.
type publishedEvent struct {
	topic string
	key   string
	event kafka.CloudEvent
}

// fakePublisher records published events.
type fakePublisher struct {
	mu     sync.Mutex
	events []publishedEvent
}

func (p *fakePublisher) PublishEvent(_ context.Context, topic, key string, event kafka.CloudEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, publishedEvent{topic: topic, key: key, event: event})
	return nil
}

func (p *fakePublisher) published() []publishedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]publishedEvent, len(p.events))
	copy(out, p.events)
	return out
}
