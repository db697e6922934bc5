// Package memory holds an in-memory services.Store used as the test double for
// the reservation engine. Lock-scoped callbacks run against a clone of the data
// that is swapped in only on success, so a failed operation leaves the store
// exactly as it was, matching the transactional contract of the MySQL store.
package memory

import (
	"context"
	"sort"
	"sync"

	"hospitality-backend/models"
	"hospitality-backend/services"

	"github.com/shopspring/decimal"
)

type data struct {
	seq          uint
	hotels       map[uint]models.Hotel
	rooms        map[uint]models.Room
	users        map[uint]models.User
	reservations map[uint]models.Reservation
	bills        map[uint]models.Bill // keyed by reservation id
}

func newData() *data {
	return &data{
		hotels:       make(map[uint]models.Hotel),
		rooms:        make(map[uint]models.Room),
		users:        make(map[uint]models.User),
		reservations: make(map[uint]models.Reservation),
		bills:        make(map[uint]models.Bill),
	}
}

func (d *data) clone() *data {
	c := newData()
	c.seq = d.seq
	for k, v := range d.hotels {
		c.hotels[k] = v
	}
	for k, v := range d.rooms {
		c.rooms[k] = v
	}
	for k, v := range d.users {
		c.users[k] = v
	}
	for k, v := range d.reservations {
		c.reservations[k] = v
	}
	for k, v := range d.bills {
		c.bills[k] = v
	}
	return c
}

func (d *data) nextID() uint {
	d.seq++
	return d.seq
}

type Store struct {
	mu   sync.Mutex
	data *data
}

func New() *Store {
	return &Store{data: newData()}
}

// --- plain operations, mutex per call ---

func (s *Store) GetHotel(_ context.Context, id uint) (models.Hotel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.getHotel(id)
}

func (s *Store) ListHotels(_ context.Context) ([]models.Hotel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.listHotels()
}

func (s *Store) CreateHotel(_ context.Context, h *models.Hotel) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.createHotel(h)
}

func (s *Store) GetRoom(_ context.Context, id uint) (models.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.getRoom(id)
}

func (s *Store) ListHotelRooms(_ context.Context, hotelID uint, roomType string) ([]models.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.listHotelRooms(hotelID, roomType)
}

func (s *Store) CreateRoom(_ context.Context, r *models.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.createRoom(r)
}

func (s *Store) GetUserByUsername(_ context.Context, username string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.getUserByUsername(username)
}

func (s *Store) CreateUser(_ context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u.ID = s.data.nextID()
	s.data.users[u.ID] = *u
	return nil
}

// SetRoomRate emulates a back-office rate edit between booking and checkout.
func (s *Store) SetRoomRate(id uint, rate decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if room, ok := s.data.rooms[id]; ok {
		room.RatePerNight = rate
		s.data.rooms[id] = room
	}
}

func (s *Store) GetReservation(_ context.Context, id uint) (models.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.getReservation(id)
}

func (s *Store) ListReservations(_ context.Context, f services.ReservationFilter) ([]models.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.listReservations(f)
}

func (s *Store) OccupyingReservations(_ context.Context, roomID uint) ([]models.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.occupyingReservations(roomID)
}

func (s *Store) CreateReservation(_ context.Context, r *models.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.createReservation(r)
}

func (s *Store) UpdateReservation(_ context.Context, r *models.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.updateReservation(r)
}

func (s *Store) CreateBill(_ context.Context, b *models.Bill) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.createBill(b)
}

func (s *Store) BillForReservation(_ context.Context, reservationID uint) (models.Bill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.billForReservation(reservationID)
}

// --- lock-scoped operations ---

// WithRoomLock holds the store mutex for the whole callback. That is coarser
// than the per-room row lock of the MySQL store but gives the same observable
// contract: one overlapping writer wins, the rest see its insert.
func (s *Store) WithRoomLock(_ context.Context, roomID uint, fn func(tx services.Store) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data.rooms[roomID]; !ok {
		return services.ErrRecordNotFound
	}

	c := s.data.clone()
	if err := fn(&txStore{data: c}); err != nil {
		return err
	}
	s.data = c
	return nil
}

func (s *Store) WithReservation(_ context.Context, id uint, fn func(tx services.Store, r *models.Reservation) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, ok := s.data.reservations[id]
	if !ok {
		return services.ErrRecordNotFound
	}

	c := s.data.clone()
	if err := fn(&txStore{data: c}, &res); err != nil {
		return err
	}
	s.data = c
	return nil
}

// txStore is the view handed to lock-scoped callbacks; the outer mutex is
// already held, so it works on the clone directly. Callbacks must not start
// another lock-scoped operation.
type txStore struct {
	data *data
}

func (t *txStore) GetHotel(_ context.Context, id uint) (models.Hotel, error) { return t.data.getHotel(id) }
func (t *txStore) ListHotels(_ context.Context) ([]models.Hotel, error)      { return t.data.listHotels() }
func (t *txStore) CreateHotel(_ context.Context, h *models.Hotel) error      { return t.data.createHotel(h) }
func (t *txStore) GetRoom(_ context.Context, id uint) (models.Room, error)   { return t.data.getRoom(id) }
func (t *txStore) ListHotelRooms(_ context.Context, hotelID uint, roomType string) ([]models.Room, error) {
	return t.data.listHotelRooms(hotelID, roomType)
}
func (t *txStore) CreateRoom(_ context.Context, r *models.Room) error { return t.data.createRoom(r) }
func (t *txStore) GetUserByUsername(_ context.Context, username string) (models.User, error) {
	return t.data.getUserByUsername(username)
}
func (t *txStore) GetReservation(_ context.Context, id uint) (models.Reservation, error) {
	return t.data.getReservation(id)
}
func (t *txStore) ListReservations(_ context.Context, f services.ReservationFilter) ([]models.Reservation, error) {
	return t.data.listReservations(f)
}
func (t *txStore) OccupyingReservations(_ context.Context, roomID uint) ([]models.Reservation, error) {
	return t.data.occupyingReservations(roomID)
}
func (t *txStore) CreateReservation(_ context.Context, r *models.Reservation) error {
	return t.data.createReservation(r)
}
func (t *txStore) UpdateReservation(_ context.Context, r *models.Reservation) error {
	return t.data.updateReservation(r)
}
func (t *txStore) CreateBill(_ context.Context, b *models.Bill) error { return t.data.createBill(b) }
func (t *txStore) BillForReservation(_ context.Context, reservationID uint) (models.Bill, error) {
	return t.data.billForReservation(reservationID)
}
func (t *txStore) WithRoomLock(context.Context, uint, func(services.Store) error) error {
	panic("memory: nested lock-scoped operation")
}
func (t *txStore) WithReservation(context.Context, uint, func(services.Store, *models.Reservation) error) error {
	panic("memory: nested lock-scoped operation")
}

// --- data operations ---

func (d *data) getHotel(id uint) (models.Hotel, error) {
	h, ok := d.hotels[id]
	if !ok {
		return models.Hotel{}, services.ErrRecordNotFound
	}
	return h, nil
}

func (d *data) listHotels() ([]models.Hotel, error) {
	out := make([]models.Hotel, 0, len(d.hotels))
	for _, h := range d.hotels {
		rooms, _ := d.listHotelRooms(h.ID, "")
		h.Rooms = rooms
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (d *data) createHotel(h *models.Hotel) error {
	h.ID = d.nextID()
	d.hotels[h.ID] = *h
	return nil
}

func (d *data) getRoom(id uint) (models.Room, error) {
	r, ok := d.rooms[id]
	if !ok {
		return models.Room{}, services.ErrRecordNotFound
	}
	return r, nil
}

func (d *data) listHotelRooms(hotelID uint, roomType string) ([]models.Room, error) {
	out := make([]models.Room, 0)
	for _, r := range d.rooms {
		if r.HotelID != hotelID {
			continue
		}
		if roomType != "" && r.RoomType != roomType {
			continue
		}
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RoomNumber < out[j].RoomNumber })
	return out, nil
}

func (d *data) createRoom(r *models.Room) error {
	r.ID = d.nextID()
	d.rooms[r.ID] = *r
	return nil
}

func (d *data) getUserByUsername(username string) (models.User, error) {
	for _, u := range d.users {
		if u.Username == username {
			return u, nil
		}
	}
	return models.User{}, services.ErrRecordNotFound
}

func (d *data) getReservation(id uint) (models.Reservation, error) {
	r, ok := d.reservations[id]
	if !ok {
		return models.Reservation{}, services.ErrRecordNotFound
	}
	if room, ok := d.rooms[r.RoomID]; ok {
		r.Room = room
	}
	return r, nil
}

func (d *data) listReservations(f services.ReservationFilter) ([]models.Reservation, error) {
	out := make([]models.Reservation, 0)
	for _, r := range d.reservations {
		if f.Status != "" && r.Status != f.Status {
			continue
		}
		if f.HotelID != 0 {
			room, ok := d.rooms[r.RoomID]
			if !ok || room.HotelID != f.HotelID {
				continue
			}
		}
		if room, ok := d.rooms[r.RoomID]; ok {
			r.Room = room
		}
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (d *data) occupyingReservations(roomID uint) ([]models.Reservation, error) {
	out := make([]models.Reservation, 0)
	for _, r := range d.reservations {
		if r.RoomID == roomID && r.Status.Occupying() {
			out = append(out, r)
		}
	}
	return out, nil
}

func (d *data) createReservation(r *models.Reservation) error {
	r.ID = d.nextID()
	d.reservations[r.ID] = *r
	return nil
}

func (d *data) updateReservation(r *models.Reservation) error {
	if _, ok := d.reservations[r.ID]; !ok {
		return services.ErrRecordNotFound
	}
	d.reservations[r.ID] = *r
	return nil
}

func (d *data) createBill(b *models.Bill) error {
	if _, ok := d.bills[b.ReservationID]; ok {
		return services.ErrStorageConflict
	}
	b.ID = d.nextID()
	d.bills[b.ReservationID] = *b
	return nil
}

func (d *data) billForReservation(reservationID uint) (models.Bill, error) {
	b, ok := d.bills[reservationID]
	if !ok {
		return models.Bill{}, services.ErrRecordNotFound
	}
	return b, nil
}
