package services

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/devcarkson/reserve-with-ease-backend/domain"
	"github.com/devcarkson/reserve-with-ease-backend/dto"
	"github.com/devcarkson/reserve-with-ease-backend/events"
	"github.com/devcarkson/reserve-with-ease-backend/repositories"
)

// ============================================
// MOCKS de los repositorios para los tests
// ============================================

type mockUserRepository struct {
	users map[uint]*domain.User
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{users: make(map[uint]*domain.User)}
}

func (m *mockUserRepository) Create(user *domain.User) error {
	// Simular auto-increment del ID
	user.ID = uint(len(m.users) + 1)
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepository) GetByID(id uint) (*domain.User, error) {
	user, exists := m.users[id]
	if !exists {
		return nil, errors.New("user not found")
	}
	return user, nil
}

func (m *mockUserRepository) GetByUsername(username string) (*domain.User, error) {
	for _, user := range m.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, errors.New("user not found")
}

func (m *mockUserRepository) GetByEmail(email string) (*domain.User, error) {
	for _, user := range m.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, errors.New("user not found")
}

func (m *mockUserRepository) Update(user *domain.User) error {
	if _, exists := m.users[user.ID]; !exists {
		return errors.New("user not found")
	}
	m.users[user.ID] = user
	return nil
}

type mockTokenRepository struct {
	verifications map[string]*domain.EmailVerification
	resets        map[string]*domain.PasswordReset
}

func newMockTokenRepository() *mockTokenRepository {
	return &mockTokenRepository{
		verifications: make(map[string]*domain.EmailVerification),
		resets:        make(map[string]*domain.PasswordReset),
	}
}

func (m *mockTokenRepository) CreateEmailVerification(v *domain.EmailVerification) error {
	m.verifications[v.Token] = v
	return nil
}

func (m *mockTokenRepository) GetEmailVerification(token string) (*domain.EmailVerification, error) {
	v, exists := m.verifications[token]
	if !exists {
		return nil, errors.New("token not found")
	}
	return v, nil
}

func (m *mockTokenRepository) MarkEmailVerificationUsed(v *domain.EmailVerification) error {
	v.Used = true
	return nil
}

func (m *mockTokenRepository) CreatePasswordReset(p *domain.PasswordReset) error {
	// Igual que gorm: autocompleta CreatedAt en el insert si viene en cero
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	m.resets[p.Token] = p
	return nil
}

func (m *mockTokenRepository) GetPasswordReset(token string) (*domain.PasswordReset, error) {
	p, exists := m.resets[token]
	if !exists {
		return nil, errors.New("token not found")
	}
	return p, nil
}

func (m *mockTokenRepository) MarkPasswordResetUsed(p *domain.PasswordReset) error {
	p.Used = true
	return nil
}

type mockWishlistRepository struct {
	items []domain.WishlistItem
}

func newMockWishlistRepository() *mockWishlistRepository {
	return &mockWishlistRepository{}
}

func (m *mockWishlistRepository) Add(item *domain.WishlistItem) error {
	item.ID = uint(len(m.items) + 1)
	m.items = append(m.items, *item)
	return nil
}

func (m *mockWishlistRepository) Remove(userID, propertyID uint) error {
	for i, item := range m.items {
		if item.UserID == userID && item.PropertyID == propertyID {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return errors.New("wishlist item not found")
}

func (m *mockWishlistRepository) ListByUser(userID uint) ([]domain.WishlistItem, error) {
	var result []domain.WishlistItem
	for _, item := range m.items {
		if item.UserID == userID {
			result = append(result, item)
		}
	}
	return result, nil
}

func (m *mockWishlistRepository) Exists(userID, propertyID uint) (bool, error) {
	for _, item := range m.items {
		if item.UserID == userID && item.PropertyID == propertyID {
			return true, nil
		}
	}
	return false, nil
}

type mockPropertyRepository struct {
	properties map[uint]*domain.Property
}

func newMockPropertyRepository() *mockPropertyRepository {
	return &mockPropertyRepository{properties: make(map[uint]*domain.Property)}
}

func (m *mockPropertyRepository) Create(property *domain.Property) error {
	property.ID = uint(len(m.properties) + 1)
	m.properties[property.ID] = property
	return nil
}

func (m *mockPropertyRepository) GetByID(id uint) (*domain.Property, error) {
	property, exists := m.properties[id]
	if !exists {
		return nil, errors.New("property not found")
	}
	return property, nil
}

func (m *mockPropertyRepository) Update(property *domain.Property) error {
	if _, exists := m.properties[property.ID]; !exists {
		return errors.New("property not found")
	}
	m.properties[property.ID] = property
	return nil
}

func (m *mockPropertyRepository) Delete(id uint) error {
	if _, exists := m.properties[id]; !exists {
		return errors.New("property not found")
	}
	delete(m.properties, id)
	return nil
}

func (m *mockPropertyRepository) ListByOwner(ownerID uint) ([]domain.Property, error) {
	var result []domain.Property
	for _, property := range m.properties {
		if property.OwnerID == ownerID {
			result = append(result, *property)
		}
	}
	return result, nil
}

func (m *mockPropertyRepository) List(req dto.PropertyListRequest) ([]domain.Property, int, error) {
	var result []domain.Property
	for _, property := range m.properties {
		result = append(result, *property)
	}
	return result, len(result), nil
}

func (m *mockPropertyRepository) Search(req dto.SearchRequest) ([]domain.Property, int, error) {
	var result []domain.Property
	for _, property := range m.properties {
		if req.City != "" && property.City != req.City {
			continue
		}
		result = append(result, *property)
	}
	return result, len(result), nil
}

func (m *mockPropertyRepository) UpdateRating(propertyID uint, rating float64, reviewCount int) error {
	property, exists := m.properties[propertyID]
	if !exists {
		return errors.New("property not found")
	}
	property.Rating = rating
	property.ReviewCount = reviewCount
	return nil
}

type mockRoomRepository struct {
	rooms map[uint]*domain.Room
}

func newMockRoomRepository() *mockRoomRepository {
	return &mockRoomRepository{rooms: make(map[uint]*domain.Room)}
}

func (m *mockRoomRepository) Create(room *domain.Room) error {
	room.ID = uint(len(m.rooms) + 1)
	m.rooms[room.ID] = room
	return nil
}

func (m *mockRoomRepository) GetByID(id uint) (*domain.Room, error) {
	room, exists := m.rooms[id]
	if !exists {
		return nil, errors.New("room not found")
	}
	return room, nil
}

func (m *mockRoomRepository) Update(room *domain.Room) error {
	if _, exists := m.rooms[room.ID]; !exists {
		return errors.New("room not found")
	}
	m.rooms[room.ID] = room
	return nil
}

func (m *mockRoomRepository) Delete(id uint) error {
	if _, exists := m.rooms[id]; !exists {
		return errors.New("room not found")
	}
	delete(m.rooms, id)
	return nil
}

func (m *mockRoomRepository) ListByProperty(propertyID uint) ([]domain.Room, error) {
	var result []domain.Room
	for _, room := range m.rooms {
		if room.PropertyID == propertyID {
			result = append(result, *room)
		}
	}
	return result, nil
}

type mockReservationRepository struct {
	reservations map[uint]*domain.Reservation
}

func newMockReservationRepository() *mockReservationRepository {
	return &mockReservationRepository{reservations: make(map[uint]*domain.Reservation)}
}

func (m *mockReservationRepository) Create(reservation *domain.Reservation) error {
	reservation.ID = uint(len(m.reservations) + 1)
	m.reservations[reservation.ID] = reservation
	return nil
}

func (m *mockReservationRepository) GetByID(id uint) (*domain.Reservation, error) {
	reservation, exists := m.reservations[id]
	if !exists {
		return nil, errors.New("reservation not found")
	}
	return reservation, nil
}

func (m *mockReservationRepository) Update(reservation *domain.Reservation) error {
	if _, exists := m.reservations[reservation.ID]; !exists {
		return errors.New("reservation not found")
	}
	m.reservations[reservation.ID] = reservation
	return nil
}

func (m *mockReservationRepository) ListByUser(userID uint) ([]domain.Reservation, error) {
	var result []domain.Reservation
	for _, reservation := range m.reservations {
		if reservation.UserID == userID {
			result = append(result, *reservation)
		}
	}
	return result, nil
}

func (m *mockReservationRepository) ListByOwner(ownerID uint) ([]domain.Reservation, error) {
	var result []domain.Reservation
	for _, reservation := range m.reservations {
		result = append(result, *reservation)
	}
	return result, nil
}

func (m *mockReservationRepository) CountActiveOverlapping(roomID uint, checkIn, checkOut time.Time, excludeID uint) (int, error) {
	count := 0
	for _, r := range m.reservations {
		if r.RoomID != roomID || r.ID == excludeID {
			continue
		}
		if !r.IsActive() {
			continue
		}
		if r.CheckIn.Before(checkOut) && r.CheckOut.After(checkIn) {
			count++
		}
	}
	return count, nil
}

type mockReviewRepository struct {
	reviews map[uint]*domain.Review
	votes   []domain.ReviewHelpful
}

func newMockReviewRepository() *mockReviewRepository {
	return &mockReviewRepository{reviews: make(map[uint]*domain.Review)}
}

func (m *mockReviewRepository) Create(review *domain.Review) error {
	review.ID = uint(len(m.reviews) + 1)
	m.reviews[review.ID] = review
	return nil
}

func (m *mockReviewRepository) GetByID(id uint) (*domain.Review, error) {
	review, exists := m.reviews[id]
	if !exists {
		return nil, errors.New("review not found")
	}
	return review, nil
}

func (m *mockReviewRepository) GetByReservation(reservationID uint) (*domain.Review, error) {
	for _, review := range m.reviews {
		if review.ReservationID == reservationID {
			return review, nil
		}
	}
	return nil, errors.New("review not found")
}

func (m *mockReviewRepository) Update(review *domain.Review) error {
	if _, exists := m.reviews[review.ID]; !exists {
		return errors.New("review not found")
	}
	m.reviews[review.ID] = review
	return nil
}

func (m *mockReviewRepository) Delete(id uint) error {
	if _, exists := m.reviews[id]; !exists {
		return errors.New("review not found")
	}
	delete(m.reviews, id)
	return nil
}

func (m *mockReviewRepository) ListByProperty(propertyID uint) ([]domain.Review, error) {
	var result []domain.Review
	for _, review := range m.reviews {
		if review.PropertyID == propertyID {
			result = append(result, *review)
		}
	}
	return result, nil
}

func (m *mockReviewRepository) AddHelpfulVote(vote *domain.ReviewHelpful) error {
	review, exists := m.reviews[vote.ReviewID]
	if !exists {
		return errors.New("review not found")
	}
	m.votes = append(m.votes, *vote)
	review.HelpfulCount++
	return nil
}

func (m *mockReviewRepository) HasHelpfulVote(reviewID, userID uint) (bool, error) {
	for _, vote := range m.votes {
		if vote.ReviewID == reviewID && vote.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockReviewRepository) RatingSummary(propertyID uint) (float64, int, error) {
	sum, count := 0, 0
	for _, review := range m.reviews {
		if review.PropertyID == propertyID {
			sum += review.Rating
			count++
		}
	}
	if count == 0 {
		return 0, 0, nil
	}
	return float64(sum) / float64(count), count, nil
}

type mockMessageRepository struct {
	conversations map[uint]*domain.Conversation
	messages      []*domain.Message
	findErr       error // error a simular en FindConversationBetween
}

func newMockMessageRepository() *mockMessageRepository {
	return &mockMessageRepository{conversations: make(map[uint]*domain.Conversation)}
}

func (m *mockMessageRepository) CreateConversation(conversation *domain.Conversation) error {
	conversation.ID = uint(len(m.conversations) + 1)
	m.conversations[conversation.ID] = conversation
	return nil
}

func (m *mockMessageRepository) GetConversationByID(id uint) (*domain.Conversation, error) {
	conversation, exists := m.conversations[id]
	if !exists {
		return nil, repositories.ErrConversationNotFound
	}
	return conversation, nil
}

func (m *mockMessageRepository) FindConversationBetween(userA, userB uint) (*domain.Conversation, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	for _, c := range m.conversations {
		if (c.ParticipantAID == userA && c.ParticipantBID == userB) ||
			(c.ParticipantAID == userB && c.ParticipantBID == userA) {
			return c, nil
		}
	}
	return nil, repositories.ErrConversationNotFound
}

func (m *mockMessageRepository) ListConversationsByUser(userID uint) ([]domain.Conversation, error) {
	var result []domain.Conversation
	for _, c := range m.conversations {
		if c.HasParticipant(userID) {
			result = append(result, *c)
		}
	}
	return result, nil
}

func (m *mockMessageRepository) UpdateConversation(conversation *domain.Conversation) error {
	if _, exists := m.conversations[conversation.ID]; !exists {
		return errors.New("conversation not found")
	}
	m.conversations[conversation.ID] = conversation
	return nil
}

func (m *mockMessageRepository) CreateMessage(message *domain.Message) error {
	message.ID = uint(len(m.messages) + 1)
	m.messages = append(m.messages, message)
	return nil
}

func (m *mockMessageRepository) ListMessages(conversationID uint) ([]domain.Message, error) {
	var result []domain.Message
	for _, message := range m.messages {
		if message.ConversationID == conversationID {
			result = append(result, *message)
		}
	}
	return result, nil
}

func (m *mockMessageRepository) MarkMessagesRead(conversationID, receiverID uint, readAt time.Time) error {
	for _, message := range m.messages {
		if message.ConversationID == conversationID && message.ReceiverID == receiverID && message.ReadAt == nil {
			t := readAt
			message.ReadAt = &t
		}
	}
	return nil
}

type mockNotificationRepository struct {
	notifications []*domain.Notification
}

func newMockNotificationRepository() *mockNotificationRepository {
	return &mockNotificationRepository{}
}

func (m *mockNotificationRepository) Create(notification *domain.Notification) error {
	notification.ID = uint(len(m.notifications) + 1)
	m.notifications = append(m.notifications, notification)
	return nil
}

func (m *mockNotificationRepository) ListByUser(userID uint) ([]domain.Notification, error) {
	var result []domain.Notification
	for _, n := range m.notifications {
		if n.UserID == userID {
			result = append(result, *n)
		}
	}
	return result, nil
}

func (m *mockNotificationRepository) MarkRead(id, userID uint) error {
	for _, n := range m.notifications {
		if n.ID == id && n.UserID == userID {
			n.Read = true
			return nil
		}
	}
	return errors.New("notification not found")
}

func (m *mockNotificationRepository) MarkAllRead(userID uint) error {
	for _, n := range m.notifications {
		if n.UserID == userID {
			n.Read = true
		}
	}
	return nil
}

func (m *mockNotificationRepository) CountUnread(userID uint) (int, error) {
	count := 0
	for _, n := range m.notifications {
		if n.UserID == userID && !n.Read {
			count++
		}
	}
	return count, nil
}

// mockCacheRepository es un caché en memoria simple para los tests
type mockCacheRepository struct {
	entries map[string]cachedEntry
	hits    int
	misses  int
}

type cachedEntry struct {
	properties []domain.Property
	total      int
}

func newMockCacheRepository() *mockCacheRepository {
	return &mockCacheRepository{entries: make(map[string]cachedEntry)}
}

func (m *mockCacheRepository) Get(key string) ([]domain.Property, int, bool) {
	entry, exists := m.entries[key]
	if !exists {
		m.misses++
		return nil, 0, false
	}
	m.hits++
	return entry.properties, entry.total, true
}

func (m *mockCacheRepository) Set(key string, properties []domain.Property, total int, ttl time.Duration) {
	m.entries[key] = cachedEntry{properties: properties, total: total}
}

func (m *mockCacheRepository) Delete(key string) {
	delete(m.entries, key)
}

// mockPublisher registra los eventos publicados
type mockPublisher struct {
	published []events.ReservationEvent
}

func (m *mockPublisher) PublishReservationEvent(event events.ReservationEvent) error {
	m.published = append(m.published, event)
	return nil
}

func (m *mockPublisher) Close() error {
	return nil
}

// mockSearchAnalyticsRepository guarda las búsquedas en memoria
type mockSearchAnalyticsRepository struct {
	queries []domain.SearchQuery
}

func newMockSearchAnalyticsRepository() *mockSearchAnalyticsRepository {
	return &mockSearchAnalyticsRepository{}
}

func (m *mockSearchAnalyticsRepository) InsertQuery(ctx context.Context, query domain.SearchQuery) error {
	m.queries = append(m.queries, query)
	return nil
}

func (m *mockSearchAnalyticsRepository) PopularSearches(ctx context.Context, since time.Time, limit int) ([]domain.PopularSearch, error) {
	counts := make(map[string]int)
	for _, query := range m.queries {
		if query.CreatedAt.Before(since) {
			continue
		}
		counts[query.Query]++
	}
	var result []domain.PopularSearch
	for query, count := range counts {
		result = append(result, domain.PopularSearch{Query: query, Count: count})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Count > result[j].Count })
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}
