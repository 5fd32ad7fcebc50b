package bookings

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/omkargore6239/vegobike-checkout-service/internal/domain"
	bookingClient "github.com/omkargore6239/vegobike-checkout-service/internal/integrations/bookingservice"
	"github.com/omkargore6239/vegobike-checkout-service/internal/service/bookings/models"
)

// DefaultCancelActor тег инициатора отмены по умолчанию
const DefaultCancelActor = "USER"

// Service сервис жизненного цикла и списка бронирований.
//
// Все проверки допустимости переходов выполняются локально, до сетевого
// вызова: запрос, который заведомо будет отклонён, не отправляется.
// Мутации не оптимистичны — статус считается изменённым только после
// подтверждения бэкенда.
type Service struct {
	client  BookingServiceClient
	handoff HandoffCache
	logger  Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(client BookingServiceClient, handoff HandoffCache, logger Logger) *Service {
	return &Service{
		client:  client,
		handoff: handoff,
		logger:  logger,
	}
}

// GetByID получает бронирование по ID.
// Клиент может видеть только собственные бронирования.
func (s *Service) GetByID(ctx context.Context, id int64, customerID int64) (*models.BookingResponse, error) {
	booking, err := s.fetch(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	if booking.CustomerID != customerID {
		s.logger.Warn("GetByID: access denied for customer=%d to booking id=%d", customerID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainBooking(booking), nil
}

// Cancel отменяет бронирование.
// Отклоняется локально, если бронирование уже активно, завершено или
// отменено; тег инициатора передается бэкенду для аудита.
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%d by customer=%d", bookingID, req.CustomerID)

	booking, err := s.fetch(ctx, "Cancel", bookingID)
	if err != nil {
		return nil, err
	}

	if booking.CustomerID != req.CustomerID {
		s.logger.Warn("Cancel: access denied for customer=%d to booking id=%d", req.CustomerID, bookingID)
		return nil, ErrAccessDenied
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return nil, ErrCannotCancel
	}

	actor := req.CancelledBy
	if actor == "" {
		actor = DefaultCancelActor
	}

	updated, err := s.client.Cancel(ctx, bookingID, actor)
	if err != nil {
		if errors.Is(err, bookingClient.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Cancel: client error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Cancel - client error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return models.FromDomainBooking(updated), nil
}

// Accept подтверждает бронирование (pending → confirmed)
func (s *Service) Accept(ctx context.Context, bookingID int64) (*models.BookingResponse, error) {
	booking, err := s.fetch(ctx, "Accept", bookingID)
	if err != nil {
		return nil, err
	}

	if !booking.CanBeAccepted() {
		s.logger.Warn("Accept: booking id=%d cannot be accepted, status=%s", bookingID, booking.Status)
		return nil, ErrCannotAccept
	}

	updated, err := s.client.Accept(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingClient.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Accept: client error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Accept - client error: %v", ErrInternal, err)
	}

	s.logger.Info("Accept: successfully accepted booking id=%d", bookingID)
	return models.FromDomainBooking(updated), nil
}

// Complete завершает бронирование (active → completed)
func (s *Service) Complete(ctx context.Context, bookingID int64) (*models.BookingResponse, error) {
	booking, err := s.fetch(ctx, "Complete", bookingID)
	if err != nil {
		return nil, err
	}

	if !booking.CanBeCompleted() {
		s.logger.Warn("Complete: booking id=%d cannot be completed, status=%s", bookingID, booking.Status)
		return nil, ErrCannotComplete
	}

	updated, err := s.client.Complete(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingClient.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Complete: client error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Complete - client error: %v", ErrInternal, err)
	}

	s.logger.Info("Complete: successfully completed booking id=%d", bookingID)
	return models.FromDomainBooking(updated), nil
}

// List получает страницу бронирований клиента.
//
// Основной путь — постраничный эндпоинт by-customer. На 400/404 откатывается
// на legacy-эндпоинт без пагинации и возвращает всё как одну страницу
// (totalPages = 1). Первая страница сверяется с handoff-кешем: если только
// что созданное бронирование ещё не попало в выдачу бэкенда, оно
// подставляется в начало страницы ровно один раз.
//
// Фильтр вкладки применяется к уже загруженной странице, поэтому счётчики
// вкладок отражают текущую страницу, а не все бронирования клиента.
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	if err := req.Normalize(); err != nil {
		s.logger.Warn("List: invalid request for customer=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	s.logger.Info("List: fetching bookings for customer=%d page=%d size=%d sortBy=%s tab=%s",
		req.CustomerID, req.Page, req.Size, req.SortBy, req.Tab)

	page, err := s.fetchPage(ctx, req)
	if err != nil {
		return nil, err
	}

	if req.Page == 1 {
		s.reconcileHandoff(ctx, req.CustomerID, page)
	}

	items := filterTab(page.Bookings, req.Tab)

	s.logger.Info("List: fetched %d bookings for customer=%d (page %d of %d)",
		len(items), req.CustomerID, page.Page, page.TotalPages)

	return &models.BookingListResponse{
		Bookings:      models.FromDomainBookingList(items),
		Page:          page.Page,
		TotalPages:    page.TotalPages,
		TotalElements: page.TotalElements,
	}, nil
}

// fetchPage получает страницу с основного эндпоинта или через fallback
func (s *Service) fetchPage(ctx context.Context, req *models.ListBookingsRequest) (*domain.BookingPage, error) {
	page, err := s.client.ListByCustomer(ctx, req.CustomerID, req.Page, req.Size, req.SortBy)
	if err == nil {
		return page, nil
	}

	if !errors.Is(err, bookingClient.ErrEndpointUnavailable) {
		s.logger.Error("List: client error for customer=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: List - client error: %v", ErrInternal, err)
	}

	s.logger.Warn("List: paginated endpoint unavailable for customer=%d, falling back to all-for-user", req.CustomerID)

	all, err := s.client.ListAllForUser(ctx, req.CustomerID)
	if err != nil {
		s.logger.Error("List: fallback failed for customer=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: List - fallback client error: %v", ErrInternal, err)
	}

	// Legacy-эндпоинт не сортирует, упорядочиваем локально
	sortBookings(all, req.SortBy)

	return &domain.BookingPage{
		Bookings:      all,
		Page:          1,
		TotalPages:    1,
		TotalElements: int64(len(all)),
	}, nil
}

// reconcileHandoff сверяет первую страницу с handoff-кешем.
// Take читает и очищает слот атомарно, поэтому при любом исходе
// повторное потребление невозможно.
func (s *Service) reconcileHandoff(ctx context.Context, customerID int64, page *domain.BookingPage) {
	cached, err := s.handoff.Take(ctx, customerID)
	if err != nil {
		// Кеш не авторитетен: список и без него рано или поздно
		// отразит созданное бронирование
		s.logger.Warn("List: handoff cache read failed for customer=%d: %v", customerID, err)
		return
	}
	if cached == nil {
		return
	}

	for _, booking := range page.Bookings {
		if booking.ID == cached.ID {
			s.logger.Info("List: handoff booking id=%d already present, cache cleared", cached.ID)
			return
		}
	}

	s.logger.Info("List: splicing handoff booking id=%d into page one", cached.ID)
	page.Bookings = append([]*domain.Booking{cached}, page.Bookings...)
	if page.TotalElements > 0 {
		page.TotalElements++
	}
}

// filterTab фильтрует страницу по вкладке
func filterTab(bookings []*domain.Booking, tab string) []*domain.Booking {
	if tab == domain.TabAll {
		return bookings
	}
	filtered := make([]*domain.Booking, 0, len(bookings))
	for _, booking := range bookings {
		if booking.InTab(tab) {
			filtered = append(filtered, booking)
		}
	}
	return filtered
}

// sortBookings сортирует бронирования по ключу сортировки
func sortBookings(bookings []*domain.Booking, sortBy string) {
	switch sortBy {
	case domain.SortOldest:
		sort.SliceStable(bookings, func(i, j int) bool {
			return bookings[i].CreatedAt.Before(bookings[j].CreatedAt)
		})
	case domain.SortAmount:
		sort.SliceStable(bookings, func(i, j int) bool {
			return bookings[i].FinalAmount > bookings[j].FinalAmount
		})
	case domain.SortStatus:
		sort.SliceStable(bookings, func(i, j int) bool {
			return bookings[i].Status.StatusCode() < bookings[j].Status.StatusCode()
		})
	default: // domain.SortLatest
		sort.SliceStable(bookings, func(i, j int) bool {
			return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
		})
	}
}

// fetch получает бронирование с маппингом ошибок клиента
func (s *Service) fetch(ctx context.Context, op string, id int64) (*domain.Booking, error) {
	booking, err := s.client.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingClient.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: client error for booking id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - client error: %v", ErrInternal, op, err)
	}
	return booking, nil
}
