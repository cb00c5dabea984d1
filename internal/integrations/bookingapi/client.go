package bookingapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client HTTP клиент публичного API бронирований
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// BookedTimes получает занятые времена на дату
func (c *Client) BookedTimes(ctx context.Context, date string) ([]string, error) {
	endpoint := fmt.Sprintf("%s/api/slots?date=%s", c.baseURL, url.QueryEscape(date))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		// Продолжаем обработку
	case resp.StatusCode == http.StatusBadRequest:
		return nil, fmt.Errorf("%w: %s", ErrInvalidDate, date)
	default:
		return nil, fmt.Errorf("%w: unexpected status code %d", ErrUnavailable, resp.StatusCode)
	}

	var body BookedSlotsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if body.Booked == nil {
		return []string{}, nil
	}
	return body.Booked, nil
}

// SubmitBooking отправляет форму бронирования.
// Ответ {ok:false} возвращается как *RejectedError.
func (c *Client) SubmitBooking(ctx context.Context, create *CreateRequest) (*BookingSummary, error) {
	payload, err := json.Marshal(create)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/bookings", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	var body CreateResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		if resp.StatusCode >= http.StatusInternalServerError {
			return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
		}
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if !body.OK {
		c.log.Warn("SubmitBooking: rejected date=%s time=%s status=%d: %s", create.Date, create.Time, resp.StatusCode, body.Error)
		return nil, &RejectedError{StatusCode: resp.StatusCode, Message: body.Error}
	}
	if body.Booking == nil {
		return nil, fmt.Errorf("%w: ok response without booking", ErrInvalidResponse)
	}

	c.log.Info("SubmitBooking: booked date=%s time=%s", body.Booking.Date, body.Booking.Time)
	return body.Booking, nil
}
