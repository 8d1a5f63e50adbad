package gateway

import (
	"context"
	"fmt"
	"net/url"

	"github.com/goccy/go-json"

	"cafe-admin-api/models"
)

// ── Food ────────────────────────────────────────────────────────────────────

func (c *Client) ListFood(ctx context.Context) ([]models.FoodItem, error) {
	var resp struct {
		FoodList []json.RawMessage `json:"foodList"`
	}
	if err := c.get(ctx, "/food/getFoodItems", &resp); err != nil {
		return nil, err
	}
	items := decodeList(c.log, "food item", resp.FoodList, func(f models.FoodItem) string { return f.ID })
	return mapEach(items, normalizeFood), nil
}

func (c *Client) AddFood(ctx context.Context, item models.FoodItem) error {
	return c.post(ctx, "/food/addFood", item, nil)
}

func (c *Client) UpdateFood(ctx context.Context, item models.FoodItem) error {
	return c.post(ctx, "/food/updateFood", item, nil)
}

func (c *Client) DeleteFood(ctx context.Context, id string) error {
	return c.post(ctx, "/food/deleteFood", idPayload{ID: id}, nil)
}

// ── Orders ──────────────────────────────────────────────────────────────────

func (c *Client) ListOrders(ctx context.Context) ([]models.Order, error) {
	var resp struct {
		OrderList []json.RawMessage `json:"orderList"`
	}
	if err := c.get(ctx, "/orders/getOrders", &resp); err != nil {
		return nil, err
	}
	orders := decodeList(c.log, "order", resp.OrderList, func(o models.Order) string { return o.ID })
	return mapEach(orders, normalizeOrder), nil
}

func (c *Client) AddOrder(ctx context.Context, order models.Order) error {
	return c.post(ctx, "/orders/addOrder", order, nil)
}

func (c *Client) EditOrder(ctx context.Context, order models.Order) error {
	return c.post(ctx, "/orders/editOrder", order, nil)
}

func (c *Client) CancelOrder(ctx context.Context, id string) error {
	return c.post(ctx, "/orders/cancelOrder", idPayload{ID: id}, nil)
}

func (c *Client) DeleteOrder(ctx context.Context, id string) error {
	return c.post(ctx, "/orders/deleteOrder", idPayload{ID: id}, nil)
}

// PaymentRequest asks the API for a hosted payment link
type PaymentRequest struct {
	ID                  string  `json:"id"`
	CustomerName        string  `json:"customerName"`
	CustomerEmail       string  `json:"customerEmail"`
	CustomerPhoneNumber string  `json:"customerPhoneNumber"`
	TotalAmount         float64 `json:"totalAmount"`
	From                string  `json:"from"`
}

// CreatePaymentLink returns the URL the customer is redirected to
func (c *Client) CreatePaymentLink(ctx context.Context, req PaymentRequest) (string, error) {
	var resp struct {
		Data struct {
			LinkURL string `json:"link_url"`
			LinkID  string `json:"link_id"`
		} `json:"data"`
	}
	if err := c.post(ctx, "/orders/handle-payment", req, &resp); err != nil {
		return "", err
	}
	if resp.Data.LinkURL == "" {
		return "", fmt.Errorf("handle-payment: response has no link_url")
	}
	return resp.Data.LinkURL, nil
}

// CheckPayment returns the payment status of a link, e.g. PAID or ACTIVE
func (c *Client) CheckPayment(ctx context.Context, linkID string) (string, error) {
	var resp struct {
		PaymentStatus string `json:"paymentStatus"`
	}
	if err := c.get(ctx, "/orders/check-payment/"+url.PathEscape(linkID), &resp); err != nil {
		return "", err
	}
	return resp.PaymentStatus, nil
}

// ── Support ─────────────────────────────────────────────────────────────────

func (c *Client) ListTickets(ctx context.Context) ([]models.SupportTicket, error) {
	var resp struct {
		SupportList []json.RawMessage `json:"supportList"`
	}
	if err := c.get(ctx, "/support/getSupport", &resp); err != nil {
		return nil, err
	}
	tickets := decodeList(c.log, "support ticket", resp.SupportList, func(t models.SupportTicket) string { return t.ID })
	return mapEach(tickets, normalizeTicket), nil
}

func (c *Client) AddTicket(ctx context.Context, t models.SupportTicket) error {
	return c.post(ctx, "/support/addSupport", t, nil)
}

func (c *Client) UpdateTicket(ctx context.Context, t models.SupportTicket) error {
	return c.post(ctx, "/support/updateSupport", t, nil)
}

func (c *Client) DeleteTicket(ctx context.Context, id string) error {
	return c.post(ctx, "/support/deleteSupport", idPayload{ID: id}, nil)
}

// ── Feedback ────────────────────────────────────────────────────────────────

func (c *Client) ListFeedback(ctx context.Context) ([]models.CustomerFeedback, error) {
	var resp struct {
		FeedbackList []json.RawMessage `json:"feedbackList"`
	}
	if err := c.get(ctx, "/feedback/getFeedbacks", &resp); err != nil {
		return nil, err
	}
	fbs := decodeList(c.log, "feedback", resp.FeedbackList, func(f models.CustomerFeedback) string { return f.ID })
	return mapEach(fbs, normalizeFeedback), nil
}

func (c *Client) AddFeedback(ctx context.Context, f models.CustomerFeedback) error {
	return c.post(ctx, "/feedback/addFeedback", f, nil)
}

// ── Users ───────────────────────────────────────────────────────────────────

// LoginRequest carries the identity-provider token pair
type LoginRequest struct {
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
}

type RegisterRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	PhoneNumber  string `json:"phoneNumber"`
	Password     string `json:"password"`
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
}

func (c *Client) Login(ctx context.Context, req LoginRequest) (models.SessionUser, error) {
	return c.exchange(ctx, "/user/login", req)
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (models.SessionUser, error) {
	return c.exchange(ctx, "/user/register", req)
}

// exchange posts the tokens and returns userInfo with the password removed
func (c *Client) exchange(ctx context.Context, endpoint string, req any) (models.SessionUser, error) {
	var resp struct {
		UserInfo map[string]any `json:"userInfo"`
	}
	if err := c.post(ctx, endpoint, req, &resp); err != nil {
		return models.SessionUser{}, err
	}
	if resp.UserInfo == nil {
		return models.SessionUser{}, fmt.Errorf("%s: response has no userInfo", endpoint)
	}
	delete(resp.UserInfo, "password")

	raw, err := json.Marshal(resp.UserInfo)
	if err != nil {
		return models.SessionUser{}, err
	}
	var user models.SessionUser
	if err := json.Unmarshal(raw, &user); err != nil {
		return models.SessionUser{}, fmt.Errorf("%s: decode userInfo: %w", endpoint, err)
	}
	return user, nil
}
