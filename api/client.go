// Package api is the single boundary to the remote Notation service.
// All request building, response decoding and shape normalization
// happens here; screens only ever see canonical types or one of the
// typed errors from errors.go.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Nagraj23/notation-tui/logger"
)

type Client struct {
	base     string
	http     *http.Client
	validate *validator.Validate
	log      zerolog.Logger
}

func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		base:     strings.TrimRight(baseURL, "/"),
		http:     &http.Client{Timeout: timeout},
		validate: validator.New(),
		log:      logger.Get().With().Str("component", "api").Logger(),
	}
}

type loginForm struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

type registerForm struct {
	FullName string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
	Confirm  string `validate:"required,eqfield=Password"`
}

// authEnvelope matches the login/register success body.
type authEnvelope struct {
	Token    string   `json:"token"`
	UserData userWire `json:"userData"`
}

type notesEnvelope struct {
	Notes []noteWire `json:"notes"`
}

type messageEnvelope struct {
	Message string `json:"message"`
}

func (c *Client) Login(ctx context.Context, email, password string) (AuthResult, error) {
	form := loginForm{Email: email, Password: password}
	if err := c.checkValid(form, map[string]string{
		"required": "Email and password are required.",
	}); err != nil {
		return AuthResult{}, err
	}

	body := map[string]string{"email": email, "password": password}
	resp, err := c.do(ctx, http.MethodPost, "/login", "", body)
	if err != nil {
		return AuthResult{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return AuthResult{}, &AuthError{Message: serverMessage(resp, "Invalid credentials. Try again.")}
	}

	var env authEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return AuthResult{}, &ServerError{StatusCode: resp.StatusCode, Message: "unexpected response from server"}
	}
	return AuthResult{Token: env.Token, User: env.UserData.normalize()}, nil
}

func (c *Client) Register(ctx context.Context, fullName, email, password, confirm string) (AuthResult, error) {
	form := registerForm{FullName: fullName, Email: email, Password: password, Confirm: confirm}
	if err := c.checkValid(form, map[string]string{
		"required": "All fields are required.",
		"email":    "Enter a valid email address.",
		"eqfield":  "Passwords don't match.",
	}); err != nil {
		return AuthResult{}, err
	}

	body := map[string]string{"fullName": fullName, "email": email, "password": password}
	resp, err := c.do(ctx, http.MethodPost, "/register", "", body)
	if err != nil {
		return AuthResult{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return AuthResult{}, &AuthError{Message: serverMessage(resp, "Registration failed. Try again.")}
	}

	var env authEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return AuthResult{}, &ServerError{StatusCode: resp.StatusCode, Message: "unexpected response from server"}
	}
	return AuthResult{Token: env.Token, User: env.UserData.normalize()}, nil
}

// ListNotes returns the collection in server order; callers own the
// sort. A missing or malformed notes field degrades to an empty list.
func (c *Client) ListNotes(ctx context.Context, token string) ([]Note, error) {
	if token == "" {
		return nil, &AuthError{Message: "Authentication token is missing. Please log in."}
	}

	resp, err := c.do(ctx, http.MethodGet, "/notes", token, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := c.checkStatus(resp, "Failed to fetch notes."); err != nil {
		return nil, err
	}

	var env notesEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return []Note{}, nil
	}
	notes := make([]Note, 0, len(env.Notes))
	for _, w := range env.Notes {
		notes = append(notes, w.normalize())
	}
	return notes, nil
}

// GetNote fetches a single note by id, for edit-mode population.
func (c *Client) GetNote(ctx context.Context, token, id string) (Note, error) {
	if token == "" {
		return Note{}, &AuthError{Message: "Authentication token is missing. Please log in."}
	}

	resp, err := c.do(ctx, http.MethodGet, "/notes/"+id, token, nil)
	if err != nil {
		return Note{}, err
	}
	defer resp.Body.Close()

	if err := c.checkStatus(resp, "Failed to fetch note for editing."); err != nil {
		return Note{}, err
	}

	var w noteWire
	if err := json.NewDecoder(resp.Body).Decode(&w); err != nil {
		return Note{}, &ServerError{StatusCode: resp.StatusCode, Message: "unexpected response from server"}
	}
	n := w.normalize()
	if n.ID == "" {
		n.ID = id
	}
	return n, nil
}

// SaveNote creates (SaveCreate) or fully replaces (SaveEdit, requires
// id) a note. Title and content are trimmed before submission.
func (c *Client) SaveNote(ctx context.Context, token, userID string, draft NoteDraft, mode SaveMode, id string) error {
	title := strings.TrimSpace(draft.Title)
	content := strings.TrimSpace(draft.Content)
	if title == "" || content == "" {
		return &ValidationError{Message: "Title and content cannot be empty"}
	}
	if token == "" || userID == "" {
		return &AuthError{Message: "Authentication is missing. Please log in again."}
	}

	path := "/create"
	method := http.MethodPost
	if mode == SaveEdit {
		if id == "" {
			return &ValidationError{Message: "Missing note id for edit"}
		}
		path = "/edit/" + id
		method = http.MethodPut
	}

	body := map[string]string{
		"title":   title,
		"content": content,
		"user_id": userID,
	}
	resp, err := c.do(ctx, method, path, token, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	fallback := "Note creation failed. Please try again."
	if mode == SaveEdit {
		fallback = "Note update failed. Please try again."
	}
	return c.checkStatus(resp, fallback)
}

func (c *Client) DeleteNote(ctx context.Context, token, id string) error {
	if token == "" {
		return &AuthError{Message: "Authentication token is missing. Please log in."}
	}

	resp, err := c.do(ctx, http.MethodDelete, "/delete/"+id, token, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return c.checkStatus(resp, "Failed to delete the note.")
}

// do builds and executes one request. Transport failures come back as
// *NetworkError; HTTP status handling is left to the caller.
func (c *Client) do(ctx context.Context, method, path, token string, body any) (*http.Response, error) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, &NetworkError{Err: err}
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, &buf)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	reqID := uuid.NewString()
	req.Header.Set("X-Request-Id", reqID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn().Str("request_id", reqID).Str("method", method).Str("path", path).Err(err).Msg("request failed")
		return nil, &NetworkError{Err: err}
	}

	c.log.Debug().
		Str("request_id", reqID).
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("request completed")
	return resp, nil
}

// checkStatus consumes an error response and maps it: 401/403 become
// *AuthError, every other non-2xx becomes *ServerError with the
// server-supplied message where present.
func (c *Client) checkStatus(resp *http.Response, fallback string) error {
	if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		return nil
	}
	msg := serverMessage(resp, fallback)
	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return &AuthError{Message: msg}
	}
	return &ServerError{StatusCode: resp.StatusCode, Message: msg}
}

func serverMessage(resp *http.Response, fallback string) string {
	var env messageEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err == nil && env.Message != "" {
		return env.Message
	}
	return fallback
}

// checkValid runs struct validation and converts the first failure to
// a *ValidationError using the tag→message table.
func (c *Client) checkValid(form any, messages map[string]string) error {
	err := c.validate.Struct(form)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		// Required-field failures win over format failures, matching
		// the order the checks are presented to the user.
		for _, fe := range ve {
			if fe.Tag() == "required" {
				if msg, ok := messages["required"]; ok {
					return &ValidationError{Message: msg}
				}
			}
		}
		fe := ve[0]
		if msg, ok := messages[fe.Tag()]; ok {
			return &ValidationError{Message: msg}
		}
		return &ValidationError{Message: fmt.Sprintf("Invalid value for %s", fe.Field())}
	}
	return &ValidationError{Message: err.Error()}
}
