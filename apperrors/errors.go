package apperrors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Kind classifies a domain failure so the HTTP layer can map it to a
// stable status code without inspecting messages.
type Kind int

const (
	KindNotFound Kind = iota
	KindConflict
	KindUnauthorized
	KindBadRequest
	KindUnknown
)

// Error is the typed failure every workflow returns instead of raising.
// Err carries the underlying cause for diagnostics, if any.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Status maps the error kind to its HTTP status code.
func (e *Error) Status() int {
	switch e.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindBadRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Respond writes err as a JSON error response. Untyped errors are treated
// as unknown internal failures.
func Respond(c *gin.Context, err error) {
	var appErr *Error
	if errors.As(err, &appErr) {
		c.JSON(appErr.Status(), gin.H{"error": appErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func UserNotFound(id string) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("user under id %s was not found", id)}
}

func ProductNotFound(id string) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("product under id %s was not found", id)}
}

func CartItemNotFound(id string) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("cart item under id %s was not found", id)}
}

func OrderNotFound(id string) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("order under id %s was not found", id)}
}

func CategoryNotFound(id string) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("category under id %s was not found", id)}
}

func ManufacturerNotFound(id string) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("manufacturer under id %s was not found", id)}
}

// QuantityExceedsStock rejects a cart line asking for more units than the
// product currently has.
func QuantityExceedsStock(productID string, requested, stock int) *Error {
	return &Error{
		Kind:    KindConflict,
		Message: fmt.Sprintf("quantity %d for product %s exceeds stock (%d available)", requested, productID, stock),
	}
}

func OrderUserNotFound(userID string) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("user under id %s was not found", userID)}
}

func OrderUserCartIsEmpty(userID string) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf("cart of user %s is empty", userID)}
}

// InsufficientStock reports that a product's stock ran out between cart
// validation and order placement.
func InsufficientStock(productID string) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf("insufficient stock for product %s", productID)}
}

func OrderUnknown(orderID string, cause error) *Error {
	return &Error{
		Kind:    KindUnknown,
		Message: fmt.Sprintf("unexpected error while creating order %s", orderID),
		Err:     cause,
	}
}

// HasRelatedEntities translates the store's referential-integrity
// rejection into a domain conflict.
func HasRelatedEntities(entity, id string) *Error {
	return &Error{
		Kind:    KindConflict,
		Message: fmt.Sprintf("%s under id %s has related products and cannot be deleted", entity, id),
	}
}

func EmailAlreadyExists(email string) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf("user with email %s already exists", email)}
}

// EmailOrPasswordIncorrect is deliberately identical for an unknown email
// and a wrong password so the response does not leak which one failed.
func EmailOrPasswordIncorrect() *Error {
	return &Error{Kind: KindUnauthorized, Message: "email or password are incorrect"}
}

func InvalidRefreshToken() *Error {
	return &Error{Kind: KindUnauthorized, Message: "refresh token is invalid or expired"}
}

func AuthenticationUnknown(userID string, cause error) *Error {
	return &Error{
		Kind:    KindUnknown,
		Message: fmt.Sprintf("unexpected authentication error for user %s", userID),
		Err:     cause,
	}
}

func InvalidQuantity(quantity int) *Error {
	return &Error{Kind: KindBadRequest, Message: fmt.Sprintf("quantity must be positive, got %d", quantity)}
}

func Unknown(message string, cause error) *Error {
	return &Error{Kind: KindUnknown, Message: message, Err: cause}
}
