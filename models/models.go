package models

import (
	"errors"

	"voltstore/entities"
)

var ErrBadRequest = errors.New("bad request")
var ErrUnauthorized = errors.New("unauthorized")
var ErrServerError = errors.New("server error")
var ErrNotFound = errors.New("not found")
var ErrNotAllowed = errors.New("not acceptable")

// Reason codes surfaced to the UI layer instead of bare booleans.
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrEmailTaken = errors.New("email already registered")
var ErrCouponNotFound = errors.New("coupon not found")
var ErrMinimumNotMet = errors.New("cart subtotal below coupon minimum")
var ErrEmptyCart = errors.New("cart is empty")

// StoredUser is the persisted user record. Unlike entities.User it carries
// the password hash, so it must never be written to an API response.
type StoredUser struct {
	Id           int    `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	IsAdmin      bool   `json:"isAdmin"`
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Registration struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
}

type CartAddRequest struct {
	ProductId int    `json:"productId"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Quantity  int    `json:"quantity"`
}

type CartLineKey struct {
	ProductId int    `json:"productId"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

type QuantityUpdate struct {
	CartLineKey
	Quantity int `json:"quantity"`
}

type CouponRequest struct {
	Code string `json:"code"`
}

type StatusUpdate struct {
	Status entities.OrderStatus `json:"status"`
}

// ProductPatch updates only the fields that are present; nil pointers leave
// the stored value alone.
type ProductPatch struct {
	Name          *string `json:"name"`
	Category      *int    `json:"category"`
	Price         *int    `json:"price"`
	OriginalPrice *int    `json:"originalPrice"`
	// ClearOriginalPrice drops the sale price; JSON cannot distinguish an
	// absent originalPrice from an explicit null.
	ClearOriginalPrice bool      `json:"clearOriginalPrice"`
	Description        *string   `json:"description"`
	Image              *string   `json:"image"`
	Colors             *[]string `json:"colors"`
	Sizes              *[]string `json:"sizes"`
	Stock              *int      `json:"stock"`
	Featured           *bool     `json:"featured"`
	New                *bool     `json:"new"`
	Sale               *bool     `json:"sale"`
}

type ProductCreate struct {
	Name          string   `json:"name"`
	Category      int      `json:"category"`
	Price         int      `json:"price"`
	OriginalPrice *int     `json:"originalPrice"`
	Description   string   `json:"description"`
	Image         string   `json:"image"`
	Colors        []string `json:"colors"`
	Sizes         []string `json:"sizes"`
	Stock         int      `json:"stock"`
	Featured      bool     `json:"featured"`
	New           bool     `json:"new"`
	Sale          bool     `json:"sale"`
}

type CollectionPatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	ProductIds  *[]int  `json:"productIds"`
}

type CollectionCreate struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	ProductIds  []int  `json:"productIds"`
}
