package services

import (
	"errors"

	"github.com/digitalbuddiesspune/stylishtouches-sub001/models"
)

// ErrProductNotFound is the terminal not-found outcome of GetProductByID:
// the ID matched no record in any family.
var ErrProductNotFound = errors.New("product not found")

// ProductPage is the result of a listing or search request.
type ProductPage struct {
	Products   []models.Product  `json:"products"`
	Pagination models.Pagination `json:"pagination"`
	// Warning is set when a search fan-out lost one or more families and
	// the page holds partial results.
	Warning string `json:"warning,omitempty"`
}
