package model

// Category is the discrete trade action derived from a projection.
type Category string

const (
	BuyCall Category = "BUY_CALL"
	BuyPut  Category = "BUY_PUT"
	Hold    Category = "HOLD"
)

// Recommendation is the final output of the classifier.
type Recommendation struct {
	Category       Category
	Rationale      string
	CurrentPrice   float64
	ProjectedPrice float64
}
