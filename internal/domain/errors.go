package domain

import "errors"

var (
	ErrBrandNotFound          = errors.New("brand not found")
	ErrRecommendationNotFound = errors.New("recommendation not found")
	ErrAlreadyActioned        = errors.New("recommendation already actioned")
	ErrInvalidAction          = errors.New("invalid recommendation action")
)
