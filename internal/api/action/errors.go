package action

import "errors"

var (
	errImpactNegative = errors.New("impact values must be non-negative")
	errProofNotImage  = errors.New("proof image must be jpeg, png, or webp")
	errActionVerified = errors.New("verified actions cannot be updated")
	errNotOwner       = errors.New("action belongs to another user")
)
