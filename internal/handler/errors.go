package handler

// User-facing error messages for client responses.
// These intentionally do not expose internal error details.
// Handlers and tests both reference these constants.
const (
	// Generic messages
	ErrMsgGenericServerError    = "Something went wrong"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgUnavailableError      = "Server is temporarily unavailable. Please try again later."

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"

	// Auth messages
	ErrMsgNotAuthenticatedError   = "You need to be logged in"
	ErrMsgInvalidCredentialsError = "Invalid email or password"
	ErrMsgEmailTakenError         = "That email is already registered"

	// Ownership messages
	ErrMsgNotOwnerError = "You can only change your own posts"

	// Not-found messages
	ErrMsgUserNotFoundError         = "User not found"
	ErrMsgProfileNotFoundError      = "Profile not found"
	ErrMsgAvatarNotFoundError       = "No avatar uploaded"
	ErrMsgRantNotFoundError         = "Rant not found"
	ErrMsgMemoryNotFoundError       = "Memory not found"
	ErrMsgWishlistItemNotFoundError = "Wishlist item not found"

	// Daily song messages
	ErrMsgAlreadyWonError       = "Today's song has already been chosen"
	ErrMsgAlreadySubmittedError = "You already submitted today"

	// Upload messages
	ErrMsgPhotoRequired   = "A photo file is required"
	ErrMsgAvatarRequired  = "An avatar image file is required"
	ErrMsgOwnerTokenError = "Missing owner token"

	// Month parameter messages
	ErrMsgInvalidMonth = "Month must be between 1 and 12"
)

// Success messages returned in JSON responses
const (
	MsgPasswordUpdated     = "Password updated"
	MsgRantDeleted         = "Rant deleted"
	MsgMemoryDeleted       = "Memory deleted"
	MsgWishlistItemDeleted = "Wishlist item deleted"
)

// HeaderOwnerToken carries the client-generated wishlist owner token
const HeaderOwnerToken = "X-Owner-Token"
