// internal/app/features/accounts/types.go
package accounts

// createUserRequest admits either credential form. Email and password travel
// together; a Google token stands alone. Supplying neither is a caller error.
type createUserRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email,omitempty"`
	Password    string `json:"password,omitempty"`
	GoogleToken string `json:"google_token,omitempty"`
}

type createUserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type linkGoogleRequest struct {
	UserID      string `json:"user_id"`
	GoogleToken string `json:"google_token"`
}

type linkGoogleResponse struct {
	Linked bool `json:"linked"`
}
