package response

type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

type LogoutResponse struct {
	Success bool `json:"success"`
}

type CheckResponse struct {
	Authenticated bool `json:"authenticated"`
}
