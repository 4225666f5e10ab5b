package controllers

import (
	"encoding/json"
	"net/http"

	"loveconnect_server/services"
)

// AuthController handles signup, email verification, and login.
type AuthController struct {
	UserService *services.UserService
}

func NewAuthController(userService *services.UserService) *AuthController {
	return &AuthController{UserService: userService}
}

func (c *AuthController) Signup(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Name            string `json:"name"`
		Email           string `json:"email"`
		Password        string `json:"password"`
		ConfirmPassword string `json:"confirmPassword"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid request body."})
		return
	}

	user, err := c.UserService.Signup(r.Context(), request.Name, request.Email, request.Password, request.ConfirmPassword)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Verification email sent. Please check your inbox.",
		"email":   user.Email,
	})
}

func (c *AuthController) Verify(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")

	if err := c.UserService.VerifyEmail(r.Context(), token); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Email verified successfully. You can now log in.",
	})
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid request body."})
		return
	}

	token, user, err := c.UserService.Login(r.Context(), request.Email, request.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Login successful.",
		"token":   token,
		"user": map[string]string{
			"id":    user.UserID,
			"name":  user.Name,
			"email": user.Email,
		},
	})
}

func (c *AuthController) Logout(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out successfully."})
}
