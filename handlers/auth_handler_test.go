package handlers

import (
	"net/http"
	"testing"

	"github.com/Modassir22/dream-home-hub/mocks"
	"github.com/Modassir22/dream-home-hub/models"
	"github.com/Modassir22/dream-home-hub/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupAuth(svc *mocks.AuthServiceMock, me *models.User) *gin.Engine {
	r := newEngine()
	h := NewAuthHandler(svc)
	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)
	if me != nil {
		r.GET("/auth/me", asUser(me), h.Me)
	} else {
		r.GET("/auth/me", h.Me)
	}
	return r
}

func TestRegister_Success(t *testing.T) {
	svc := new(mocks.AuthServiceMock)
	req := models.RegisterRequest{Username: "ahmed", Password: "123456", Email: "a@b.c"}
	svc.On("Register", req).Return(&models.AuthResponse{
		Token: "tok",
		User:  models.UserSummary{ID: 1, Username: "ahmed", Email: "a@b.c", Role: "user"},
	}, nil)

	w := doJSON(setupAuth(svc, nil), http.MethodPost, "/auth/register", req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"token":"tok","user":{"id":1,"username":"ahmed","email":"a@b.c","role":"user"}}`, w.Body.String())
}

func TestRegister_ValidationError(t *testing.T) {
	svc := new(mocks.AuthServiceMock)

	w := doJSON(setupAuth(svc, nil), http.MethodPost, "/auth/register", map[string]string{"username": "ab", "password": "1"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NotEmpty(t, decode(t, w)["message"])
	svc.AssertNotCalled(t, "Register", mock.Anything)
}

func TestRegister_DuplicateIs409(t *testing.T) {
	svc := new(mocks.AuthServiceMock)
	req := models.RegisterRequest{Username: "ahmed", Password: "123456"}
	svc.On("Register", req).Return(nil, &services.Error{Kind: services.ErrConflict, Msg: "Username already exists"})

	w := doJSON(setupAuth(svc, nil), http.MethodPost, "/auth/register", req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"message":"Username already exists"}`, w.Body.String())
}

func TestLogin_Unauthorized(t *testing.T) {
	svc := new(mocks.AuthServiceMock)
	body := models.LoginRequest{Username: "ahmed", Password: "oops"}
	svc.On("Login", body).Return(nil, &services.Error{Kind: services.ErrInvalidCredentials, Msg: "Invalid credentials"})

	w := doJSON(setupAuth(svc, nil), http.MethodPost, "/auth/login", body)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"Invalid credentials"}`, w.Body.String())
}

func TestLogin_StoreErrorIs500(t *testing.T) {
	svc := new(mocks.AuthServiceMock)
	body := models.LoginRequest{Username: "ahmed", Password: "pw"}
	svc.On("Login", body).Return(nil, assert.AnError)

	w := doJSON(setupAuth(svc, nil), http.MethodPost, "/auth/login", body)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	m := decode(t, w)
	assert.Equal(t, "Server error", m["message"])
	assert.Equal(t, assert.AnError.Error(), m["error"])
}

func TestMe_ReturnsSummary(t *testing.T) {
	me := &models.User{ID: 3, Username: "admin", Role: "admin", Password: "hash"}

	w := doJSON(setupAuth(new(mocks.AuthServiceMock), me), http.MethodGet, "/auth/me", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user":{"id":3,"username":"admin","role":"admin"}}`, w.Body.String())
}

func TestMe_WithoutGuard(t *testing.T) {
	w := doJSON(setupAuth(new(mocks.AuthServiceMock), nil), http.MethodGet, "/auth/me", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
