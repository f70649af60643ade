package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Modassir22/dream-home-hub/mocks"
	"github.com/Modassir22/dream-home-hub/models"
	"github.com/Modassir22/dream-home-hub/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func multipartRequest(t *testing.T, field string, content []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, "photo.png")
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload/image", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func setupUpload(svc *mocks.UploadServiceMock, maxBytes int64) *gin.Engine {
	r := newEngine()
	r.POST("/upload/image", NewUploadHandler(svc, maxBytes).Image)
	return r
}

func TestUploadImage_Success(t *testing.T) {
	svc := new(mocks.UploadServiceMock)
	svc.On("SaveImage", mock.Anything).Return(&models.UploadResponse{URL: "/uploads/x.jpg", Filename: "x.jpg"}, nil)

	w := httptest.NewRecorder()
	setupUpload(svc, 1024).ServeHTTP(w, multipartRequest(t, "image", []byte("fake-bytes")))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"url":"/uploads/x.jpg","filename":"x.jpg"}`, w.Body.String())
}

func TestUploadImage_MissingField(t *testing.T) {
	svc := new(mocks.UploadServiceMock)

	w := httptest.NewRecorder()
	setupUpload(svc, 1024).ServeHTTP(w, multipartRequest(t, "file", []byte("x")))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"No image uploaded"}`, w.Body.String())
	svc.AssertNotCalled(t, "SaveImage", mock.Anything)
}

func TestUploadImage_TooLarge(t *testing.T) {
	svc := new(mocks.UploadServiceMock)

	w := httptest.NewRecorder()
	setupUpload(svc, 16).ServeHTTP(w, multipartRequest(t, "image", bytes.Repeat([]byte("a"), 64)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "at most 16 bytes")
	svc.AssertNotCalled(t, "SaveImage", mock.Anything)
}

func TestUploadImage_NotAnImage(t *testing.T) {
	svc := new(mocks.UploadServiceMock)
	svc.On("SaveImage", mock.Anything).Return(nil, &services.Error{Kind: services.ErrValidation, Msg: "Only JPEG and PNG images are allowed"})

	w := httptest.NewRecorder()
	setupUpload(svc, 1024).ServeHTTP(w, multipartRequest(t, "image", []byte("%PDF")))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"Only JPEG and PNG images are allowed"}`, w.Body.String())
}
