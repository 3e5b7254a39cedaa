package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/avolkodav/fitlog/internal/models"
	"github.com/avolkodav/fitlog/internal/services"
)

func TestCreateUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name         string
		body         string
		contentType  string
		mockSetup    func(m *MockUserCreator)
		expectedCode int
		expectedBody map[string]string
	}{
		{
			name:        "success with json body",
			body:        `{"username":"alice"}`,
			contentType: "application/json",
			mockSetup: func(m *MockUserCreator) {
				m.EXPECT().
					Create(gomock.Any(), "alice").
					Return(&models.UserDB{UserID: userID, Username: "alice"}, nil)
			},
			expectedCode: 200,
			expectedBody: map[string]string{"id": userID.String(), "username": "alice"},
		},
		{
			name:        "success with form body",
			body:        url.Values{"username": {"bob"}}.Encode(),
			contentType: "application/x-www-form-urlencoded",
			mockSetup: func(m *MockUserCreator) {
				m.EXPECT().
					Create(gomock.Any(), "bob").
					Return(&models.UserDB{UserID: userID, Username: "bob"}, nil)
			},
			expectedCode: 200,
			expectedBody: map[string]string{"id": userID.String(), "username": "bob"},
		},
		{
			name:         "missing username",
			body:         `{}`,
			contentType:  "application/json",
			expectedCode: 400,
			expectedBody: map[string]string{"error": "username is required"},
		},
		{
			name:        "duplicate username",
			body:        `{"username":"alice"}`,
			contentType: "application/json",
			mockSetup: func(m *MockUserCreator) {
				m.EXPECT().
					Create(gomock.Any(), "alice").
					Return(nil, services.ErrUsernameTaken)
			},
			expectedCode: 400,
			expectedBody: map[string]string{"error": "Username already taken"},
		},
		{
			name:        "store failure",
			body:        `{"username":"carol"}`,
			contentType: "application/json",
			mockSetup: func(m *MockUserCreator) {
				m.EXPECT().
					Create(gomock.Any(), "carol").
					Return(nil, errors.New("connection refused"))
			},
			expectedCode: 400,
			expectedBody: map[string]string{"error": "Unable to create user"},
		},
		{
			name:         "invalid json",
			body:         `{invalid`,
			contentType:  "application/json",
			expectedCode: 400,
			expectedBody: map[string]string{"error": "Invalid request body"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockUserCreator(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewCreateUserHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", tt.contentType)

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.True(t, strings.HasPrefix(rr.Header().Get("Content-Type"), "application/json"))

			var resp map[string]string
			err := json.Unmarshal(rr.Body.Bytes(), &resp)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, resp)
		})
	}
}
