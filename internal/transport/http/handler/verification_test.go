package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nownpp/wonder-science-hub/internal/domain"
)

// --- mock ---

type mockVerificationSvc struct{ mock.Mock }

func (m *mockVerificationSvc) RequestCode(ctx context.Context, req domain.RequestCodeInput) error {
	return m.Called(ctx, req).Error(0)
}

func (m *mockVerificationSvc) RedeemCode(ctx context.Context, req domain.RedeemCodeInput) (domain.RedeemResult, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.RedeemResult), args.Error(1)
}

func postJSON(t *testing.T, target string, body interface{}) *http.Request {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	return httptest.NewRequest(http.MethodPost, target, bytes.NewReader(raw))
}

// --- SendCode ---

func TestSendCode_HappyPath(t *testing.T) {
	svc := &mockVerificationSvc{}
	svc.On("RequestCode", mock.Anything, mock.MatchedBy(func(req domain.RequestCodeInput) bool {
		return req.Email == "kid@example.com" && req.FullName == "Sam"
	})).Return(nil)
	h := NewVerificationHandler(svc)

	r := postJSON(t, "/v1/functions/send-verification-code", map[string]string{
		"email": "kid@example.com", "fullName": "Sam",
	})
	rr := httptest.NewRecorder()
	h.SendCode(rr, r)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp SendCodeEnvelope
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.True(t, resp.Success)
	svc.AssertExpectations(t)
}

func TestSendCode_InvalidBody(t *testing.T) {
	h := NewVerificationHandler(&mockVerificationSvc{})
	r := httptest.NewRequest(http.MethodPost, "/v1/functions/send-verification-code", bytes.NewBufferString("not-json"))
	rr := httptest.NewRecorder()
	h.SendCode(rr, r)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSendCode_InvalidEmail(t *testing.T) {
	svc := &mockVerificationSvc{}
	h := NewVerificationHandler(svc)

	r := postJSON(t, "/v1/functions/send-verification-code", map[string]string{"email": "not-an-email"})
	rr := httptest.NewRecorder()
	h.SendCode(rr, r)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	svc.AssertNotCalled(t, "RequestCode", mock.Anything, mock.Anything)
}

func TestSendCode_Throttled(t *testing.T) {
	svc := &mockVerificationSvc{}
	svc.On("RequestCode", mock.Anything, mock.Anything).Return(domain.ErrTooManyRequests)
	h := NewVerificationHandler(svc)

	r := postJSON(t, "/v1/functions/send-verification-code", map[string]string{"email": "kid@example.com"})
	rr := httptest.NewRecorder()
	h.SendCode(rr, r)

	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
}

func TestSendCode_DeliveryFailure(t *testing.T) {
	svc := &mockVerificationSvc{}
	svc.On("RequestCode", mock.Anything, mock.Anything).Return(domain.ErrDeliveryFailed)
	h := NewVerificationHandler(svc)

	r := postJSON(t, "/v1/functions/send-verification-code", map[string]string{"email": "kid@example.com"})
	rr := httptest.NewRecorder()
	h.SendCode(rr, r)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	var resp SendCodeEnvelope
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.Error)
}

// --- VerifyCode ---

func TestVerifyCode_Valid(t *testing.T) {
	svc := &mockVerificationSvc{}
	svc.On("RedeemCode", mock.Anything, domain.RedeemCodeInput{Email: "kid@example.com", Code: "123456"}).
		Return(domain.RedeemResult{Valid: true}, nil)
	h := NewVerificationHandler(svc)

	r := postJSON(t, "/v1/functions/verify-code", map[string]string{"email": "kid@example.com", "code": "123456"})
	rr := httptest.NewRecorder()
	h.VerifyCode(rr, r)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp VerifyEnvelope
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.True(t, resp.Valid)
	svc.AssertExpectations(t)
}

// Wrong, expired and used codes are 200 responses with valid=false. The web
// client branches on the valid flag, not the status code.
func TestVerifyCode_InvalidOutcomesAre200(t *testing.T) {
	for _, reason := range []string{domain.ReasonIncorrect, domain.ReasonExpired, domain.ReasonAlreadyUsed} {
		t.Run(reason, func(t *testing.T) {
			svc := &mockVerificationSvc{}
			svc.On("RedeemCode", mock.Anything, mock.Anything).
				Return(domain.RedeemResult{Valid: false, Reason: reason}, nil)
			h := NewVerificationHandler(svc)

			r := postJSON(t, "/v1/functions/verify-code", map[string]string{"email": "kid@example.com", "code": "000000"})
			rr := httptest.NewRecorder()
			h.VerifyCode(rr, r)

			assert.Equal(t, http.StatusOK, rr.Code)
			var resp VerifyEnvelope
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.False(t, resp.Valid)
			assert.Equal(t, reason, resp.Error)
		})
	}
}

func TestVerifyCode_MissingFields(t *testing.T) {
	svc := &mockVerificationSvc{}
	svc.On("RedeemCode", mock.Anything, mock.Anything).
		Return(domain.RedeemResult{}, domain.ErrBadRequest)
	h := NewVerificationHandler(svc)

	r := postJSON(t, "/v1/functions/verify-code", map[string]string{"email": "kid@example.com"})
	rr := httptest.NewRecorder()
	h.VerifyCode(rr, r)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestVerifyCode_BackendFailure(t *testing.T) {
	svc := &mockVerificationSvc{}
	svc.On("RedeemCode", mock.Anything, mock.Anything).
		Return(domain.RedeemResult{}, errors.New("dynamo down"))
	h := NewVerificationHandler(svc)

	r := postJSON(t, "/v1/functions/verify-code", map[string]string{"email": "kid@example.com", "code": "123456"})
	rr := httptest.NewRecorder()
	h.VerifyCode(rr, r)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestVerifyCode_InvalidBody(t *testing.T) {
	h := NewVerificationHandler(&mockVerificationSvc{})
	r := httptest.NewRequest(http.MethodPost, "/v1/functions/verify-code", bytes.NewBufferString("not-json"))
	rr := httptest.NewRecorder()
	h.VerifyCode(rr, r)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
