package formapi_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldcheck/pkg/formapi"
	"github.com/dmitrymomot/fieldcheck/pkg/logger"
	"github.com/dmitrymomot/fieldcheck/pkg/requestid"
	"github.com/dmitrymomot/fieldcheck/pkg/validator"
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newTestHandler(t *testing.T, opts ...formapi.Option) http.Handler {
	t.Helper()
	forms := map[string]*validator.Validator{
		"signup": validator.New(validator.RuleMap{
			"zip":   {validator.Rule("isNumeric"), validator.Rule("checkLength", 5, 5)},
			"phone": {validator.Rule("required", true), validator.Rule("isPhone")},
		}),
		"contact": validator.New(validator.RuleMap{
			"email":   {validator.Rule("required"), validator.Rule("isEmail")},
			"message": {validator.Rule("required"), validator.Rule("atLeast", 10)},
		}, validator.WithAbsentFields()),
		"broken": validator.New(validator.RuleMap{
			"zip": {validator.Rule("fooBar")},
		}),
	}
	return formapi.New(forms, opts...).Handler()
}

func do(t *testing.T, h http.Handler, req *http.Request) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func decodeResult(t *testing.T, env envelope) formapi.Result {
	t.Helper()
	var res formapi.Result
	require.NoError(t, json.Unmarshal(env.Data, &res))
	return res
}

func TestAPI_Health(t *testing.T) {
	t.Parallel()

	rec, _ := do(t, newTestHandler(t), httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ALIVE", rec.Body.String())
}

func TestAPI_ListForms(t *testing.T) {
	t.Parallel()

	rec, env := do(t, newTestHandler(t), httptest.NewRequest(http.MethodGet, "/forms", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var names []string
	require.NoError(t, json.Unmarshal(env.Data, &names))
	assert.Equal(t, []string{"broken", "contact", "signup"}, names)
}

func TestAPI_Validate_JSON(t *testing.T) {
	t.Parallel()
	h := newTestHandler(t)

	t.Run("valid body", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/forms/signup/validate",
			strings.NewReader(`{"zip": 98103, "phone": "(206) 555-1234", "city": "Seattle"}`))
		req.Header.Set("Content-Type", "application/json")

		rec, env := do(t, h, req)
		require.Equal(t, http.StatusOK, rec.Code)

		res := decodeResult(t, env)
		assert.True(t, res.Valid)
		assert.Equal(t, validator.Errors{"zip": {}, "phone": {}, "city": {}}, res.Errors)
	})

	t.Run("invalid body", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/forms/signup/validate",
			strings.NewReader(`{"zip": "abc", "phone": "xyz"}`))

		rec, env := do(t, h, req)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		res := decodeResult(t, env)
		assert.False(t, res.Valid)
		assert.Equal(t, []string{"Can only contain numbers.", "At least 5 characters."}, res.Errors["zip"])
		assert.Equal(t, []string{"Enter a valid phone number."}, res.Errors["phone"])
	})

	t.Run("empty body", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/forms/signup/validate", nil)

		rec, env := do(t, h, req)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, decodeResult(t, env).Errors)
	})

	t.Run("malformed bodies", func(t *testing.T) {
		t.Parallel()
		for _, body := range []string{
			`{"zip":`,
			`["zip"]`,
			`{"zip": {"code": 98103}}`,
			`{"zip": [98103]}`,
			`{"zip": "98103"} {"zip": "1"}`,
		} {
			req := httptest.NewRequest(http.MethodPost, "/forms/signup/validate", strings.NewReader(body))
			rec, env := do(t, h, req)
			assert.Equal(t, http.StatusBadRequest, rec.Code, body)
			require.NotNil(t, env.Error, body)
			assert.Equal(t, "invalid_body", env.Error.Code)
		}
	})

	t.Run("unsupported content type", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/forms/signup/validate", strings.NewReader("zip=1"))
		req.Header.Set("Content-Type", "text/plain")

		rec, env := do(t, h, req)
		assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "unsupported_media_type", env.Error.Code)
	})
}

func TestAPI_Validate_Form(t *testing.T) {
	t.Parallel()
	h := newTestHandler(t)

	t.Run("url-encoded", func(t *testing.T) {
		t.Parallel()
		form := url.Values{"zip": {"98103", "ignored"}, "phone": {"206-555-1234"}}
		req := httptest.NewRequest(http.MethodPost, "/forms/signup/validate", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		rec, env := do(t, h, req)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, decodeResult(t, env).Valid)
	})

	t.Run("multipart", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		require.NoError(t, mw.WriteField("zip", "1234"))
		require.NoError(t, mw.WriteField("phone", ""))
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, "/forms/signup/validate", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())

		rec, env := do(t, h, req)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		res := decodeResult(t, env)
		assert.Equal(t, []string{"At least 5 characters."}, res.Errors["zip"])
		assert.Equal(t, []string{"This field is required.", "Enter a valid phone number."}, res.Errors["phone"])
	})
}

func TestAPI_Validate_OmittedRequiredFields(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/forms/contact/validate", strings.NewReader(`{}`))
	rec, env := do(t, newTestHandler(t), req)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	res := decodeResult(t, env)
	assert.False(t, res.Valid)
	assert.Equal(t, []string{"This field is required.", "Enter a valid email address."}, res.Errors["email"])
	assert.Equal(t, []string{"This field is required.", "At least 10 characters."}, res.Errors["message"])
}

func TestAPI_Validate_UnknownForm(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/forms/missing/validate", strings.NewReader(`{}`))
	rec, env := do(t, newTestHandler(t), req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "form_not_found", env.Error.Code)
}

func TestAPI_Validate_MisconfiguredForm(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	log := logger.New(
		logger.WithOutput(&logs),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
	h := newTestHandler(t, formapi.WithLogger(log))

	const requestID = "6f1c1b3e-0a57-4a0e-8d3c-3f0d9c1f2a7b"
	req := httptest.NewRequest(http.MethodPost, "/forms/broken/validate", strings.NewReader(`{"zip": "1"}`))
	req.Header.Set(requestid.Header, requestID)

	rec, env := do(t, h, req)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "misconfigured_form", env.Error.Code)
	assert.NotContains(t, env.Error.Message, "fooBar")

	out := logs.String()
	assert.Contains(t, out, `"msg":"form validation failed"`)
	assert.Contains(t, out, `"form":"broken"`)
	assert.Contains(t, out, "fooBar")
	assert.Contains(t, out, requestID)
}

func TestAPI_BodyLimit(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, formapi.WithMaxBodySize(16))
	req := httptest.NewRequest(http.MethodPost, "/forms/signup/validate",
		strings.NewReader(`{"zip": "98103", "phone": "(206) 555-1234"}`))

	rec, _ := do(t, h, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
