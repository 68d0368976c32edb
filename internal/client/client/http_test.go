package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/interviewprep/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staticToken(tok string) TokenSource {
	return func(context.Context) string { return tok }
}

func TestGetProfile_SendsBearerAndDecodes(t *testing.T) {
	var gotAuth, gotMethod, gotPath string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotMethod, gotPath = r.Method, r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"name":"Ada","email":"ada@x.io"}`)
	}))
	defer ts.Close()

	c := NewHTTPClient(ts.URL+"/", time.Second, staticToken("tok-1"))
	p, err := c.GetProfile(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok-1", gotAuth)
	assert.Equal(t, http.MethodGet, gotMethod)
	assert.Equal(t, "/profile", gotPath)
	assert.Equal(t, models.Profile{Name: "Ada", Email: "ada@x.io"}, p)
}

func TestGetProfile_NoTokenNoHeader(t *testing.T) {
	var hasAuth bool
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasAuth = r.Header["Authorization"]
		_, _ = io.WriteString(w, `{}`)
	}))
	defer ts.Close()

	_, err := NewHTTPClient(ts.URL, time.Second, nil).GetProfile(context.Background())
	require.NoError(t, err)
	assert.False(t, hasAuth)
}

func TestUpdateProfile_SendsBody(t *testing.T) {
	var got models.ProfileUpdate
	var gotCT string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCT = r.Header.Get("Content-Type")
		if r.Method != http.MethodPut {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
		_ = json.NewEncoder(w).Encode(models.Profile{Name: got.Name, Email: got.Email, ProfileImageURL: got.ProfileImageURL})
	}))
	defer ts.Close()

	c := NewHTTPClient(ts.URL, time.Second, staticToken("t"))
	in := models.ProfileUpdate{Name: "Ada L.", Email: "ada@x.io", ProfileImageURL: "https://x/img1.png"}
	p, err := c.UpdateProfile(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, "application/json", gotCT)
	assert.Equal(t, in, got)
	assert.Equal(t, "https://x/img1.png", p.ProfileImageURL)
}

func TestUploadImage_Multipart(t *testing.T) {
	var gotName string
	var gotData []byte

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f, hdr, err := r.FormFile("image")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer f.Close()
		gotName = hdr.Filename
		gotData, _ = io.ReadAll(f)
		_, _ = io.WriteString(w, `{"imageUrl":"https://x/img1.png"}`)
	}))
	defer ts.Close()

	c := NewHTTPClient(ts.URL, time.Second, staticToken("t"))
	url, err := c.UploadImage(context.Background(), models.ImageSelection{FileName: "me.png", ContentType: "image/png", Data: []byte("png")})
	require.NoError(t, err)

	assert.Equal(t, "https://x/img1.png", url)
	assert.Equal(t, "me.png", gotName)
	assert.Equal(t, []byte("png"), gotData)
}

func TestUploadImage_EmptyURLIsError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{}`)
	}))
	defer ts.Close()

	_, err := NewHTTPClient(ts.URL, time.Second, nil).UploadImage(context.Background(), models.ImageSelection{FileName: "a.png"})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantIs  error
		wantMsg string
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, body: `{"message":"missing token"}`, wantIs: ErrUnauthorized, wantMsg: "missing token"},
		{name: "unavailable", status: http.StatusServiceUnavailable, wantIs: ErrUnavailable, wantMsg: "Server is unavailable, try again later"},
		{name: "validation", status: http.StatusBadRequest, body: `{"message":"email: must be a valid email address."}`, wantMsg: "email: must be a valid email address."},
		{name: "plain text body", status: http.StatusInternalServerError, body: "boom", wantMsg: "Something went wrong"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}))
			defer ts.Close()

			_, err := NewHTTPClient(ts.URL, time.Second, nil).GetProfile(context.Background())
			require.Error(t, err)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			require.Equal(t, tt.status, apiErr.StatusCode)
			if tt.wantIs != nil {
				require.ErrorIs(t, err, tt.wantIs)
			}
			require.Equal(t, tt.wantMsg, UserMessage(err))
		})
	}
}

func TestNetworkErrorIsUnavailable(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	err := NewHTTPClient(url, time.Second, nil).Ping(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestCanceledContextIsNotUnavailable(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewHTTPClient(ts.URL, time.Second, nil).Ping(ctx)
	require.Error(t, err)
	require.True(t, errors.Is(err, context.Canceled))
	require.False(t, errors.Is(err, ErrUnavailable))
}

func TestPing_OK(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = io.WriteString(w, "OK")
	}))
	defer ts.Close()

	require.NoError(t, NewHTTPClient(ts.URL, time.Second, nil).Ping(context.Background()))
}
