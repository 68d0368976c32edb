package netx

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMultipartFile_RoundTripsThroughServer(t *testing.T) {
	payload := []byte("\x89PNG fake image")

	var (
		gotName string
		gotCT   string
		gotBody []byte
	)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f, hdr, err := r.FormFile("image")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer f.Close()
		gotName = hdr.Filename
		gotCT = hdr.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(f)
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	body, ct, err := MultipartFile("image", `me "1".png`, "image/png", payload)
	require.NoError(t, err)

	resp, err := http.Post(ts.URL, ct, body)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, `me "1".png`, gotName)
	require.Equal(t, "image/png", gotCT)
	require.Equal(t, payload, gotBody)
}

func TestMultipartFile_DefaultContentType(t *testing.T) {
	body, ct, err := MultipartFile("image", "a.bin", "", []byte{1})
	require.NoError(t, err)
	require.Contains(t, ct, "multipart/form-data; boundary=")
	require.Contains(t, body.String(), "Content-Type: application/octet-stream")
}
