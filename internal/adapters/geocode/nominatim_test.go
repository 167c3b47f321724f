package geocode

import (
	"address-distance-service/internal/domain"
	"address-distance-service/internal/platform/httpclient"
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNominatim(url string) *NominatimGeocoder {
	return NewNominatimGeocoder(httpclient.New(httpclient.Options{UserAgent: "distance-test/1.0"}), url)
}

func TestNominatimGeocoderNamedFields(t *testing.T) {
	var gotPath, gotQ, gotFormat, gotLimit, gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQ = r.URL.Query().Get("q")
		gotFormat = r.URL.Query().Get("format")
		gotLimit = r.URL.Query().Get("limit")
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"lat":"43.2965","lon":"5.3698","display_name":"Marseille"}]`))
	}))
	defer srv.Close()

	got, ok := newNominatim(srv.URL+"/").Geocode(context.Background(), "Vieux-Port Marseille")
	require.True(t, ok)
	assert.Equal(t, domain.Coordinates{Lat: 43.2965, Lon: 5.3698}, got)

	assert.Equal(t, "/search", gotPath)
	assert.Equal(t, "Vieux-Port Marseille", gotQ)
	assert.Equal(t, "json", gotFormat)
	assert.Equal(t, "1", gotLimit)
	assert.Equal(t, "distance-test/1.0", gotUA)
}

func TestNominatimGeocoderAbsent(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "empty result list", status: http.StatusOK, body: `[]`},
		{name: "server error", status: http.StatusInternalServerError, body: `oops`},
		{name: "error status with a valid result", status: http.StatusServiceUnavailable, body: `[{"lat":"48.1","lon":"2.1"}]`},
		{name: "usage policy refusal", status: http.StatusForbidden, body: `[{"lat":"48.1","lon":"2.1"}]`},
		{name: "result without coordinates", status: http.StatusOK, body: `[{"display_name":"somewhere"}]`},
		{name: "lat only", status: http.StatusOK, body: `[{"lat":"48.1"}]`},
		{name: "lon only", status: http.StatusOK, body: `[{"lon":"2.1"}]`},
		{name: "unparseable lat", status: http.StatusOK, body: `[{"lat":"north","lon":"2.1"}]`},
		{name: "non finite lon", status: http.StatusOK, body: `[{"lat":"48.1","lon":"NaN"}]`},
		{name: "numeric lat", status: http.StatusOK, body: `[{"lat":48.1,"lon":"2.1"}]`},
		{name: "object instead of list", status: http.StatusOK, body: `{"error":"Unable to geocode"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			got, ok := newNominatim(srv.URL).Geocode(context.Background(), "nowhere")
			assert.False(t, ok)
			assert.Equal(t, domain.Coordinates{}, got)
		})
	}
}

func TestNominatimGeocoderCanceledContext(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`[{"lat":"1","lon":"2"}]`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, ok := newNominatim(srv.URL).Geocode(ctx, "anything")
	assert.False(t, ok)
	assert.EqualValues(t, 0, calls.Load())
}

func TestNominatimGeocoderCancelStopsInFlightLookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, ok := newNominatim(srv.URL).Geocode(ctx, "slow")

	assert.False(t, ok)
	assert.Less(t, time.Since(start), 2*time.Second)
}
