package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"technitium_sync/internal/httpx"
)

const testToken = "facade-test-token"

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	SetupRouter(r, testToken)
	return r
}

// fakeDNSServer emulates the Technitium management API well enough for
// zone reconciliation: a fixed zone set and a mutation counter.
type fakeDNSServer struct {
	zones     map[string]bool
	mutations int
}

func (f *fakeDNSServer) start(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/zones/options/get", func(w http.ResponseWriter, r *http.Request) {
		zone := r.URL.Query().Get("zone")
		if !f.zones[zone] {
			fmt.Fprintf(w, `{"status":"error","errorMessage":"No such zone was found: %s"}`, zone)
			return
		}
		fmt.Fprintf(w, `{"status":"ok","response":{"name":"%s","type":"Primary","disabled":false}}`, zone)
	})
	mux.HandleFunc("/api/zones/create", func(w http.ResponseWriter, r *http.Request) {
		f.mutations++
		fmt.Fprint(w, `{"status":"ok","response":{}}`)
	})
	mux.HandleFunc("/api/zones/delete", func(w http.ResponseWriter, r *http.Request) {
		f.mutations++
		fmt.Fprint(w, `{"status":"ok","response":{}}`)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func reconcileBody(serverURL, kind, zone, state string, checkMode bool) string {
	return fmt.Sprintf(`{
		"connection": {"url": "%s", "token": "apitoken"},
		"checkMode": %t,
		"resource": {"kind": "%s", "zone": "%s", "state": "%s"}
	}`, serverURL, checkMode, kind, zone, state)
}

func doReconcile(r *gin.Engine, body, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/v1/reconcile", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestPing(t *testing.T) {
	r := setupTestRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/ping", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp httpx.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, httpx.CodeSuccess, resp.Code)
}

func TestReconcile_RequiresToken(t *testing.T) {
	r := setupTestRouter()

	w := doReconcile(r, reconcileBody("http://localhost", "zone", "example.com", "present", false), "")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	var resp httpx.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, httpx.CodeUnauthorized, resp.Code)

	w = doReconcile(r, reconcileBody("http://localhost", "zone", "example.com", "present", false), "wrong")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, httpx.CodeInvalidToken, resp.Code)
}

func TestReconcile_InvalidBody(t *testing.T) {
	r := setupTestRouter()

	w := doReconcile(r, `{"checkMode": true}`, testToken)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp httpx.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, httpx.CodeParamMissing, resp.Code)
}

func TestReconcile_UnknownKind(t *testing.T) {
	r := setupTestRouter()

	w := doReconcile(r, reconcileBody("http://localhost", "widget", "example.com", "present", false), testToken)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp httpx.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, httpx.CodeParamInvalid, resp.Code)
	assert.Contains(t, resp.Message, "unknown resource kind")
}

func TestReconcile_CreatesMissingZone(t *testing.T) {
	fake := &fakeDNSServer{zones: map[string]bool{}}
	srv := fake.start(t)
	r := setupTestRouter()

	w := doReconcile(r, reconcileBody(srv.URL, "zone", "example.com", "present", false), testToken)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Code int `json:"code"`
		Data struct {
			Changed bool   `json:"changed"`
			Failed  bool   `json:"failed"`
			Msg     string `json:"msg"`
			Action  string `json:"action"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, httpx.CodeSuccess, resp.Code)
	assert.True(t, resp.Data.Changed)
	assert.False(t, resp.Data.Failed)
	assert.Equal(t, "create", resp.Data.Action)
	assert.Equal(t, 1, fake.mutations)
}

func TestReconcile_CheckModeDoesNotMutate(t *testing.T) {
	fake := &fakeDNSServer{zones: map[string]bool{"stale.example.com": true}}
	srv := fake.start(t)
	r := setupTestRouter()

	w := doReconcile(r, reconcileBody(srv.URL, "zone", "stale.example.com", "absent", true), testToken)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Changed   bool   `json:"changed"`
			CheckMode bool   `json:"checkMode"`
			Msg       string `json:"msg"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Data.Changed)
	assert.True(t, resp.Data.CheckMode)
	assert.Contains(t, resp.Data.Msg, "would be deleted")
	assert.Equal(t, 0, fake.mutations)
}

func TestReconcile_NoOpOnAbsentAbsent(t *testing.T) {
	fake := &fakeDNSServer{zones: map[string]bool{}}
	srv := fake.start(t)
	r := setupTestRouter()

	w := doReconcile(r, reconcileBody(srv.URL, "zone", "example.com", "absent", false), testToken)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Changed bool   `json:"changed"`
			Msg     string `json:"msg"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Data.Changed)
	assert.Equal(t, "Zone 'example.com' does not exist.", resp.Data.Msg)
	assert.Equal(t, 0, fake.mutations)
}

func TestReconcile_FailureFoldedIntoOutcome(t *testing.T) {
	// Unreachable server: the reconcile fails but the wrapper stays 200
	// and the outcome carries failed=true.
	r := setupTestRouter()

	w := doReconcile(r, reconcileBody("http://127.0.0.1:1", "zone", "example.com", "present", false), testToken)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Failed bool   `json:"failed"`
			Msg    string `json:"msg"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Data.Failed)
	assert.NotEmpty(t, resp.Data.Msg)
}
