package handler

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"geomate/backend/internal/account"
	"geomate/backend/internal/auth"
	"geomate/backend/internal/hub"
	"geomate/backend/internal/relationship"
	"geomate/backend/internal/store"
	"geomate/backend/internal/store/storetest"
	"geomate/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	clientKey = "client-key"
	adminKey  = "admin-key"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testServer struct {
	router   *gin.Engine
	hub      *hub.Hub
	tokens   *jwt.Issuer
	accounts *account.Service
}

type testEnvelope struct {
	Status  string              `json:"status"`
	Message string              `json:"message"`
	Body    jsoniter.RawMessage `json:"body"`
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	return newTestServerOn(t, storetest.New(t))
}

func newTestServerOn(t *testing.T, s store.Store) *testServer {
	t.Helper()
	srv := &testServer{
		hub:      hub.NewHub(),
		tokens:   jwt.NewIssuer("test-secret", time.Hour),
		accounts: account.NewService(s).WithHashCost(bcrypt.MinCost),
	}
	h := New(srv.accounts, relationship.NewEngine(s), srv.hub, srv.tokens)
	srv.router = NewRouter(h, auth.NewStaticKeys([]string{clientKey}, []string{adminKey}))
	return srv
}

func (s *testServer) signUp(t *testing.T, userName, name string) {
	t.Helper()
	_, err := s.accounts.SignUp(context.Background(), account.SignUpInput{
		UserName: userName,
		Password: "password123",
		Name:     name,
		Age:      30,
		Location: "51.50,-0.12",
	})
	require.NoError(t, err)
}

func (s *testServer) post(t *testing.T, path, key string, form url.Values) (int, testEnvelope) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if key != "" {
		req.Header.Set(auth.APIKeyHeader, key)
	}
	return s.serve(t, req)
}

func (s *testServer) serve(t *testing.T, req *http.Request) (int, testEnvelope) {
	t.Helper()
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var env testEnvelope
	require.NoError(t, jsoniter.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w.Code, env
}

func decodeBody[T any](t *testing.T, env testEnvelope) T {
	t.Helper()
	var out T
	require.NoError(t, jsoniter.Unmarshal(env.Body, &out))
	return out
}

func TestConnectionTest(t *testing.T) {
	srv := newTestServer(t)

	code, env := srv.serve(t, httptest.NewRequest(http.MethodGet, "/connectionTest", nil))
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, StatusSuccess, env.Status)
	assert.Equal(t, "Server is up and ready", env.Message)
}

func TestAPIKeyAccess(t *testing.T) {
	srv := newTestServer(t)
	srv.signUp(t, "alice", "Alice")
	user := url.Values{"userName": {"alice"}}

	tests := []struct {
		name     string
		path     string
		key      string
		wantCode int
	}{
		{"no key", "/getUser", "", http.StatusUnauthorized},
		{"unknown key", "/getUser", "nope", http.StatusUnauthorized},
		{"client key on shared route", "/getUser", clientKey, http.StatusOK},
		{"admin key on shared route", "/getUser", adminKey, http.StatusOK},
		{"admin key on client route", "/getLocation", adminKey, http.StatusUnauthorized},
		{"client key on admin route", "/admin/deleteUser", clientKey, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, env := srv.post(t, tt.path, tt.key, user)
			assert.Equal(t, tt.wantCode, code)
			if tt.wantCode == http.StatusUnauthorized {
				assert.Equal(t, "Invalid API Key", env.Message)
			}
		})
	}
}

func TestAPIKeyInBody(t *testing.T) {
	srv := newTestServer(t)
	srv.signUp(t, "alice", "Alice")

	code, _ := srv.post(t, "/getLocation", "", url.Values{"userName": {"alice"}, "apiKey": {clientKey}})
	assert.Equal(t, http.StatusOK, code)

	req := httptest.NewRequest(http.MethodPost, "/getLocation", strings.NewReader(`{"userName":"alice","apiKey":"client-key"}`))
	req.Header.Set("Content-Type", "application/json")
	code, env := srv.serve(t, req)
	assert.Equal(t, http.StatusOK, code)
	loc := decodeBody[LocationResponse](t, env)
	assert.Equal(t, LocationResponse{Latitude: "51.50", Longitude: "-0.12"}, loc)
}

func TestSignUpAndSignIn(t *testing.T) {
	srv := newTestServer(t)

	signUp := url.Values{
		"userName": {"alice"},
		"password": {"password123"},
		"name":     {"Alice"},
		"age":      {"30"},
		"location": {"51.50,-0.12"},
	}
	code, env := srv.post(t, "/signUpUser", clientKey, signUp)
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "alice", decodeBody[MinimalUserResponse](t, env).UserName)

	code, env = srv.post(t, "/signUpUser", clientKey, signUp)
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "Username already exists", env.Message)

	code, env = srv.post(t, "/signUpUser", clientKey, url.Values{"userName": {"bob"}})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Empty parameters", env.Message)

	badLocation := url.Values{}
	for k, v := range signUp {
		badLocation[k] = v
	}
	badLocation.Set("userName", "bob")
	badLocation.Set("location", "north")
	code, env = srv.post(t, "/signUpUser", clientKey, badLocation)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Invalid parameters", env.Message)

	code, env = srv.post(t, "/signInUser", clientKey, url.Values{"userName": {"alice"}, "password": {"wrong"}})
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "Invalid Username or Password", env.Message)

	code, env = srv.post(t, "/signInUser", clientKey, url.Values{"userName": {"alice"}, "password": {"password123"}})
	require.Equal(t, http.StatusOK, code)
	signIn := decodeBody[SignInResponse](t, env)
	assert.Equal(t, []string{"51.50,-0.12"}, signIn.LocationHistory)
	require.NotEmpty(t, signIn.Token)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+signIn.Token)
	code, env = srv.serve(t, req)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "alice", decodeBody[UserResponse](t, env).UserName)
}

func TestLocationAndMotion(t *testing.T) {
	srv := newTestServer(t)
	srv.signUp(t, "alice", "Alice")

	code, _ := srv.post(t, "/updateLocation", clientKey, url.Values{"userName": {"alice"}, "location": {"48.85,2.35"}})
	require.Equal(t, http.StatusOK, code)

	code, env := srv.post(t, "/updateLocation", clientKey, url.Values{"userName": {"alice"}, "location": {"48.85"}})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Invalid parameters", env.Message)

	code, env = srv.post(t, "/getLocation", clientKey, url.Values{"userName": {"alice"}})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, LocationResponse{Latitude: "48.85", Longitude: "2.35"}, decodeBody[LocationResponse](t, env))

	code, _ = srv.post(t, "/updateMotionStatus", clientKey, url.Values{"userName": {"alice"}, "isInMotion": {"true"}})
	require.Equal(t, http.StatusOK, code)

	code, env = srv.post(t, "/getMovementStatus", clientKey, url.Values{"userName": {"alice"}})
	require.Equal(t, http.StatusOK, code)
	assert.True(t, decodeBody[MotionResponse](t, env).IsInMotion)

	code, env = srv.post(t, "/getUser", clientKey, url.Values{"userName": {"alice"}})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, []string{"51.50,-0.12", "48.85,2.35"}, decodeBody[UserResponse](t, env).LocationHistory)

	code, env = srv.post(t, "/getLocation", clientKey, url.Values{"userName": {"ghost"}})
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "User does not exist", env.Message)
}

func TestFriendRequestLifecycle(t *testing.T) {
	srv := newTestServer(t)
	srv.signUp(t, "alice", "Alice")
	srv.signUp(t, "bob", "Bob")

	send := url.Values{"fromUserName": {"alice"}, "toUserName": {"bob"}, "typeId": {"0"}}
	code, env := srv.post(t, "/sendFriendRequest", clientKey, send)
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "Request sent", env.Message)
	id := decodeBody[RequestIDResponse](t, env).ID
	assert.True(t, strings.HasPrefix(id, relationship.RequestIDPrefix))

	code, _ = srv.post(t, "/sendFriendRequest", clientKey, send)
	assert.Equal(t, http.StatusConflict, code)

	code, env = srv.post(t, "/getFriendRequests", clientKey, url.Values{"userName": {"bob"}})
	require.Equal(t, http.StatusOK, code)
	received := decodeBody[[]RequestResponse](t, env)
	require.Len(t, received, 1)
	assert.Equal(t, RequestResponse{ID: id, UserName: "alice", UserFullName: "Alice", Date: received[0].Date, TypeID: 0}, received[0])

	code, env = srv.post(t, "/acceptFriendRequest", clientKey, url.Values{"id": {id}})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Request accepted", env.Message)

	code, env = srv.post(t, "/acceptFriendRequest", clientKey, url.Values{"id": {id}})
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Request does not exist", env.Message)

	code, env = srv.post(t, "/getUser", clientKey, url.Values{"userName": {"alice"}})
	require.Equal(t, http.StatusOK, code)
	alice := decodeBody[UserResponse](t, env)
	assert.Equal(t, []string{"bob"}, alice.LocationFriends)
	assert.Empty(t, alice.MotionFriends)
	assert.Empty(t, alice.SentRequests)

	code, env = srv.post(t, "/getAllFriends", clientKey, url.Values{"userName": {"bob"}})
	require.Equal(t, http.StatusOK, code)
	friends := decodeBody[[]UserSummary](t, env)
	require.Len(t, friends, 1)
	assert.Equal(t, "alice", friends[0].UserName)

	code, env = srv.post(t, "/removeFriend", clientKey, url.Values{"userName": {"bob"}, "friendUserName": {"alice"}})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Friend removed", env.Message)

	code, env = srv.post(t, "/getAllFriends", clientKey, url.Values{"userName": {"bob"}})
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, decodeBody[[]UserSummary](t, env))
}

func TestCancelAndRejectRequest(t *testing.T) {
	srv := newTestServer(t)
	srv.signUp(t, "alice", "Alice")
	srv.signUp(t, "bob", "Bob")

	for _, tc := range []struct {
		path    string
		message string
	}{
		{"/cancelFriendRequest", "Request cancelled"},
		{"/rejectFriendRequest", "Request rejected"},
	} {
		t.Run(tc.path, func(t *testing.T) {
			code, env := srv.post(t, "/sendFriendRequest", clientKey, url.Values{"fromUserName": {"alice"}, "toUserName": {"bob"}, "typeId": {"1"}})
			require.Equal(t, http.StatusCreated, code)
			id := decodeBody[RequestIDResponse](t, env).ID

			code, env = srv.post(t, tc.path, clientKey, url.Values{"id": {id}})
			require.Equal(t, http.StatusOK, code)
			assert.Equal(t, tc.message, env.Message)

			code, env = srv.post(t, "/getUser", clientKey, url.Values{"userName": {"bob"}})
			require.Equal(t, http.StatusOK, code)
			bob := decodeBody[UserResponse](t, env)
			assert.Empty(t, bob.ReceivedRequests)
			assert.Empty(t, bob.MotionFriends)
		})
	}
}

func TestSendFriendRequestErrors(t *testing.T) {
	srv := newTestServer(t)
	srv.signUp(t, "alice", "Alice")

	tests := []struct {
		name     string
		form     url.Values
		wantCode int
		wantMsg  string
	}{
		{"missing type", url.Values{"fromUserName": {"alice"}, "toUserName": {"bob"}}, http.StatusBadRequest, "Empty parameters"},
		{"unknown type", url.Values{"fromUserName": {"alice"}, "toUserName": {"bob"}, "typeId": {"2"}}, http.StatusBadRequest, "Invalid parameters"},
		{"self", url.Values{"fromUserName": {"alice"}, "toUserName": {"alice"}, "typeId": {"0"}}, http.StatusBadRequest, "Invalid parameters"},
		{"unknown sender", url.Values{"fromUserName": {"ghost"}, "toUserName": {"alice"}, "typeId": {"0"}}, http.StatusNotFound, "User does not exist"},
		{"unknown recipient", url.Values{"fromUserName": {"alice"}, "toUserName": {"ghost"}, "typeId": {"0"}}, http.StatusNotFound, "Friend does not exist"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, env := srv.post(t, "/sendFriendRequest", clientKey, tt.form)
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantMsg, env.Message)
			assert.Equal(t, StatusError, env.Status)
		})
	}
}

func TestGetAllUsersPaginates(t *testing.T) {
	srv := newTestServer(t)
	for _, name := range []string{"carol", "alice", "bob"} {
		srv.signUp(t, name, strings.ToUpper(name))
	}

	code, env := srv.post(t, "/getAllUsers", clientKey, url.Values{"page": {"1"}, "limit": {"2"}})
	require.Equal(t, http.StatusOK, code)
	page := decodeBody[PaginatedResponse[UserSummary]](t, env)
	require.Len(t, page.Data, 2)
	assert.Equal(t, "alice", page.Data[0].UserName)
	assert.Equal(t, "bob", page.Data[1].UserName)
	assert.Equal(t, PaginationMeta{TotalItems: 3, TotalPages: 2, CurrentPage: 1, PageSize: 2}, page.Meta)
}

func TestDeleteUser(t *testing.T) {
	srv := newTestServer(t)
	srv.signUp(t, "alice", "Alice")
	srv.signUp(t, "bob", "Bob")

	code, env := srv.post(t, "/sendFriendRequest", clientKey, url.Values{"fromUserName": {"alice"}, "toUserName": {"bob"}, "typeId": {"0"}})
	require.Equal(t, http.StatusCreated, code)
	id := decodeBody[RequestIDResponse](t, env).ID
	code, _ = srv.post(t, "/acceptFriendRequest", clientKey, url.Values{"id": {id}})
	require.Equal(t, http.StatusOK, code)
	code, _ = srv.post(t, "/sendFriendRequest", clientKey, url.Values{"fromUserName": {"bob"}, "toUserName": {"alice"}, "typeId": {"1"}})
	require.Equal(t, http.StatusCreated, code)

	code, _ = srv.post(t, "/admin/deleteUser", adminKey, url.Values{"userName": {"alice"}})
	require.Equal(t, http.StatusOK, code)

	code, env = srv.post(t, "/getUser", clientKey, url.Values{"userName": {"bob"}})
	require.Equal(t, http.StatusOK, code)
	bob := decodeBody[UserResponse](t, env)
	assert.Empty(t, bob.LocationFriends)
	assert.Empty(t, bob.SentRequests)

	code, env = srv.post(t, "/admin/deleteUser", adminKey, url.Values{"userName": {"alice"}})
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "User does not exist", env.Message)
}

func TestRequestTypes(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/requestTypes?apiKey="+clientKey, nil)
	code, env := srv.serve(t, req)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, []RequestTypeResponse{
		{ID: 0, TypeName: "location"},
		{ID: 1, TypeName: "motion"},
	}, decodeBody[[]RequestTypeResponse](t, env))
}

func TestStreamEvents(t *testing.T) {
	srv := newTestServer(t)
	srv.signUp(t, "alice", "Alice")
	srv.signUp(t, "bob", "Bob")

	server := httptest.NewServer(srv.router)
	defer server.Close()

	token, err := srv.tokens.GenerateToken("bob")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL+"/events", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	require.Eventually(t, func() bool { return srv.hub.Subscribers("bob") == 1 }, time.Second, 10*time.Millisecond)

	code, env := srv.post(t, "/sendFriendRequest", clientKey, url.Values{"fromUserName": {"alice"}, "toUserName": {"bob"}, "typeId": {"0"}})
	require.Equal(t, http.StatusCreated, code)
	id := decodeBody[RequestIDResponse](t, env).ID

	scanner := bufio.NewScanner(resp.Body)
	var data string
	for scanner.Scan() {
		if line := scanner.Text(); strings.HasPrefix(line, "data:") {
			data = strings.TrimSpace(strings.TrimPrefix(line, "data:"))
			break
		}
	}
	require.NotEmpty(t, data)

	var event struct {
		Type    string       `json:"type"`
		Payload RequestEvent `json:"payload"`
	}
	require.NoError(t, jsoniter.UnmarshalFromString(data, &event))
	assert.Equal(t, hub.EventRequestSent, event.Type)
	assert.Equal(t, id, event.Payload.ID)
	assert.Equal(t, "alice", event.Payload.FromUser)

	cancel()
	require.Eventually(t, func() bool { return srv.hub.Subscribers("bob") == 0 }, time.Second, 10*time.Millisecond)
}

func TestStreamEventsRequiresToken(t *testing.T) {
	srv := newTestServer(t)

	code, env := srv.serve(t, httptest.NewRequest(http.MethodGet, "/events", nil))
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "Missing bearer token", env.Message)
}

func TestWriteConflictResponse(t *testing.T) {
	s := storetest.New(t)
	storetest.SeedUsers(t, s, "alice", "bob")
	conflicted := newTestServerOn(t, storetest.WriteConflicts(s))

	code, env := conflicted.post(t, "/sendFriendRequest", clientKey, url.Values{"fromUserName": {"alice"}, "toUserName": {"bob"}, "typeId": {"0"}})
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, StatusError, env.Status)
	assert.Equal(t, "Write conflict, try again", env.Message)

	code, env = conflicted.post(t, "/removeFriend", clientKey, url.Values{"userName": {"alice"}, "friendUserName": {"bob"}})
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "Write conflict, try again", env.Message)

	code, env = conflicted.post(t, "/getFriendRequests", clientKey, url.Values{"userName": {"bob"}})
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, decodeBody[[]RequestResponse](t, env))
}

func TestGetAllUsersClampsPageMeta(t *testing.T) {
	srv := newTestServer(t)
	srv.signUp(t, "alice", "Alice")

	code, env := srv.post(t, "/getAllUsers", clientKey, url.Values{"page": {"0"}, "limit": {"500"}})
	require.Equal(t, http.StatusOK, code)
	page := decodeBody[PaginatedResponse[UserSummary]](t, env)
	assert.Len(t, page.Data, 1)
	assert.Equal(t, PaginationMeta{TotalItems: 1, TotalPages: 1, CurrentPage: 1, PageSize: store.MaxPageSize}, page.Meta)

	code, env = srv.post(t, "/getAllUsers", clientKey, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, store.DefaultPageSize, decodeBody[PaginatedResponse[UserSummary]](t, env).Meta.PageSize)
}
