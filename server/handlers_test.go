package server

import (
	"encoding/json"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/JoseTorresAguirre/back-game/config"
	"github.com/JoseTorresAguirre/back-game/model"
	"github.com/JoseTorresAguirre/back-game/repository"
	"github.com/JoseTorresAguirre/back-game/session"
)

// --- fakes ---

type fakeUserRepo struct {
	nextID  int64
	byEmail map[string]*model.User
	byID    map[int64]*model.User

	createErr error
	getErr    error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: make(map[string]*model.User),
		byID:    make(map[int64]*model.User),
	}
}

func (f *fakeUserRepo) CreateUser(user *model.User) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	if _, exists := f.byEmail[user.Email]; exists {
		return 0, repository.ErrDuplicateUser
	}
	f.nextID++
	u := *user
	u.ID = f.nextID
	f.byEmail[u.Email] = &u
	f.byID[u.ID] = &u
	return u.ID, nil
}

func (f *fakeUserRepo) GetUserByID(id int64) (*model.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.byID[id], nil
}

func (f *fakeUserRepo) GetUserByEmail(email string) (*model.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.byEmail[email], nil
}

type fakeNickRepo struct {
	users  *fakeUserRepo
	nextID int64
	nicks  map[int64][]model.Nick

	createErr error
	getErr    error
}

func newFakeNickRepo(users *fakeUserRepo) *fakeNickRepo {
	return &fakeNickRepo{users: users, nicks: make(map[int64][]model.Nick)}
}

func (f *fakeNickRepo) CreateNick(userID int64, nick string) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	if _, exists := f.users.byID[userID]; !exists {
		return 0, repository.ErrUserNotFound
	}
	f.nextID++
	f.nicks[userID] = append(f.nicks[userID], model.Nick{ID: f.nextID, UserID: userID, Nick: nick})
	return f.nextID, nil
}

func (f *fakeNickRepo) GetNickByUserID(userID int64) (*model.Nick, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	rows := f.nicks[userID]
	if len(rows) == 0 {
		return nil, nil
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ID < rows[j].ID })
	first := rows[0]
	return &first, nil
}

// --- helpers ---

type testEnv struct {
	handler  *APIHandler
	users    *fakeUserRepo
	nicks    *fakeNickRepo
	sessions *session.MemoryStore
	cfg      *config.Config
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	users := newFakeUserRepo()
	nicks := newFakeNickRepo(users)
	sessions := session.NewMemoryStore()
	cfg := &config.Config{AllowedOrigin: "http://localhost:5173"}
	return &testEnv{
		handler:  NewAPIHandler(users, nicks, sessions, cfg),
		users:    users,
		nicks:    nicks,
		sessions: sessions,
		cfg:      cfg,
	}
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response body %q: %v", rr.Body.String(), err)
	}
	return body
}
