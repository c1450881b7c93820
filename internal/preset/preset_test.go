package preset

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"AeroLab/internal/auth"
	"AeroLab/internal/repo"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRepo struct {
	nextID  int
	presets map[int]repo.Preset // keyed by preset id, single user in tests
}

func newMemRepo() *memRepo {
	return &memRepo{nextID: 1, presets: map[int]repo.Preset{}}
}

func (m *memRepo) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	return 1, nil
}

func (m *memRepo) GetByLogin(ctx context.Context, login string) (int, string, error) {
	return 0, "", nil
}

func (m *memRepo) SavePreset(ctx context.Context, userID int, name string, inputs json.RawMessage) (int, error) {
	id := m.nextID
	m.nextID++
	m.presets[id] = repo.Preset{ID: id, Name: name, Inputs: inputs}
	return id, nil
}

func (m *memRepo) ListPresets(ctx context.Context, userID int) ([]repo.Preset, error) {
	var out []repo.Preset
	for _, p := range m.presets {
		out = append(out, p)
	}
	return out, nil
}

func (m *memRepo) GetPreset(ctx context.Context, userID, presetID int) (repo.Preset, error) {
	p, ok := m.presets[presetID]
	if !ok {
		return repo.Preset{}, fmt.Errorf("not found")
	}
	return p, nil
}

func (m *memRepo) DeletePreset(ctx context.Context, userID, presetID int) error {
	delete(m.presets, presetID)
	return nil
}

func authed(r *http.Request) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), auth.UserIDKey, 7))
}

func TestSaveAndGetPreset(t *testing.T) {
	h := &Handler{Repo: newMemRepo()}

	body, err := json.Marshal(SaveRequest{
		Name:   "survey quad",
		Inputs: json.RawMessage(`{"num_rotors":4,"payload_kg":1.0}`),
	})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.Save(rec, authed(httptest.NewRequest("POST", "/api/user/presets", bytes.NewReader(body))))
	require.Equal(t, http.StatusCreated, rec.Code)

	var created map[string]int
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))

	r := mux.NewRouter()
	r.HandleFunc("/api/user/presets/{id:[0-9]+}", h.Get).Methods("GET")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, authed(httptest.NewRequest("GET", fmt.Sprintf("/api/user/presets/%d", created["id"]), nil)))
	require.Equal(t, http.StatusOK, rec.Code)

	var p repo.Preset
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&p))
	assert.Equal(t, "survey quad", p.Name)
}

func TestSaveRejectsInvalidJSONInputs(t *testing.T) {
	h := &Handler{Repo: newMemRepo()}
	body := []byte(`{"name":"x","inputs":{}}`)
	rec := httptest.NewRecorder()
	h.Save(rec, authed(httptest.NewRequest("POST", "/api/user/presets", bytes.NewReader(body))))
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	h.Save(rec, authed(httptest.NewRequest("POST", "/api/user/presets", bytes.NewReader([]byte(`{"name":""}`)))))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUnauthenticatedRejected(t *testing.T) {
	h := &Handler{Repo: newMemRepo()}
	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest("GET", "/api/user/presets", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestDeletePreset(t *testing.T) {
	m := newMemRepo()
	h := &Handler{Repo: m}
	_, err := m.SavePreset(context.Background(), 7, "gone", json.RawMessage(`{}`))
	require.NoError(t, err)

	r := mux.NewRouter()
	r.HandleFunc("/api/user/presets/{id:[0-9]+}", h.Delete).Methods("DELETE")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, authed(httptest.NewRequest("DELETE", "/api/user/presets/1", nil)))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, m.presets)
}
