package pets_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"pet-digital-twin/internal/adapters/storage/memory"
	"pet-digital-twin/internal/domain/pets"
	"pet-digital-twin/internal/ports/session"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registry(t *testing.T) pets.Registry {
	t.Helper()
	repo, err := memory.NewPetRepo([]pets.Pet{
		{ID: "roger", Profile: pets.Profile{Name: "Roger", CurrentWeight: 3.8, TargetWeight: 3.5}},
		{ID: "holly", Profile: pets.Profile{Name: "Holly"}},
	})
	require.NoError(t, err)
	return repo
}

type failingSessions struct {
	getErr error
	setErr error
}

func (f failingSessions) Get(context.Context, string) (string, bool, error) {
	return "", false, f.getErr
}
func (f failingSessions) Set(context.Context, string, string) error { return f.setErr }

// blockingSessions frena el primer Set hasta que el test cierre release.
type blockingSessions struct {
	entered chan struct{}
	release chan struct{}
	once    sync.Once

	mu    sync.Mutex
	value string
}

func newBlockingSessions() *blockingSessions {
	return &blockingSessions{entered: make(chan struct{}), release: make(chan struct{})}
}

func (b *blockingSessions) Get(context.Context, string) (string, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.value, b.value != "", nil
}

func (b *blockingSessions) Set(_ context.Context, _ string, v string) error {
	first := false
	b.once.Do(func() { first = true })
	if first {
		close(b.entered)
		<-b.release
	}
	b.mu.Lock()
	b.value = v
	b.mu.Unlock()
	return nil
}

// vanishingRegistry deja de resolver un id cuando se activa gone.
type vanishingRegistry struct {
	pets.Registry
	id   string
	gone atomic.Bool
}

func (v *vanishingRegistry) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	if v.gone.Load() && id == v.id {
		return pets.Pet{}, pets.ErrNotFound
	}
	return v.Registry.GetByID(ctx, id)
}

func TestNewServiceDefaultsToFirstEntry(t *testing.T) {
	svc, err := pets.NewService(context.Background(), registry(t), memory.NewSessionStore())
	require.NoError(t, err)

	assert.Equal(t, "roger", svc.ActiveID())
}

func TestNewServiceResumesPersistedSelection(t *testing.T) {
	ctx := context.Background()
	sessions := memory.NewSessionStore()
	require.NoError(t, sessions.Set(ctx, session.ActivePetKey, "holly"))

	svc, err := pets.NewService(ctx, registry(t), sessions)
	require.NoError(t, err)

	p, err := svc.GetActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Holly", p.Profile.Name)
}

func TestNewServiceIgnoresStalePersistedID(t *testing.T) {
	ctx := context.Background()
	sessions := memory.NewSessionStore()
	require.NoError(t, sessions.Set(ctx, session.ActivePetKey, "ghost"))

	svc, err := pets.NewService(ctx, registry(t), sessions)
	require.NoError(t, err)
	assert.Equal(t, "roger", svc.ActiveID())
}

func TestNewServiceSessionReadErrorKeepsDefault(t *testing.T) {
	svc, err := pets.NewService(context.Background(), registry(t), failingSessions{getErr: errors.New("disk")})
	require.NoError(t, err)
	assert.Equal(t, "roger", svc.ActiveID())
}

func TestNewServiceEmptyRegistry(t *testing.T) {
	repo, err := memory.NewPetRepo(nil)
	require.NoError(t, err)

	_, err = pets.NewService(context.Background(), repo, nil)
	assert.ErrorIs(t, err, pets.ErrEmptyRegistry)
}

func TestSwitchActivePersists(t *testing.T) {
	ctx := context.Background()
	sessions := memory.NewSessionStore()
	svc, err := pets.NewService(ctx, registry(t), sessions)
	require.NoError(t, err)

	require.NoError(t, svc.SwitchActive(ctx, "holly"))

	assert.Equal(t, "holly", svc.ActiveID())
	v, ok, err := sessions.Get(ctx, session.ActivePetKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "holly", v)
}

func TestSwitchActiveUnknownIsNoop(t *testing.T) {
	ctx := context.Background()
	sessions := memory.NewSessionStore()
	svc, err := pets.NewService(ctx, registry(t), sessions)
	require.NoError(t, err)
	require.NoError(t, svc.SwitchActive(ctx, "holly"))

	assert.NoError(t, svc.SwitchActive(ctx, "ghost"))

	assert.Equal(t, "holly", svc.ActiveID())
	v, _, _ := sessions.Get(ctx, session.ActivePetKey)
	assert.Equal(t, "holly", v)
}

func TestSwitchActivePersistFailureKeepsSwitch(t *testing.T) {
	ctx := context.Background()
	svc, err := pets.NewService(ctx, registry(t), failingSessions{setErr: errors.New("quota")})
	require.NoError(t, err)

	err = svc.SwitchActive(ctx, "holly")

	assert.ErrorIs(t, err, pets.ErrSessionPersist)
	assert.Equal(t, "holly", svc.ActiveID())
}

func TestListAllKeepsRegistryOrder(t *testing.T) {
	svc, err := pets.NewService(context.Background(), registry(t), nil)
	require.NoError(t, err)

	all, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "roger", all[0].ID)
	assert.Equal(t, "holly", all[1].ID)
}

func TestGetByIDUnknown(t *testing.T) {
	svc, err := pets.NewService(context.Background(), registry(t), nil)
	require.NoError(t, err)

	_, err = svc.GetByID(context.Background(), "ghost")
	assert.ErrorIs(t, err, pets.ErrNotFound)
}

func TestReadsReturnCopies(t *testing.T) {
	ctx := context.Background()
	repo, err := memory.NewPetRepo([]pets.Pet{{
		ID:             "roger",
		MedicalHistory: []pets.MedicalRecord{{Type: "Exam"}},
		Genomics:       pets.Genomics{Breed: pets.BreedProfile{Traits: []string{"Aquatic"}}},
	}})
	require.NoError(t, err)
	svc, err := pets.NewService(ctx, repo, nil)
	require.NoError(t, err)

	p, err := svc.GetActive(ctx)
	require.NoError(t, err)
	p.MedicalHistory[0].Type = "mutated"
	p.Genomics.Breed.Traits[0] = "mutated"

	again, err := svc.GetActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Exam", again.MedicalHistory[0].Type)
	assert.Equal(t, "Aquatic", again.Genomics.Breed.Traits[0])
}

func TestConcurrentSwitchesKeepMemoryAndSessionInSync(t *testing.T) {
	ctx := context.Background()
	sessions := newBlockingSessions()
	svc, err := pets.NewService(ctx, registry(t), sessions)
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		assert.NoError(t, svc.SwitchActive(ctx, "holly"))
	}()
	<-sessions.entered

	go func() {
		defer wg.Done()
		assert.NoError(t, svc.SwitchActive(ctx, "roger"))
	}()
	time.Sleep(50 * time.Millisecond)
	close(sessions.release)
	wg.Wait()

	persisted, ok, err := sessions.Get(ctx, session.ActivePetKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "roger", persisted)
	assert.Equal(t, persisted, svc.ActiveID())
}

func TestActiveSnapshotGenerationGrowsOnEverySwitch(t *testing.T) {
	ctx := context.Background()
	svc, err := pets.NewService(ctx, registry(t), nil)
	require.NoError(t, err)

	_, g0, err := svc.ActiveSnapshot(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.SwitchActive(ctx, "holly"))
	require.NoError(t, svc.SwitchActive(ctx, "roger"))
	require.NoError(t, svc.SwitchActive(ctx, "ghost"))

	p, g, err := svc.ActiveSnapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, "roger", p.ID)
	assert.Equal(t, g0+2, g)
}

func TestGetActiveNotFoundWhenRegistryLosesActive(t *testing.T) {
	ctx := context.Background()
	reg := &vanishingRegistry{Registry: registry(t), id: "roger"}
	svc, err := pets.NewService(ctx, reg, nil)
	require.NoError(t, err)

	reg.gone.Store(true)

	_, err = svc.GetActive(ctx)
	assert.True(t, errors.Is(err, pets.ErrNotFound), "got %v", err)

	r := chi.NewRouter()
	pets.RegisterRoutes(r, svc)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/pets/active", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
