package store

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Harsha51888/attendance-tracker/internal/model"
)

// memBackend is an in-memory Backend for tests.
type memBackend struct {
	value string
	found bool
}

func (b *memBackend) Get(ctx context.Context) (string, bool, error) {
	return b.value, b.found, nil
}

func (b *memBackend) Set(ctx context.Context, value string) error {
	b.value = value
	b.found = true
	return nil
}

func newTestStore() (*SubjectStore, *memBackend) {
	backend := &memBackend{}
	return NewSubjectStore(backend, zerolog.Nop()), backend
}

func sampleSubjects() []model.Subject {
	return []model.Subject{
		{Name: "Mathematics", Credits: 4, Attended: 30, Total: 40},
		{Name: "Physics", Credits: 3, Attended: 20, Total: 40},
		{Name: "Chemistry", Credits: 3, Attended: 0, Total: 0},
	}
}

func TestLoadAbsentBackend(t *testing.T) {
	s, _ := newTestStore()

	subjects, err := s.Load(context.Background())
	require.NoError(t, err, "an empty backend is not an error")
	assert.Empty(t, subjects)
	assert.NotNil(t, subjects)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s, _ := newTestStore()
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, sampleSubjects()))

	loaded, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, sampleSubjects(), loaded, "order, length and values must survive the round trip")
}

func TestAppend(t *testing.T) {
	s, _ := newTestStore()
	ctx := context.Background()

	sub := model.Subject{Name: "Biology", Credits: 2, Attended: 5, Total: 8}
	require.NoError(t, s.Append(ctx, sub))

	loaded, err := s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, sub, loaded[0])
}

func TestAppendRejectsInvalidSubjects(t *testing.T) {
	tests := []struct {
		name    string
		subject model.Subject
		wantErr error
	}{
		{"empty name", model.Subject{Name: "", Credits: 1}, model.ErrEmptyName},
		{"zero credits", model.Subject{Name: "Math", Credits: 0}, model.ErrNonPositiveCredits},
		{"negative attended", model.Subject{Name: "Math", Credits: 1, Attended: -1}, model.ErrNegativeCount},
		{"negative total", model.Subject{Name: "Math", Credits: 1, Total: -2}, model.ErrNegativeCount},
		{"attended over total", model.Subject{Name: "Math", Credits: 1, Attended: 5, Total: 3}, model.ErrAttendedOverTotal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, backend := newTestStore()

			err := s.Append(context.Background(), tt.subject)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.False(t, backend.found, "a rejected append must not touch the backend")
		})
	}
}

func TestUpdateByPositionAttended(t *testing.T) {
	s, _ := newTestStore()
	ctx := context.Background()
	require.NoError(t, s.Save(ctx, sampleSubjects()))

	require.NoError(t, s.UpdateByPosition(ctx, 1, true))

	loaded, err := s.Load(ctx)
	require.NoError(t, err)

	want := sampleSubjects()
	want[1].Attended++
	want[1].Total++
	assert.Equal(t, want, loaded, "only the targeted counters change")
}

func TestUpdateByPositionMissed(t *testing.T) {
	s, _ := newTestStore()
	ctx := context.Background()
	require.NoError(t, s.Save(ctx, sampleSubjects()))

	require.NoError(t, s.UpdateByPosition(ctx, 0, false))

	loaded, err := s.Load(ctx)
	require.NoError(t, err)

	want := sampleSubjects()
	want[0].Total++
	assert.Equal(t, want, loaded)
}

func TestUpdateByPositionOutOfRange(t *testing.T) {
	s, _ := newTestStore()
	ctx := context.Background()
	require.NoError(t, s.Save(ctx, sampleSubjects()))

	assert.ErrorIs(t, s.UpdateByPosition(ctx, -1, true), ErrNotFound)
	assert.ErrorIs(t, s.UpdateByPosition(ctx, 3, true), ErrNotFound)

	loaded, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, sampleSubjects(), loaded, "failed updates leave the list unchanged")
}

func TestRemoveByPosition(t *testing.T) {
	s, _ := newTestStore()
	ctx := context.Background()
	require.NoError(t, s.Save(ctx, sampleSubjects()))

	require.NoError(t, s.RemoveByPosition(ctx, 1))

	loaded, err := s.Load(ctx)
	require.NoError(t, err)

	all := sampleSubjects()
	assert.Equal(t, []model.Subject{all[0], all[2]}, loaded, "later subjects shift down by one")
}

func TestRemoveByPositionOutOfRange(t *testing.T) {
	s, _ := newTestStore()
	ctx := context.Background()
	require.NoError(t, s.Save(ctx, sampleSubjects()))

	assert.ErrorIs(t, s.RemoveByPosition(ctx, -1), ErrNotFound)
	assert.ErrorIs(t, s.RemoveByPosition(ctx, 3), ErrNotFound)

	loaded, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, loaded, 3)
}

func TestLoadCorruptBlob(t *testing.T) {
	s, backend := newTestStore()
	backend.value = `{"this is": "not a subject list"`
	backend.found = true

	_, err := s.Load(context.Background())
	assert.ErrorIs(t, err, ErrCorruptState, "corrupt data must fail loudly, never reset")
	assert.Equal(t, `{"this is": "not a subject list"`, backend.value, "the corrupt blob is left in place")
}

func TestLoadEmptyStringBlob(t *testing.T) {
	s, backend := newTestStore()
	backend.value = ""
	backend.found = true

	subjects, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, subjects)
}
