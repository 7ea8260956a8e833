package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/rocketscienceinc/hangman/internal/apperror"
	"github.com/rocketscienceinc/hangman/internal/entity"
	"github.com/rocketscienceinc/hangman/internal/hangman"
	"github.com/rocketscienceinc/hangman/internal/repository"
	"github.com/rocketscienceinc/hangman/internal/snapshot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var errRedisDown = errors.New("redis down")

func newSession(t *testing.T, word string) (*Session, *mockSaveRepo) {
	t.Helper()

	saves := &mockSaveRepo{}
	t.Cleanup(func() { saves.AssertExpectations(t) })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	session := NewSession(logger, fixedPicker(word), snapshot.NewSerializer(snapshot.JSONCodec{}), saves)

	return session, saves
}

func TestSession_NewGame(t *testing.T) {
	t.Run("Starts a game for the picked word", func(t *testing.T) {
		session, _ := newSession(t, "cat")

		// When: a new game is started
		game, err := session.NewGame()

		// Then: it is the live game
		require.NoError(t, err)
		assert.Equal(t, "cat", game.SecretWord())
		assert.Same(t, game, session.Current())
	})

	t.Run("Rejects an invalid picked word", func(t *testing.T) {
		session, _ := newSession(t, "")

		_, err := session.NewGame()

		require.ErrorIs(t, err, apperror.ErrInvalidWord)
		assert.Nil(t, session.Current())
	})
}

func TestSession_Guess(t *testing.T) {
	t.Run("Plays the live game", func(t *testing.T) {
		session, _ := newSession(t, "cat")
		_, err := session.NewGame()
		require.NoError(t, err)

		result, err := session.Guess("a")

		require.NoError(t, err)
		assert.Equal(t, hangman.OutcomeCorrect, result.Outcome)
		assert.Equal(t, "_a_", session.Current().RevealMask())
	})

	t.Run("Without a game", func(t *testing.T) {
		session, _ := newSession(t, "cat")

		_, err := session.Guess("a")

		require.ErrorIs(t, err, apperror.ErrNoActiveGame)
	})
}

func TestSession_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("Stores the serialized game under the slot", func(t *testing.T) {
		// Given: a game in progress
		session, saves := newSession(t, "bee")
		_, err := session.NewGame()
		require.NoError(t, err)
		_, err = session.Guess("b")
		require.NoError(t, err)

		expected, err := snapshot.NewSerializer(snapshot.JSONCodec{}).Serialize(session.Current())
		require.NoError(t, err)

		saves.On("Save", ctx, "slot-a", expected).Return(nil).Once()

		// When: it is saved
		slot, err := session.Save(ctx, "slot-a")

		// Then: the slot name is reported back
		require.NoError(t, err)
		assert.Equal(t, "slot-a", slot)
	})

	t.Run("Derives the slot name from the time", func(t *testing.T) {
		session, saves := newSession(t, "bee")
		session.now = func() time.Time { return time.Date(2026, 10, 17, 9, 30, 5, 0, time.UTC) }
		_, err := session.NewGame()
		require.NoError(t, err)

		saves.On("Save", ctx, "save-20261017-093005", mock.AnythingOfType("[]uint8")).Return(nil).Once()

		slot, err := session.Save(ctx, "")

		require.NoError(t, err)
		assert.Equal(t, "save-20261017-093005", slot)
	})

	t.Run("Rejects an invalid slot name", func(t *testing.T) {
		session, _ := newSession(t, "bee")
		_, err := session.NewGame()
		require.NoError(t, err)

		_, err = session.Save(ctx, "../x")

		require.ErrorIs(t, err, apperror.ErrInvalidSlot)
	})

	t.Run("Without a game", func(t *testing.T) {
		session, _ := newSession(t, "bee")

		_, err := session.Save(ctx, "slot")

		require.ErrorIs(t, err, apperror.ErrNoActiveGame)
	})

	t.Run("Finished game", func(t *testing.T) {
		session, _ := newSession(t, "a")
		_, err := session.NewGame()
		require.NoError(t, err)
		_, err = session.Guess("a")
		require.NoError(t, err)

		_, err = session.Save(ctx, "slot")

		require.ErrorIs(t, err, apperror.ErrGameFinished)
	})

	t.Run("Storage failure is returned", func(t *testing.T) {
		session, saves := newSession(t, "bee")
		_, err := session.NewGame()
		require.NoError(t, err)

		saves.On("Save", ctx, "slot", mock.Anything).Return(errRedisDown).Once()

		_, err = session.Save(ctx, "slot")

		require.ErrorIs(t, err, errRedisDown)
	})
}

func TestSession_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("Replaces the live game", func(t *testing.T) {
		// Given: a stored snapshot
		session, saves := newSession(t, "cat")
		_, err := session.NewGame()
		require.NoError(t, err)

		stored, err := entity.RestoreGame("bee", "b__", 4, []string{"b", "x"})
		require.NoError(t, err)
		blob, err := snapshot.NewSerializer(snapshot.JSONCodec{}).Serialize(stored)
		require.NoError(t, err)

		saves.On("Load", ctx, "slot").Return(blob, nil).Once()

		// When: it is loaded
		game, err := session.Load(ctx, "slot")

		// Then: the stored game becomes the live one
		require.NoError(t, err)
		assert.Equal(t, stored, game)
		assert.Same(t, game, session.Current())
	})

	t.Run("Corrupt save leaves the live game untouched", func(t *testing.T) {
		// Given: a game in progress and a corrupt snapshot
		session, saves := newSession(t, "cat")
		live, err := session.NewGame()
		require.NoError(t, err)
		_, err = session.Guess("c")
		require.NoError(t, err)

		blob := []byte(`{"secret_word":"cat","reveal_mask":"____","remaining_guesses":6,"guessed_letters":[]}`)
		saves.On("Load", ctx, "bad").Return(blob, nil).Once()

		// When: it is loaded
		game, err := session.Load(ctx, "bad")

		// Then: ErrCorruptSave is returned and the live game is unchanged
		require.ErrorIs(t, err, apperror.ErrCorruptSave)
		assert.Nil(t, game)
		assert.Same(t, live, session.Current())
		assert.Equal(t, "c__", session.Current().RevealMask())
	})

	t.Run("Missing save leaves the live game untouched", func(t *testing.T) {
		session, saves := newSession(t, "cat")
		live, err := session.NewGame()
		require.NoError(t, err)

		saves.On("Load", ctx, "none").Return(nil, apperror.ErrSaveNotFound).Once()

		_, err = session.Load(ctx, "none")

		require.ErrorIs(t, err, apperror.ErrSaveNotFound)
		assert.Same(t, live, session.Current())
	})
}

func TestSession_SlotsAndDelete(t *testing.T) {
	ctx := context.Background()
	session, saves := newSession(t, "cat")

	listed := []repository.Slot{{Name: "b", SavedAt: time.UnixMilli(2)}, {Name: "a", SavedAt: time.UnixMilli(1)}}
	saves.On("List", ctx).Return(listed, nil).Once()
	saves.On("Delete", ctx, "a").Return(nil).Once()
	saves.On("Delete", ctx, "zz").Return(apperror.ErrSaveNotFound).Once()

	slots, err := session.Slots(ctx)
	require.NoError(t, err)
	assert.Equal(t, listed, slots)

	require.NoError(t, session.DeleteSlot(ctx, "a"))
	require.ErrorIs(t, session.DeleteSlot(ctx, "zz"), apperror.ErrSaveNotFound)
}
