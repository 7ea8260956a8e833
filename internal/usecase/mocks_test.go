package usecase

import (
	"context"

	"github.com/rocketscienceinc/hangman/internal/repository"
	"github.com/stretchr/testify/mock"
)

type mockSaveRepo struct {
	mock.Mock
}

func (m *mockSaveRepo) Save(ctx context.Context, slot string, blob []byte) error {
	args := m.Called(ctx, slot, blob)
	return args.Error(0)
}

func (m *mockSaveRepo) Load(ctx context.Context, slot string) ([]byte, error) {
	args := m.Called(ctx, slot)

	blob, _ := args.Get(0).([]byte)
	return blob, args.Error(1)
}

func (m *mockSaveRepo) List(ctx context.Context) ([]repository.Slot, error) {
	args := m.Called(ctx)

	slots, _ := args.Get(0).([]repository.Slot)
	return slots, args.Error(1)
}

func (m *mockSaveRepo) Delete(ctx context.Context, slot string) error {
	args := m.Called(ctx, slot)
	return args.Error(0)
}

type fixedPicker string

func (that fixedPicker) Pick() string {
	return string(that)
}
