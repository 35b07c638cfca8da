package session

import (
	"sync"
	"testing"

	"shopbot/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestMemoryStore_Get(t *testing.T) {
	store := NewMemoryStore()

	sess := store.Get(123)

	assert.Equal(t, domain.StepIdle, sess.Step)
	assert.Equal(t, domain.DefaultLanguage, sess.Language)

	// A second Get returns the same session, not a fresh one.
	sess.Step = domain.StepRegisterName
	assert.Equal(t, domain.StepRegisterName, store.Get(123).Step)
}

func TestMemoryStore_Put(t *testing.T) {
	store := NewMemoryStore()

	store.Put(123, &domain.Session{Language: "ru", Step: domain.StepSupport})

	sess := store.Get(123)
	assert.Equal(t, "ru", sess.Language)
	assert.Equal(t, domain.StepSupport, sess.Step)
}

func TestMemoryStore_Reset(t *testing.T) {
	store := NewMemoryStore()
	store.Put(123, &domain.Session{
		Language: "en",
		Step:     domain.StepCheckoutPhone,
		Phone:    "+998901234567",
		Page:     2,
	})

	store.Reset(123)

	sess := store.Get(123)
	assert.Equal(t, domain.StepIdle, sess.Step)
	assert.Empty(t, sess.Phone)
	assert.Zero(t, sess.Page)
	assert.Equal(t, "en", sess.Language, "reset keeps the language")
}

func TestMemoryStore_ResetUnknownUser(t *testing.T) {
	store := NewMemoryStore()

	assert.NotPanics(t, func() { store.Reset(999) })
}

func TestMemoryStore_ConcurrentAccess(t *testing.T) {
	store := NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			store.Get(id)
			store.Put(id, domain.NewSession())
			store.Reset(id)
		}(int64(i % 10))
	}
	wg.Wait()

	for i := int64(0); i < 10; i++ {
		assert.Equal(t, domain.StepIdle, store.Get(i).Step)
	}
}
