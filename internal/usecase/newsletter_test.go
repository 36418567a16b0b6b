package usecase

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xavierca1/agency-site/internal/entity"
)

func newNewsletterUC(repo SubscriberRepositoryInterface) (*NewsletterUseCase, *MockNotifier) {
	logger, _ := test.NewNullLogger()
	events := new(MockEventRecorder)
	events.On("Record", mock.Anything, mock.Anything).Return(nil)
	notifier := new(MockNotifier)
	notifier.On("Notify", mock.Anything, mock.Anything).Return(nil)
	return NewNewsletterUseCase(repo, events, notifier, logger), notifier
}

func TestNewsletterUseCase_SubscribeTwiceWhileActive(t *testing.T) {
	ctx := context.Background()
	repo := newMemorySubscribers()
	uc, notifier := newNewsletterUC(repo)

	first, err := uc.Subscribe(ctx, SubscribeInput{Email: "ana@example.com", Name: "Ana"})
	require.NoError(t, err)
	assert.False(t, first.AlreadySubscribed)

	second, err := uc.Subscribe(ctx, SubscribeInput{Email: " ANA@example.com"})
	require.NoError(t, err)
	assert.True(t, second.AlreadySubscribed)

	assert.Len(t, repo.rows, 1)
	assert.Equal(t, 1, repo.creates)
	// só o primeiro cadastro manda boas-vindas
	notifier.AssertNumberOfCalls(t, "Notify", 1)
}

func TestNewsletterUseCase_ResubscribeReactivatesSameRow(t *testing.T) {
	ctx := context.Background()
	repo := newMemorySubscribers()
	uc, _ := newNewsletterUC(repo)

	created, err := uc.Subscribe(ctx, SubscribeInput{Email: "bruno@example.com", Preferences: []string{"seo"}})
	require.NoError(t, err)

	require.NoError(t, uc.Unsubscribe(ctx, "bruno@example.com"))
	assert.Equal(t, entity.SubscriberStatusUnsubscribed, repo.rows["bruno@example.com"].Status)

	out, err := uc.Subscribe(ctx, SubscribeInput{Email: "bruno@example.com", Preferences: []string{"ads"}})
	require.NoError(t, err)
	assert.True(t, out.Reactivated)
	assert.Equal(t, created.Subscriber.ID, out.Subscriber.ID)

	row := repo.rows["bruno@example.com"]
	assert.Len(t, repo.rows, 1)
	assert.Equal(t, 1, repo.reactives)
	assert.True(t, row.IsActive())
	assert.Nil(t, row.UnsubscribedAt)
	assert.Equal(t, entity.StringList{"ads"}, row.Preferences)
}

func TestNewsletterUseCase_Validation(t *testing.T) {
	uc, _ := newNewsletterUC(newMemorySubscribers())

	_, err := uc.Subscribe(context.Background(), SubscribeInput{Email: "nope"})
	assert.True(t, IsDomainError(err))

	err = uc.Unsubscribe(context.Background(), "")
	assert.True(t, IsDomainError(err))
}

func TestNewsletterUseCase_UnsubscribeUnknown(t *testing.T) {
	uc, _ := newNewsletterUC(newMemorySubscribers())

	err := uc.Unsubscribe(context.Background(), "ghost@example.com")

	var de *DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, CodeNotFound, de.Code)
}

func TestNewsletterUseCase_ListStats(t *testing.T) {
	ctx := context.Background()
	repo := newMemorySubscribers()
	uc, _ := newNewsletterUC(repo)

	for _, e := range []string{"a@x.com", "b@x.com", "c@x.com"} {
		_, err := uc.Subscribe(ctx, SubscribeInput{Email: e})
		require.NoError(t, err)
	}
	require.NoError(t, uc.Unsubscribe(ctx, "b@x.com"))

	subs, stats, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, subs, 3)
	assert.Equal(t, entity.SubscriberStats{Total: 3, Active: 2, Unsubscribed: 1}, stats)
}

// lateSubscribers esconde a linha existente no primeiro FindByEmail, como se
// outra request tivesse gravado o email entre o SELECT e o INSERT.
type lateSubscribers struct {
	*memorySubscribers
	hidden bool
}

func (r *lateSubscribers) FindByEmail(ctx context.Context, email string) (*entity.Subscriber, error) {
	if !r.hidden {
		r.hidden = true
		return nil, entity.ErrNotFound
	}
	return r.memorySubscribers.FindByEmail(ctx, email)
}

func TestNewsletterUseCase_DuplicateInsertRace(t *testing.T) {
	ctx := context.Background()

	t.Run("Linha concorrente inativa é reativada", func(t *testing.T) {
		mem := newMemorySubscribers()
		old, err := entity.NewSubscriber("carla@example.com", "Carla", nil)
		require.NoError(t, err)
		old.Status = entity.SubscriberStatusUnsubscribed
		mem.rows[old.Email] = old

		uc, notifier := newNewsletterUC(&lateSubscribers{memorySubscribers: mem})
		out, err := uc.Subscribe(ctx, SubscribeInput{Email: "carla@example.com"})
		require.NoError(t, err)

		assert.True(t, out.Reactivated)
		assert.False(t, out.AlreadySubscribed)
		assert.Equal(t, old.ID, out.Subscriber.ID)
		assert.True(t, mem.rows["carla@example.com"].IsActive())
		assert.Equal(t, 1, mem.reactives)
		assert.Equal(t, 0, mem.creates)
		notifier.AssertNumberOfCalls(t, "Notify", 1)
	})

	t.Run("Linha concorrente ativa", func(t *testing.T) {
		mem := newMemorySubscribers()
		old, err := entity.NewSubscriber("davi@example.com", "", nil)
		require.NoError(t, err)
		mem.rows[old.Email] = old

		uc, notifier := newNewsletterUC(&lateSubscribers{memorySubscribers: mem})
		out, err := uc.Subscribe(ctx, SubscribeInput{Email: "davi@example.com"})
		require.NoError(t, err)

		assert.True(t, out.AlreadySubscribed)
		assert.Equal(t, 0, mem.reactives)
		notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
	})
}
