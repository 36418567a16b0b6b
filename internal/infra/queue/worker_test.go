package queue

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/xavierca1/agency-site/internal/entity"
)

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(ctx context.Context, n entity.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

type fakeAck struct {
	acked   int
	nacked  int
	requeue bool
}

func (f *fakeAck) Ack(bool) error {
	f.acked++
	return nil
}

func (f *fakeAck) Nack(_ bool, requeue bool) error {
	f.nacked++
	f.requeue = requeue
	return nil
}

func newTestWorker(m Mailer) *Worker {
	logger, _ := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	return &Worker{Mailer: m, Logger: logger}
}

func TestWorker_Handle_AcksOnSuccess(t *testing.T) {
	mailer := new(MockMailer)
	mailer.On("Send", mock.Anything, mock.MatchedBy(func(n entity.Notification) bool {
		return n.Kind == entity.NotificationContact && n.Email == "ana@example.com"
	})).Return(nil)

	ack := &fakeAck{}
	newTestWorker(mailer).Handle(context.Background(),
		[]byte(`{"kind":"contact_submission","ref_id":"1","name":"Ana","email":"ana@example.com"}`), ack)

	assert.Equal(t, 1, ack.acked)
	assert.Equal(t, 0, ack.nacked)
	mailer.AssertExpectations(t)
}

func TestWorker_Handle_NacksWithoutRequeueOnSendError(t *testing.T) {
	mailer := new(MockMailer)
	mailer.On("Send", mock.Anything, mock.Anything).Return(errors.New("smtp down"))

	ack := &fakeAck{}
	newTestWorker(mailer).Handle(context.Background(), []byte(`{"kind":"newsletter_welcome"}`), ack)

	assert.Equal(t, 0, ack.acked)
	assert.Equal(t, 1, ack.nacked)
	assert.False(t, ack.requeue)
}

func TestWorker_Handle_NacksMalformedJSON(t *testing.T) {
	mailer := new(MockMailer)

	ack := &fakeAck{}
	newTestWorker(mailer).Handle(context.Background(), []byte(`{not json`), ack)

	assert.Equal(t, 1, ack.nacked)
	mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}
