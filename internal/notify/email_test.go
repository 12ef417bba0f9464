package notify

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSenderWithoutKeyUsesStub(t *testing.T) {
	assert.Nil(t, NewSendGridSender(SendGridConfig{}, nil))
	assert.IsType(t, &StubEmailSender{}, NewSender(SendGridConfig{}, nil))
	assert.IsType(t, &SendGridSender{}, NewSender(SendGridConfig{APIKey: "SG.test"}, nil))
}

func TestStubEmailSenderLogs(t *testing.T) {
	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)

	err := NewStubEmailSender(log).Send(context.Background(), OTPMessage("a@b.com", "Ann", "123456"))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "a@b.com")
	assert.NotContains(t, buf.String(), "123456")
}

func TestOTPMessage(t *testing.T) {
	msg := OTPMessage("a@b.com", "Ann", "654321")
	assert.Equal(t, "a@b.com", msg.To)
	assert.Contains(t, msg.Body, "654321")
}
