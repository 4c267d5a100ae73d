package circuitbreaker

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/getmentor/mentor-aggregator/pkg/httpclient"
	"github.com/stretchr/testify/assert"
)

func TestRun_OpensAfterFailures(t *testing.T) {
	cb := New(Config{Name: "test-open", MaxRequests: 1, Interval: time.Minute, Timeout: time.Minute, MinRequests: 3, MaxFailures: 0.6})
	boom := errors.New("boom")

	for i := 0; i < 3; i++ {
		assert.ErrorIs(t, Run(cb, func() error { return boom }), boom)
	}

	called := false
	err := Run(cb, func() error {
		called = true
		return nil
	})

	assert.False(t, called)
	assert.True(t, IsOpen(err))
	assert.Contains(t, err.Error(), "test-open")
}

func TestRun_ClientErrorsDoNotTrip(t *testing.T) {
	cb := New(Config{Name: "test-4xx", MaxRequests: 1, Interval: time.Minute, Timeout: time.Minute, MinRequests: 2, MaxFailures: 0.5})
	notFound := &httpclient.StatusError{StatusCode: http.StatusNotFound}

	for i := 0; i < 5; i++ {
		err := Run(cb, func() error { return notFound })
		assert.ErrorIs(t, err, notFound)
		assert.False(t, IsOpen(err))
	}
}

func TestRun_Success(t *testing.T) {
	cb := New(DefaultConfig("test-ok"))

	assert.NoError(t, Run(cb, func() error { return nil }))
	assert.Equal(t, "closed", cb.State().String())
}
