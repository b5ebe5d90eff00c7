package statsd

import (
	"errors"
	"testing"
	"time"

	"github.com/goto/salt/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisabledReporter(t *testing.T) {
	t.Run("nil reporter hands out nil metrics that accept every call", func(t *testing.T) {
		var sd *Reporter
		assert.NotPanics(t, func() {
			sd.Timing("client.request", time.Second).Tag("method", "GET").Outcome(errors.New("x")).Publish()
			sd.Incr("service.op").Success().Publish()
		})
		assert.NoError(t, sd.Close())
	})

	t.Run("disabled config does not dial", func(t *testing.T) {
		sd, err := Init(log.NewNoop(), Config{Enabled: false})
		require.NoError(t, err)
		assert.Nil(t, sd.Gauge("g", 1))
	})
}

func TestTagFormats(t *testing.T) {
	tags := map[string]string{"status": "200", "method": "GET"}

	assert.Equal(t, "client.request,method=GET,status=200", influxName("client.request", tags))
	assert.Equal(t, []string{"method:GET", "status:200"}, datadogTags(tags))
}
