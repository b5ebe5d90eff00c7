package telemetry_test

import (
	"context"
	"testing"

	"github.com/goto/backoffice/pkg/telemetry"
	"github.com/goto/salt/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDisabled(t *testing.T) {
	nrApp, cleanUp, err := telemetry.Init(context.Background(), telemetry.Config{AppName: "backoffice"}, log.NewNoop())
	require.NoError(t, err)
	assert.Nil(t, nrApp)
	assert.NotPanics(t, cleanUp)
}
