package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "debug", "json")
	require.NoError(t, err)

	logger.WithField("mood", "happy").Debug("planned")
	assert.Contains(t, buf.String(), `"mood":"happy"`)
	assert.Contains(t, buf.String(), `"msg":"planned"`)

	_, err = New(&buf, "loud", "text")
	assert.Error(t, err)

	_, err = New(&buf, "info", "xml")
	assert.Error(t, err)
}

func TestFromContext(t *testing.T) {
	assert.Equal(t, logrus.StandardLogger(), FromContext(context.Background()))

	entry := Discard().WithField("request_id", "r-1")
	ctx := WithLogger(context.Background(), entry)
	assert.Equal(t, entry, FromContext(ctx))
}
