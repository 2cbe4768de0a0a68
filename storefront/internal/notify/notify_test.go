package notify

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogNotifier(t *testing.T) {
	log, hook := logtest.NewNullLogger()
	n := LogNotifier{Log: log}

	n.Notify(Notification{Title: "Added to cart", Message: "Samosa has been added to your cart"})
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.InfoLevel, hook.LastEntry().Level)
	assert.Equal(t, "Added to cart", hook.LastEntry().Data["title"])

	n.Notify(Notification{Title: "Error", Message: "Please enter a comment", Variant: Destructive})
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	assert.Equal(t, "Please enter a comment", hook.LastEntry().Message)
}

func TestRecorder(t *testing.T) {
	var r Recorder
	_, ok := r.Last()
	assert.False(t, ok)

	r.Notify(Notification{Title: "a"})
	r.Notify(Notification{Title: "b"})
	assert.Equal(t, []string{"a", "b"}, r.Titles())

	last, ok := r.Last()
	require.True(t, ok)
	assert.Equal(t, "b", last.Title)

	r.Reset()
	assert.Empty(t, r.All())
}

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	w := &Writer{W: &buf}
	w.Notify(Notification{Title: "Added to cart", Message: "Samosa has been added to your cart"})
	w.Notify(Notification{Title: "Error", Message: "Please enter a comment", Variant: Destructive})

	assert.Equal(t, "* Added to cart: Samosa has been added to your cart\n! Error: Please enter a comment\n", buf.String())
}
