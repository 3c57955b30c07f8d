package services

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AceRider75/moodfood/internal/core/domain"
)

// gatedResolver blocks each mood until its gate is closed.
type gatedResolver struct {
	gates map[domain.Mood]chan struct{}
}

func (g *gatedResolver) Resolve(ctx context.Context, mood domain.Mood, filters domain.FilterSet) domain.Outcome {
	if gate, ok := g.gates[mood]; ok {
		<-gate
	}
	return domain.Success(domain.Recipe{ID: string(mood), Title: string(mood)})
}

func TestSession_TokensIncrease(t *testing.T) {
	s := NewSession(&gatedResolver{})

	a := s.Begin(domain.MoodHappy, domain.FilterSet{})
	b := s.Begin(domain.MoodSad, domain.FilterSet{})

	assert.Less(t, a.Token, b.Token)
	assert.NotEqual(t, a.RequestID, b.RequestID)
	_, err := uuid.Parse(b.RequestID)
	require.NoError(t, err)
	assert.True(t, s.Current().Loading)
}

func TestSession_DiscardsSupersededCompletion(t *testing.T) {
	s := NewSession(&gatedResolver{})

	a := s.Begin(domain.MoodHappy, domain.FilterSet{})
	b := s.Begin(domain.MoodSad, domain.FilterSet{})

	assert.True(t, s.Complete(b, domain.Success(domain.Recipe{ID: "b"})))
	assert.False(t, s.Complete(a, domain.Success(domain.Recipe{ID: "a"})))

	cur := s.Current()
	require.NotNil(t, cur.Outcome)
	assert.Equal(t, "b", cur.Outcome.Recipe.ID)
	assert.Equal(t, b.Token, cur.Token)
	assert.False(t, cur.Loading)
}

func TestSession_StaleCompletionKeepsLoading(t *testing.T) {
	s := NewSession(&gatedResolver{})

	a := s.Begin(domain.MoodHappy, domain.FilterSet{})
	b := s.Begin(domain.MoodSad, domain.FilterSet{})

	assert.False(t, s.Complete(a, domain.Fail(domain.FailureNotFound, 0, domain.MessageNoMatch)))
	assert.True(t, s.Current().Loading, "stale completion must not clear loading")
	assert.Nil(t, s.Current().Outcome)

	s.Abandon(a)
	assert.True(t, s.Current().Loading, "abandoning a stale ticket must not clear loading")

	s.Abandon(b)
	assert.False(t, s.Current().Loading)
}

func TestSession_OutOfOrderRuns(t *testing.T) {
	gate := make(chan struct{})
	s := NewSession(&gatedResolver{gates: map[domain.Mood]chan struct{}{domain.MoodHappy: gate}})

	a := s.Begin(domain.MoodHappy, domain.FilterSet{})

	var wg sync.WaitGroup
	var aPublished bool
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, aPublished = s.Run(context.Background(), a)
	}()

	_, out, published := s.Resolve(context.Background(), domain.MoodSad, domain.FilterSet{VegetarianOnly: true})
	require.True(t, published)
	assert.Equal(t, "sad", out.Recipe.ID)

	close(gate)
	wg.Wait()

	assert.False(t, aPublished)
	cur := s.Current()
	assert.Equal(t, domain.MoodSad, cur.Mood)
	assert.True(t, cur.Filters.VegetarianOnly)
	assert.Equal(t, "sad", cur.Outcome.Recipe.ID)
	assert.False(t, cur.Loading)
}
